package domain

// AIKind - вариант поведения монстра.
type AIKind uint8

const (
	// AIBasic - обычное поведение: видит игрока - преследует и атакует.
	AIBasic AIKind = iota
	// AIConfused - временное замешательство: случайные шаги до истечения срока.
	AIConfused
)

// AIState - состояние ИИ монстра.
// Для AIConfused поле Prior хранит вытесненное состояние (в том числе,
// возможно, другое AIConfused) и восстанавливается ровно один раз.
type AIState struct {
	Kind      AIKind   `json:"kind"`
	Prior     *AIState `json:"prior,omitempty"`
	TurnsLeft int      `json:"turnsLeft,omitempty"`
}

// NewBasicAI возвращает обычное поведение.
func NewBasicAI() *AIState {
	return &AIState{Kind: AIBasic}
}

// NewConfusedAI оборачивает прежнее состояние в замешательство на turns ходов.
func NewConfusedAI(prior *AIState, turns int) *AIState {
	return &AIState{Kind: AIConfused, Prior: prior, TurnsLeft: turns}
}
