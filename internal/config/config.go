package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config хранит все настраиваемые параметры симуляции.
// Значения по умолчанию соответствуют классическому балансу игры;
// YAML-файл может переопределить любое поле.
type Config struct {
	// Seed - мастер-зерно. 0 означает "выбрать случайно при старте".
	Seed int64 `yaml:"seed"`

	Map     MapConfig     `yaml:"map"`
	Rooms   RoomConfig    `yaml:"rooms"`
	Spells  SpellConfig   `yaml:"spells"`
	LevelUp LevelUpConfig `yaml:"level_up"`
	Player  PlayerConfig  `yaml:"player"`
	Session SessionConfig `yaml:"session"`
}

// MapConfig - размеры карты уровня.
type MapConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RoomConfig - параметры генератора комнат.
type RoomConfig struct {
	MaxRooms int `yaml:"max_rooms"`
	MinSize  int `yaml:"min_size"`
	MaxSize  int `yaml:"max_size"`
}

// SpellConfig - численные параметры заклинаний и свитков.
type SpellConfig struct {
	HealAmount      int `yaml:"heal_amount"`
	LightningDamage int `yaml:"lightning_damage"`
	LightningRange  int `yaml:"lightning_range"`
	ConfuseRange    int `yaml:"confuse_range"`
	ConfuseTurns    int `yaml:"confuse_turns"`
	FireballRadius  int `yaml:"fireball_radius"`
	FireballDamage  int `yaml:"fireball_damage"`
}

// LevelUpConfig - порог опыта: base + level * factor.
type LevelUpConfig struct {
	Base   int `yaml:"base"`
	Factor int `yaml:"factor"`
}

// PlayerConfig - стартовые характеристики героя.
type PlayerConfig struct {
	HP      int `yaml:"hp"`
	Defense int `yaml:"defense"`
	Power   int `yaml:"power"`
}

// SessionConfig - параметры сессии, не относящиеся к балансу боя.
type SessionConfig struct {
	TorchRadius       int `yaml:"torch_radius"`
	InventoryCapacity int `yaml:"inventory_capacity"`
	LogCapacity       int `yaml:"log_capacity"`
}

// Default возвращает конфиг по умолчанию.
func Default() *Config {
	return &Config{
		Seed: time.Now().UnixNano(),
		Map:  MapConfig{Width: 80, Height: 43},
		Rooms: RoomConfig{
			MaxRooms: 30,
			MinSize:  6,
			MaxSize:  10,
		},
		Spells: SpellConfig{
			HealAmount:      40,
			LightningDamage: 40,
			LightningRange:  5,
			ConfuseRange:    8,
			ConfuseTurns:    10,
			FireballRadius:  3,
			FireballDamage:  25,
		},
		LevelUp: LevelUpConfig{Base: 200, Factor: 150},
		Player:  PlayerConfig{HP: 100, Defense: 1, Power: 2},
		Session: SessionConfig{
			TorchRadius:       10,
			InventoryCapacity: 26,
			LogCapacity:       6,
		},
	}
}

// Load читает YAML-файл поверх конфига по умолчанию.
// Отсутствующие в файле поля сохраняют дефолтные значения.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
