package main

import (
	"flag"

	"tombs-core/internal/agent"
	"tombs-core/internal/config"
	"tombs-core/internal/domain"
	"tombs-core/internal/engine"
	"tombs-core/internal/infrastructure/storage"
	"tombs-core/internal/version"
	"tombs-core/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var turns int
	var configPath, savePath string
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Initial world seed (0 for random)")
	flag.IntVar(&turns, "turns", 1000, "Maximum number of bot turns to simulate")
	flag.StringVar(&configPath, "config", "", "Path to a YAML config overriding the defaults")
	flag.StringVar(&savePath, "save", "", "Path to the save database (empty disables saving)")
	flag.Parse()

	logger.Log.Info("Starting Tombs of the Ancient Kings...")
	logger.Log.Info(version.String())

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			logger.Log.Fatal("Failed to load config: ", err)
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}

	// 2. Хранилище сохранений (опционально)
	var store *storage.Store
	if savePath != "" {
		s, err := storage.Open(savePath)
		if err != nil {
			logger.Log.Fatal("Failed to open save database: ", err)
		}
		defer s.Close()
		store = s
	}

	// 3. Сессия: продолжаем сохраненную или начинаем новую
	bot := agent.New(cfg.Seed)

	var session *engine.Session
	if store != nil {
		if snap, err := store.Load(storage.DefaultSlot); err == nil {
			session = engine.Restore(cfg, snap.Game, snap.Objects, bot, bot)
			logger.Log.Info("Continuing a saved session")
		}
	}
	if session == nil {
		session = engine.NewSession(cfg, bot, bot)
	}
	bot.Attach(session)

	// 4. Симуляция
	played := bot.Run(turns)

	player := session.Objects[domain.PlayerIdx]
	logger.Log.Infof("Simulation finished: %d turns, hero level %d, dungeon level %d",
		played, player.Level, session.Game.DungeonLevel)
	for _, msg := range session.Game.Log.Messages {
		logger.Log.Info(msg.Text)
	}

	// 5. Сохранение: погибшему герою сохранение не положено
	if store != nil {
		if session.Game.State == domain.StateDead {
			if err := store.Delete(storage.DefaultSlot); err != nil {
				logger.Log.Warn("Failed to clear the save slot: ", err)
			}
		} else if err := store.Save(storage.DefaultSlot, session.Game, session.Objects); err != nil {
			logger.Log.Fatal("Failed to save the session: ", err)
		}
	}

	logger.Log.Info("Done.")
}
