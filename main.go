package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/gonewx/asteroids/pkg/app"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/game"
)

var (
	configPath = flag.String("config", "", "游戏配置文件路径（.yaml 或 .toml），为空时使用内置的 data/game.yaml")
	seed       = flag.Int64("seed", 0, "随机种子，0 表示使用默认种子")
	noAudio    = flag.Bool("no-audio", false, "禁用音效")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "asteroids: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if *noAudio {
		cfg.Audio.Enabled = false
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	source := *configPath
	if source == "" {
		source = "embedded"
	}
	logger.Info("config loaded", zap.String("source", source), zap.Bool("audio", cfg.Audio.Enabled))

	// 存档不可用时以降级模式运行：统计和快照只保存在内存中
	gdataManager := game.OpenStorage("asteroids", logger)

	audioManager := game.NewAudioManager(audio.NewContext(game.SampleRate), cfg.Audio, logger)
	audioManager.Preload([]string{game.SoundShoot, game.SoundHit, game.SoundExplosion, game.SoundPowerUp})

	gameApp, err := app.NewApp(cfg, app.Options{
		Logger:    logger,
		Sound:     audioManager,
		Stats:     game.NewStatsManager(gdataManager, logger),
		Snapshots: game.NewSnapshotStore(gdataManager, logger),
		Seed:      *seed,
	})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Screen.WindowSize())
	ebiten.SetWindowTitle("Asteroids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(gameApp)
}

func loadConfig() (*config.GameConfig, error) {
	if *configPath == "" {
		return config.Parse(defaultConfigYAML, "yaml")
	}
	return config.Load(*configPath)
}
