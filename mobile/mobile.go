//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.gonewx.asteroids -o build/android/asteroids.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Asteroids.xcframework ./mobile
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/mobile"
	"go.uber.org/zap"

	"github.com/gonewx/asteroids/pkg/app"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/game"
)

func init() {
	cfg := config.DefaultConfig()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		logger = zap.NewNop()
	}

	// 存档不可用时以降级模式运行：统计和快照只保存在内存中
	gdataManager := game.OpenStorage("asteroids", logger)

	gameApp, err := app.NewApp(cfg, app.Options{
		Logger:    logger,
		Sound:     game.NewAudioManager(audio.NewContext(game.SampleRate), cfg.Audio, logger),
		Stats:     game.NewStatsManager(gdataManager, logger),
		Snapshots: game.NewSnapshotStore(gdataManager, logger),
	})
	if err != nil {
		logger.Fatal("游戏初始化失败", zap.Error(err))
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
