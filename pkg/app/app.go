// Package app 提供游戏应用的核心包装器
//
// 该包把模拟编排器、渲染、输入和外部协作方组装成一个 ebiten.Game，
// 桌面端通过 main.go 调用 NewApp()。
package app

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/game"
	"github.com/gonewx/asteroids/pkg/systems"
)

// frameDelta 固定帧间隔，与 ebiten 默认 TPS 一致
const frameDelta = 1.0 / 60.0

// Options 应用的外部依赖，全部可为 nil
type Options struct {
	Logger    *zap.Logger
	Sound     game.SoundPlayer
	Stats     game.StatsRecorder
	Snapshots *game.SnapshotStore
	// Seed 随机种子；为 0 时使用 1
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg       *config.GameConfig
	opts      Options
	logger    *zap.Logger
	hooks     *game.Hooks
	overlay   *NotificationOverlay
	input     *systems.InputSystem
	sim       *systems.Simulation
	renderer  *systems.RenderSystem
	snapshots *game.SnapshotStore

	paused                   bool
	runs                     int64
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 参数:
//   - cfg: 已校验的游戏配置
//   - opts: 外部依赖
//
// 返回:
//   - *App: 应用实例
//   - error: 模拟编排器创建失败时返回错误
func NewApp(cfg *config.GameConfig, opts Options) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	overlay := NewNotificationOverlay()
	a := &App{
		cfg:       cfg,
		opts:      opts,
		logger:    logger.Named("App"),
		hooks:     game.NewHooks(opts.Sound, overlay, opts.Stats, logger),
		overlay:   overlay,
		input:     systems.NewInputSystem(systems.DefaultKeyBindings()),
		snapshots: opts.Snapshots,
	}
	if err := a.restart(); err != nil {
		return nil, err
	}
	return a, nil
}

// restart 丢弃当前模拟并开始新的一局
func (a *App) restart() error {
	seed := a.opts.Seed
	if seed == 0 {
		seed = 1
	}
	sim, err := systems.NewSimulation(a.cfg, systems.SimulationOptions{
		Rand:   rand.New(rand.NewSource(seed + a.runs)),
		Hooks:  a.hooks,
		Logger: a.opts.Logger,
	})
	if err != nil {
		return fmt.Errorf("failed to start simulation: %w", err)
	}
	a.runs++
	a.sim = sim
	a.renderer = systems.NewRenderSystem(sim.EntityManager(), sim.Session())
	a.paused = false
	a.logger.Info("new game started", zap.Int64("run", a.runs))
	return nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Screen.WindowSize())
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.saveSnapshot()
	}

	session := a.sim.Session()
	if session.GameOver && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if err := a.restart(); err != nil {
			return err
		}
	}

	if a.input.PauseToggled() && !session.GameOver {
		a.paused = !a.paused
		a.logger.Debug("pause toggled", zap.Bool("paused", a.paused))
	}

	a.overlay.Update(frameDelta)
	if !a.paused {
		a.sim.Update(frameDelta, a.input.Read())
	}
	return nil
}

// saveSnapshot 捕获当前帧并写入存储
func (a *App) saveSnapshot() {
	if a.snapshots == nil {
		return
	}
	snap, err := game.CaptureSnapshot(a.sim.EntityManager(), a.sim.Session(), a.sim.Frame())
	if err != nil {
		a.logger.Warn("snapshot capture failed", zap.Error(err))
		return
	}
	if err := a.snapshots.Save(snap); err != nil {
		a.logger.Warn("snapshot save failed", zap.Error(err))
		return
	}
	a.hooks.Notify("Snapshot saved", snap.ID[:8])
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a.renderer.Draw(screen)
	a.overlay.Draw(screen)

	if a.paused {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		ebitenutil.DebugPrintAt(screen, "PAUSED", w/2-18, h/2-20)
	}
	if a.sim.Session().GameOver {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		ebitenutil.DebugPrintAt(screen, "PRESS ENTER TO RESTART", w/2-66, h/2+20)
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Screen.WindowSize()
}

// Simulation 返回当前一局的模拟编排器
func (a *App) Simulation() *systems.Simulation {
	return a.sim
}

// Paused 是否处于暂停状态
func (a *App) Paused() bool {
	return a.paused
}
