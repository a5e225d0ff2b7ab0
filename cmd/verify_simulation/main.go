// verify_simulation 无窗口运行模拟编排器，用于回归检查和性能观察
//
// 用法:
//
//	go run ./cmd/verify_simulation -seconds 120 -seed 7
//	go run ./cmd/verify_simulation -config data/game.yaml -snapshot /tmp/run.gob
//
// 自动驾驶模式下飞船持续开火并随机转向，直到游戏结束或时间用完。
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/game"
	"github.com/gonewx/asteroids/pkg/systems"
)

const frameDelta = 1.0 / 60.0

var (
	configPath   = flag.String("config", "data/game.yaml", "游戏配置文件路径")
	seconds      = flag.Float64("seconds", 60, "模拟的游戏时长（秒）")
	seed         = flag.Int64("seed", 1, "随机种子")
	autopilot    = flag.Bool("autopilot", true, "自动驾驶：持续开火并随机转向")
	snapshotPath = flag.String("snapshot", "", "结束时把快照写入该文件（gob）")
	verbose      = flag.Bool("verbose", false, "显示详细调试信息")
)

// counter 统计协作方回调次数
type counter struct {
	asteroids int
	bosses    int
	notices   []string
}

func (c *counter) AsteroidDestroyed() error { c.asteroids++; return nil }
func (c *counter) BossDefeated() error      { c.bosses++; return nil }
func (c *counter) RecordScore(int) error    { return nil }
func (c *counter) Notify(name, description string) error {
	c.notices = append(c.notices, name)
	return nil
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *verbose {
		cfg.Logging.Level = "debug"
	}
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	stats := &counter{}
	rng := rand.New(rand.NewSource(*seed))
	sim, err := systems.NewSimulation(cfg, systems.SimulationOptions{
		Rand:   rng,
		Hooks:  game.NewHooks(nil, stats, stats, logger),
		Logger: logger,
	})
	if err != nil {
		return err
	}

	pilot := rand.New(rand.NewSource(*seed + 1))
	var input systems.InputState
	frames := int(*seconds / frameDelta)
	peak := 0

	start := time.Now()
	for i := 0; i < frames && !sim.Session().GameOver; i++ {
		if *autopilot {
			// 每半秒换一次转向
			if i%30 == 0 {
				turn := pilot.Intn(3)
				input = systems.InputState{RotateLeft: turn == 1, RotateRight: turn == 2, Shoot: true}
			}
		}
		sim.Update(frameDelta, input)
		if n := ecs.CountAlive[*components.AsteroidComponent](sim.EntityManager()); n > peak {
			peak = n
		}
	}
	elapsed := time.Since(start)

	session := sim.Session()
	fmt.Printf("✅ 模拟 %d 帧，耗时 %v（%.1f µs/帧）\n", sim.Frame(), elapsed, float64(elapsed.Microseconds())/float64(max(sim.Frame(), 1)))
	fmt.Printf("   分数 %d  等级 %d  剩余生命 %d  游戏结束 %v\n", session.Score, session.Level(), session.Lives, session.GameOver)
	fmt.Printf("   摧毁小行星 %d  击败 Boss %d  小行星峰值 %d  实体总数 %d\n",
		stats.asteroids, stats.bosses, peak, sim.EntityManager().EntityCount())
	for _, n := range stats.notices {
		fmt.Printf("   通知: %s\n", n)
	}

	if *snapshotPath != "" {
		return writeSnapshot(sim, *snapshotPath, logger)
	}
	return nil
}

func writeSnapshot(sim *systems.Simulation, path string, logger *zap.Logger) error {
	snap, err := game.CaptureSnapshot(sim.EntityManager(), sim.Session(), sim.Frame())
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer f.Close()

	if err := snap.Encode(f); err != nil {
		return err
	}
	logger.Info("snapshot written", zap.String("path", path), zap.String("id", snap.ID), zap.Int("entities", snap.EntityCount()))
	return nil
}
