package systems

import (
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/entities"
	"github.com/gonewx/asteroids/pkg/game"
	"github.com/gonewx/asteroids/pkg/game/mocks"
	"github.com/gonewx/asteroids/pkg/types"
	"github.com/gonewx/asteroids/pkg/utils"
)

// TestNewSimulationNilConfig 配置为空时返回错误
func TestNewSimulationNilConfig(t *testing.T) {
	if _, err := NewSimulation(nil, SimulationOptions{}); err == nil {
		t.Error("Expected error for nil config")
	}
}

// TestSimulationSpawnsAsteroids 没有玩家时小行星按间隔补充
func TestSimulationSpawnsAsteroids(t *testing.T) {
	cfg := testConfig()
	cfg.Spawner.Interval = 1.0

	sim, err := NewSimulation(cfg, SimulationOptions{Rand: testRand(), SkipPlayer: true, Logger: zaptest.NewLogger(t)})
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	if sim.PlayerPosition() != nil {
		t.Fatal("SkipPlayer should not create a player")
	}

	for i := 0; i < 10; i++ {
		sim.Update(0.25, InputState{})
	}

	if n := ecs.CountAlive[*components.AsteroidComponent](sim.EntityManager()); n != 2 {
		t.Errorf("Expected 2 asteroids after 2.5s, got %d", n)
	}
	if sim.Frame() != 10 {
		t.Errorf("Expected frame 10, got %d", sim.Frame())
	}
}

// TestSimulationShootAsteroid 玩家射击正上方的小行星，一帧之后它被分裂成两块
func TestSimulationShootAsteroid(t *testing.T) {
	ctrl := gomock.NewController(t)
	sound := mocks.NewMockSoundPlayer(ctrl)
	stats := mocks.NewMockStatsRecorder(ctrl)
	sound.EXPECT().PlaySound(gomock.Any()).Return(nil).AnyTimes()
	stats.EXPECT().AsteroidDestroyed().Return(nil).Times(1)

	cfg := testConfig()
	cfg.Spawner.TargetCount = 0
	cfg.PowerUp.SpawnChance = 0

	sim, err := NewSimulation(cfg, SimulationOptions{
		Rand:   testRand(),
		Hooks:  game.NewHooks(sound, nil, stats, nil),
		Logger: zaptest.NewLogger(t),
	})
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	em := sim.EntityManager()

	playerPos := sim.PlayerPosition()
	if playerPos == nil {
		t.Fatal("Expected a player")
	}
	target := mustAsteroid(t, em, cfg, types.AsteroidNormal, playerPos.Add(utils.Vec(0, -160)), utils.Vec(0, 0), 60)

	sim.Update(1.0/60, InputState{Shoot: true})
	for i := 0; i < 30; i++ {
		sim.Update(1.0/60, InputState{})
	}

	if em.IsAlive(target) {
		t.Fatal("target asteroid should be destroyed")
	}
	asteroids := ecs.GetAliveEntitiesWith1[*components.AsteroidComponent](em)
	if len(asteroids) != 2 {
		t.Fatalf("Expected 2 fragments, got %d", len(asteroids))
	}
	for _, id := range asteroids {
		if r := transformOf(t, em, id).Radius; r != 40 {
			t.Errorf("Expected fragment radius 40, got %.1f", r)
		}
	}
	if n := len(ecs.GetAliveEntitiesWith1[*components.ProjectileComponent](em)); n != 0 {
		t.Errorf("shot should be consumed, %d projectiles left", n)
	}
	if want := cfg.Scoring.AsteroidScore(60, cfg.Asteroid.MinRadius); sim.Session().Score != want {
		t.Errorf("Expected score %d, got %d", want, sim.Session().Score)
	}
}

// TestSimulationBossAttack Boss 按攻击间隔发射环形弹幕
func TestSimulationBossAttack(t *testing.T) {
	cfg := testConfig()
	cfg.Spawner.TargetCount = 0

	sim, err := NewSimulation(cfg, SimulationOptions{Rand: testRand(), SkipPlayer: true})
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	em := sim.EntityManager()
	bossID, err := entities.NewBoss(em, cfg.Boss, 10, utils.Vec(cfg.Screen.Width/2, cfg.Boss.Radius))
	if err != nil {
		t.Fatalf("NewBoss failed: %v", err)
	}

	steps := int(cfg.Boss.AttackInterval / 0.25)
	for i := 0; i < steps; i++ {
		sim.Update(0.25, InputState{})
	}

	shots := ecs.GetAliveEntitiesWith1[*components.ProjectileComponent](em)
	if want := cfg.Boss.ProjectileCountForLevel(1); len(shots) != want {
		t.Fatalf("Expected %d boss shots, got %d", want, len(shots))
	}
	for _, id := range shots {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		if proj.Owner != types.FactionEnemy || proj.ShotType != types.ShotBoss {
			t.Errorf("unexpected boss projectile %+v", proj)
		}
	}
	if pattern := bossOf(t, em, bossID).AttackPattern; pattern != components.BossAttackSpiral {
		t.Errorf("Expected next pattern spiral, got %s", pattern)
	}
}

// TestSimulationBossDefeatRemoval 被击败的 Boss 在死亡动画结束后移除
func TestSimulationBossDefeatRemoval(t *testing.T) {
	cfg := testConfig()
	cfg.Spawner.TargetCount = 0

	sim, err := NewSimulation(cfg, SimulationOptions{Rand: testRand(), SkipPlayer: true})
	if err != nil {
		t.Fatalf("NewSimulation failed: %v", err)
	}
	em := sim.EntityManager()
	bossID, err := entities.NewBoss(em, cfg.Boss, 10, utils.Vec(300, 300))
	if err != nil {
		t.Fatalf("NewBoss failed: %v", err)
	}

	if !sim.Bosses().TakeDamage(bossID, 1000) {
		t.Fatal("lethal damage should defeat the boss")
	}

	for i := 0; i < int(cfg.Boss.DeathDuration/0.25); i++ {
		sim.Update(0.25, InputState{})
	}
	if ecs.HasComponent[*components.BossComponent](em, bossID) {
		t.Error("boss should be reaped after death animation")
	}
}
