package systems

import (
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/entities"
	"github.com/gonewx/asteroids/pkg/game"
	"github.com/gonewx/asteroids/pkg/game/mocks"
	"github.com/gonewx/asteroids/pkg/types"
	"github.com/gonewx/asteroids/pkg/utils"
)

type collisionFixture struct {
	cfg       *config.GameConfig
	em        *ecs.EntityManager
	session   *game.Session
	splitter  *SplitContext
	bosses    *BossSystem
	player    *PlayerSystem
	collision *CollisionSystem
}

func newCollisionFixture(t *testing.T, hooks *game.Hooks) *collisionFixture {
	t.Helper()
	cfg := testConfig()
	em := ecs.NewEntityManager()
	logger := zaptest.NewLogger(t)
	session := game.NewSession(cfg.Player.Lives, cfg.Scoring.PointsPerLevel)

	f := &collisionFixture{cfg: cfg, em: em, session: session}
	f.splitter = newTestSplitContext(em, cfg)
	f.bosses = NewBossSystem(em, cfg.Boss, cfg.Screen, testRand(), nil, logger)
	f.player = NewPlayerSystem(em, cfg.Player, cfg.Projectiles, cfg.Screen, session, hooks, logger)
	f.collision = NewCollisionSystem(em, cfg, f.splitter, f.bosses, f.player, session, hooks, logger)
	return f
}

func (f *collisionFixture) resolve() CollisionSnapshot {
	snap := f.collision.TakeSnapshot()
	f.collision.Resolve(snap)
	return snap
}

func (f *collisionFixture) shot(t *testing.T, owner types.Faction, pos utils.Vector2) ecs.EntityID {
	t.Helper()
	stats := f.cfg.Projectiles.Standard
	if owner == types.FactionEnemy {
		stats = f.cfg.Projectiles.Boss
	}
	return mustProjectile(t, f.em, stats, types.ShotStandard, owner, pos, utils.Vec(0, -1))
}

// TestShotSplitsAsteroid 子弹击碎小行星，本轮新生成的碎片不会被其他子弹命中
func TestShotSplitsAsteroid(t *testing.T) {
	ctrl := gomock.NewController(t)
	stats := mocks.NewMockStatsRecorder(ctrl)
	stats.EXPECT().AsteroidDestroyed().Return(nil).Times(2)

	f := newCollisionFixture(t, game.NewHooks(nil, nil, stats, nil))
	pos := utils.Vec(300, 300)
	parent := mustAsteroid(t, f.em, f.cfg, types.AsteroidNormal, pos, utils.Vec(50, 50), 60)
	first := f.shot(t, types.FactionPlayer, pos)
	second := f.shot(t, types.FactionPlayer, pos)

	f.resolve()
	f.em.RemoveMarkedEntities()

	if f.em.IsAlive(parent) || f.em.IsAlive(first) {
		t.Error("parent asteroid and first shot should be removed")
	}
	if !f.em.IsAlive(second) {
		t.Error("second shot should not hit fragments spawned this frame")
	}
	if n := ecs.CountAlive[*components.AsteroidComponent](f.em); n != 2 {
		t.Errorf("Expected 2 fragments, got %d", n)
	}
	if f.session.Score != f.cfg.Scoring.AsteroidScore(60, f.cfg.Asteroid.MinRadius) {
		t.Errorf("Expected score %d, got %d", f.cfg.Scoring.AsteroidScore(60, f.cfg.Asteroid.MinRadius), f.session.Score)
	}
	if f.session.AsteroidsDestroyed != 1 {
		t.Errorf("Expected 1 asteroid destroyed, got %d", f.session.AsteroidsDestroyed)
	}

	// 下一帧碎片参与碰撞
	f.resolve()
	f.em.RemoveMarkedEntities()
	if f.em.IsAlive(second) {
		t.Error("second shot should hit a fragment on the next frame")
	}
}

// TestShotHitsMetalAsteroid 金属小行星第一次被击中只掉血，不计分
func TestShotHitsMetalAsteroid(t *testing.T) {
	ctrl := gomock.NewController(t)
	sound := mocks.NewMockSoundPlayer(ctrl)
	sound.EXPECT().PlaySound(game.SoundHit).Return(nil).Times(1)

	f := newCollisionFixture(t, game.NewHooks(sound, nil, nil, nil))
	pos := utils.Vec(300, 300)
	metal := mustAsteroid(t, f.em, f.cfg, types.AsteroidMetal, pos, utils.Vec(0, 0), 40)
	shot := f.shot(t, types.FactionPlayer, pos)

	f.resolve()
	f.em.RemoveMarkedEntities()

	if !f.em.IsAlive(metal) {
		t.Fatal("metal asteroid should survive first hit")
	}
	if f.em.IsAlive(shot) {
		t.Error("shot should be consumed")
	}
	if f.session.Score != 0 || f.session.AsteroidsDestroyed != 0 {
		t.Errorf("metal hit should not score, got %d/%d", f.session.Score, f.session.AsteroidsDestroyed)
	}
}

// TestPlayerCrashesIntoAsteroid 玩家撞上小行星：失去生命，小行星分裂但不计分
func TestPlayerCrashesIntoAsteroid(t *testing.T) {
	f := newCollisionFixture(t, nil)
	center := utils.Vec(f.cfg.Screen.Width/2, f.cfg.Screen.Height/2)
	playerID, err := entities.NewPlayer(f.em, f.cfg.Player, utils.Vec(100, 100))
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	asteroid := mustAsteroid(t, f.em, f.cfg, types.AsteroidNormal, utils.Vec(100, 100), utils.Vec(10, 0), 40)

	// 重生无敌期间不受影响
	f.resolve()
	if !f.em.IsAlive(asteroid) || f.session.Lives != f.cfg.Player.Lives {
		t.Fatal("invulnerable player should not collide")
	}

	p, _ := ecs.GetComponent[*components.PlayerComponent](f.em, playerID)
	p.Invulnerable = 0
	f.resolve()
	f.em.RemoveMarkedEntities()

	if f.session.Lives != f.cfg.Player.Lives-1 {
		t.Errorf("Expected %d lives, got %d", f.cfg.Player.Lives-1, f.session.Lives)
	}
	if f.em.IsAlive(asteroid) {
		t.Error("asteroid should shatter")
	}
	if f.session.Score != 0 {
		t.Errorf("crash should not score, got %d", f.session.Score)
	}
	if pos := transformOf(t, f.em, playerID).Position; pos != center {
		t.Errorf("Expected respawn at %v, got %v", center, pos)
	}
}

// TestShotsVsBoss 测试子弹对 Boss 的伤害与击败
func TestShotsVsBoss(t *testing.T) {
	ctrl := gomock.NewController(t)
	stats := mocks.NewMockStatsRecorder(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	stats.EXPECT().BossDefeated().Return(nil).Times(1)
	notifier.EXPECT().Notify("Boss Defeated", gomock.Any()).Return(nil).Times(1)

	f := newCollisionFixture(t, game.NewHooks(nil, notifier, stats, nil))
	pos := utils.Vec(400, 300)
	bossID, err := entities.NewBoss(f.em, f.cfg.Boss, 20, pos)
	if err != nil {
		t.Fatalf("NewBoss failed: %v", err)
	}
	boss := bossOf(t, f.em, bossID)

	f.shot(t, types.FactionPlayer, pos)
	f.resolve()
	f.em.RemoveMarkedEntities()
	if boss.Health != boss.MaxHealth-f.cfg.Projectiles.Standard.Damage {
		t.Fatalf("Expected health %d, got %d", boss.MaxHealth-f.cfg.Projectiles.Standard.Damage, boss.Health)
	}

	boss.Health = 1
	f.shot(t, types.FactionPlayer, pos)
	f.resolve()
	f.em.RemoveMarkedEntities()
	if !boss.IsDying() {
		t.Fatal("boss should be dying")
	}
	if f.session.BossesDefeated != 1 {
		t.Errorf("Expected 1 boss defeated, got %d", f.session.BossesDefeated)
	}
	if want := f.cfg.Boss.ScoreBonus * boss.Level; f.session.Score != want {
		t.Errorf("Expected score %d, got %d", want, f.session.Score)
	}

	// 死亡动画中的 Boss 不再吸收子弹
	late := f.shot(t, types.FactionPlayer, pos)
	f.resolve()
	if !f.em.IsAlive(late) {
		t.Error("dying boss should not absorb shots")
	}
}

// TestEnemyShots 敌方子弹只命中玩家
func TestEnemyShots(t *testing.T) {
	f := newCollisionFixture(t, nil)
	playerID, err := entities.NewPlayer(f.em, f.cfg.Player, utils.Vec(200, 200))
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	mustAsteroid(t, f.em, f.cfg, types.AsteroidNormal, utils.Vec(600, 600), utils.Vec(0, 0), 40)
	passThrough := f.shot(t, types.FactionEnemy, utils.Vec(600, 600))

	blocked := f.shot(t, types.FactionEnemy, utils.Vec(200, 200))
	f.resolve()
	if !f.em.IsAlive(blocked) {
		t.Error("shot should pass through invulnerable player")
	}
	if !f.em.IsAlive(passThrough) {
		t.Error("enemy shots should ignore asteroids")
	}

	p, _ := ecs.GetComponent[*components.PlayerComponent](f.em, playerID)
	p.Invulnerable = 0
	f.resolve()
	if f.em.IsAlive(blocked) {
		t.Error("shot should be consumed by hitting the player")
	}
	if f.session.Lives != f.cfg.Player.Lives-1 {
		t.Errorf("Expected %d lives, got %d", f.cfg.Player.Lives-1, f.session.Lives)
	}
}

// TestPlayerVsBoss 撞上 Boss 失去生命，Boss 不受影响
func TestPlayerVsBoss(t *testing.T) {
	f := newCollisionFixture(t, nil)
	playerID, err := entities.NewPlayer(f.em, f.cfg.Player, utils.Vec(400, 300))
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	bossID, err := entities.NewBoss(f.em, f.cfg.Boss, 10, utils.Vec(420, 300))
	if err != nil {
		t.Fatalf("NewBoss failed: %v", err)
	}
	p, _ := ecs.GetComponent[*components.PlayerComponent](f.em, playerID)
	p.Invulnerable = 0

	f.resolve()

	if f.session.Lives != f.cfg.Player.Lives-1 {
		t.Errorf("Expected %d lives, got %d", f.cfg.Player.Lives-1, f.session.Lives)
	}
	if boss := bossOf(t, f.em, bossID); boss.Health != boss.MaxHealth {
		t.Errorf("boss should not take damage, health %d/%d", boss.Health, boss.MaxHealth)
	}
}

// TestCollectPowerUps 只拾取快照中的道具
func TestCollectPowerUps(t *testing.T) {
	ctrl := gomock.NewController(t)
	sound := mocks.NewMockSoundPlayer(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	sound.EXPECT().PlaySound(game.SoundPowerUp).Return(nil).Times(1)
	notifier.EXPECT().Notify(types.PowerUpShield.String(), types.PowerUpShield.Description()).Return(nil).Times(1)

	f := newCollisionFixture(t, game.NewHooks(sound, notifier, nil, nil))
	pos := utils.Vec(500, 500)
	playerID, err := entities.NewPlayer(f.em, f.cfg.Player, pos)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	shield, err := entities.NewPowerUp(f.em, f.cfg.PowerUp, types.PowerUpShield, pos)
	if err != nil {
		t.Fatalf("NewPowerUp failed: %v", err)
	}

	snap := f.collision.TakeSnapshot()
	late, err := entities.NewPowerUp(f.em, f.cfg.PowerUp, types.PowerUpLaser, pos)
	if err != nil {
		t.Fatalf("NewPowerUp failed: %v", err)
	}
	f.collision.CollectPowerUps(snap)

	if f.em.IsAlive(shield) {
		t.Error("shield power-up should be collected")
	}
	if !f.em.IsAlive(late) {
		t.Error("power-up created after snapshot should wait for next frame")
	}
	p, _ := ecs.GetComponent[*components.PlayerComponent](f.em, playerID)
	if !p.HasShield() || p.Weapon != types.ShotStandard {
		t.Errorf("unexpected player state after pickup: %+v", p)
	}
}
