package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/entities"
	"github.com/gonewx/asteroids/pkg/types"
	"github.com/gonewx/asteroids/pkg/utils"
)

// testConfig 返回默认配置的副本，测试可以放心修改
func testConfig() *config.GameConfig {
	return config.DefaultConfig()
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6
}

// newTestSplitContext 创建不会掉落道具的分裂上下文
func newTestSplitContext(em *ecs.EntityManager, cfg *config.GameConfig) *SplitContext {
	puCfg := cfg.PowerUp
	puCfg.SpawnChance = 0
	return &SplitContext{
		EntityManager: em,
		Asteroid:      cfg.Asteroid,
		PowerUp:       puCfg,
		Rand:          testRand(),
	}
}

// mustAsteroid 创建小行星，失败时终止测试
func mustAsteroid(t *testing.T, em *ecs.EntityManager, cfg *config.GameConfig, asteroidType types.AsteroidType, pos, vel utils.Vector2, radius float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewAsteroid(em, testRand(), cfg.Asteroid, asteroidType, pos, vel, radius)
	if err != nil {
		t.Fatalf("NewAsteroid failed: %v", err)
	}
	return id
}

// mustProjectile 创建子弹，失败时终止测试
func mustProjectile(t *testing.T, em *ecs.EntityManager, stats config.ShotStats, shot types.ShotType, owner types.Faction, pos, dir utils.Vector2) ecs.EntityID {
	t.Helper()
	id, err := entities.NewProjectile(em, stats, shot, owner, pos, dir)
	if err != nil {
		t.Fatalf("NewProjectile failed: %v", err)
	}
	return id
}

func transformOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.TransformComponent {
	t.Helper()
	tr, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no TransformComponent", id)
	}
	return tr
}

func asteroidOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.AsteroidComponent {
	t.Helper()
	ast, ok := ecs.GetComponent[*components.AsteroidComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no AsteroidComponent", id)
	}
	return ast
}

func bossOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.BossComponent {
	t.Helper()
	boss, ok := ecs.GetComponent[*components.BossComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no BossComponent", id)
	}
	return boss
}

// recordingAttackHandler 记录收到的攻击描述
type recordingAttackHandler struct {
	attacks []components.BossAttack
}

func (h *recordingAttackHandler) HandleBossAttack(bossID ecs.EntityID, attack components.BossAttack, playerPos *utils.Vector2) {
	h.attacks = append(h.attacks, attack)
}

// newAsteroidForProperty 属性测试中无法使用 *testing.T 时的创建入口
func newAsteroidForProperty(em *ecs.EntityManager, cfg *config.GameConfig, asteroidType types.AsteroidType, radius float64) (ecs.EntityID, error) {
	return entities.NewAsteroid(em, testRand(), cfg.Asteroid, asteroidType, utils.Vec(300, 300), utils.Vec(40, -30), radius)
}
