package entities

import (
	"math"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/types"
	"github.com/gonewx/asteroids/pkg/utils"
)

func newAttackFixture(t *testing.T) (*ecs.EntityManager, *BossAttackFactory, ecs.EntityID) {
	t.Helper()
	cfg := config.DefaultConfig()
	em := ecs.NewEntityManager()
	bossID, err := NewBoss(em, cfg.Boss, 10, utils.Vec(400, 300))
	if err != nil {
		t.Fatalf("NewBoss failed: %v", err)
	}
	return em, NewBossAttackFactory(em, cfg.Projectiles.Boss, cfg.Boss, zaptest.NewLogger(t)), bossID
}

// TestBossAttackCircle 圆环弹幕均匀分布
func TestBossAttackCircle(t *testing.T) {
	em, factory, bossID := newAttackFixture(t)

	ids := factory.Spawn(bossID, components.BossAttack{Pattern: components.BossAttackCircle, ProjectileCount: 8}, nil)
	if len(ids) != 8 {
		t.Fatalf("Expected 8 projectiles, got %d", len(ids))
	}

	for i, id := range ids {
		p, ok := ecs.GetComponent[*components.ProjectileComponent](em, id)
		if !ok || p.Owner != types.FactionEnemy || p.ShotType != types.ShotBoss {
			t.Fatalf("projectile %d has unexpected component %+v", i, p)
		}
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		expected := utils.ForwardVector(45 * float64(i))
		got, _ := tr.Velocity.Normalize()
		if math.Abs(got.X-expected.X) > 1e-9 || math.Abs(got.Y-expected.Y) > 1e-9 {
			t.Errorf("projectile %d direction %v, 期望 %v", i, got, expected)
		}
	}
}

// TestBossAttackSpiralOffset 螺旋弹幕的起始角随攻击次数偏移
func TestBossAttackSpiralOffset(t *testing.T) {
	em, factory, bossID := newAttackFixture(t)
	boss, _ := ecs.GetComponent[*components.BossComponent](em, bossID)
	boss.AttackCount = 2

	ids := factory.Spawn(bossID, components.BossAttack{Pattern: components.BossAttackSpiral, ProjectileCount: 4}, nil)
	if len(ids) != 4 {
		t.Fatalf("Expected 4 projectiles, got %d", len(ids))
	}
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, ids[0])
	expected := utils.ForwardVector(2 * config.DefaultConfig().Boss.SpiralStep)
	got, _ := tr.Velocity.Normalize()
	if math.Abs(got.X-expected.X) > 1e-9 || math.Abs(got.Y-expected.Y) > 1e-9 {
		t.Errorf("first spiral projectile direction %v, 期望 %v", got, expected)
	}
}

// TestBossAttackTargeted 瞄准弹幕的中心方向指向玩家
func TestBossAttackTargeted(t *testing.T) {
	em, factory, bossID := newAttackFixture(t)
	player := utils.Vec(700, 300) // Boss 正右方

	ids := factory.Spawn(bossID, components.BossAttack{Pattern: components.BossAttackTargeted, ProjectileCount: 3}, &player)
	if len(ids) != 3 {
		t.Fatalf("Expected 3 projectiles, got %d", len(ids))
	}
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, ids[1])
	got, _ := tr.Velocity.Normalize()
	if math.Abs(got.X-1) > 1e-9 || math.Abs(got.Y) > 1e-9 {
		t.Errorf("middle projectile direction %v, 期望 (1, 0)", got)
	}
}

// TestBossAttackDeadBoss Boss 已被标记删除时不生成子弹
func TestBossAttackDeadBoss(t *testing.T) {
	em, factory, bossID := newAttackFixture(t)
	em.DestroyEntity(bossID)

	if ids := factory.Spawn(bossID, components.BossAttack{Pattern: components.BossAttackCircle, ProjectileCount: 8}, nil); len(ids) != 0 {
		t.Errorf("Expected no projectiles, got %d", len(ids))
	}
}
