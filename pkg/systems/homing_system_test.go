package systems

import (
	"math"
	"testing"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/entities"
	"github.com/gonewx/asteroids/pkg/types"
	"github.com/gonewx/asteroids/pkg/utils"
)

// TestHomingTurnRateCap 每次更新最多转 TurnRate 度，速度大小不变
func TestHomingTurnRateCap(t *testing.T) {
	cfg := testConfig()
	em := ecs.NewEntityManager()
	system := NewHomingSystem(em)

	missile := mustProjectile(t, em, cfg.Projectiles.Missile, types.ShotMissile, types.FactionPlayer, utils.Vec(0, 0), utils.Vec(1, 0))
	// 目标在正上方（+Y），需要转 90 度
	target := mustAsteroid(t, em, cfg, types.AsteroidNormal, utils.Vec(0, 500), utils.Vec(0, 0), 20)

	tr := transformOf(t, em, missile)
	speed := tr.Velocity.Length()

	system.Update(1.0 / 60)

	homing, _ := ecs.GetComponent[*components.HomingComponent](em, missile)
	if homing.Target != target {
		t.Fatalf("Expected to lock onto %d, got %d", target, homing.Target)
	}
	angle := utils.Vec(1, 0).AngleTo(tr.Velocity)
	if !almostEqual(angle, cfg.Projectiles.Missile.TurnRate) {
		t.Errorf("Expected to turn %.1f degrees, turned %.4f", cfg.Projectiles.Missile.TurnRate, angle)
	}
	if !almostEqual(tr.Velocity.Length(), speed) {
		t.Errorf("speed changed from %.4f to %.4f", speed, tr.Velocity.Length())
	}
}

// TestHomingSmallCorrection 目标偏角小于上限时一次对准
func TestHomingSmallCorrection(t *testing.T) {
	cfg := testConfig()
	em := ecs.NewEntityManager()
	system := NewHomingSystem(em)

	missile := mustProjectile(t, em, cfg.Projectiles.Missile, types.ShotMissile, types.FactionPlayer, utils.Vec(0, 0), utils.Vec(1, 0))
	aim := utils.Vec(1, 0).Rotate(2)
	mustAsteroid(t, em, cfg, types.AsteroidNormal, aim.Scale(300), utils.Vec(0, 0), 20)

	system.Update(1.0 / 60)

	got := utils.Vec(1, 0).AngleTo(transformOf(t, em, missile).Velocity)
	if !almostEqual(got, 2) {
		t.Errorf("Expected to turn exactly 2 degrees, turned %.4f", got)
	}
}

// TestHomingReacquireAfterTargetDies 目标失效后重新锁定最近目标
func TestHomingReacquireAfterTargetDies(t *testing.T) {
	cfg := testConfig()
	em := ecs.NewEntityManager()
	system := NewHomingSystem(em)

	missile := mustProjectile(t, em, cfg.Projectiles.Missile, types.ShotMissile, types.FactionPlayer, utils.Vec(0, 0), utils.Vec(1, 0))
	near := mustAsteroid(t, em, cfg, types.AsteroidNormal, utils.Vec(100, 0), utils.Vec(0, 0), 20)
	far := mustAsteroid(t, em, cfg, types.AsteroidNormal, utils.Vec(0, -400), utils.Vec(0, 0), 20)

	system.Update(1.0 / 60)
	homing, _ := ecs.GetComponent[*components.HomingComponent](em, missile)
	if homing.Target != near {
		t.Fatalf("Expected nearest target %d, got %d", near, homing.Target)
	}

	em.DestroyEntity(near)
	em.RemoveMarkedEntities()

	system.Update(1.0 / 60)
	if homing.Target != far {
		t.Errorf("Expected reacquired target %d, got %d", far, homing.Target)
	}
}

// TestHomingNoCandidates 没有候选目标时直线飞行
func TestHomingNoCandidates(t *testing.T) {
	cfg := testConfig()
	em := ecs.NewEntityManager()
	system := NewHomingSystem(em)

	missile := mustProjectile(t, em, cfg.Projectiles.Missile, types.ShotMissile, types.FactionPlayer, utils.Vec(0, 0), utils.Vec(1, 1))
	before := transformOf(t, em, missile).Velocity

	system.Update(1.0 / 60)

	if after := transformOf(t, em, missile).Velocity; after != before {
		t.Errorf("velocity changed without target: %v -> %v", before, after)
	}
	homing, _ := ecs.GetComponent[*components.HomingComponent](em, missile)
	if homing.Target != ecs.InvalidEntity {
		t.Errorf("Expected no target, got %d", homing.Target)
	}
}

// TestHomingTracksBossButNotDyingBoss 可以追踪 Boss，死亡动画中的 Boss 不再是目标
func TestHomingTracksBossButNotDyingBoss(t *testing.T) {
	cfg := testConfig()
	em := ecs.NewEntityManager()
	system := NewHomingSystem(em)

	missile := mustProjectile(t, em, cfg.Projectiles.Missile, types.ShotMissile, types.FactionPlayer, utils.Vec(0, 0), utils.Vec(1, 0))
	bossID, err := entities.NewBoss(em, cfg.Boss, 10, utils.Vec(200, 0))
	if err != nil {
		t.Fatalf("NewBoss failed: %v", err)
	}

	system.Update(1.0 / 60)
	homing, _ := ecs.GetComponent[*components.HomingComponent](em, missile)
	if homing.Target != bossID {
		t.Fatalf("Expected to track boss %d, got %d", bossID, homing.Target)
	}

	bossOf(t, em, bossID).DeathTimer = 0
	system.Update(1.0 / 60)
	if homing.Target != ecs.InvalidEntity {
		t.Errorf("dying boss should not be tracked, target = %d", homing.Target)
	}
}

// TestHomingZeroVelocity 零速度不转向
func TestHomingZeroVelocity(t *testing.T) {
	cfg := testConfig()
	em := ecs.NewEntityManager()
	system := NewHomingSystem(em)

	missile := mustProjectile(t, em, cfg.Projectiles.Missile, types.ShotMissile, types.FactionPlayer, utils.Vec(0, 0), utils.Vec(1, 0))
	mustAsteroid(t, em, cfg, types.AsteroidNormal, utils.Vec(0, 100), utils.Vec(0, 0), 20)
	transformOf(t, em, missile).Velocity = utils.Vector2{}

	system.Seek(missile, 1.0/60)

	v := transformOf(t, em, missile).Velocity
	if !v.IsZero() || math.IsNaN(v.X) {
		t.Errorf("zero velocity should stay zero, got %v", v)
	}
}
