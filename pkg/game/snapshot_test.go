package game

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/google/uuid"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/types"
	"github.com/gonewx/asteroids/pkg/utils"
)

// newSnapshotWorld 构造包含每种实体各一个的实体池
func newSnapshotWorld() (*ecs.EntityManager, *Session) {
	em := ecs.NewEntityManager()

	asteroid := em.CreateEntity()
	em.AddComponent(asteroid, &components.TransformComponent{Position: utils.Vec(100, 100), Velocity: utils.Vec(50, 50), Radius: 60})
	em.AddComponent(asteroid, &components.AsteroidComponent{
		Type:     types.AsteroidMetal,
		Health:   2,
		Vertices: []utils.Vector2{utils.Vec(60, 0), utils.Vec(0, 60), utils.Vec(-60, 0)},
	})

	shot := em.CreateEntity()
	em.AddComponent(shot, &components.TransformComponent{Position: utils.Vec(10, 20), Velocity: utils.Vec(0, -350), Radius: 6})
	em.AddComponent(shot, &components.ProjectileComponent{ShotType: types.ShotMissile, Damage: 3, Lifetime: 2.5, Owner: types.FactionPlayer})
	em.AddComponent(shot, &components.HomingComponent{TurnRate: 6, Target: asteroid})

	powerUp := em.CreateEntity()
	em.AddComponent(powerUp, &components.TransformComponent{Position: utils.Vec(300, 300), Radius: 15})
	em.AddComponent(powerUp, &components.PowerUpComponent{Type: types.PowerUpShield, Lifetime: 7})

	boss := em.CreateEntity()
	em.AddComponent(boss, &components.TransformComponent{Position: utils.Vec(640, 80), Radius: 80})
	em.AddComponent(boss, &components.BossComponent{Level: 2, Health: 90, MaxHealth: 100, Phase: components.BossPhaseChase, AttackPattern: components.BossAttackSpiral, DeathTimer: -1})

	player := em.CreateEntity()
	em.AddComponent(player, &components.TransformComponent{Position: utils.Vec(640, 360), Radius: 20, Rotation: 180})
	em.AddComponent(player, &components.PlayerComponent{Weapon: types.ShotLaser, Ammo: 12, Shield: 3})

	// 已标记删除的实体不进入快照
	dead := em.CreateEntity()
	em.AddComponent(dead, &components.TransformComponent{Radius: 20})
	em.AddComponent(dead, &components.AsteroidComponent{Type: types.AsteroidNormal, Health: 1})
	em.DestroyEntity(dead)

	session := NewSession(3, 1000)
	session.AddScore(2500)
	session.AsteroidsDestroyed = 7
	return em, session
}

// TestCaptureSnapshot 测试快照采集
func TestCaptureSnapshot(t *testing.T) {
	em, session := newSnapshotWorld()

	snap, err := CaptureSnapshot(em, session, 42)
	if err != nil {
		t.Fatalf("CaptureSnapshot failed: %v", err)
	}

	if _, err := uuid.Parse(snap.ID); err != nil {
		t.Errorf("snapshot ID should be a UUID, got %q", snap.ID)
	}
	if snap.Frame != 42 || snap.Score != 2500 || snap.Level != 3 || snap.AsteroidsDestroyed != 7 {
		t.Errorf("unexpected session fields: %+v", snap)
	}
	if snap.EntityCount() != 5 {
		t.Errorf("Expected 5 entities, got %d", snap.EntityCount())
	}
	if len(snap.Asteroids) != 1 || snap.Asteroids[0].Type != types.AsteroidMetal || snap.Asteroids[0].Health != 2 {
		t.Errorf("unexpected asteroids: %+v", snap.Asteroids)
	}
	if got := snap.Projectiles[0].Target; got != snap.Asteroids[0].ID {
		t.Errorf("Expected homing target %d, got %d", snap.Asteroids[0].ID, got)
	}
	if snap.Bosses[0].Phase != components.BossPhaseChase {
		t.Errorf("Expected boss phase chase, got %s", snap.Bosses[0].Phase)
	}
	if snap.Player == nil || snap.Player.Weapon != types.ShotLaser || snap.Player.Ammo != 12 {
		t.Errorf("unexpected player: %+v", snap.Player)
	}

	// 快照是深拷贝，修改实体不影响快照
	ast, _ := ecs.GetComponent[*components.AsteroidComponent](em, ecs.EntityID(snap.Asteroids[0].ID))
	ast.Vertices[0] = utils.Vec(0, 0)
	if snap.Asteroids[0].Vertices[0] != utils.Vec(60, 0) {
		t.Error("snapshot vertices should not alias component data")
	}

	another, _ := CaptureSnapshot(em, session, 43)
	if another.ID == snap.ID {
		t.Error("each snapshot should get a new ID")
	}
}

// TestCaptureSnapshotNilArgs 参数为空时返回错误
func TestCaptureSnapshotNilArgs(t *testing.T) {
	if _, err := CaptureSnapshot(nil, NewSession(3, 1000), 0); err == nil {
		t.Error("Expected error for nil EntityManager")
	}
	if _, err := CaptureSnapshot(ecs.NewEntityManager(), nil, 0); err == nil {
		t.Error("Expected error for nil Session")
	}
}

// TestSnapshotEncoding 测试 gob 编解码与版本检查
func TestSnapshotEncoding(t *testing.T) {
	em, session := newSnapshotWorld()
	snap, err := CaptureSnapshot(em, session, 7)
	if err != nil {
		t.Fatalf("CaptureSnapshot failed: %v", err)
	}

	var buf bytes.Buffer
	if err := snap.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatalf("DecodeSnapshot failed: %v", err)
	}
	if decoded.ID != snap.ID || decoded.EntityCount() != snap.EntityCount() || decoded.Player.Shield != 3 {
		t.Errorf("decoded snapshot differs: %+v", decoded)
	}

	t.Run("版本不匹配", func(t *testing.T) {
		old := *snap
		old.Version = SnapshotVersion + 1
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(&old); err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		if _, err := DecodeSnapshot(&buf); err == nil {
			t.Error("Expected version mismatch error")
		}
	})

	t.Run("数据损坏", func(t *testing.T) {
		if _, err := DecodeSnapshot(bytes.NewReader([]byte("not gob"))); err == nil {
			t.Error("Expected decode error")
		}
	})
}

// TestSnapshotStore 测试快照的持久化
func TestSnapshotStore(t *testing.T) {
	t.Run("降级模式", func(t *testing.T) {
		store := NewSnapshotStore(nil, nil)
		snap := &Snapshot{Version: SnapshotVersion, ID: uuid.NewString()}
		if err := store.Save(snap); err != nil {
			t.Errorf("Save should be a no-op without storage, got %v", err)
		}
		if store.Exists(snap.ID) {
			t.Error("nothing should exist without storage")
		}
		if _, err := store.Load(snap.ID); err == nil {
			t.Error("Load should fail without storage")
		}
		if err := store.Save(nil); err == nil {
			t.Error("Save(nil) should fail")
		}
	})

	t.Run("保存并读取", func(t *testing.T) {
		manager := newTestGdataManager(t, "snapshot")
		if manager == nil {
			t.Skip("Cannot create gdata manager for testing")
		}
		store := NewSnapshotStore(manager, nil)

		em, session := newSnapshotWorld()
		snap, _ := CaptureSnapshot(em, session, 99)
		if err := store.Save(snap); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if !store.Exists(snap.ID) {
			t.Fatal("saved snapshot should exist")
		}

		loaded, err := store.Load(snap.ID)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if loaded.Frame != 99 || len(loaded.Asteroids) != 1 {
			t.Errorf("unexpected loaded snapshot: %+v", loaded)
		}

		if _, err := store.Load("../../etc/passwd"); err == nil {
			t.Error("non-UUID id should be rejected")
		}
	})
}
