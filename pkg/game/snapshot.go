package game

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/types"
	"github.com/gonewx/asteroids/pkg/utils"
)

// SnapshotVersion 快照格式版本，结构变化时递增
const SnapshotVersion = 1

// BodySnapshot 所有实体共有的运动状态
type BodySnapshot struct {
	ID       uint64
	Position utils.Vector2
	Velocity utils.Vector2
	Radius   float64
	Rotation float64
}

// AsteroidSnapshot 小行星状态
type AsteroidSnapshot struct {
	BodySnapshot
	Type     types.AsteroidType
	Health   int
	Vertices []utils.Vector2
}

// ProjectileSnapshot 子弹状态
type ProjectileSnapshot struct {
	BodySnapshot
	ShotType types.ShotType
	Owner    types.Faction
	Damage   int
	Lifetime float64
	Target   uint64 // 追踪目标，0 表示无
}

// PowerUpSnapshot 道具状态
type PowerUpSnapshot struct {
	BodySnapshot
	Type     types.PowerUpType
	Lifetime float64
}

// BossSnapshot Boss 状态
type BossSnapshot struct {
	BodySnapshot
	Level         int
	Health        int
	MaxHealth     int
	Phase         components.BossPhase
	AttackPattern components.BossAttackPattern
	AttackCount   int
	DeathTimer    float64
}

// PlayerSnapshot 玩家飞船状态
type PlayerSnapshot struct {
	BodySnapshot
	Weapon       types.ShotType
	Ammo         int
	Invulnerable float64
	Shield       float64
	TripleShot   float64
	RapidFire    float64
}

// Snapshot 某一帧的完整模拟状态，供外部回放/调试工具使用
type Snapshot struct {
	Version    int
	ID         string
	Frame      uint64
	CapturedAt time.Time

	Score              int
	Lives              int
	Level              int
	AsteroidsDestroyed int
	BossesDefeated     int
	GameOver           bool

	Player      *PlayerSnapshot
	Asteroids   []AsteroidSnapshot
	Projectiles []ProjectileSnapshot
	PowerUps    []PowerUpSnapshot
	Bosses      []BossSnapshot
}

// CaptureSnapshot 采集当前所有存活实体的状态
//
// 只读取，不修改任何实体；已标记删除的实体不会出现在快照中。
//
// 参数:
//   - em: 实体管理器
//   - session: 当前局状态
//   - frame: 当前帧号
//
// 返回:
//   - *Snapshot: 快照（已分配唯一ID）
//   - error: 参数为空时返回错误
func CaptureSnapshot(em *ecs.EntityManager, session *Session, frame uint64) (*Snapshot, error) {
	if em == nil {
		return nil, fmt.Errorf("EntityManager is nil")
	}
	if session == nil {
		return nil, fmt.Errorf("Session is nil")
	}

	snap := &Snapshot{
		Version:            SnapshotVersion,
		ID:                 uuid.NewString(),
		Frame:              frame,
		CapturedAt:         time.Now(),
		Score:              session.Score,
		Lives:              session.Lives,
		Level:              session.Level(),
		AsteroidsDestroyed: session.AsteroidsDestroyed,
		BossesDefeated:     session.BossesDefeated,
		GameOver:           session.GameOver,
	}

	for _, id := range ecs.GetAliveEntitiesWith2[*components.AsteroidComponent, *components.TransformComponent](em) {
		ast, _ := ecs.GetComponent[*components.AsteroidComponent](em, id)
		snap.Asteroids = append(snap.Asteroids, AsteroidSnapshot{
			BodySnapshot: bodyOf(em, id),
			Type:         ast.Type,
			Health:       ast.Health,
			Vertices:     append([]utils.Vector2(nil), ast.Vertices...),
		})
	}

	for _, id := range ecs.GetAliveEntitiesWith2[*components.ProjectileComponent, *components.TransformComponent](em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		ps := ProjectileSnapshot{
			BodySnapshot: bodyOf(em, id),
			ShotType:     proj.ShotType,
			Owner:        proj.Owner,
			Damage:       proj.Damage,
			Lifetime:     proj.Lifetime,
		}
		if homing, ok := ecs.GetComponent[*components.HomingComponent](em, id); ok {
			ps.Target = uint64(homing.Target)
		}
		snap.Projectiles = append(snap.Projectiles, ps)
	}

	for _, id := range ecs.GetAliveEntitiesWith2[*components.PowerUpComponent, *components.TransformComponent](em) {
		pu, _ := ecs.GetComponent[*components.PowerUpComponent](em, id)
		snap.PowerUps = append(snap.PowerUps, PowerUpSnapshot{
			BodySnapshot: bodyOf(em, id),
			Type:         pu.Type,
			Lifetime:     pu.Lifetime,
		})
	}

	for _, id := range ecs.GetAliveEntitiesWith2[*components.BossComponent, *components.TransformComponent](em) {
		boss, _ := ecs.GetComponent[*components.BossComponent](em, id)
		snap.Bosses = append(snap.Bosses, BossSnapshot{
			BodySnapshot:  bodyOf(em, id),
			Level:         boss.Level,
			Health:        boss.Health,
			MaxHealth:     boss.MaxHealth,
			Phase:         boss.Phase,
			AttackPattern: boss.AttackPattern,
			AttackCount:   boss.AttackCount,
			DeathTimer:    boss.DeathTimer,
		})
	}

	if ids := ecs.GetAliveEntitiesWith2[*components.PlayerComponent, *components.TransformComponent](em); len(ids) > 0 {
		p, _ := ecs.GetComponent[*components.PlayerComponent](em, ids[0])
		snap.Player = &PlayerSnapshot{
			BodySnapshot: bodyOf(em, ids[0]),
			Weapon:       p.Weapon,
			Ammo:         p.Ammo,
			Invulnerable: p.Invulnerable,
			Shield:       p.Shield,
			TripleShot:   p.TripleShot,
			RapidFire:    p.RapidFire,
		}
	}

	return snap, nil
}

func bodyOf(em *ecs.EntityManager, id ecs.EntityID) BodySnapshot {
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	return BodySnapshot{
		ID:       uint64(id),
		Position: tr.Position,
		Velocity: tr.Velocity,
		Radius:   tr.Radius,
		Rotation: tr.Rotation,
	}
}

// EntityCount 快照中的实体总数
func (s *Snapshot) EntityCount() int {
	n := len(s.Asteroids) + len(s.Projectiles) + len(s.PowerUps) + len(s.Bosses)
	if s.Player != nil {
		n++
	}
	return n
}

// Encode 以 gob 格式写出快照
func (s *Snapshot) Encode(w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot 读取 gob 格式的快照并检查版本
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("incompatible snapshot version: %d (expected %d)", snap.Version, SnapshotVersion)
	}
	return &snap, nil
}

// SnapshotStore 通过 gdata 持久化快照，每个快照以其ID为属性名
// gdataManager 为 nil 时保存为空操作，读取返回错误
type SnapshotStore struct {
	gdataManager *gdata.Manager
	logger       *zap.Logger
}

const snapshotObject = "snapshots"

// NewSnapshotStore 创建快照存储
func NewSnapshotStore(gdataManager *gdata.Manager, logger *zap.Logger) *SnapshotStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotStore{
		gdataManager: gdataManager,
		logger:       logger.Named("SnapshotStore"),
	}
}

// Save 保存快照
func (s *SnapshotStore) Save(snap *Snapshot) error {
	if snap == nil {
		return fmt.Errorf("snapshot is nil")
	}
	if s.gdataManager == nil {
		return nil
	}

	var buf bytes.Buffer
	if err := snap.Encode(&buf); err != nil {
		return err
	}
	if err := s.gdataManager.SaveObjectProp(snapshotObject, snap.ID, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", snap.ID, err)
	}

	s.logger.Info("snapshot saved",
		zap.String("id", snap.ID),
		zap.Uint64("frame", snap.Frame),
		zap.Int("entities", snap.EntityCount()))
	return nil
}

// Exists 检查快照是否存在
func (s *SnapshotStore) Exists(id string) bool {
	return s.gdataManager != nil && s.gdataManager.ObjectPropExists(snapshotObject, id)
}

// Load 读取快照
func (s *SnapshotStore) Load(id string) (*Snapshot, error) {
	if s.gdataManager == nil {
		return nil, fmt.Errorf("snapshot storage unavailable")
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid snapshot id %q: %w", id, err)
	}

	data, err := s.gdataManager.LoadObjectProp(snapshotObject, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", id, err)
	}
	return DecodeSnapshot(bytes.NewReader(data))
}
