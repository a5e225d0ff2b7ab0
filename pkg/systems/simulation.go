package systems

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/entities"
	"github.com/gonewx/asteroids/pkg/game"
	"github.com/gonewx/asteroids/pkg/utils"
)

// SimulationOptions 模拟编排器的可选依赖
type SimulationOptions struct {
	// Rand 随机源；为 nil 时使用固定种子 1，便于复现
	Rand *rand.Rand
	// Hooks 外部协作方；为 nil 时所有回调都是空操作
	Hooks *game.Hooks
	// Logger 日志器；为 nil 时不输出
	Logger *zap.Logger
	// AttackHandler Boss 攻击处理器；为 nil 时使用 entities.BossAttackFactory
	AttackHandler AttackHandler
	// SkipPlayer 不创建玩家飞船（测试和演示模式）
	SkipPlayer bool
}

// Simulation 每帧模拟编排器
//
// 持有实体管理器（全部实体池）和所有系统，对外只暴露 Update。
// 一帧内的顺序:
//  1. 推进：玩家、Boss、追踪、移动、寿命、小行星刷新、Boss 召唤
//  2. 碰撞：对阶段开始时的快照做扫描
//  3. 边界：环绕 / 子弹出界删除 / Boss 已在状态机中钳制
//  4. 拾取：玩家 × 快照中的道具
//  5. 回收：删除所有被标记的实体
type Simulation struct {
	entityManager *ecs.EntityManager
	cfg           *config.GameConfig
	rng           *rand.Rand
	session       *game.Session
	hooks         *game.Hooks
	logger        *zap.Logger

	player    *PlayerSystem
	bosses    *BossSystem
	homing    *HomingSystem
	movement  *MovementSystem
	lifetime  *LifetimeSystem
	field     *AsteroidFieldSystem
	bossSpawn *BossSpawnSystem
	collision *CollisionSystem
	wrap      *WrapSystem
	splitter  *SplitContext

	frame uint64
}

// NewSimulation 创建模拟编排器
//
// 参数:
//   - cfg: 已校验的游戏配置
//   - opts: 可选依赖
//
// 返回:
//   - *Simulation: 编排器实例
//   - error: 配置为空或创建玩家失败时返回错误
func NewSimulation(cfg *config.GameConfig, opts SimulationOptions) (*Simulation, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	em := ecs.NewEntityManager()
	session := game.NewSession(cfg.Player.Lives, cfg.Scoring.PointsPerLevel)

	attacks := opts.AttackHandler
	if attacks == nil {
		attacks = entities.NewBossAttackFactory(em, cfg.Projectiles.Boss, cfg.Boss, logger)
	}

	s := &Simulation{
		entityManager: em,
		cfg:           cfg,
		rng:           rng,
		session:       session,
		hooks:         opts.Hooks,
		logger:        logger.Named("Simulation"),
	}

	s.splitter = &SplitContext{
		EntityManager: em,
		Asteroid:      cfg.Asteroid,
		PowerUp:       cfg.PowerUp,
		Rand:          rng,
		Logger:        logger.Named("Split"),
	}
	s.player = NewPlayerSystem(em, cfg.Player, cfg.Projectiles, cfg.Screen, session, opts.Hooks, logger)
	s.bosses = NewBossSystem(em, cfg.Boss, cfg.Screen, rng, attacks, logger)
	s.homing = NewHomingSystem(em)
	s.movement = NewMovementSystem(em)
	s.lifetime = NewLifetimeSystem(em)
	s.field = NewAsteroidFieldSystem(em, cfg.Asteroid, cfg.Spawner, cfg.Screen, rng, logger)
	s.bossSpawn = NewBossSpawnSystem(em, cfg.Boss, cfg.Screen, session, opts.Hooks, logger)
	s.collision = NewCollisionSystem(em, cfg, s.splitter, s.bosses, s.player, session, opts.Hooks, logger)
	s.wrap = NewWrapSystem(em, cfg.Screen, cfg.Projectiles.OffscreenMargin)

	if !opts.SkipPlayer {
		center := utils.Vec(cfg.Screen.Width/2, cfg.Screen.Height/2)
		if _, err := entities.NewPlayer(em, cfg.Player, center); err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
	}

	s.logger.Info("simulation ready",
		zap.Float64("width", cfg.Screen.Width),
		zap.Float64("height", cfg.Screen.Height),
		zap.Int("lives", cfg.Player.Lives))
	return s, nil
}

// Update 推进一帧
//
// 参数:
//   - deltaTime: 帧间隔（秒），唯一的时间来源
//   - input: 本帧玩家输入
func (s *Simulation) Update(deltaTime float64, input InputState) {
	s.frame++

	// 1. 推进所有实体
	s.player.Update(deltaTime, input)
	s.bosses.Update(deltaTime, s.player.Position())
	s.homing.Update(deltaTime)
	s.movement.Update(deltaTime)
	s.lifetime.Update(deltaTime)
	s.field.Update(deltaTime)
	s.bossSpawn.Update(deltaTime)

	// 2. 碰撞
	snap := s.collision.TakeSnapshot()
	s.collision.Resolve(snap)

	// 3. 边界
	s.wrap.Update()

	// 4. 拾取
	s.collision.CollectPowerUps(snap)

	// 5. 回收
	if removed := s.entityManager.RemoveMarkedEntities(); removed > 0 {
		s.logger.Debug("reaped entities", zap.Uint64("frame", s.frame), zap.Int("removed", removed))
	}
}

// EntityManager 实体池
func (s *Simulation) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Session 当前局状态
func (s *Simulation) Session() *game.Session {
	return s.session
}

// Config 当前配置
func (s *Simulation) Config() *config.GameConfig {
	return s.cfg
}

// Frame 已推进的帧数
func (s *Simulation) Frame() uint64 {
	return s.frame
}

// PlayerPosition 玩家位置，玩家不存在时为 nil
func (s *Simulation) PlayerPosition() *utils.Vector2 {
	return s.player.Position()
}

// Bosses Boss 系统，用于直接施加伤害等操作
func (s *Simulation) Bosses() *BossSystem {
	return s.bosses
}

// Splitter 分裂依赖
func (s *Simulation) Splitter() *SplitContext {
	return s.splitter
}

// Field 小行星刷新器
func (s *Simulation) Field() *AsteroidFieldSystem {
	return s.field
}
