package systems

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/utils"
)

// AttackHandler 消费 Boss 攻击描述
// 处理器收到的 bossID 可能在之后被回收，使用前必须重新确认存活
type AttackHandler interface {
	HandleBossAttack(bossID ecs.EntityID, attack components.BossAttack, playerPos *utils.Vector2)
}

// BossSystem Boss 状态机
//
// 移动阶段: center → random → chase → center。chase 只有在给出玩家位置时才会进入，
// 否则从 random 直接回到 center。攻击计时器独立于移动阶段，按 circle → spiral → targeted
// 循环产出攻击描述。受到致命伤害后只推进死亡计时，到时移除实体。
type BossSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.BossConfig
	width         float64
	height        float64
	rng           *rand.Rand
	attacks       AttackHandler
	logger        *zap.Logger
}

// NewBossSystem 创建 Boss 系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: Boss 配置
//   - screen: 屏幕尺寸（中心点、随机目标范围、边界钳制）
//   - rng: 随机源（random 阶段目标点）
//   - attacks: 攻击处理器，可为 nil（只推进计时不生成弹幕）
//   - logger: 日志器
func NewBossSystem(em *ecs.EntityManager, cfg config.BossConfig, screen config.ScreenConfig, rng *rand.Rand, attacks AttackHandler, logger *zap.Logger) *BossSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BossSystem{
		entityManager: em,
		cfg:           cfg,
		width:         screen.Width,
		height:        screen.Height,
		rng:           rng,
		attacks:       attacks,
		logger:        logger.Named("BossSystem"),
	}
}

// Update 推进所有 Boss
//
// 参数:
//   - deltaTime: 帧间隔（秒）
//   - playerPos: 玩家位置，玩家不存在时为 nil
func (s *BossSystem) Update(deltaTime float64, playerPos *utils.Vector2) {
	for _, id := range ecs.GetAliveEntitiesWith2[*components.BossComponent, *components.TransformComponent](s.entityManager) {
		s.UpdateBoss(id, deltaTime, playerPos)
	}
}

// UpdateBoss 推进单个 Boss
func (s *BossSystem) UpdateBoss(id ecs.EntityID, deltaTime float64, playerPos *utils.Vector2) {
	boss, ok := ecs.GetComponent[*components.BossComponent](s.entityManager, id)
	if !ok {
		return
	}
	tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	if !ok {
		return
	}

	if boss.HitFlash > 0 {
		boss.HitFlash = max(0, boss.HitFlash-deltaTime)
	}

	if boss.IsDying() {
		boss.DeathTimer += deltaTime
		if boss.DeathTimer >= s.cfg.DeathDuration {
			s.logger.Info("boss removed", zap.Uint64("boss", uint64(id)), zap.Int("level", boss.Level))
			s.entityManager.DestroyEntity(id)
		}
		return
	}

	s.updatePhase(boss, tr, deltaTime, playerPos)
	s.move(boss, tr, deltaTime)
	s.clampToScreen(tr)
	s.updateAttack(id, boss, deltaTime, playerPos)
}

// updatePhase 推进移动阶段计时并刷新目标点
func (s *BossSystem) updatePhase(boss *components.BossComponent, tr *components.TransformComponent, deltaTime float64, playerPos *utils.Vector2) {
	boss.MovementTimer += deltaTime

	switch boss.Phase {
	case components.BossPhaseCenter:
		boss.Target = s.center()
		if boss.MovementTimer >= s.cfg.CenterDuration {
			s.enterPhase(boss, components.BossPhaseRandom, tr.Radius)
		}

	case components.BossPhaseRandom:
		boss.RetargetTimer += deltaTime
		if boss.RetargetTimer >= s.cfg.RetargetInterval {
			boss.RetargetTimer = 0
			boss.Target = s.randomTarget(tr.Radius)
		}
		if boss.MovementTimer >= s.cfg.RandomDuration {
			if playerPos != nil {
				s.enterPhase(boss, components.BossPhaseChase, tr.Radius)
				boss.Target = *playerPos
			} else {
				s.enterPhase(boss, components.BossPhaseCenter, tr.Radius)
			}
		}

	case components.BossPhaseChase:
		if playerPos != nil {
			boss.Target = *playerPos
		} else {
			boss.Target = s.center()
		}
		if boss.MovementTimer >= s.cfg.ChaseDuration {
			s.enterPhase(boss, components.BossPhaseCenter, tr.Radius)
		}
	}
}

func (s *BossSystem) enterPhase(boss *components.BossComponent, phase components.BossPhase, radius float64) {
	s.logger.Debug("boss phase change",
		zap.Stringer("from", boss.Phase),
		zap.Stringer("to", phase))

	boss.Phase = phase
	boss.MovementTimer = 0
	boss.RetargetTimer = 0

	switch phase {
	case components.BossPhaseCenter:
		boss.Target = s.center()
	case components.BossPhaseRandom:
		boss.Target = s.randomTarget(radius)
	}
}

// move 朝目标点移动；到达阈值内时速度按阻尼衰减
func (s *BossSystem) move(boss *components.BossComponent, tr *components.TransformComponent, deltaTime float64) {
	speed := s.cfg.BaseSpeed
	switch boss.Phase {
	case components.BossPhaseRandom:
		speed *= s.cfg.RandomSpeedMultiplier
	case components.BossPhaseChase:
		speed *= s.cfg.ChaseSpeedMultiplier
	}

	toTarget := boss.Target.Sub(tr.Position)
	if toTarget.Length() <= s.cfg.ArrivalThreshold {
		tr.Velocity = tr.Velocity.Scale(s.cfg.Damping)
	} else if vel, ok := toTarget.ScaleToLength(speed); ok {
		tr.Velocity = vel
	}

	tr.Position = tr.Position.Add(tr.Velocity.Scale(deltaTime))
}

// clampToScreen 把 Boss 限制在 [r, 尺寸-r] 内，越界方向的速度分量反向并减半
func (s *BossSystem) clampToScreen(tr *components.TransformComponent) {
	r := tr.Radius
	bounce := s.cfg.EdgeBounceDamping

	if tr.Position.X < r {
		tr.Position.X = r
		tr.Velocity.X = -tr.Velocity.X * bounce
	} else if tr.Position.X > s.width-r {
		tr.Position.X = s.width - r
		tr.Velocity.X = -tr.Velocity.X * bounce
	}

	if tr.Position.Y < r {
		tr.Position.Y = r
		tr.Velocity.Y = -tr.Velocity.Y * bounce
	} else if tr.Position.Y > s.height-r {
		tr.Position.Y = s.height - r
		tr.Velocity.Y = -tr.Velocity.Y * bounce
	}
}

// updateAttack 攻击计时到达间隔时产出一次攻击描述
func (s *BossSystem) updateAttack(id ecs.EntityID, boss *components.BossComponent, deltaTime float64, playerPos *utils.Vector2) {
	boss.AttackTimer += deltaTime
	if boss.AttackTimer < s.cfg.AttackInterval {
		return
	}
	boss.AttackTimer = 0

	attack := components.BossAttack{
		Pattern:         boss.AttackPattern,
		ProjectileCount: s.cfg.ProjectileCountForLevel(boss.Level),
	}
	if s.attacks != nil {
		s.attacks.HandleBossAttack(id, attack, playerPos)
	}
	boss.AttackCount++
	boss.AttackPattern = boss.AttackPattern.Next()
}

// TakeDamage 对 Boss 造成伤害
//
// 返回:
//   - bool: 只有让生命值首次降到 0 及以下的那一次调用返回 true；
//     死亡动画期间的后续调用只刷新受击闪烁并返回 false
func (s *BossSystem) TakeDamage(id ecs.EntityID, amount int) bool {
	boss, ok := ecs.GetComponent[*components.BossComponent](s.entityManager, id)
	if !ok {
		return false
	}

	boss.HitFlash = s.cfg.HitFlashDuration
	if boss.IsDying() {
		return false
	}

	boss.Health -= amount
	if boss.Health > 0 {
		return false
	}

	boss.Health = 0
	boss.DeathTimer = 0
	if tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id); ok {
		tr.Velocity = utils.Vector2{}
	}
	s.logger.Info("boss defeated", zap.Uint64("boss", uint64(id)), zap.Int("level", boss.Level))
	return true
}

func (s *BossSystem) center() utils.Vector2 {
	return utils.Vec(s.width/2, s.height/2)
}

// randomTarget 在屏幕内（留出半径边距）随机取一点
func (s *BossSystem) randomTarget(radius float64) utils.Vector2 {
	spanX := s.width - 2*radius
	spanY := s.height - 2*radius
	if spanX <= 0 || spanY <= 0 {
		return s.center()
	}
	return utils.Vec(radius+s.rng.Float64()*spanX, radius+s.rng.Float64()*spanY)
}
