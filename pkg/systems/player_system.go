package systems

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/entities"
	"github.com/gonewx/asteroids/pkg/game"
	"github.com/gonewx/asteroids/pkg/types"
	"github.com/gonewx/asteroids/pkg/utils"
)

// HitOutcome 玩家被击中的结算结果
type HitOutcome int

const (
	// HitIgnored 无敌期间，无事发生
	HitIgnored HitOutcome = iota
	// HitAbsorbed 护盾抵挡
	HitAbsorbed
	// HitKilled 失去一条生命
	HitKilled
)

// PlayerSystem 玩家飞船：输入、武器、道具效果与生命结算
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.PlayerConfig
	projectiles   config.ProjectileConfig
	screen        config.ScreenConfig
	session       *game.Session
	hooks         *game.Hooks
	logger        *zap.Logger
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager, cfg config.PlayerConfig, projectiles config.ProjectileConfig, screen config.ScreenConfig, session *game.Session, hooks *game.Hooks, logger *zap.Logger) *PlayerSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlayerSystem{
		entityManager: em,
		cfg:           cfg,
		projectiles:   projectiles,
		screen:        screen,
		session:       session,
		hooks:         hooks,
		logger:        logger.Named("PlayerSystem"),
	}
}

// PlayerID 返回存活的玩家实体，不存在时返回 ecs.InvalidEntity
func (s *PlayerSystem) PlayerID() ecs.EntityID {
	ids := ecs.GetAliveEntitiesWith1[*components.PlayerComponent](s.entityManager)
	if len(ids) == 0 {
		return ecs.InvalidEntity
	}
	return ids[0]
}

// Position 玩家位置，玩家不存在时返回 nil
func (s *PlayerSystem) Position() *utils.Vector2 {
	id := s.PlayerID()
	if id == ecs.InvalidEntity {
		return nil
	}
	tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	if !ok {
		return nil
	}
	pos := tr.Position
	return &pos
}

// Update 处理输入、推进道具计时并射击
func (s *PlayerSystem) Update(deltaTime float64, input InputState) {
	id := s.PlayerID()
	if id == ecs.InvalidEntity {
		return
	}
	p, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	if !ok {
		return
	}

	p.ShootCooldown -= deltaTime
	p.Invulnerable = max(0, p.Invulnerable-deltaTime)
	p.Shield = max(0, p.Shield-deltaTime)
	p.TripleShot = max(0, p.TripleShot-deltaTime)
	p.RapidFire = max(0, p.RapidFire-deltaTime)

	if input.RotateLeft {
		tr.Rotation -= s.cfg.TurnSpeed * deltaTime
	}
	if input.RotateRight {
		tr.Rotation += s.cfg.TurnSpeed * deltaTime
	}

	forward := utils.ForwardVector(tr.Rotation)
	switch {
	case input.Forward && !input.Backward:
		tr.Velocity = forward.Scale(s.cfg.Speed)
	case input.Backward && !input.Forward:
		tr.Velocity = forward.Scale(-s.cfg.Speed)
	default:
		tr.Velocity = utils.Vector2{}
	}

	if input.Shoot && p.ShootCooldown <= 0 {
		s.fire(p, tr)
	}
}

// fire 按当前武器和道具状态发射
func (s *PlayerSystem) fire(p *components.PlayerComponent, tr *components.TransformComponent) {
	shot := p.Weapon
	stats := s.projectiles.Stats(shot)
	forward := utils.ForwardVector(tr.Rotation)
	muzzle := tr.Position.Add(forward.Scale(tr.Radius))

	aims := []utils.Vector2{forward}
	if p.TripleShot > 0 {
		aims = entities.SpreadDirections(forward, 3, 2*s.cfg.TripleShotSpread)
	}
	for _, aim := range aims {
		if _, err := entities.FireSpread(s.entityManager, stats, shot, types.FactionPlayer, muzzle, aim); err != nil {
			s.logger.Warn("failed to fire", zap.Stringer("weapon", shot), zap.Error(err))
		}
	}

	p.ShootCooldown = s.cfg.ShootCooldown
	if p.RapidFire > 0 {
		p.ShootCooldown *= s.cfg.RapidFireMultiplier
	}

	if shot != types.ShotStandard {
		p.Ammo--
		if p.Ammo <= 0 {
			p.Ammo = 0
			p.Weapon = types.ShotStandard
			s.logger.Debug("special weapon depleted", zap.Stringer("weapon", shot))
		}
	}

	s.hooks.PlaySound(game.SoundShoot)
}

// Hit 结算玩家被小行星、Boss 或敌方子弹击中
//
// 无敌期间忽略；护盾生效时消耗护盾并获得短暂无敌；否则扣除生命，
// 仍有生命时在屏幕中心重生，生命耗尽时移除玩家实体。
func (s *PlayerSystem) Hit(id ecs.EntityID) HitOutcome {
	p, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok || !s.entityManager.IsAlive(id) {
		return HitIgnored
	}
	if p.IsInvulnerable() {
		return HitIgnored
	}

	if p.HasShield() {
		p.Shield = 0
		p.Invulnerable = s.cfg.RespawnInvulnerability
		s.hooks.PlayHit()
		return HitAbsorbed
	}

	s.hooks.PlayExplosion()
	if s.session.LoseLife() {
		s.entityManager.DestroyEntity(id)
		s.logger.Info("game over", zap.Int("score", s.session.Score), zap.Int("level", s.session.Level()))
		s.hooks.RecordScore(s.session.Score)
		s.hooks.Notify("Game Over", fmt.Sprintf("Final score: %d", s.session.Score))
		return HitKilled
	}

	s.respawn(id, p)
	s.logger.Info("player lost a life", zap.Int("lives", s.session.Lives))
	return HitKilled
}

// respawn 把玩家放回屏幕中心并清除所有道具效果
func (s *PlayerSystem) respawn(id ecs.EntityID, p *components.PlayerComponent) {
	if tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id); ok {
		tr.Position = utils.Vec(s.screen.Width/2, s.screen.Height/2)
		tr.Velocity = utils.Vector2{}
		tr.Rotation = 180
	}
	*p = components.PlayerComponent{
		Invulnerable: s.cfg.RespawnInvulnerability,
		Weapon:       types.ShotStandard,
	}
}

// ApplyPowerUp 对玩家施加道具效果
func (s *PlayerSystem) ApplyPowerUp(id ecs.EntityID, powerUp types.PowerUpType) {
	p, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok {
		return
	}

	if shot, isWeapon := powerUp.WeaponShot(); isWeapon {
		p.Weapon = shot
		p.Ammo = s.cfg.WeaponAmmo
		return
	}

	switch powerUp {
	case types.PowerUpShield:
		p.Shield = s.cfg.ShieldDuration
	case types.PowerUpTripleShot:
		p.TripleShot = s.cfg.TripleShotDuration
	case types.PowerUpRapidFire:
		p.RapidFire = s.cfg.RapidFireDuration
	}
}
