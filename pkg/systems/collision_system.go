package systems

import (
	"go.uber.org/zap"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/game"
	"github.com/gonewx/asteroids/pkg/types"
)

// CollisionSnapshot 碰撞阶段开始时各实体池的存活成员
//
// 扫描只遍历快照内的实体，并在访问前检查存活：本轮被删除的实体不会再次被访问，
// 本轮新生成的碎片和道具不在快照中，下一帧才参与碰撞。
type CollisionSnapshot struct {
	Players     []ecs.EntityID
	Asteroids   []ecs.EntityID
	PlayerShots []ecs.EntityID
	EnemyShots  []ecs.EntityID
	Bosses      []ecs.EntityID
	PowerUps    []ecs.EntityID
}

// CollisionSystem 碰撞结算
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	scoring       config.ScoringConfig
	bossCfg       config.BossConfig
	splitter      *SplitContext
	bosses        *BossSystem
	player        *PlayerSystem
	session       *game.Session
	hooks         *game.Hooks
	logger        *zap.Logger
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, cfg *config.GameConfig, splitter *SplitContext, bosses *BossSystem, player *PlayerSystem, session *game.Session, hooks *game.Hooks, logger *zap.Logger) *CollisionSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollisionSystem{
		entityManager: em,
		scoring:       cfg.Scoring,
		bossCfg:       cfg.Boss,
		splitter:      splitter,
		bosses:        bosses,
		player:        player,
		session:       session,
		hooks:         hooks,
		logger:        logger.Named("CollisionSystem"),
	}
}

// TakeSnapshot 记录当前所有存活实体
func (s *CollisionSystem) TakeSnapshot() CollisionSnapshot {
	em := s.entityManager
	snap := CollisionSnapshot{
		Players:   ecs.GetAliveEntitiesWith2[*components.PlayerComponent, *components.TransformComponent](em),
		Asteroids: ecs.GetAliveEntitiesWith2[*components.AsteroidComponent, *components.TransformComponent](em),
		Bosses:    ecs.GetAliveEntitiesWith2[*components.BossComponent, *components.TransformComponent](em),
		PowerUps:  ecs.GetAliveEntitiesWith2[*components.PowerUpComponent, *components.TransformComponent](em),
	}
	for _, id := range ecs.GetAliveEntitiesWith2[*components.ProjectileComponent, *components.TransformComponent](em) {
		p, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		if p.Owner == types.FactionPlayer {
			snap.PlayerShots = append(snap.PlayerShots, id)
		} else {
			snap.EnemyShots = append(snap.EnemyShots, id)
		}
	}
	return snap
}

// Resolve 依次执行所有碰撞扫描
// 顺序: 玩家×小行星、玩家子弹×小行星、玩家子弹×Boss、敌方子弹×玩家、玩家×Boss
func (s *CollisionSystem) Resolve(snap CollisionSnapshot) {
	s.playerVsAsteroids(snap)
	s.shotsVsAsteroids(snap)
	s.shotsVsBosses(snap)
	s.enemyShotsVsPlayer(snap)
	s.playerVsBosses(snap)
}

func (s *CollisionSystem) playerVsAsteroids(snap CollisionSnapshot) {
	em := s.entityManager
	for _, playerID := range snap.Players {
		for _, asteroidID := range snap.Asteroids {
			if !em.IsAlive(playerID) {
				break
			}
			if !em.IsAlive(asteroidID) || !ShapesCollide(em, playerID, asteroidID) {
				continue
			}
			if s.player.Hit(playerID) == HitIgnored {
				continue
			}
			s.shatter(asteroidID, false)
		}
	}
}

func (s *CollisionSystem) shotsVsAsteroids(snap CollisionSnapshot) {
	em := s.entityManager
	for _, shotID := range snap.PlayerShots {
		for _, asteroidID := range snap.Asteroids {
			if !em.IsAlive(shotID) {
				break
			}
			if !em.IsAlive(asteroidID) || !ShapesCollide(em, asteroidID, shotID) {
				continue
			}
			em.DestroyEntity(shotID)
			s.shatter(asteroidID, true)
		}
	}
}

// shatter 分裂小行星并处理计分与外部回调
func (s *CollisionSystem) shatter(asteroidID ecs.EntityID, scored bool) {
	tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, asteroidID)
	radius := tr.Radius

	result := SplitAsteroid(s.splitter, asteroidID)
	if !result.Destroyed {
		s.hooks.PlayHit()
		return
	}

	s.hooks.PlayExplosion()
	s.hooks.AsteroidDestroyed()
	s.session.AsteroidsDestroyed++
	if scored {
		if s.session.AddScore(s.scoring.AsteroidScore(radius, s.splitter.Asteroid.MinRadius)) {
			s.logger.Info("level up", zap.Int("level", s.session.Level()), zap.Int("score", s.session.Score))
		}
	}
}

func (s *CollisionSystem) shotsVsBosses(snap CollisionSnapshot) {
	em := s.entityManager
	for _, shotID := range snap.PlayerShots {
		for _, bossID := range snap.Bosses {
			if !em.IsAlive(shotID) {
				break
			}
			if !s.bossVulnerable(bossID) || !ShapesCollide(em, bossID, shotID) {
				continue
			}
			proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, shotID)
			em.DestroyEntity(shotID)
			s.hooks.PlayHit()

			if s.bosses.TakeDamage(bossID, proj.Damage) {
				s.onBossDefeated(bossID)
			}
		}
	}
}

func (s *CollisionSystem) onBossDefeated(bossID ecs.EntityID) {
	boss, _ := ecs.GetComponent[*components.BossComponent](s.entityManager, bossID)
	s.session.BossesDefeated++
	s.session.AddScore(s.bossCfg.ScoreBonus * boss.Level)
	s.hooks.PlayExplosion()
	s.hooks.BossDefeated()
	s.hooks.Notify("Boss Defeated", "The boss has been destroyed")
}

func (s *CollisionSystem) enemyShotsVsPlayer(snap CollisionSnapshot) {
	em := s.entityManager
	for _, shotID := range snap.EnemyShots {
		for _, playerID := range snap.Players {
			if !em.IsAlive(shotID) {
				break
			}
			if !em.IsAlive(playerID) || !ShapesCollide(em, playerID, shotID) {
				continue
			}
			if s.player.Hit(playerID) != HitIgnored {
				em.DestroyEntity(shotID)
			}
		}
	}
}

func (s *CollisionSystem) playerVsBosses(snap CollisionSnapshot) {
	em := s.entityManager
	for _, playerID := range snap.Players {
		for _, bossID := range snap.Bosses {
			if !em.IsAlive(playerID) {
				break
			}
			if !s.bossVulnerable(bossID) || !ShapesCollide(em, playerID, bossID) {
				continue
			}
			s.player.Hit(playerID)
		}
	}
}

// CollectPowerUps 玩家拾取道具
// 只考虑快照中的道具，本帧掉落的道具下一帧才能拾取
func (s *CollisionSystem) CollectPowerUps(snap CollisionSnapshot) {
	em := s.entityManager
	for _, playerID := range snap.Players {
		for _, powerUpID := range snap.PowerUps {
			if !em.IsAlive(playerID) {
				break
			}
			if !em.IsAlive(powerUpID) || !ShapesCollide(em, playerID, powerUpID) {
				continue
			}
			pu, _ := ecs.GetComponent[*components.PowerUpComponent](em, powerUpID)
			em.DestroyEntity(powerUpID)
			s.player.ApplyPowerUp(playerID, pu.Type)

			s.logger.Debug("power-up collected", zap.Stringer("type", pu.Type))
			s.hooks.PlayPowerUp()
			s.hooks.Notify(pu.Type.String(), pu.Type.Description())
		}
	}
}

// bossVulnerable Boss 存活且不在死亡动画中
func (s *CollisionSystem) bossVulnerable(id ecs.EntityID) bool {
	if !s.entityManager.IsAlive(id) {
		return false
	}
	boss, ok := ecs.GetComponent[*components.BossComponent](s.entityManager, id)
	return ok && !boss.IsDying()
}
