package systems

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/entities"
	"github.com/gonewx/asteroids/pkg/game"
	"github.com/gonewx/asteroids/pkg/utils"
)

// BossSpawnSystem 玩家等级每跨过一个 LevelInterval 的整数倍时召唤一次 Boss
// 场上已有 Boss 时推迟到它被移除之后
type BossSpawnSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.BossConfig
	screen        config.ScreenConfig
	session       *game.Session
	hooks         *game.Hooks
	logger        *zap.Logger

	lastMilestone int // 已召唤过 Boss 的最高等级里程碑
}

// NewBossSpawnSystem 创建 Boss 召唤系统
func NewBossSpawnSystem(em *ecs.EntityManager, cfg config.BossConfig, screen config.ScreenConfig, session *game.Session, hooks *game.Hooks, logger *zap.Logger) *BossSpawnSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BossSpawnSystem{
		entityManager: em,
		cfg:           cfg,
		screen:        screen,
		session:       session,
		hooks:         hooks,
		logger:        logger.Named("BossSpawnSystem"),
	}
}

// Update 检查是否需要召唤 Boss
func (s *BossSpawnSystem) Update(deltaTime float64) {
	if s.session.GameOver {
		return
	}

	level := s.session.Level()
	milestone := level / s.cfg.LevelInterval * s.cfg.LevelInterval
	if milestone < s.cfg.LevelInterval || milestone <= s.lastMilestone {
		return
	}
	if ecs.CountAlive[*components.BossComponent](s.entityManager) > 0 {
		return
	}

	pos := utils.Vec(s.screen.Width/2, s.cfg.Radius)
	id, err := entities.NewBoss(s.entityManager, s.cfg, level, pos)
	if err != nil {
		s.logger.Warn("failed to spawn boss", zap.Error(err))
		return
	}
	s.lastMilestone = milestone

	boss, _ := ecs.GetComponent[*components.BossComponent](s.entityManager, id)
	s.logger.Info("boss spawned",
		zap.Uint64("boss", uint64(id)),
		zap.Int("playerLevel", level),
		zap.Int("bossLevel", boss.Level),
		zap.Int("health", boss.MaxHealth))
	s.hooks.Notify("Boss Incoming", fmt.Sprintf("A level %d boss has appeared", boss.Level))
}
