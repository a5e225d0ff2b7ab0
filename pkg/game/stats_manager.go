package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// GameStats 跨局累计统计
type GameStats struct {
	AsteroidsDestroyed int `yaml:"asteroidsDestroyed"`
	BossesDefeated     int `yaml:"bossesDefeated"`
	HighScore          int `yaml:"highScore"`
	GamesPlayed        int `yaml:"gamesPlayed"`
}

// StatsManager 统计管理器，实现 StatsRecorder
//
// 小行星计数只累加在内存中，Boss 击败和一局结束时写回存储。
// gdataManager 为 nil 时进入降级模式：统计只保存在内存中。
type StatsManager struct {
	gdataManager *gdata.Manager
	stats        GameStats
	logger       *zap.Logger
}

// 存储路径常量
const (
	statsObject   = "stats"
	statsProperty = "lifetime"
)

// NewStatsManager 创建统计管理器并尝试加载已保存的统计
//
// 参数:
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
//   - logger: 日志器
func NewStatsManager(gdataManager *gdata.Manager, logger *zap.Logger) *StatsManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	sm := &StatsManager{
		gdataManager: gdataManager,
		logger:       logger.Named("StatsManager"),
	}

	if err := sm.Load(); err != nil {
		sm.logger.Warn("failed to load stats, starting from zero", zap.Error(err))
	}
	return sm
}

// Load 从 gdata 加载统计
// 存储不可用或尚无记录时统计归零
func (sm *StatsManager) Load() error {
	sm.stats = GameStats{}
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(statsObject, statsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(statsObject, statsProperty)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}

	var loaded GameStats
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	sm.stats = loaded
	sm.logger.Debug("stats loaded",
		zap.Int("highScore", loaded.HighScore),
		zap.Int("gamesPlayed", loaded.GamesPlayed))
	return nil
}

// Save 写回 gdata，降级模式下不报错
func (sm *StatsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(statsObject, statsProperty, data); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

// Stats 当前统计的副本
func (sm *StatsManager) Stats() GameStats {
	return sm.stats
}

// AsteroidDestroyed 累加击碎的小行星
func (sm *StatsManager) AsteroidDestroyed() error {
	sm.stats.AsteroidsDestroyed++
	return nil
}

// BossDefeated 累加击败的 Boss 并保存
func (sm *StatsManager) BossDefeated() error {
	sm.stats.BossesDefeated++
	return sm.Save()
}

// RecordScore 记录一局的最终分数并保存
func (sm *StatsManager) RecordScore(score int) error {
	sm.stats.GamesPlayed++
	if score > sm.stats.HighScore {
		sm.stats.HighScore = score
		sm.logger.Info("new high score", zap.Int("score", score))
	}
	return sm.Save()
}
