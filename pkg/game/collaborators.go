package game

import (
	"fmt"

	"go.uber.org/zap"
)

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . SoundPlayer,Notifier,StatsRecorder

// 音效资源ID
const (
	SoundExplosion = "explosion"
	SoundHit       = "hit"
	SoundPowerUp   = "powerup"
	SoundShoot     = "shoot"
)

// SoundPlayer 音效播放协作方
type SoundPlayer interface {
	PlaySound(soundID string) error
}

// Notifier 屏幕通知协作方（成就、Boss 出现等）
type Notifier interface {
	Notify(name, description string) error
}

// StatsRecorder 外部统计计数协作方
type StatsRecorder interface {
	AsteroidDestroyed() error
	BossDefeated() error
	RecordScore(score int) error
}

// Hooks 模拟核心调用外部协作方的唯一入口
//
// 所有调用都是即发即弃：协作方返回的错误和 panic 都在这里被吞掉并记录日志，
// 缺失的音频资源或损坏的存档不会中断一帧模拟。
// 任意协作方可为 nil；*Hooks 本身为 nil 时所有方法都是空操作。
type Hooks struct {
	sound    SoundPlayer
	notifier Notifier
	stats    StatsRecorder
	logger   *zap.Logger
}

// NewHooks 创建协作方调用封装
//
// 参数:
//   - sound: 音效播放器，可为 nil
//   - notifier: 通知器，可为 nil
//   - stats: 统计记录器，可为 nil
//   - logger: 日志器，为 nil 时不输出
func NewHooks(sound SoundPlayer, notifier Notifier, stats StatsRecorder, logger *zap.Logger) *Hooks {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hooks{
		sound:    sound,
		notifier: notifier,
		stats:    stats,
		logger:   logger.Named("Hooks"),
	}
}

// PlaySound 播放音效
func (h *Hooks) PlaySound(soundID string) {
	if h == nil || h.sound == nil {
		return
	}
	h.call("play "+soundID, func() error { return h.sound.PlaySound(soundID) })
}

// PlayExplosion 播放爆炸音效
func (h *Hooks) PlayExplosion() { h.PlaySound(SoundExplosion) }

// PlayPowerUp 播放拾取道具音效
func (h *Hooks) PlayPowerUp() { h.PlaySound(SoundPowerUp) }

// PlayHit 播放命中音效
func (h *Hooks) PlayHit() { h.PlaySound(SoundHit) }

// Notify 发送通知
func (h *Hooks) Notify(name, description string) {
	if h == nil || h.notifier == nil {
		return
	}
	h.call("notify "+name, func() error { return h.notifier.Notify(name, description) })
}

// AsteroidDestroyed 小行星被击碎计数
func (h *Hooks) AsteroidDestroyed() {
	if h == nil || h.stats == nil {
		return
	}
	h.call("asteroid destroyed", h.stats.AsteroidDestroyed)
}

// BossDefeated Boss 被击败计数
func (h *Hooks) BossDefeated() {
	if h == nil || h.stats == nil {
		return
	}
	h.call("boss defeated", h.stats.BossDefeated)
}

// RecordScore 记录最终得分
func (h *Hooks) RecordScore(score int) {
	if h == nil || h.stats == nil {
		return
	}
	h.call("record score", func() error { return h.stats.RecordScore(score) })
}

// call 执行协作方调用，恢复 panic 并记录错误
func (h *Hooks) call(op string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Warn("collaborator panicked", zap.String("op", op), zap.Error(fmt.Errorf("%v", r)))
		}
	}()
	if err := fn(); err != nil {
		h.logger.Warn("collaborator failed", zap.String("op", op), zap.Error(err))
	}
}
