package game

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"go.uber.org/zap"

	"github.com/gonewx/asteroids/pkg/config"
)

// SampleRate 音频上下文采样率
const SampleRate = 44100

// toneRecipe 内置合成音效参数
type toneRecipe struct {
	startFreq float64 // 起始频率（Hz）
	endFreq   float64 // 结束频率（Hz）
	duration  float64 // 时长（秒）
	noise     float64 // 白噪声占比 0~1
}

// soundRecipes 每个音效ID的合成参数
var soundRecipes = map[string]toneRecipe{
	SoundShoot:     {startFreq: 900, endFreq: 300, duration: 0.10},
	SoundHit:       {startFreq: 220, endFreq: 180, duration: 0.08, noise: 0.3},
	SoundExplosion: {startFreq: 120, endFreq: 40, duration: 0.45, noise: 0.8},
	SoundPowerUp:   {startFreq: 440, endFreq: 880, duration: 0.25},
}

// AudioManager 音效管理器，实现 SoundPlayer
//
// 音效优先从 SoundDir 下的 <id>.wav / <id>.ogg 加载，找不到文件时使用内置合成音效。
// 播放器按音效ID缓存，重复播放时从头开始。
type AudioManager struct {
	context *audio.Context
	cfg     config.AudioConfig
	players map[string]*audio.Player
	logger  *zap.Logger
}

// NewAudioManager 创建音效管理器
//
// 参数:
//   - ctx: ebiten 音频上下文，为 nil 时所有播放都是空操作
//   - cfg: 音效设置
//   - logger: 日志器
func NewAudioManager(ctx *audio.Context, cfg config.AudioConfig, logger *zap.Logger) *AudioManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.Volume = clampVolume(cfg.Volume)
	return &AudioManager{
		context: ctx,
		cfg:     cfg,
		players: make(map[string]*audio.Player),
		logger:  logger.Named("AudioManager"),
	}
}

// PlaySound 播放音效
// 音效关闭或没有音频上下文时直接返回 nil
func (am *AudioManager) PlaySound(soundID string) error {
	if !am.cfg.Enabled || am.context == nil {
		return nil
	}

	player, err := am.getSoundPlayer(soundID)
	if err != nil {
		return err
	}

	player.SetVolume(am.cfg.Volume)
	if err := player.Rewind(); err != nil {
		return fmt.Errorf("failed to rewind sound %s: %w", soundID, err)
	}
	player.Play()
	return nil
}

// SetVolume 设置音效音量，立即应用到所有已缓存的播放器
func (am *AudioManager) SetVolume(volume float64) {
	am.cfg.Volume = clampVolume(volume)
	for _, player := range am.players {
		player.SetVolume(am.cfg.Volume)
	}
}

// Volume 当前音效音量
func (am *AudioManager) Volume() float64 {
	return am.cfg.Volume
}

// SetEnabled 开关音效
func (am *AudioManager) SetEnabled(enabled bool) {
	am.cfg.Enabled = enabled
}

// Enabled 音效是否开启
func (am *AudioManager) Enabled() bool {
	return am.cfg.Enabled
}

// Preload 预加载音效，避免首次播放时的卡顿
func (am *AudioManager) Preload(soundIDs []string) {
	if am.context == nil {
		return
	}
	loaded := 0
	for _, id := range soundIDs {
		if _, err := am.getSoundPlayer(id); err != nil {
			am.logger.Warn("failed to preload sound", zap.String("sound", id), zap.Error(err))
			continue
		}
		loaded++
	}
	am.logger.Debug("sounds preloaded", zap.Int("count", loaded))
}

// getSoundPlayer 获取或创建音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) (*audio.Player, error) {
	if player, exists := am.players[soundID]; exists {
		return player, nil
	}

	if am.cfg.SoundDir != "" {
		for _, ext := range []string{".wav", ".ogg"} {
			path := filepath.Join(am.cfg.SoundDir, soundID+ext)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			player, err := am.loadSoundFile(path)
			if err != nil {
				return nil, err
			}
			am.logger.Debug("sound loaded from file", zap.String("sound", soundID), zap.String("path", path))
			am.players[soundID] = player
			return player, nil
		}
	}

	recipe, ok := soundRecipes[soundID]
	if !ok {
		return nil, fmt.Errorf("sound not found: %s", soundID)
	}
	player := am.context.NewPlayerFromBytes(synthesize(recipe, SampleRate))
	am.players[soundID] = player
	return player, nil
}

// loadSoundFile 从文件解码音效（不循环）
// 支持 .wav 和 .ogg
func (am *AudioManager) loadSoundFile(path string) (*audio.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound file %s: %w", path, err)
	}
	reader := bytes.NewReader(data)

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		decoded, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound %s: %w", path, err)
		}
		stream = decoded
	case ".ogg":
		decoded, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound %s: %w", path, err)
		}
		stream = decoded
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .ogg)", ext)
	}

	player, err := am.context.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}
	return player, nil
}

// synthesize 生成 16 位小端双声道 PCM
// 频率在时长内线性滑动，振幅线性衰减到 0
func synthesize(r toneRecipe, sampleRate int) []byte {
	n := int(r.duration * float64(sampleRate))
	buf := make([]byte, n*4)
	rng := rand.New(rand.NewSource(1))

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := r.startFreq + (r.endFreq-r.startFreq)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := (1-r.noise)*math.Sin(phase) + r.noise*(rng.Float64()*2-1)
		v *= (1 - t) * 0.5
		sample := uint16(int16(v * math.MaxInt16))

		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
