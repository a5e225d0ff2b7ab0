package game

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/gonewx/asteroids/pkg/config"
)

// TestSoundRecipesCoverAllSounds 每个音效ID都有内置合成参数
func TestSoundRecipesCoverAllSounds(t *testing.T) {
	for _, id := range []string{SoundExplosion, SoundHit, SoundPowerUp, SoundShoot} {
		if _, ok := soundRecipes[id]; !ok {
			t.Errorf("missing recipe for %s", id)
		}
	}
}

// TestSynthesize 测试 PCM 合成
func TestSynthesize(t *testing.T) {
	recipe := toneRecipe{startFreq: 440, endFreq: 440, duration: 0.1}
	pcm := synthesize(recipe, SampleRate)

	frames := int(0.1 * SampleRate)
	if len(pcm) != frames*4 {
		t.Fatalf("Expected %d bytes, got %d", frames*4, len(pcm))
	}

	// 左右声道相同
	for i := 0; i < frames; i += 97 {
		l := binary.LittleEndian.Uint16(pcm[i*4:])
		r := binary.LittleEndian.Uint16(pcm[i*4+2:])
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", i, l, r)
		}
	}

	// 振幅不超过一半满量程
	for i := 0; i < frames; i++ {
		v := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
		if v > 1<<14 || v < -(1<<14) {
			t.Fatalf("frame %d: sample %d exceeds envelope", i, v)
		}
	}
}

// TestAudioManagerWithoutContext 没有音频上下文时播放是空操作
func TestAudioManagerWithoutContext(t *testing.T) {
	am := NewAudioManager(nil, config.AudioConfig{Enabled: true, Volume: 1.5}, nil)

	if am.Volume() != 1.0 {
		t.Errorf("volume should be clamped to 1.0, got %.2f", am.Volume())
	}
	if err := am.PlaySound(SoundShoot); err != nil {
		t.Errorf("PlaySound without context should be a no-op, got %v", err)
	}
	am.Preload([]string{SoundShoot})

	am.SetVolume(-1)
	if am.Volume() != 0 {
		t.Errorf("volume should be clamped to 0, got %.2f", am.Volume())
	}
	am.SetEnabled(false)
	if am.Enabled() {
		t.Error("audio should be disabled")
	}
}

// TestLoadSoundFileUnsupported 不支持的格式返回错误
func TestLoadSoundFileUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shoot.mp3")
	if err := os.WriteFile(path, []byte("ID3"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	am := NewAudioManager(nil, config.AudioConfig{Enabled: true}, nil)
	if _, err := am.loadSoundFile(path); err == nil {
		t.Error("Expected unsupported format error")
	}
	if _, err := am.loadSoundFile(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("Expected read error for missing file")
	}
}
