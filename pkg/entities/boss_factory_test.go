package entities

import (
	"testing"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/utils"
)

// TestBossLevelForPlayerLevel 测试 Boss 等级推算
func TestBossLevelForPlayerLevel(t *testing.T) {
	tests := []struct {
		playerLevel int
		expected    int
	}{
		{1, 1},
		{9, 1},
		{10, 1},
		{25, 2},
		{50, 5},
		{99, 9},
	}

	for _, tt := range tests {
		if got := BossLevelForPlayerLevel(tt.playerLevel, 10); got != tt.expected {
			t.Errorf("BossLevelForPlayerLevel(%d) = %d, 期望 %d", tt.playerLevel, got, tt.expected)
		}
	}
}

// TestNewBoss 测试 Boss 实体创建
func TestNewBoss(t *testing.T) {
	cfg := config.DefaultConfig().Boss
	em := ecs.NewEntityManager()

	id, err := NewBoss(em, cfg, 50, utils.Vec(640, 100))
	if err != nil {
		t.Fatalf("NewBoss failed: %v", err)
	}

	boss, ok := ecs.GetComponent[*components.BossComponent](em, id)
	if !ok {
		t.Fatal("boss should have BossComponent")
	}
	if boss.Level != 5 {
		t.Errorf("Expected boss level 5, got %d", boss.Level)
	}
	if expected := cfg.BaseHealth + cfg.HealthPerLevel*5; boss.Health != expected || boss.MaxHealth != expected {
		t.Errorf("Expected health %d, got %d/%d", expected, boss.Health, boss.MaxHealth)
	}
	if boss.DeathTimer != -1 || boss.IsDying() {
		t.Errorf("new boss should be alive, DeathTimer = %.2f", boss.DeathTimer)
	}
	if boss.Phase != components.BossPhaseCenter {
		t.Errorf("Expected center phase, got %s", boss.Phase)
	}

	tr, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok || tr.Radius != cfg.Radius {
		t.Errorf("unexpected boss transform %+v", tr)
	}

	if _, err := NewBoss(nil, cfg, 1, utils.Vector2{}); err == nil {
		t.Error("Expected error for nil entity manager")
	}
}
