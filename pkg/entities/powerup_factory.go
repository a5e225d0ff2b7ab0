package entities

import (
	"fmt"
	"math/rand"

	"github.com/gonewx/asteroids/pkg/components"
	"github.com/gonewx/asteroids/pkg/config"
	"github.com/gonewx/asteroids/pkg/ecs"
	"github.com/gonewx/asteroids/pkg/types"
	"github.com/gonewx/asteroids/pkg/utils"
)

// RandomPowerUpType 均匀随机选择一种道具
func RandomPowerUpType(rng *rand.Rand) types.PowerUpType {
	return types.AllPowerUpTypes[rng.Intn(len(types.AllPowerUpTypes))]
}

// NewPowerUp 创建道具实体
// 道具静止不动，超过 cfg.Lifetime 未被拾取即消失
func NewPowerUp(em *ecs.EntityManager, cfg config.PowerUpConfig, powerUpType types.PowerUpType, pos utils.Vector2) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TransformComponent{
		Position: pos,
		Radius:   cfg.Radius,
	})
	em.AddComponent(entityID, &components.PowerUpComponent{
		Type:     powerUpType,
		Lifetime: cfg.Lifetime,
	})

	return entityID, nil
}
