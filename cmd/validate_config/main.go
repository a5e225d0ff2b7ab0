// validate_config 校验一个或多个游戏配置文件
//
// 用法:
//
//	go run ./cmd/validate_config data/game.yaml my_game.toml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gonewx/asteroids/pkg/config"
)

func main() {
	flag.Parse()
	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"data/game.yaml"}
	}

	failed := 0
	for _, path := range paths {
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("✅ %s\n", path)
		fmt.Printf("   屏幕 %.0fx%.0f  小行星半径 %.0f-%.0f  目标数量 %d\n",
			cfg.Screen.Width, cfg.Screen.Height, cfg.Asteroid.MinRadius, cfg.Asteroid.MaxRadius(), cfg.Spawner.TargetCount)
		fmt.Printf("   Boss 每 %d 级出现一次，1 级血量 %d\n", cfg.Boss.LevelInterval, cfg.Boss.MaxHealthForLevel(1))
	}

	if failed > 0 {
		fmt.Printf("❌ %d 个配置文件无效\n", failed)
		os.Exit(1)
	}
}
