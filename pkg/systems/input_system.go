package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 一帧的玩家输入
// 模拟核心只消费这个结构，不直接查询键盘
type InputState struct {
	RotateLeft  bool
	RotateRight bool
	Forward     bool
	Backward    bool
	Shoot       bool
}

// KeyBindings 键位映射，每个动作可以绑定多个按键
type KeyBindings struct {
	RotateLeft  []ebiten.Key
	RotateRight []ebiten.Key
	Forward     []ebiten.Key
	Backward    []ebiten.Key
	Shoot       []ebiten.Key
	Pause       []ebiten.Key
}

// DefaultKeyBindings 方向键 / WASD + 空格射击，Esc 或 P 暂停
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		RotateLeft:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		RotateRight: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Forward:     []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Backward:    []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		Shoot:       []ebiten.Key{ebiten.KeySpace},
		Pause:       []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
	}
}

// InputSystem 把键盘状态转换为 InputState
type InputSystem struct {
	bindings KeyBindings
}

// NewInputSystem 创建输入系统
func NewInputSystem(bindings KeyBindings) *InputSystem {
	return &InputSystem{bindings: bindings}
}

// Read 读取当前帧的按键状态
func (s *InputSystem) Read() InputState {
	return InputState{
		RotateLeft:  anyPressed(s.bindings.RotateLeft),
		RotateRight: anyPressed(s.bindings.RotateRight),
		Forward:     anyPressed(s.bindings.Forward),
		Backward:    anyPressed(s.bindings.Backward),
		Shoot:       anyPressed(s.bindings.Shoot),
	}
}

// PauseToggled 本帧是否按下了暂停键
func (s *InputSystem) PauseToggled() bool {
	for _, key := range s.bindings.Pause {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

func anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
