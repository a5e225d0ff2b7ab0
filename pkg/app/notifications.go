package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	// notificationDuration 每条通知在屏幕上停留的秒数
	notificationDuration = 3.0
	// maxNotifications 同时显示的最大通知数，超出时丢弃最旧的一条
	maxNotifications = 4
)

// notification 一条屏幕通知
type notification struct {
	name        string
	description string
	remaining   float64
}

// NotificationOverlay 屏幕右上角的通知浮层，实现 game.Notifier
type NotificationOverlay struct {
	items []notification
}

// NewNotificationOverlay 创建通知浮层
func NewNotificationOverlay() *NotificationOverlay {
	return &NotificationOverlay{}
}

// Notify 添加一条通知
func (o *NotificationOverlay) Notify(name, description string) error {
	if len(o.items) >= maxNotifications {
		o.items = o.items[1:]
	}
	o.items = append(o.items, notification{
		name:        name,
		description: description,
		remaining:   notificationDuration,
	})
	return nil
}

// Update 推进通知计时并移除过期的通知
func (o *NotificationOverlay) Update(deltaTime float64) {
	kept := o.items[:0]
	for _, n := range o.items {
		n.remaining -= deltaTime
		if n.remaining > 0 {
			kept = append(kept, n)
		}
	}
	o.items = kept
}

// Len 当前显示中的通知数
func (o *NotificationOverlay) Len() int {
	return len(o.items)
}

// Draw 自上而下绘制通知
func (o *NotificationOverlay) Draw(screen *ebiten.Image) {
	x := screen.Bounds().Dx() - 220
	for i, n := range o.items {
		y := 10 + i*36
		ebitenutil.DebugPrintAt(screen, n.name, x, y)
		if n.description != "" {
			ebitenutil.DebugPrintAt(screen, n.description, x, y+14)
		}
	}
}
