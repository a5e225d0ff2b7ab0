//go:build !mobile

// Package mobile 的桌面端占位
//
// 不带 -tags mobile 构建时 mobile.go 被排除，
// 这里保留导出符号，使 go build ./... 在桌面端也能通过。
package mobile

// Dummy 占位导出函数
func Dummy() {}
