//go:build !android

package game

// prepareStorageDir 桌面和 iOS 上 gdata 会自行创建目录
func prepareStorageDir() error {
	return nil
}
