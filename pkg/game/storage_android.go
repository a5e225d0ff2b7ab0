//go:build android

package game

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// prepareStorageDir 在 Android 上预先创建 gdata 使用的 saves 目录
// gdata 以 /data/data/<包名> 为根目录，但不会创建子目录
func prepareStorageDir() error {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return fmt.Errorf("failed to read process name: %w", err)
	}
	name, _, _ := bytes.Cut(cmdline, []byte{0})
	pkg := strings.TrimSpace(string(name))
	if pkg == "" {
		return fmt.Errorf("empty process name")
	}

	dir := filepath.Join("/data/data", pkg, "saves")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}
