package game

import (
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
)

// OpenStorage 打开持久化存储
//
// 任何一步失败都只记录警告并返回 nil，
// StatsManager 和 SnapshotStore 在 nil 管理器下以纯内存模式工作。
//
// 参数:
//   - appName: 存储命名空间
//   - logger: 日志器，为 nil 时不输出
func OpenStorage(appName string, logger *zap.Logger) *gdata.Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := prepareStorageDir(); err != nil {
		logger.Warn("storage directory unavailable", zap.Error(err))
		return nil
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("persistent storage unavailable", zap.String("app", appName), zap.Error(err))
		return nil
	}
	return manager
}
