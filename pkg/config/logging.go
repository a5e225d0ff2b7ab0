package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug / info / warn / error
	Format string `yaml:"format" toml:"format"` // "json" 或 "console"
}

// Validate 验证日志配置
func (c LoggingConfig) Validate() error {
	switch c.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Format)
	}
	if c.Level != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(c.Level)); err != nil {
			return fmt.Errorf("logging.level invalid: %w", err)
		}
	}
	return nil
}

// NewLogger 根据配置创建 zap 日志器
//
// json 格式使用生产配置；console 格式使用开发配置并关闭调用栈，便于在终端里跟踪每帧事件。
// 无法识别的级别回退到 info。
func NewLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
