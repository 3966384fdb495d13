package log

import "go.uber.org/zap"

var logger = zap.Must(zap.NewProduction())

// 替换默认logger，便于接入上层服务的日志配置
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Sync() error {
	return logger.Sync()
}
