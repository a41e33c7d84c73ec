package xlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var zapLogger *zap.Logger // 结构化日志. 给需要JSON输出的宿主用

// NewZapLogger JSON编码 + 滚动文件
func NewZapLogger(file string, level zapcore.Level) {
	hook := lumberjack.Logger{
		Filename:   file,
		MaxSize:    64, // MB
		MaxBackups: 2,
		MaxAge:     14, // 天
	}
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "@timestamp",
		LevelKey:       "loglevel",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(zapcore.AddSync(&hook)),
		zap.NewAtomicLevelAt(level),
	)

	zapLogger = zap.New(core)
}

func GetZapLogger() *zap.Logger {
	return zapLogger
}

func ZapSync() error {
	if zapLogger != nil {
		zapLogger.Sync()
	}
	return nil
}
