package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFile = "logs/app.log"

// New returns a development logger, or a JSON logger teeing stdout and a
// rotating file when GIN_MODE=release. LOG_FILE and LOG_LEVEL tune the
// release logger.
func New() (*zap.Logger, error) {
	if os.Getenv("GIN_MODE") != "release" {
		return zap.NewDevelopment()
	}

	filename := defaultLogFile
	if v := os.Getenv("LOG_FILE"); v != "" {
		filename = v
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return nil, err
	}

	level := zap.InfoLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if parsed, err := zapcore.ParseLevel(v); err == nil {
			level = parsed
		}
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.NewMultiWriteSyncer(
			zapcore.AddSync(os.Stdout),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   filename,
				MaxSize:    50,
				MaxBackups: 5,
				MaxAge:     14,
				Compress:   true,
			}),
		),
		level,
	)
	return zap.New(core, zap.AddCaller()), nil
}
