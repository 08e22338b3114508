package logger

import (
	"fmt"

	"github.com/GlebRadaev/erpfinance/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	appName    = "erpfinance"
	timeLayout = "15:04:05 02-01-2006"
)

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// InitLogger replaces the global zap logger according to the LOG_LVL and LOG_FORMAT settings.
func InitLogger(conf *config.Config) error {
	logger, err := Build(conf.LogLvl, conf.LogFmt)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// Build returns a logger writing to stdout. Empty format means console.
func Build(level, format string) (*zap.Logger, error) {
	lvl, ok := logLvlMap[level]
	if !ok {
		return nil, fmt.Errorf("unsupported log lvl: %s", level)
	}
	if format == "" {
		format = "console"
	}
	encoder, err := encoderConfig(format)
	if err != nil {
		return nil, err
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         format,
		EncoderConfig:    encoder,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	// json logs are shipped to a collector, the app name tells sources apart
	if format == "json" {
		c.InitialFields = map[string]interface{}{"app": appName}
	}

	logger, err := c.Build()
	if err != nil {
		return nil, fmt.Errorf("unable to create zap logger, error: %w", err)
	}
	return logger, nil
}

func encoderConfig(format string) (zapcore.EncoderConfig, error) {
	ec := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	switch format {
	case "console":
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
	case "json":
		ec.EncodeLevel = zapcore.LowercaseLevelEncoder
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return ec, fmt.Errorf("unsupported log format: %s", format)
	}
	return ec, nil
}
