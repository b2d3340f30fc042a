// Package gamelog is the leveled logger used outside the in-game message log.
package gamelog

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// DebugLevel level
	DebugLevel Level = Level(zap.DebugLevel)
	// InfoLevel level
	InfoLevel Level = Level(zap.InfoLevel)
	// WarnLevel level
	WarnLevel Level = Level(zap.WarnLevel)
	// ErrorLevel level
	ErrorLevel Level = Level(zap.ErrorLevel)
	// PanicLevel level
	PanicLevel Level = Level(zap.PanicLevel)
	// FatalLevel level
	FatalLevel Level = Level(zap.FatalLevel)

	// Debugf logs formatted debug message
	Debugf logFormatFunc
	// Infof logs formatted info message
	Infof logFormatFunc
	// Warnf logs formatted warn message
	Warnf logFormatFunc
	// Errorf logs formatted error message
	Errorf logFormatFunc
	Panicf logFormatFunc
	Fatalf logFormatFunc
)

type logFormatFunc func(format string, args ...interface{})

// Level is type of log levels
type Level zapcore.Level

func (lv Level) String() string {
	return zapcore.Level(lv).String()
}

var (
	cfg    zap.Config
	logger *zap.Logger
	source string
)

func init() {
	cfgJSON := []byte(`{
		"level": "info",
		"outputPaths": ["stderr"],
		"errorOutputPaths": ["stderr"],
		"encoding": "console",
		"encoderConfig": {
			"messageKey": "message",
			"levelKey": "level",
			"timeKey": "time",
			"nameKey": "source",
			"levelEncoder": "lowercase",
			"timeEncoder": "iso8601"
		}
	}`)

	if err := json.Unmarshal(cfgJSON, &cfg); err != nil {
		panic(err)
	}
	rebuild()
}

func rebuild() {
	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	if source != "" {
		l = l.Named(source)
	}
	logger = l
	setSugar(logger.Sugar())
}

// SetSource names the component writing the log (game, tools, tests)
func SetSource(comp string) {
	source = comp
	rebuild()
}

func setSugar(sugar *zap.SugaredLogger) {
	Debugf = sugar.Debugf
	Infof = sugar.Infof
	Warnf = sugar.Warnf
	Errorf = sugar.Errorf
	Panicf = sugar.Panicf
	Fatalf = sugar.Fatalf
}

// SetLevel sets the log level
func SetLevel(lv Level) {
	cfg.Level.SetLevel(zapcore.Level(lv))
}

// GetLevel returns the current log level
func GetLevel() Level {
	return Level(cfg.Level.Level())
}

// SetOutput sets the output paths, e.g. "stderr" or a file name
func SetOutput(outputs []string) {
	cfg.OutputPaths = outputs
	rebuild()
}

// Logger returns the underlying zap logger for structured fields
func Logger() *zap.Logger {
	return logger
}

// Sync flushes buffered entries
func Sync() {
	_ = logger.Sync()
}

// ParseLevel converts a level name to a Level, defaulting to DebugLevel
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "panic":
		return PanicLevel
	case "fatal":
		return FatalLevel
	}
	Errorf("ParseLevel: unknown level: %s", s)
	return DebugLevel
}
