package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a sugared zap logger. Output goes to stderr so that stdout only
// carries rendered paragraphs.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger logs to stderr at debug level when verbose, warn level otherwise.
func NewLogger(verbose bool) *Logger {
	return New(os.Stderr, verbose)
}

func New(w io.Writer, verbose bool) *Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)
	return &Logger{zap.New(core).Sugar()}
}

// discards everything
func NewNop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}
