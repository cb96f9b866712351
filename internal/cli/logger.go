package cli

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger logs warnings as JSON to w, or everything down to debug in the
// development console format when verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if verbose {
		encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.DebugLevel)
		return zap.New(core, zap.Development())
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.WarnLevel)
	return zap.New(core)
}
