// Package log builds the zap logger used by the command line tool.
package log

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tsawler/redaction/internal/config"
)

// New creates a logger for the configured level and format writing to w.
// The CLI passes stderr so log lines never mix with command output.
func New(w io.Writer, cfg config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	var enc zapcore.Encoder
	if strings.EqualFold(cfg.LogFormat, config.LogFormatJSON) {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(ec)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core, zap.AddCaller()), nil
}
