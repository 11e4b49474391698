package cli

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sessionLogger wraps zap for diagnostics during a debug session. The
// terminal belongs to the interface while a script is suspended, so a file
// sink is the only place log lines may go. Every method is safe on a
// logger that failed to initialize; logging trouble must never take a
// session down with it.
type sessionLogger struct {
	sugared *zap.SugaredLogger
	id      string
}

// maxLogBytes caps session log growth. One generation is kept aside as
// <file>.1 so the tail of the previous run survives a rotation.
const maxLogBytes = 10 << 20

func newSessionLogger(globals *Globals) *sessionLogger {
	if globals == nil || globals.Config == nil || !globals.Config.Log.Enabled || globals.LogFile == "" {
		return &sessionLogger{}
	}
	if err := os.MkdirAll(filepath.Dir(globals.LogFile), 0o755); err != nil {
		return &sessionLogger{}
	}
	rotateLogFile(globals.LogFile, maxLogBytes)

	cfg := zap.NewProductionConfig()
	level := zap.InfoLevel
	if globals.Verbose {
		level = zap.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "json"
	cfg.OutputPaths = []string{globals.LogFile}
	cfg.ErrorOutputPaths = []string{globals.LogFile}

	logger, err := cfg.Build()
	if err != nil {
		return &sessionLogger{}
	}
	return &sessionLogger{
		sugared: logger.Sugar(),
		id:      uuid.NewString(),
	}
}

func (l *sessionLogger) Debugf(format string, args ...any) {
	if l.sugared == nil {
		return
	}
	l.sugared.With("invocation_id", l.id).Debugf(format, args...)
}

func (l *sessionLogger) Infof(format string, args ...any) {
	if l.sugared == nil {
		return
	}
	l.sugared.With("invocation_id", l.id).Infof(format, args...)
}

func (l *sessionLogger) Sync() {
	if l.sugared != nil {
		l.sugared.Sync()
	}
}

// rotateLogFile moves path to path+".1" once it passes max bytes. Rotation
// failure is ignored; zap will keep appending to the oversized file, which
// beats losing the session for a bookkeeping problem.
func rotateLogFile(path string, max int64) {
	info, err := os.Stat(path)
	if err != nil || info.Size() < max {
		return
	}
	os.Rename(path, path+".1")
}
