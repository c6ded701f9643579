package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// HertzSlogAdapter routes Hertz's hlog output into slog
type HertzSlogAdapter struct {
	logger *slog.Logger
	level  *slog.LevelVar
}

// NewHertzSlogAdapter creates a new Hertz logger adapter using slog.
// Records below minLevel are dropped before reaching the slog handler.
func NewHertzSlogAdapter(logger *slog.Logger, minLevel slog.Level) *HertzSlogAdapter {
	lv := new(slog.LevelVar)
	lv.Set(minLevel)
	return &HertzSlogAdapter{logger: logger, level: lv}
}

// InstallHertzLogger makes the Hertz client log through slog.Default()
func InstallHertzLogger(minLevel slog.Level) {
	hlog.SetLogger(NewHertzSlogAdapter(slog.Default(), minLevel))
}

func (h *HertzSlogAdapter) log(ctx context.Context, level slog.Level, msg string) {
	if level < h.level.Level() {
		return
	}
	h.logger.Log(ctx, level, msg, "component", "hertz")
}

func (h *HertzSlogAdapter) Trace(v ...interface{}) {
	h.log(context.Background(), slog.LevelDebug, formatMessage(v...))
}
func (h *HertzSlogAdapter) Debug(v ...interface{}) {
	h.log(context.Background(), slog.LevelDebug, formatMessage(v...))
}
func (h *HertzSlogAdapter) Info(v ...interface{}) {
	h.log(context.Background(), slog.LevelInfo, formatMessage(v...))
}
func (h *HertzSlogAdapter) Notice(v ...interface{}) {
	h.log(context.Background(), slog.LevelInfo, formatMessage(v...))
}
func (h *HertzSlogAdapter) Warn(v ...interface{}) {
	h.log(context.Background(), slog.LevelWarn, formatMessage(v...))
}
func (h *HertzSlogAdapter) Error(v ...interface{}) {
	h.log(context.Background(), slog.LevelError, formatMessage(v...))
}
func (h *HertzSlogAdapter) Fatal(v ...interface{}) {
	h.log(context.Background(), slog.LevelError, formatMessage(v...))
}

func (h *HertzSlogAdapter) Tracef(format string, v ...interface{}) {
	h.log(context.Background(), slog.LevelDebug, fmt.Sprintf(format, v...))
}
func (h *HertzSlogAdapter) Debugf(format string, v ...interface{}) {
	h.log(context.Background(), slog.LevelDebug, fmt.Sprintf(format, v...))
}
func (h *HertzSlogAdapter) Infof(format string, v ...interface{}) {
	h.log(context.Background(), slog.LevelInfo, fmt.Sprintf(format, v...))
}
func (h *HertzSlogAdapter) Noticef(format string, v ...interface{}) {
	h.log(context.Background(), slog.LevelInfo, fmt.Sprintf(format, v...))
}
func (h *HertzSlogAdapter) Warnf(format string, v ...interface{}) {
	h.log(context.Background(), slog.LevelWarn, fmt.Sprintf(format, v...))
}
func (h *HertzSlogAdapter) Errorf(format string, v ...interface{}) {
	h.log(context.Background(), slog.LevelError, fmt.Sprintf(format, v...))
}
func (h *HertzSlogAdapter) Fatalf(format string, v ...interface{}) {
	h.log(context.Background(), slog.LevelError, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, slog.LevelDebug, fmt.Sprintf(format, v...))
}
func (h *HertzSlogAdapter) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, slog.LevelDebug, fmt.Sprintf(format, v...))
}
func (h *HertzSlogAdapter) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, slog.LevelInfo, fmt.Sprintf(format, v...))
}
func (h *HertzSlogAdapter) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, slog.LevelInfo, fmt.Sprintf(format, v...))
}
func (h *HertzSlogAdapter) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, slog.LevelWarn, fmt.Sprintf(format, v...))
}
func (h *HertzSlogAdapter) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, slog.LevelError, fmt.Sprintf(format, v...))
}
func (h *HertzSlogAdapter) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	h.log(ctx, slog.LevelError, fmt.Sprintf(format, v...))
}

// SetLevel maps hlog levels onto the adapter's slog threshold
func (h *HertzSlogAdapter) SetLevel(level hlog.Level) {
	switch {
	case level <= hlog.LevelDebug:
		h.level.Set(slog.LevelDebug)
	case level <= hlog.LevelNotice:
		h.level.Set(slog.LevelInfo)
	case level == hlog.LevelWarn:
		h.level.Set(slog.LevelWarn)
	default:
		h.level.Set(slog.LevelError)
	}
}

// SetOutput is a no-op; output is chosen by Setup
func (h *HertzSlogAdapter) SetOutput(writer io.Writer) {}

func formatMessage(v ...interface{}) string {
	if len(v) == 1 {
		if s, ok := v[0].(string); ok {
			return s
		}
	}
	return fmt.Sprint(v...)
}
