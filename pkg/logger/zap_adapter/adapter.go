package zap_adapter

import (
	"go.uber.org/zap"

	"github.com/nelsontanko/foody-sub000/pkg/logger"
)

// ZapAdapter реализует logger.Logger поверх zap в production-конфигурации.
type ZapAdapter struct {
	zl *zap.Logger
}

func NewZapAdapter() (*ZapAdapter, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	zl, err := cfg.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &ZapAdapter{zl: zl}, nil
}

func (z *ZapAdapter) Debug(msg string, fields ...logger.Field) {
	z.zl.Debug(msg, toZap(fields)...)
}

func (z *ZapAdapter) Info(msg string, fields ...logger.Field) {
	z.zl.Info(msg, toZap(fields)...)
}

func (z *ZapAdapter) Warn(msg string, fields ...logger.Field) {
	z.zl.Warn(msg, toZap(fields)...)
}

func (z *ZapAdapter) Error(msg string, fields ...logger.Field) {
	z.zl.Error(msg, toZap(fields)...)
}

func (z *ZapAdapter) With(fields ...logger.Field) logger.Logger {
	return &ZapAdapter{zl: z.zl.With(toZap(fields)...)}
}

func (z *ZapAdapter) Sync() error {
	return z.zl.Sync()
}

func toZap(fields []logger.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}
