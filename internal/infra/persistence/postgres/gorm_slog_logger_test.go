package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"hive/config"
	deliverycontext "hive/internal/delivery/context"
	"hive/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func fixedSQL() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("failed statement uses the request logger", func(t *testing.T) {
		base, _ := newBufferLogger()
		reqLogger, buf := newBufferLogger()
		ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

		l := newGormSlogLogger(base, &config.Config{})
		l.Trace(ctx, time.Now(), fixedSQL, errors.New("relation does not exist"))

		assert.Contains(t, buf.String(), `"msg":"GORM query failed"`)
		assert.Contains(t, buf.String(), `"error":"relation does not exist"`)
		assert.Contains(t, buf.String(), `"sql":"SELECT 1"`)
	})

	t.Run("record not found stays quiet", func(t *testing.T) {
		base, buf := newBufferLogger()

		l := newGormSlogLogger(base, &config.Config{})
		l.Trace(context.Background(), time.Now(), fixedSQL, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow statement is a warning", func(t *testing.T) {
		base, buf := newBufferLogger()

		l := newGormSlogLogger(base, &config.Config{})
		l.Trace(context.Background(), time.Now().Add(-time.Second), fixedSQL, nil)

		assert.Contains(t, buf.String(), `"msg":"GORM slow query"`)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})

	t.Run("every statement in debug mode", func(t *testing.T) {
		base, buf := newBufferLogger()
		cfg := &config.Config{}
		cfg.Env.Debug = true

		l := newGormSlogLogger(base, cfg)
		l.Trace(context.Background(), time.Now(), fixedSQL, nil)

		assert.Contains(t, buf.String(), `"msg":"GORM query"`)
	})

	t.Run("silent mode", func(t *testing.T) {
		base, buf := newBufferLogger()

		l := newGormSlogLogger(base, &config.Config{}).LogMode(logger.Silent)
		l.Trace(context.Background(), time.Now(), fixedSQL, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}

func TestPoolWaitAttrs(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	_, _, waited := poolWaitAttrs(prev, prev)
	assert.False(t, waited)

	level, attrs, waited := poolWaitAttrs(prev, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond})
	assert.True(t, waited)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Equal(t, int64(2), attrs[0].Value.Int64())
	assert.Equal(t, 5*time.Millisecond, attrs[2].Value.Duration())

	level, _, _ = poolWaitAttrs(prev, sql.DBStats{WaitCount: 11, WaitDuration: 2 * time.Second})
	assert.Equal(t, slog.LevelWarn, level)
}
