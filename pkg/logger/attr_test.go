package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signalforge/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("rule", slog.String("name", "min"), slog.Int("size", 5))
	require.Equal(t, "rule", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "name", g[0].Key)
	assert.Equal(t, "size", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestValidationAttrs(t *testing.T) {
	t.Run("field", func(t *testing.T) {
		attr := logger.Field("items.0.name")
		assert.Equal(t, "field", attr.Key)
		assert.Equal(t, "items.0.name", attr.Value.String())
	})

	t.Run("rule", func(t *testing.T) {
		attr := logger.Rule("between")
		assert.Equal(t, "rule", attr.Key)
		assert.Equal(t, "between", attr.Value.String())
	})

	t.Run("pattern", func(t *testing.T) {
		attr := logger.Pattern("/^a+$/i")
		assert.Equal(t, "pattern", attr.Key)
		assert.Equal(t, "/^a+$/i", attr.Value.String())
	})

	t.Run("duration", func(t *testing.T) {
		attr := logger.Duration(150 * time.Millisecond)
		assert.Equal(t, "duration", attr.Key)
		assert.Equal(t, slog.KindDuration, attr.Value.Kind())
		assert.Equal(t, 150*time.Millisecond, attr.Value.Duration())
	})

	t.Run("component", func(t *testing.T) {
		attr := logger.Component("validator")
		assert.Equal(t, "component", attr.Key)
		assert.Equal(t, "validator", attr.Value.String())
	})
}
