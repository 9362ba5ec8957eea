package fieldpath_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signalforge/pkg/fieldpath"
)

func sampleData() map[string]any {
	return map[string]any{
		"name": "order",
		"user": map[string]any{
			"address": map[string]any{"city": "Zagreb"},
		},
		"items": []any{
			map[string]any{"name": "a", "tags": []any{"x", "y"}},
			map[string]any{"name": ""},
			map[string]any{"sku": "no-name"},
		},
		"prices": map[string]any{"eur": int64(10), "usd": int64(12)},
		"title":  nil,
	}
}

func TestResolve(t *testing.T) {
	data := sampleData()

	t.Run("plain key", func(t *testing.T) {
		v, ok := fieldpath.Resolve("name", data)
		require.True(t, ok)
		assert.Equal(t, "order", v)
	})

	t.Run("nested maps", func(t *testing.T) {
		v, ok := fieldpath.Resolve("user.address.city", data)
		require.True(t, ok)
		assert.Equal(t, "Zagreb", v)
	})

	t.Run("list index", func(t *testing.T) {
		v, ok := fieldpath.Resolve("items.0.tags.1", data)
		require.True(t, ok)
		assert.Equal(t, "y", v)
	})

	t.Run("present null", func(t *testing.T) {
		v, ok := fieldpath.Resolve("title", data)
		assert.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("misses", func(t *testing.T) {
		for _, path := range []string{"missing", "items.9", "items.-1", "items.x", "name.length", "user.address.city.zip", "items.01x"} {
			_, ok := fieldpath.Resolve(path, data)
			assert.False(t, ok, path)
		}
	})
}

func TestHasWildcard(t *testing.T) {
	assert.True(t, fieldpath.HasWildcard("items.*.name"))
	assert.False(t, fieldpath.HasWildcard("items.0.name"))
}

func TestExpand(t *testing.T) {
	data := sampleData()

	t.Run("pattern without wildcard", func(t *testing.T) {
		fields, truncated := fieldpath.Expand("user.address.city", data, fieldpath.DefaultLimits())
		assert.False(t, truncated)
		require.Len(t, fields, 1)
		assert.Equal(t, fieldpath.Field{Path: "user.address.city", Value: "Zagreb", Present: true}, fields[0])
	})

	t.Run("pattern without wildcard on missing field", func(t *testing.T) {
		fields, _ := fieldpath.Expand("nope", data, fieldpath.DefaultLimits())
		require.Len(t, fields, 1)
		assert.False(t, fields[0].Present)
	})

	t.Run("list wildcard keeps absent leaves", func(t *testing.T) {
		fields, _ := fieldpath.Expand("items.*.name", data, fieldpath.DefaultLimits())
		assert.Equal(t, []fieldpath.Field{
			{Path: "items.0.name", Value: "a", Present: true},
			{Path: "items.1.name", Value: "", Present: true},
			{Path: "items.2.name", Value: nil, Present: false},
		}, fields)
	})

	t.Run("map wildcard in sorted order", func(t *testing.T) {
		fields, _ := fieldpath.Expand("prices.*", data, fieldpath.DefaultLimits())
		require.Len(t, fields, 2)
		assert.Equal(t, "prices.eur", fields[0].Path)
		assert.Equal(t, "prices.usd", fields[1].Path)
	})

	t.Run("nested wildcards", func(t *testing.T) {
		fields, _ := fieldpath.Expand("items.*.tags.*", data, fieldpath.DefaultLimits())
		paths := make([]string, 0, len(fields))
		for _, f := range fields {
			paths = append(paths, f.Path)
		}
		assert.Equal(t, []string{"items.0.tags.0", "items.0.tags.1"}, paths)
	})

	t.Run("absent container yields nothing", func(t *testing.T) {
		fields, truncated := fieldpath.Expand("orders.*.id", data, fieldpath.DefaultLimits())
		assert.Empty(t, fields)
		assert.False(t, truncated)
	})

	t.Run("scalar under wildcard yields nothing", func(t *testing.T) {
		fields, _ := fieldpath.Expand("name.*", data, fieldpath.DefaultLimits())
		assert.Empty(t, fields)
	})
}

func TestExpandLimits(t *testing.T) {
	t.Run("depth beyond the limit terminates", func(t *testing.T) {
		var node any = "leaf"
		for range 100 {
			node = []any{node}
		}
		pattern := strings.TrimSuffix(strings.Repeat("*.", 100), ".")

		fields, truncated := fieldpath.Expand(pattern, node, fieldpath.DefaultLimits())
		assert.Empty(t, fields)
		assert.True(t, truncated)
	})

	t.Run("within depth limit", func(t *testing.T) {
		var node any = "leaf"
		for range 5 {
			node = []any{node}
		}
		fields, truncated := fieldpath.Expand("*.*.*.*.*", node, fieldpath.Limits{MaxDepth: 5})
		assert.False(t, truncated)
		require.Len(t, fields, 1)
		assert.Equal(t, "0.0.0.0.0", fields[0].Path)
		assert.Equal(t, "leaf", fields[0].Value)
	})

	t.Run("nesting at exactly the default depth", func(t *testing.T) {
		nested := func(levels int) any {
			var node any = "leaf"
			for range levels {
				node = []any{node}
			}
			return node
		}
		pattern := func(segments int) string {
			return strings.TrimSuffix(strings.Repeat("*.", segments), ".")
		}

		// The last segment is walked at depth 32.
		fields, truncated := fieldpath.Expand(pattern(33), nested(33), fieldpath.DefaultLimits())
		assert.False(t, truncated)
		require.Len(t, fields, 1)
		assert.Equal(t, "leaf", fields[0].Value)
		assert.Equal(t, strings.TrimSuffix(strings.Repeat("0.", 33), "."), fields[0].Path)

		fields, truncated = fieldpath.Expand(pattern(34), nested(34), fieldpath.DefaultLimits())
		assert.True(t, truncated)
		assert.Empty(t, fields)
	})

	t.Run("long keys are dropped", func(t *testing.T) {
		long := strings.Repeat("k", 64)
		data := map[string]any{
			"m": map[string]any{"short": int64(1), long: int64(2)},
		}
		fields, truncated := fieldpath.Expand("m.*", data, fieldpath.Limits{MaxPathLength: 32})
		assert.True(t, truncated)
		require.Len(t, fields, 1)
		assert.Equal(t, "m.short", fields[0].Path)
	})
}
