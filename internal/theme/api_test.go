package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTheme struct{ NullTheme }

func (fakeTheme) Name() string { return "fake" }
func (fakeTheme) Features() Features {
	return Features{Name: "fake", Target: TargetVuePress}
}

func TestRegistry(t *testing.T) {
	Register(fakeTheme{})
	Register(nil)

	assert.NotNil(t, Get("fake"))
	assert.NotNil(t, Get("  FAKE "))
	assert.Contains(t, Names(), "fake")

	got, ok := Resolve("fake")
	assert.True(t, ok)
	assert.Equal(t, TargetVuePress, got.Features().Target)
}

func TestResolve_Unknown(t *testing.T) {
	got, ok := Resolve("Mystery")
	assert.False(t, ok)
	assert.Equal(t, "mystery", got.Name())
	assert.Equal(t, TargetHugo, got.Features().Target)
	assert.Equal(t, "main", got.Features().MenuName)
}

func TestMergeParams(t *testing.T) {
	dst := map[string]any{
		"search": map[string]any{"enable": true, "type": "flexsearch"},
		"list":   []string{"a"},
	}
	MergeParams(dst, map[string]any{
		"search": map[string]any{"type": "lunr"},
		"list":   []string{"b", "c"},
		"nested": map[string]any{"x": 1},
	})
	assert.Equal(t, map[string]any{"enable": true, "type": "lunr"}, dst["search"])
	assert.Equal(t, []string{"b", "c"}, dst["list"])
	assert.Equal(t, map[string]any{"x": 1}, dst["nested"])
}

func TestSetDefault(t *testing.T) {
	p := map[string]any{"a": false}
	SetDefault(p, "a", true)
	SetDefault(p, "b", 2)
	assert.Equal(t, false, p["a"])
	assert.Equal(t, 2, p["b"])
}
