package logfields

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Locale", KeyLocale, "/en/", Locale("/en/")},
		{"Path", KeyPath, "site/hugo.yaml", Path("site/hugo.yaml")},
		{"Theme", KeyTheme, "hope", Theme("hope")},
		{"Target", KeyTarget, "hugo", Target("hugo")},
		{"Stage", KeyStage, "render", Stage("render")},
		{"Entry", KeyEntry, "[1].children[0]", Entry("[1].children[0]")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.attrKey, c.attr.Key)
			assert.Equal(t, c.attrVal, c.attr.Value.String())
		})
	}
}

func TestErrorHelper(t *testing.T) {
	assert.Equal(t, "", Error(nil).Value.String())
	assert.Equal(t, "boom", Error(errors.New("boom")).Value.String())
	assert.InDelta(t, 1.5, DurationMS(1.5).Value.Float64(), 0.0001)
}
