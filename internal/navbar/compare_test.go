package navbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_Equal(t *testing.T) {
	assert.Empty(t, Compare(sample(), sample()))
}

// The blog once carried two navbar definitions: one with the Interpreter
// section and one without. Compare must surface exactly that divergence.
func TestCompare_MissingInterpreterSection(t *testing.T) {
	without := Build(
		Path("/"),
		Group{
			Text:     "Posts",
			Icon:     "edit",
			Prefix:   "/posts/",
			Children: Navbar{Item("Hello world", "edit", "2023/hello-world")},
		},
		Item("About", "info", "/about"),
	)

	diffs := Compare(sample(), without)
	require.Len(t, diffs, 2)
	assert.Equal(t, Difference{Location: "[1].children[0]", Field: "kind", Left: "group", Right: "link"}, diffs[0])
	assert.Equal(t, Difference{Location: "[1].children[1]", Field: "entry", Left: "Hello world", Right: "<absent>"}, diffs[1])
	assert.Contains(t, diffs[1].String(), `[1].children[1] entry: "Hello world" != "<absent>"`)
}

func TestCompare_FieldChanges(t *testing.T) {
	changed := sample()
	changed[2] = Item("About me", "info", "/about")

	diffs := Compare(sample(), changed)
	require.Len(t, diffs, 1)
	assert.Equal(t, "text", diffs[0].Field)
	assert.Equal(t, "[2]", diffs[0].Location)
}
