package navbar

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleYAML = `
- /
- text: Posts
  icon: edit
  prefix: /posts/
  children:
    - text: Interpreter
      icon: edit
      prefix: interpreter/
      children: [0-intro]
    - text: Hello world
      icon: edit
      link: 2023/hello-world
- text: About
  icon: info
  link: /about
`

const sampleJSON = `["/",{"text":"Posts","icon":"edit","prefix":"/posts/","children":[{"text":"Interpreter","icon":"edit","prefix":"interpreter/","children":["0-intro"]},{"text":"Hello world","icon":"edit","link":"2023/hello-world"}]},{"text":"About","icon":"info","link":"/about"}]`

func TestUnmarshalYAML_Literal(t *testing.T) {
	var n Navbar
	require.NoError(t, yaml.Unmarshal([]byte(sampleYAML), &n))
	if diff := cmp.Diff(sample(), n); diff != "" {
		t.Fatalf("navbar mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalYAML_Aliases(t *testing.T) {
	src := `
shared: &about {text: About, link: /about}
nav:
  - *about
`
	var doc struct {
		Nav Navbar `yaml:"nav"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	assert.Equal(t, Navbar{Item("About", "", "/about")}, doc.Nav)
}

func TestUnmarshalYAML_Errors(t *testing.T) {
	cases := map[string]string{
		"not a sequence":   "text: Posts",
		"unknown field":    "- {text: Posts, url: /posts}",
		"nested mapping":   "- {text: {a: b}, link: /x}",
		"prefix w/o group": "- {text: Posts, prefix: /posts/, link: x}",
		"bad children":     "- {text: Posts, children: {a: b}}",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			var n Navbar
			assert.Error(t, yaml.Unmarshal([]byte(src), &n))
		})
	}
}

func TestUnmarshalYAML_EmptyChildrenKeepsGroup(t *testing.T) {
	var n Navbar
	require.NoError(t, yaml.Unmarshal([]byte("- {text: Drafts, children: []}"), &n))
	require.Len(t, n, 1)
	g, ok := n[0].(Group)
	require.True(t, ok)
	assert.Empty(t, g.Children)
}

func TestMarshalJSON_Literal(t *testing.T) {
	out, err := json.Marshal(sample())
	require.NoError(t, err)
	assert.JSONEq(t, sampleJSON, string(out))
	assert.Equal(t, sampleJSON, string(out), "key order must be stable")
}

func TestJSON_RoundTrip(t *testing.T) {
	var n Navbar
	require.NoError(t, json.Unmarshal([]byte(sampleJSON), &n))
	if diff := cmp.Diff(sample(), n); diff != "" {
		t.Fatalf("navbar mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalJSON_Errors(t *testing.T) {
	for _, src := range []string{`{}`, `[1]`, `[{"text":"x","weight":"1"}]`, `[{"text":3}]`} {
		var n Navbar
		assert.Error(t, json.Unmarshal([]byte(src), &n), src)
	}
}

func TestMarshalYAML_Idempotent(t *testing.T) {
	first, err := yaml.Marshal(sample())
	require.NoError(t, err)
	second, err := yaml.Marshal(sample())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var back Navbar
	require.NoError(t, yaml.Unmarshal(first, &back))
	assert.Empty(t, Compare(sample(), back))
}

func TestMarshal_GroupWithoutChildren(t *testing.T) {
	out, err := json.Marshal(Build(Group{Text: "Drafts"}))
	require.NoError(t, err)
	assert.Equal(t, `[{"text":"Drafts","children":[]}]`, string(out))
}
