package emit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/blogcfg/internal/navbar"
	"git.home.luguber.info/inful/blogcfg/internal/site"
	"git.home.luguber.info/inful/blogcfg/internal/theme"
	_ "git.home.luguber.info/inful/blogcfg/internal/theme/themes"
)

func emitFiles(t *testing.T, target theme.Target, in Input) map[string][]byte {
	t.Helper()
	em, err := For(target)
	require.NoError(t, err)
	assert.Equal(t, target, em.Target())
	files, err := em.Emit(in)
	require.NoError(t, err)
	out := map[string][]byte{}
	for _, f := range files {
		out[f.Name] = f.Data
	}
	return out
}

// compareGolden compares actual with testdata/golden/name after decoding both,
// so formatting differences do not matter. UPDATE_GOLDEN=1 rewrites the file.
func compareGolden(t *testing.T, name string, actual []byte, unmarshal func([]byte, any) error) {
	t.Helper()
	golden := filepath.Join("testdata", "golden", name)
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		require.NoError(t, os.WriteFile(golden, actual, 0o600))
		return
	}
	// #nosec G304 - test file
	want, err := os.ReadFile(golden)
	require.NoError(t, err)

	var w, a any
	require.NoError(t, unmarshal(want, &w))
	require.NoError(t, unmarshal(actual, &a))
	assert.Equal(t, w, a, "%s mismatch; run UPDATE_GOLDEN=1 go test ./internal/emit to accept", name)
}

func hopeInput() Input {
	th, _ := theme.Resolve("hope")
	return Input{Config: site.Example(), Theme: th}
}

func TestVuePress_Golden(t *testing.T) {
	files := emitFiles(t, theme.TargetVuePress, hopeInput())
	require.Len(t, files, 2)
	compareGolden(t, "vuepress_config.json", files[VuePressConfigFile], json.Unmarshal)
	compareGolden(t, "vuepress_navbar.json", files[VuePressNavbarFile], json.Unmarshal)
}

func TestVuePress_Deterministic(t *testing.T) {
	a := emitFiles(t, theme.TargetVuePress, hopeInput())
	b := emitFiles(t, theme.TargetVuePress, hopeInput())
	assert.Equal(t, a, b)
}

func TestVuePress_MultiLocaleNavbars(t *testing.T) {
	cfg, err := site.Assemble("/",
		map[string]site.Locale{
			"/":    {Lang: "zh-CN", Title: "Blog"},
			"/en/": {Lang: "en-US", Title: "Blog"},
		},
		site.ThemeRef{Name: "hope", Options: map[string]any{
			"locales": map[string]any{"/en/": map[string]any{"selectLanguageName": "English"}},
		}},
		site.WithNavbar("/", navbar.Build(navbar.Path("/"))),
		site.WithNavbar("/en/", navbar.Build(navbar.Path("/en/"))),
	)
	require.NoError(t, err)
	th, _ := theme.Resolve("hope")

	files := emitFiles(t, theme.TargetVuePress, Input{Config: cfg, Theme: th})

	var doc struct {
		Theme struct {
			Options map[string]any `json:"options"`
		} `json:"theme"`
	}
	require.NoError(t, json.Unmarshal(files[VuePressConfigFile], &doc))
	assert.NotContains(t, doc.Theme.Options, "navbar")
	locales := doc.Theme.Options["locales"].(map[string]any)
	en := locales["/en/"].(map[string]any)
	assert.Equal(t, "English", en["selectLanguageName"])
	assert.Equal(t, []any{"/en/"}, en["navbar"])
	assert.Equal(t, []any{"/"}, locales["/"].(map[string]any)["navbar"])
}

func TestVuePress_ExplicitPackage(t *testing.T) {
	in := hopeInput()
	in.Config.Theme.Package = "@vuepress/theme-default"
	files := emitFiles(t, theme.TargetVuePress, in)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(files[VuePressConfigFile], &doc))
	th := doc["theme"].(map[string]any)
	assert.Equal(t, "@vuepress/theme-default", th["package"])
	assert.NotContains(t, th, "version")
}

func hextraInput() Input {
	cfg, _ := site.Assemble("/",
		map[string]site.Locale{
			"/": {
				Lang:        "zh-CN",
				Title:       "Skiars's Rambling",
				Description: "A blog demo for vuepress-theme-hope",
			},
			"/en/": {Lang: "en-US", Title: "Rambling"},
		},
		site.ThemeRef{Name: "hextra", Options: map[string]any{
			"navbar": map[string]any{"width": "wide"},
		}},
		site.WithHostname("blog.example.com"),
		site.WithRepo("https://github.com/skiars/blog"),
		site.WithNavbar("/", site.ExampleNavbar()),
		site.WithNavbar("/en/", navbar.Build(
			navbar.Path("/en/"),
			navbar.Item("About", "info", "/en/about"),
		)),
	)
	th, _ := theme.Resolve("hextra")
	return Input{
		Config: cfg,
		Theme:  th,
		Titles: map[string]string{
			"/":                          "Home page",
			"/posts/interpreter/0-intro": "Intro",
		},
	}
}

func TestHugo_Golden(t *testing.T) {
	files := emitFiles(t, theme.TargetHugo, hextraInput())
	require.Len(t, files, 2)
	compareGolden(t, "hugo_hextra.yaml", files[HugoConfigFile], yaml.Unmarshal)
	assert.Equal(t, "module blog-example-com\n\ngo 1.21\n\nrequire github.com/imfing/hextra v0.11.0\n",
		string(files[HugoGoModFile]))
}

func TestHugo_Deterministic(t *testing.T) {
	a := emitFiles(t, theme.TargetHugo, hextraInput())
	b := emitFiles(t, theme.TargetHugo, hextraInput())
	assert.Equal(t, a, b)
}

func TestHugo_UnknownThemeUsesThemeDirectory(t *testing.T) {
	cfg := site.Example()
	cfg.Theme.Name = "ananke"
	th, known := theme.Resolve("ananke")
	require.False(t, known)

	files := emitFiles(t, theme.TargetHugo, Input{Config: cfg, Theme: th})
	require.Len(t, files, 1)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(files[HugoConfigFile], &doc))
	assert.Equal(t, "ananke", doc["theme"])
	assert.NotContains(t, doc, "module")

	menu := doc["menu"].(map[string]any)["main"].([]any)
	assert.Len(t, menu, 6)
	first := menu[0].(map[string]any)
	assert.Equal(t, "Home", first["name"])
	last := menu[5].(map[string]any)
	assert.Equal(t, "About", last["name"])
	assert.Equal(t, "/about", last["url"])
}

func TestHugo_RelearnShortcutsMenu(t *testing.T) {
	cfg := site.Example()
	cfg.Base = "/blog/"
	cfg.Theme.Name = "relearn"
	th, _ := theme.Resolve("relearn")

	files := emitFiles(t, theme.TargetHugo, Input{Config: cfg, Theme: th})

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(files[HugoConfigFile], &doc))
	menus := doc["menu"].(map[string]any)
	require.Contains(t, menus, "shortcuts")
	items := menus["shortcuts"].([]any)
	about := items[len(items)-1].(map[string]any)
	assert.Equal(t, "/blog/about", about["url"])
	for _, it := range items {
		assert.NotContains(t, it.(map[string]any), "pre")
	}

	params := doc["params"].(map[string]any)
	assert.Equal(t, false, params["disableShortcutsTitle"])
	assert.Equal(t, "module blogcfg-site\n\ngo 1.21\n", string(files[HugoGoModFile]))
}

func TestHugo_ThemeNormalizesUserOptions(t *testing.T) {
	in := hextraInput()
	in.Config.Theme.Options = map[string]any{
		"search": false,
		"navbar": map[string]any{"width": "wide"},
	}
	files := emitFiles(t, theme.TargetHugo, in)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(files[HugoConfigFile], &doc))
	params := doc["params"].(map[string]any)
	assert.Equal(t, map[string]any{"enable": false}, params["search"])
	assert.Equal(t, map[string]any{"width": "wide", "displayTitle": true, "displayLogo": false}, params["navbar"])
}

func TestHugo_IconsOnlyForThemesThatRenderThem(t *testing.T) {
	var doc map[string]any
	files := emitFiles(t, theme.TargetHugo, hextraInput())
	require.NoError(t, yaml.Unmarshal(files[HugoConfigFile], &doc))
	var icons []any
	for _, it := range doc["menu"].(map[string]any)["main"].([]any) {
		if pre, ok := it.(map[string]any)["pre"]; ok {
			icons = append(icons, pre)
		}
	}
	assert.Equal(t, []any{"edit", "edit", "edit", "info"}, icons)

	cfg := site.Example()
	cfg.Theme.Name = "ananke"
	th, _ := theme.Resolve("ananke")
	files = emitFiles(t, theme.TargetHugo, Input{Config: cfg, Theme: th})
	doc = nil
	require.NoError(t, yaml.Unmarshal(files[HugoConfigFile], &doc))
	for _, it := range doc["menu"].(map[string]any)["main"].([]any) {
		assert.NotContains(t, it.(map[string]any), "pre")
	}
}

func TestFor_Unknown(t *testing.T) {
	_, err := For("jekyll")
	require.Error(t, err)
}

func TestBaseURL(t *testing.T) {
	assert.Equal(t, "/", BaseURL("", "/"))
	assert.Equal(t, "https://blog.example.com/", BaseURL("blog.example.com", "/"))
	assert.Equal(t, "http://localhost:1313/blog/", BaseURL("http://localhost:1313/", "/blog/"))
}

func TestWithBase(t *testing.T) {
	assert.Equal(t, "/about", withBase("/", "/about"))
	assert.Equal(t, "/blog/about", withBase("/blog/", "/about"))
	assert.Equal(t, "https://x.dev", withBase("/blog/", "https://x.dev"))
}
