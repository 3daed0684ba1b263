package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/blogcfg/internal/errors"
	"git.home.luguber.info/inful/blogcfg/internal/lint"
	"git.home.luguber.info/inful/blogcfg/internal/navbar"
	"git.home.luguber.info/inful/blogcfg/internal/site"
)

const referenceConfig = `version: "1"
site:
  base: /
  locales:
    /:
      lang: zh-CN
      title: Skiars's Rambling
      description: A blog demo for vuepress-theme-hope
  theme:
    name: hope
navbar:
  /:
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

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_ReferenceConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "blogcfg.yaml", referenceConfig)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path())
	assert.Empty(t, cfg.LoadIssues())
	assert.Empty(t, navbar.Compare(site.ExampleNavbar(), cfg.Navbars()[site.RootLocale]))

	sc, err := cfg.Assemble()
	require.NoError(t, err)
	assert.Equal(t, "/", sc.Base)
	assert.Equal(t, "zh-CN", sc.Locales[site.RootLocale].Lang)

	flat := navbar.Flatten(navbar.Resolve(sc.Navbars[site.RootLocale]))
	hello, ok := navbar.Find(flat, "Hello world")
	require.True(t, ok)
	assert.Equal(t, "/posts/2023/hello-world", hello.Link)
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "blogcfg.yaml", `site:
  locales:
    /: {lang: en-US, title: Blog}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, DefaultBase, cfg.Site.Base)
	assert.Equal(t, DefaultTheme, cfg.Site.Theme.Name)
	assert.Equal(t, DefaultOutputDirectory, cfg.Output.Directory)
	assert.Equal(t, DefaultContentDirectory, cfg.Content.Directory)
	assert.Equal(t, LogLevelInfo, cfg.Monitoring.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Monitoring.Logging.Format)
	assert.Equal(t, Target(""), cfg.Output.Target)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryConfig))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"unknown field", "site:\n  locales: {/: {lang: en}}\n  colour: red\n", "colour"},
		{"bad version", "version: \"2\"\nsite:\n  locales: {/: {lang: en}}\n", "validation failed"},
		{"no locales", "site:\n  base: /\n", "required configuration missing"},
		{"bad target", "site:\n  locales: {/: {lang: en}}\noutput:\n  target: jekyll\n", "output.target"},
		{"bad level", "site:\n  locales: {/: {lang: en}}\nmonitoring:\n  logging: {level: loud}\n", "monitoring.logging.level"},
		{"bad repo", "site:\n  repo: not a repo\n  locales: {/: {lang: en}}\n", "validation failed"},
		{"prefix on link", "site:\n  locales: {/: {lang: en}}\nnavbar:\n  /:\n    - {text: A, link: /a, prefix: /x/}\n", "prefix"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_NormalizesEnums(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`site:
  theme: {name: " Hextra "}
  locales: {/: {lang: " en "}}
output: {target: HUGO}
monitoring:
  logging: {level: DEBUG, format: Json}
`))
	require.NoError(t, err)
	assert.Equal(t, "hextra", cfg.Site.Theme.Name)
	assert.Equal(t, "en", cfg.Site.Locales["/"].Lang)
	assert.Equal(t, TargetHugo, cfg.Output.Target)
	assert.Equal(t, LogLevelDebug, cfg.Monitoring.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Monitoring.Logging.Format)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("BLOGCFG_TEST_HOST", "blog.example.com")
	dir := t.TempDir()
	path := writeFile(t, dir, "blogcfg.yaml", `site:
  hostname: ${BLOGCFG_TEST_HOST}
  locales: {/: {lang: en, title: "${BLOGCFG_TEST_TITLE}"}}
`)
	writeFile(t, dir, ".env", "BLOGCFG_TEST_TITLE=From dotenv\nBLOGCFG_TEST_HOST=ignored.example.com\n")
	t.Cleanup(func() { _ = os.Unsetenv("BLOGCFG_TEST_TITLE") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "blog.example.com", cfg.Site.Hostname, "process env wins over .env")
	assert.Equal(t, "From dotenv", cfg.Site.Locales["/"].Title)
}

func TestLoad_EnvReload(t *testing.T) {
	t.Setenv("BLOGCFG_TEST_DESC", "from process")
	dir := t.TempDir()
	path := writeFile(t, dir, "blogcfg.yaml", `site:
  locales: {/: {lang: en, title: "${BLOGCFG_TEST_RELOAD}", description: "${BLOGCFG_TEST_DESC}"}}
`)
	writeFile(t, dir, ".env", "BLOGCFG_TEST_RELOAD=first\nBLOGCFG_TEST_DESC=from file\n")
	t.Cleanup(func() { _ = os.Unsetenv("BLOGCFG_TEST_RELOAD") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "first", cfg.Site.Locales["/"].Title)

	writeFile(t, dir, ".env", "BLOGCFG_TEST_RELOAD=second\nBLOGCFG_TEST_DESC=changed file\n")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.Site.Locales["/"].Title, "values from a previous load are replaced")
	assert.Equal(t, "from process", cfg.Site.Locales["/"].Description, "process env still wins")

	writeFile(t, dir, ".env.local", "BLOGCFG_TEST_RELOAD=local\n")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Site.Locales["/"].Title, ".env.local wins over .env")

	require.NoError(t, os.Remove(filepath.Join(dir, ".env.local")))
	require.NoError(t, os.Remove(filepath.Join(dir, ".env")))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Site.Locales["/"].Title, "variables dropped from the files are unset")
	_, set := os.LookupEnv("BLOGCFG_TEST_RELOAD")
	assert.False(t, set)
}

func TestLoad_NavbarFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.yaml", "- /en/\n- {text: About, link: /en/about}\n")
	path := writeFile(t, dir, "blogcfg.yaml", `site:
  locales:
    /: {lang: zh-CN}
    /en/: {lang: en-US}
navbar_files:
  /en/: en.yaml
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.LoadIssues())
	require.Contains(t, cfg.Navbars(), "/en/")
	assert.Equal(t, 2, cfg.Navbars()["/en/"].Len())
	assert.NoError(t, cfg.DuplicateError())
}

func TestLoad_DuplicateNavbarIdentical(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "root.yaml", "- /\n- {text: About, link: /about}\n")
	path := writeFile(t, dir, "blogcfg.yaml", `site:
  locales: {/: {lang: en}}
navbar:
  /:
    - /
    - {text: About, link: /about}
navbar_files:
  /: root.yaml
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	issues := cfg.LoadIssues()
	require.Len(t, issues, 1)
	assert.Equal(t, lint.SeverityWarning, issues[0].Severity)
	assert.Equal(t, RuleNavbarDuplicate, issues[0].Rule)
	assert.NoError(t, cfg.DuplicateError())
}

func TestLoad_DuplicateNavbarDiverging(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "root.yaml", "- /\n- {text: About me, link: /about}\n- /links\n")
	path := writeFile(t, dir, "blogcfg.yaml", `site:
  locales: {/: {lang: en}}
navbar:
  /:
    - /
    - {text: About, link: /about}
navbar_files:
  /: root.yaml
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	issues := cfg.LoadIssues()
	require.Len(t, issues, 2)
	for _, issue := range issues {
		assert.Equal(t, lint.SeverityError, issue.Severity)
		assert.Equal(t, RuleNavbarDuplicateDiverging, issue.Rule)
	}
	assert.Equal(t, "navbar[/][1]", issues[0].Location)
	assert.Equal(t, "navbar[/][2]", issues[1].Location)

	// inline definition is kept
	assert.Equal(t, 2, len(cfg.Navbars()["/"]))

	err = cfg.DuplicateError()
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryNavbar))
}

func TestLoad_NavbarFileMissing(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "blogcfg.yaml", `site:
  locales: {/: {lang: en}}
navbar_files:
  /: missing.yaml
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryConfig))
}

func TestSnapshot(t *testing.T) {
	a, err := Parse(strings.NewReader(referenceConfig))
	require.NoError(t, err)
	b, err := Parse(strings.NewReader(referenceConfig))
	require.NoError(t, err)
	assert.Equal(t, a.Snapshot(), b.Snapshot())
	assert.Len(t, a.Snapshot(), 64)

	b.Monitoring.Logging.Level = LogLevelDebug
	assert.Equal(t, a.Snapshot(), b.Snapshot(), "logging does not affect output")

	b.Navbar["/"] = navbar.Build(navbar.Path("/"))
	assert.NotEqual(t, a.Snapshot(), b.Snapshot())

	var nilCfg *Config
	assert.Empty(t, nilCfg.Snapshot())
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blogcfg.yaml")
	require.NoError(t, Init(path, false))

	err := Init(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, TargetVuePress, cfg.Output.Target)
	assert.Empty(t, navbar.Compare(site.ExampleNavbar(), cfg.Navbars()[site.RootLocale]))
	assert.Equal(t, Example().Snapshot(), cfg.Snapshot())
}

func TestNormalizeTarget(t *testing.T) {
	got, err := NormalizeTarget(" VuePress ")
	require.NoError(t, err)
	assert.Equal(t, TargetVuePress, got)

	_, err = NormalizeTarget("gatsby")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid options")
}
