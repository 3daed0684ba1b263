package content

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogcfg/internal/navbar"
	"git.home.luguber.info/inful/blogcfg/internal/site"
)

func TestSplitFrontmatter(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		fm      string
		body    string
		had     bool
		wantErr error
	}{
		{name: "none", in: "# Title\n", body: "# Title\n"},
		{name: "yaml", in: "---\ntitle: Hi\n---\n# Body\n", fm: "title: Hi\n", body: "# Body\n", had: true},
		{name: "empty", in: "---\n---\nbody\n", body: "body\n", had: true},
		{name: "crlf", in: "---\r\ntitle: Hi\r\n---\r\nbody", fm: "title: Hi\r\n", body: "body", had: true},
		{name: "closing at eof", in: "---\ntitle: Hi\n---", fm: "title: Hi\n", had: true},
		{name: "unterminated", in: "---\ntitle: Hi\n# Body\n", wantErr: ErrMissingClosingDelimiter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, had, err := SplitFrontmatter([]byte(tt.in))
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.had, had)
			assert.Equal(t, tt.fm, string(fm))
			assert.Equal(t, tt.body, string(body))
		})
	}
}

func TestFirstHeading(t *testing.T) {
	assert.Equal(t, "Hello World", FirstHeading([]byte("intro\n\n# Hello *World*\n\n## Next\n")))
	assert.Equal(t, "Top", FirstHeading([]byte("## Sub\n\n# Top\n")))
	assert.Equal(t, "Sub", FirstHeading([]byte("## Sub\n\ntext\n")))
	assert.Equal(t, "Using go test", FirstHeading([]byte("# Using `go test`\n")))
	assert.Equal(t, "Setext", FirstHeading([]byte("Setext\n======\n")))
	assert.Empty(t, FirstHeading([]byte("no headings here\n")))
}

func TestCandidates(t *testing.T) {
	assert.Equal(t, []string{"README.md", "index.md", "_index.md"}, Candidates("/", "/"))
	assert.Equal(t, []string{
		"posts/2023/hello-world.md",
		"posts/2023/hello-world/README.md",
		"posts/2023/hello-world/index.md",
		"posts/2023/hello-world/_index.md",
	}, Candidates("/posts/2023/hello-world", "/"))
	assert.Equal(t, "about.md", Candidates("/about.html#team", "/")[0])
	assert.Equal(t, "about.md", Candidates("/blog/about", "/blog/")[0])
	assert.Equal(t, []string{"en/README.md", "en/index.md", "en/_index.md"}, Candidates("/en/", "/"))
	assert.Nil(t, Candidates("https://example.com/x", "/"))
}

func blogFS() fstest.MapFS {
	return fstest.MapFS{
		"README.md":                    {Data: []byte("---\nhome: true\ntitle: Blog Home\n---\n")},
		"posts/interpreter/0-intro.md": {Data: []byte("---\ntitle: Writing an interpreter\nshortTitle: Intro\n---\n# Ignored\n")},
		"posts/2023/hello-world.md":    {Data: []byte("# Hello, world!\n\nFirst post.\n")},
		"about/README.md":              {Data: []byte("Nothing to see.\n")},
		"broken.md":                    {Data: []byte("---\ntitle: [unclosed\n---\n")},
	}
}

func TestFinder_Lookup(t *testing.T) {
	f := NewFinderFS(blogFS(), "/")

	tests := []struct {
		link   string
		want   string
		source Source
	}{
		{"/", "Blog Home", SourceFrontmatter},
		{"/posts/interpreter/0-intro", "Intro", SourceFrontmatter},
		{"/posts/2023/hello-world", "Hello, world!", SourceHeading},
		{"/about", "About", SourceFallback},
		{"/missing-page", "Missing Page", SourceFallback},
	}
	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			got, err := f.Lookup(tt.link)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Text)
			assert.Equal(t, tt.source, got.Source)
		})
	}

	_, err := f.Lookup("/broken")
	require.Error(t, err)
}

func TestFinder_Discover(t *testing.T) {
	f := NewFinderFS(blogFS(), "/")
	titles := f.Discover(navbar.Resolve(site.ExampleNavbar()))

	// only plain links are looked up
	assert.Len(t, titles, 2)
	assert.Equal(t, "Blog Home", titles["/"].Text)
	assert.Equal(t, "Intro", titles["/posts/interpreter/0-intro"].Text)
	assert.Equal(t, "posts/interpreter/0-intro.md", titles["/posts/interpreter/0-intro"].File)
}

func TestFinder_DiscoverFallsBackOnError(t *testing.T) {
	f := NewFinderFS(blogFS(), "/")
	titles := f.Discover(navbar.Resolve(navbar.Build(navbar.Path("/broken"))))
	assert.Equal(t, Title{Text: "Broken", Source: SourceFallback}, titles["/broken"])
}
