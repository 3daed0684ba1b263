// Package content discovers display titles for navbar links from the
// Markdown pages they point at.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"git.home.luguber.info/inful/blogcfg/internal/logfields"
	"git.home.luguber.info/inful/blogcfg/internal/navbar"
)

// Source of a discovered title.
type Source string

const (
	SourceFrontmatter Source = "frontmatter"
	SourceHeading     Source = "heading"
	SourceFallback    Source = "fallback"
)

// Title is the label chosen for one link.
type Title struct {
	Text   string
	Source Source
	// File is the page the title was read from; empty for fallbacks.
	File string
}

// Finder reads page titles below a content root.
type Finder struct {
	fsys fs.FS
	base string
}

// NewFinder returns a Finder rooted at dir. base is the site base path
// stripped from links before lookup.
func NewFinder(dir, base string) *Finder {
	return &Finder{fsys: os.DirFS(dir), base: base}
}

// NewFinderFS returns a Finder over an arbitrary file system.
func NewFinderFS(fsys fs.FS, base string) *Finder {
	return &Finder{fsys: fsys, base: base}
}

// Candidates lists the files, relative to the content root, that may hold
// the page for link, in lookup order.
func Candidates(link, base string) []string {
	if navbar.IsExternal(link) {
		return nil
	}
	p := link
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if base != "" && base != "/" {
		p = strings.TrimPrefix(p, strings.TrimSuffix(base, "/"))
	}
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if strings.HasSuffix(link, "/") || p == "" {
		dir := p
		return []string{path.Join(dir, "README.md"), path.Join(dir, "index.md"), path.Join(dir, "_index.md")}
	}
	p = strings.TrimSuffix(p, ".html")
	p = strings.TrimSuffix(p, ".md")
	return []string{p + ".md", path.Join(p, "README.md"), path.Join(p, "index.md"), path.Join(p, "_index.md")}
}

// Lookup returns the title of the page behind link. A frontmatter shortTitle
// or title wins, then the first heading; without a page the label is derived
// from the link itself.
func (f *Finder) Lookup(link string) (Title, error) {
	for _, name := range Candidates(link, f.base) {
		data, err := fs.ReadFile(f.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Title{}, fmt.Errorf("read %s: %w", name, err)
		}
		return pageTitle(name, data, link)
	}
	return Title{Text: navbar.Label(link), Source: SourceFallback}, nil
}

func pageTitle(name string, data []byte, link string) (Title, error) {
	raw, body, had, err := SplitFrontmatter(data)
	if err != nil {
		return Title{}, fmt.Errorf("%s: %w", name, err)
	}
	if had {
		fm, err := parseFrontmatter(raw)
		if err != nil {
			return Title{}, fmt.Errorf("%s: %w", name, err)
		}
		if t := strings.TrimSpace(fm.ShortTitle); t != "" {
			return Title{Text: t, Source: SourceFrontmatter, File: name}, nil
		}
		if t := strings.TrimSpace(fm.Title); t != "" {
			return Title{Text: t, Source: SourceFrontmatter, File: name}, nil
		}
	}
	if t := FirstHeading(body); t != "" {
		return Title{Text: t, Source: SourceHeading, File: name}, nil
	}
	return Title{Text: navbar.Label(link), Source: SourceFallback, File: name}, nil
}

// Discover finds titles for every plain link in rs, keyed by resolved link.
// Unreadable pages are logged and fall back to the derived label.
func (f *Finder) Discover(rs []navbar.Resolved) map[string]Title {
	out := map[string]Title{}
	for _, r := range navbar.Flatten(rs) {
		if r.Kind != navbar.KindLink || !r.Plain {
			continue
		}
		if _, seen := out[r.Link]; seen {
			continue
		}
		t, err := f.Lookup(r.Link)
		if err != nil {
			slog.Warn("Title discovery failed; using derived label",
				logfields.Entry(r.Location), logfields.Error(err))
			t = Title{Text: navbar.Label(r.Link), Source: SourceFallback}
		}
		out[r.Link] = t
	}
	return out
}
