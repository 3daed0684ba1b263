// Package preview renders a resolved navbar for humans: an ASCII tree, a
// markdown list, the same list as HTML, or a JSON document.
package preview

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"git.home.luguber.info/inful/blogcfg/internal/navbar"
	"git.home.luguber.info/inful/blogcfg/internal/site"
)

// Format selects the preview rendering.
type Format string

const (
	FormatTree     Format = "tree"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatTree, FormatMarkdown, FormatHTML, FormatJSON}
}

// Render renders the navbar of one locale. Labels of plain links come from
// titles when present and from navbar.Label otherwise.
func Render(locale string, n navbar.Navbar, titles map[string]string, format Format) (string, error) {
	p := &printer{titles: titles}
	resolved := navbar.Resolve(n)
	switch format {
	case FormatTree:
		return p.tree(locale, resolved), nil
	case FormatMarkdown:
		return p.markdown(resolved), nil
	case FormatHTML:
		return p.html(resolved)
	case FormatJSON:
		return p.json(locale, resolved)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

type printer struct {
	titles map[string]string
}

func (p *printer) label(r navbar.Resolved) string {
	if r.Text != "" {
		return r.Text
	}
	if t, ok := p.titles[r.Link]; ok && t != "" {
		return t
	}
	return navbar.Label(r.Link)
}

func (p *printer) tree(locale string, rs []navbar.Resolved) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Navbar %s\n", locale)
	p.treeLevel(&sb, rs, "")
	fmt.Fprintf(&sb, "\nTotal: %d entries\n", len(navbar.Flatten(rs)))
	return sb.String()
}

func (p *printer) treeLevel(sb *strings.Builder, rs []navbar.Resolved, indent string) {
	for i, r := range rs {
		branch, next := "├── ", "│   "
		if i == len(rs)-1 {
			branch, next = "└── ", "    "
		}
		sb.WriteString(indent + branch + p.label(r))
		if r.Icon != "" {
			fmt.Fprintf(sb, " [%s]", r.Icon)
		}
		if r.Kind == navbar.KindGroup && r.Prefix != "" {
			fmt.Fprintf(sb, " (prefix %s)", r.Prefix)
		}
		if r.Link != "" {
			sb.WriteString(" → " + r.Link)
		}
		sb.WriteString("\n")
		p.treeLevel(sb, r.Children, indent+next)
	}
}

func (p *printer) markdown(rs []navbar.Resolved) string {
	var sb strings.Builder
	p.markdownLevel(&sb, rs, 0)
	return sb.String()
}

func (p *printer) markdownLevel(sb *strings.Builder, rs []navbar.Resolved, depth int) {
	for _, r := range rs {
		sb.WriteString(strings.Repeat("  ", depth) + "- ")
		label := escapeMarkdown(p.label(r))
		if r.Link != "" {
			fmt.Fprintf(sb, "[%s](<%s>)", label, r.Link)
		} else {
			sb.WriteString(label)
		}
		sb.WriteString("\n")
		p.markdownLevel(sb, r.Children, depth+1)
	}
}

func (p *printer) html(rs []navbar.Resolved) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(p.markdown(rs)), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

type node struct {
	Text     string `json:"text"`
	Icon     string `json:"icon,omitempty"`
	Link     string `json:"link,omitempty"`
	Prefix   string `json:"prefix,omitempty"`
	Children []node `json:"children,omitempty"`
}

func (p *printer) json(locale string, rs []navbar.Resolved) (string, error) {
	doc := struct {
		Locale  string `json:"locale"`
		Entries []node `json:"entries"`
	}{Locale: locale, Entries: p.nodes(rs)}
	data, err := site.EncodeJSON(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (p *printer) nodes(rs []navbar.Resolved) []node {
	out := make([]node, 0, len(rs))
	for _, r := range rs {
		n := node{Text: p.label(r), Icon: r.Icon, Link: r.Link}
		if r.Kind == navbar.KindGroup {
			n.Prefix = r.Prefix
			n.Children = p.nodes(r.Children)
		}
		out = append(out, n)
	}
	return out
}

var markdownEscaper = strings.NewReplacer(`[`, `\[`, `]`, `\]`, `*`, `\*`, `_`, `\_`, "`", "\\`")

func escapeMarkdown(s string) string { return markdownEscaper.Replace(s) }
