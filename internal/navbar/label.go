package navbar

import (
	"path"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// menuNamespace scopes the name-based menu identifiers.
var menuNamespace = uuid.MustParse("6f1c2b0e-6c7d-4f55-9a43-2d6b8f0f7a31")

// Identifier returns a stable identifier for a resolved entry within a locale.
// Hugo menus link children to parents by identifier, so equal input must
// always produce the same value.
func Identifier(locale string, r Resolved) string {
	key := strings.Join([]string{locale, r.Location, r.Text, r.Link}, "\x00")
	return uuid.NewSHA1(menuNamespace, []byte(key)).String()
}

// Label derives a display label from a link target: "/" is "Home", otherwise
// the last path segment is title-cased with dashes and underscores as spaces.
func Label(link string) string {
	trimmed := strings.Trim(link, "/")
	if trimmed == "" {
		return "Home"
	}
	if i := strings.IndexAny(trimmed, "#?"); i >= 0 {
		trimmed = trimmed[:i]
	}
	seg := path.Base(trimmed)
	seg = strings.TrimSuffix(seg, path.Ext(seg))
	seg = strings.NewReplacer("-", " ", "_", " ").Replace(seg)
	seg = strings.Join(strings.Fields(seg), " ")
	if seg == "" {
		return "Home"
	}
	return cases.Title(language.Und).String(seg)
}
