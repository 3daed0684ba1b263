package navbar

import (
	"strconv"
	"strings"
)

// Resolved is an entry with its link and prefix composed against its ancestors.
type Resolved struct {
	Kind     Kind
	Location string
	Depth    int
	Text     string
	Icon     string
	// Link is the resolved target; empty for groups without a link.
	Link string
	// Prefix is the resolved prefix handed to children (groups only).
	Prefix   string
	Plain    bool
	Children []Resolved
}

// Resolve composes every entry's link with the prefixes of its ancestors.
//
// A child's resolved link is the parent's resolved prefix followed by the
// child's own value. A group's own link is resolved against its parent's
// prefix, while its children are resolved against the group's prefix.
// Absolute paths and external URLs are left untouched.
func Resolve(n Navbar) []Resolved {
	return resolveEntries(n, "", "", 0)
}

func resolveEntries(n Navbar, prefix, parentLoc string, depth int) []Resolved {
	out := make([]Resolved, 0, len(n))
	for i, e := range n {
		loc := parentLoc + "[" + strconv.Itoa(i) + "]"
		switch v := e.(type) {
		case Link:
			out = append(out, Resolved{
				Kind:     KindLink,
				Location: loc,
				Depth:    depth,
				Text:     v.Text,
				Icon:     v.Icon,
				Link:     JoinPrefix(prefix, v.Path),
				Plain:    v.Plain(),
			})
		case Group:
			childPrefix := JoinPrefix(prefix, v.Prefix)
			r := Resolved{
				Kind:     KindGroup,
				Location: loc,
				Depth:    depth,
				Text:     v.Text,
				Icon:     v.Icon,
				Prefix:   childPrefix,
				Children: resolveEntries(v.Children, childPrefix, loc+".children", depth+1),
			}
			if v.Link != "" {
				r.Link = JoinPrefix(prefix, v.Link)
			}
			out = append(out, r)
		}
	}
	return out
}

// JoinPrefix composes prefix and value. Absolute and external values are
// returned unchanged; otherwise prefix gets a trailing slash and value is
// appended.
func JoinPrefix(prefix, value string) string {
	if IsAbsolute(value) || IsExternal(value) {
		return value
	}
	if !strings.HasSuffix(prefix, "/") && !strings.HasSuffix(prefix, ".html") {
		prefix += "/"
	}
	return prefix + value
}

// IsAbsolute reports whether p is a site-absolute path.
func IsAbsolute(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//")
}

// IsExternal reports whether p carries a URL scheme or is protocol-relative.
func IsExternal(p string) bool {
	if strings.HasPrefix(p, "//") {
		return true
	}
	colon := strings.IndexByte(p, ':')
	if colon < 1 {
		return false
	}
	for i, c := range p[:colon] {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

// Flatten lists the resolved tree in depth-first pre-order.
func Flatten(rs []Resolved) []Resolved {
	var out []Resolved
	for _, r := range rs {
		out = append(out, r)
		out = append(out, Flatten(r.Children)...)
	}
	return out
}

// Find returns the first resolved entry (depth-first) whose text equals text.
func Find(rs []Resolved, text string) (Resolved, bool) {
	for _, r := range Flatten(rs) {
		if r.Text == text {
			return r, true
		}
	}
	return Resolved{}, false
}
