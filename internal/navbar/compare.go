package navbar

import (
	"fmt"
	"strconv"
)

// Difference describes one field where two navbars disagree.
type Difference struct {
	Location string
	Field    string
	Left     string
	Right    string
}

func (d Difference) String() string {
	return fmt.Sprintf("%s %s: %q != %q", d.Location, d.Field, d.Left, d.Right)
}

const absent = "<absent>"

// Compare returns the structural differences between a and b in traversal
// order. Equal navbars yield no differences.
func Compare(a, b Navbar) []Difference {
	return compareEntries(a, b, "")
}

func compareEntries(a, b Navbar, parentLoc string) []Difference {
	var diffs []Difference
	for i := 0; i < max(len(a), len(b)); i++ {
		loc := parentLoc + "[" + strconv.Itoa(i) + "]"
		switch {
		case i >= len(a):
			diffs = append(diffs, Difference{Location: loc, Field: "entry", Left: absent, Right: describe(b[i])})
		case i >= len(b):
			diffs = append(diffs, Difference{Location: loc, Field: "entry", Left: describe(a[i]), Right: absent})
		default:
			diffs = append(diffs, compareEntry(a[i], b[i], loc)...)
		}
	}
	return diffs
}

func compareEntry(a, b Entry, loc string) []Difference {
	if a == nil || b == nil || a.Kind() != b.Kind() {
		if a == nil && b == nil {
			return nil
		}
		return []Difference{{Location: loc, Field: "kind", Left: kindOf(a), Right: kindOf(b)}}
	}
	var diffs []Difference
	field := func(name, l, r string) {
		if l != r {
			diffs = append(diffs, Difference{Location: loc, Field: name, Left: l, Right: r})
		}
	}
	switch av := a.(type) {
	case Link:
		bv := b.(Link)
		field("path", av.Path, bv.Path)
		field("text", av.Text, bv.Text)
		field("icon", av.Icon, bv.Icon)
	case Group:
		bv := b.(Group)
		field("text", av.Text, bv.Text)
		field("icon", av.Icon, bv.Icon)
		field("prefix", av.Prefix, bv.Prefix)
		field("link", av.Link, bv.Link)
		diffs = append(diffs, compareEntries(av.Children, bv.Children, loc+".children")...)
	}
	return diffs
}

func kindOf(e Entry) string {
	if e == nil {
		return absent
	}
	return string(e.Kind())
}

func describe(e Entry) string {
	switch v := e.(type) {
	case Link:
		if v.Text != "" {
			return v.Text
		}
		return v.Path
	case Group:
		return v.Text
	default:
		return absent
	}
}
