package navbar

// Kind discriminates the two entry shapes.
type Kind string

const (
	KindLink  Kind = "link"
	KindGroup Kind = "group"
)

// Entry is a navbar entry: either a Link or a Group.
type Entry interface {
	Kind() Kind
	clone() Entry
}

// Link is a terminal navbar entry.
type Link struct {
	Path string
	Text string
	Icon string
}

// Kind implements Entry.
func (Link) Kind() Kind { return KindLink }

func (l Link) clone() Entry { return l }

// Plain reports whether the link is a bare path with no label of its own.
// The theme derives the label of a plain link from the target page.
func (l Link) Plain() bool { return l.Text == "" && l.Icon == "" }

// Group is a labelled navbar entry with children.
type Group struct {
	Text   string
	Icon   string
	Prefix string
	Link   string
	// Children holds links or nested groups.
	Children Navbar
}

// Kind implements Entry.
func (Group) Kind() Kind { return KindGroup }

func (g Group) clone() Entry {
	g.Children = g.Children.Clone()
	return g
}

// Navbar is the ordered top-level entry sequence.
type Navbar []Entry

// Build returns a navbar holding the given entries. The result does not share
// storage with the argument list.
func Build(entries ...Entry) Navbar {
	return Navbar(entries).Clone()
}

// Path returns a plain link.
func Path(p string) Link { return Link{Path: p} }

// Item returns a labelled link.
func Item(text, icon, link string) Link { return Link{Path: link, Text: text, Icon: icon} }

// Clone returns a deep copy of the navbar.
func (n Navbar) Clone() Navbar {
	if n == nil {
		return nil
	}
	out := make(Navbar, len(n))
	for i, e := range n {
		if e != nil {
			out[i] = e.clone()
		}
	}
	return out
}

// Len returns the total number of entries in the tree.
func (n Navbar) Len() int {
	total := 0
	_ = Walk(n, func(string, Entry, int) error {
		total++
		return nil
	})
	return total
}
