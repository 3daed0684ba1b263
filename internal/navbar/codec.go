package navbar

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// The literal syntax accepted by the theme: a string is a plain link, a
// mapping with "children" is a group, any other mapping is a labelled link.

type linkDoc struct {
	Text string `yaml:"text,omitempty" json:"text,omitempty"`
	Icon string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Link string `yaml:"link" json:"link"`
}

type groupDoc struct {
	Text     string `yaml:"text" json:"text"`
	Icon     string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Prefix   string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Link     string `yaml:"link,omitempty" json:"link,omitempty"`
	Children Navbar `yaml:"children" json:"children"`
}

// literal converts n to the framework literal form.
func (n Navbar) literal() []any {
	out := make([]any, 0, len(n))
	for _, e := range n {
		switch v := e.(type) {
		case Link:
			if v.Plain() {
				out = append(out, v.Path)
				continue
			}
			out = append(out, linkDoc{Text: v.Text, Icon: v.Icon, Link: v.Path})
		case Group:
			out = append(out, groupDoc{Text: v.Text, Icon: v.Icon, Prefix: v.Prefix, Link: v.Link, Children: v.Children})
		}
	}
	return out
}

// MarshalYAML implements yaml.Marshaler.
func (n Navbar) MarshalYAML() (any, error) { return n.literal(), nil }

// MarshalJSON implements json.Marshaler.
func (n Navbar) MarshalJSON() ([]byte, error) { return json.Marshal(n.literal()) }

// rawEntry collects the fields of a mapping entry before its shape is known.
type rawEntry struct {
	text, icon, prefix, link string
	hasChildren              bool
	children                 Navbar
}

func (r rawEntry) entry() (Entry, error) {
	if r.hasChildren {
		return Group{Text: r.text, Icon: r.icon, Prefix: r.prefix, Link: r.link, Children: r.children}, nil
	}
	if r.prefix != "" {
		return nil, fmt.Errorf("prefix %q given without children", r.prefix)
	}
	return Link{Path: r.link, Text: r.text, Icon: r.icon}, nil
}

func (r *rawEntry) setString(key, value string) error {
	switch key {
	case "text":
		r.text = value
	case "icon":
		r.icon = value
	case "prefix":
		r.prefix = value
	case "link":
		r.link = value
	default:
		return fmt.Errorf("unknown navbar field %q", key)
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Navbar) UnmarshalYAML(node *yaml.Node) error {
	node = deref(node)
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*n = nil
		return nil
	}
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: navbar must be a sequence", node.Line)
	}
	out := make(Navbar, 0, len(node.Content))
	for _, item := range node.Content {
		e, err := decodeYAMLEntry(item)
		if err != nil {
			return err
		}
		out = append(out, e)
	}
	*n = out
	return nil
}

func decodeYAMLEntry(node *yaml.Node) (Entry, error) {
	node = deref(node)
	switch node.Kind {
	case yaml.ScalarNode:
		var p string
		if err := node.Decode(&p); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return Link{Path: p}, nil
	case yaml.MappingNode:
		var r rawEntry
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i].Value, deref(node.Content[i+1])
			if key == "children" {
				r.hasChildren = true
				if err := r.children.UnmarshalYAML(val); err != nil {
					return nil, err
				}
				continue
			}
			if val.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: navbar field %q must be a string", val.Line, key)
			}
			if err := r.setString(key, val.Value); err != nil {
				return nil, fmt.Errorf("line %d: %w", node.Content[i].Line, err)
			}
		}
		e, err := r.entry()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("line %d: navbar entry must be a string or a mapping", node.Line)
	}
}

func deref(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Navbar) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*n = nil
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("navbar must be an array: %w", err)
	}
	out := make(Navbar, 0, len(items))
	for i, item := range items {
		e, err := decodeJSONEntry(item)
		if err != nil {
			return fmt.Errorf("navbar entry %d: %w", i, err)
		}
		out = append(out, e)
	}
	*n = out
	return nil
}

func decodeJSONEntry(data json.RawMessage) (Entry, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty entry")
	}
	switch data[0] {
	case '"':
		var p string
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return Link{Path: p}, nil
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, err
		}
		var r rawEntry
		for key, val := range fields {
			if key == "children" {
				r.hasChildren = true
				if err := r.children.UnmarshalJSON(val); err != nil {
					return nil, err
				}
				continue
			}
			var s string
			if err := json.Unmarshal(val, &s); err != nil {
				return nil, fmt.Errorf("navbar field %q must be a string", key)
			}
			if err := r.setString(key, s); err != nil {
				return nil, err
			}
		}
		return r.entry()
	default:
		return nil, fmt.Errorf("navbar entry must be a string or an object")
	}
}
