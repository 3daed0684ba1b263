package config

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Snapshot computes a stable hash of the generation-affecting fields. Map
// fields are hashed in sorted key order; logging settings are excluded.
func (c *Config) Snapshot() string {
	if c == nil {
		return ""
	}
	h := sha256.New()
	w := func(parts ...string) { h.Write([]byte(strings.Join(parts, "="))); h.Write([]byte{0}) }

	w("site.base", c.Site.Base)
	w("site.hostname", c.Site.Hostname)
	w("site.repo", c.Site.Repo)
	for _, key := range sortedKeys(c.Site.Locales) {
		loc := c.Site.Locales[key]
		w("site.locales", key, loc.Lang, loc.Title, loc.Description)
	}
	w("site.theme", c.Site.Theme.Name, c.Site.Theme.Package, c.Site.Theme.Version)
	for _, key := range sortedKeys(c.Site.Theme.Options) {
		w("site.theme.options", key, encodeValue(c.Site.Theme.Options[key]))
	}
	navbars := c.Navbars()
	for _, key := range sortedKeys(navbars) {
		w("navbar", key, encodeValue(navbars[key]))
	}
	w("content.directory", c.Content.Directory)
	w("output.directory", c.Output.Directory)
	w("output.target", string(c.Output.Target))
	return hex.EncodeToString(h.Sum(nil))
}

func encodeValue(v any) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "!" + err.Error()
	}
	return string(b)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
