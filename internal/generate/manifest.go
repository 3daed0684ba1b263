package generate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/inful/mdfp"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/blogcfg/internal/emit"
)

// ManifestFile is written to the output directory after every generation.
const ManifestFile = ".blogcfg-manifest.yaml"

// Manifest records what the last generation wrote. It carries no timestamps so
// an unchanged run leaves it byte-identical.
type Manifest struct {
	Generator   string              `yaml:"generator"`
	Target      string              `yaml:"target"`
	Config      string              `yaml:"config_snapshot"`
	Fingerprint string              `yaml:"fingerprint"`
	Files       []ManifestFileEntry `yaml:"files"`
}

// ManifestFileEntry is one generated file.
type ManifestFileEntry struct {
	Name        string `yaml:"name"`
	Fingerprint string `yaml:"fingerprint"`
}

// fingerprintFile hashes a generated file together with its name.
func fingerprintFile(f emit.File) string {
	return mdfp.CalculateFingerprintFromParts("file: "+f.Name, string(f.Data))
}

// fingerprintSet combines per-file fingerprints, in name order, with the
// target into one value.
func fingerprintSet(target string, files []ManifestFileEntry) string {
	sorted := append([]ManifestFileEntry(nil), files...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	var b strings.Builder
	for _, f := range sorted {
		b.WriteString(f.Name)
		b.WriteByte(' ')
		b.WriteString(f.Fingerprint)
		b.WriteByte('\n')
	}
	return mdfp.CalculateFingerprintFromParts("target: "+target, b.String())
}

// ReadManifest loads the manifest in dir. A missing manifest yields nil and
// no error.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

func writeManifest(dir string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return renameio.WriteFile(filepath.Join(dir, ManifestFile), data, 0o644)
}

// unchanged reports whether the files recorded in m still exist on disk with
// the recorded content.
func (m *Manifest) unchanged(dir string) bool {
	for _, f := range m.Files {
		data, err := os.ReadFile(filepath.Join(dir, f.Name))
		if err != nil {
			return false
		}
		if fingerprintFile(emit.File{Name: f.Name, Data: data}) != f.Fingerprint {
			return false
		}
	}
	return true
}

// stale lists files recorded in m that are not part of current.
func (m *Manifest) stale(current []ManifestFileEntry) []string {
	keep := make(map[string]bool, len(current))
	for _, f := range current {
		keep[f.Name] = true
	}
	var out []string
	for _, f := range m.Files {
		if !keep[f.Name] {
			out = append(out, f.Name)
		}
	}
	return out
}
