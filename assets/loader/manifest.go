package loader

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Kind says how a resource is decoded.
type Kind string

const (
	KindImage Kind = "image"
	KindAudio Kind = "audio"
)

// Resource is one entry of the asset manifest.
type Resource struct {
	Name string `yaml:"name"`
	Kind Kind   `yaml:"kind"`
	Src  string `yaml:"src"`

	// Sprite strip layout, images only.
	Frames        int `yaml:"frames"`
	TicksPerFrame int `yaml:"ticks_per_frame"`
}

type Manifest struct {
	Resources []Resource `yaml:"resources"`
}

// ParseManifest decodes a YAML manifest and checks that names are unique.
func ParseManifest(raw []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	seen := make(map[string]bool, len(m.Resources))
	for i, r := range m.Resources {
		if r.Name == "" {
			return nil, fmt.Errorf("manifest entry %d: missing name", i)
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("manifest entry %d: duplicate name %q", i, r.Name)
		}
		seen[r.Name] = true
		if r.Kind == KindImage && r.Frames == 0 {
			m.Resources[i].Frames = 1
		}
	}
	return &m, nil
}

func LoadManifest(fsys fs.FS, path string) (*Manifest, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return ParseManifest(raw)
}
