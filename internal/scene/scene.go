// Package scene reads layout trees described in YAML, JSON or TOML files,
// builds them into a layout.Tree and renders the computed boxes.
package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/json-iterator/go"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned for a file extension no decoder handles.
	ErrUnknownFormat = errors.New("unknown scene format")

	// ErrUnknownDisplay is returned for a display value other than flex,
	// grid or none.
	ErrUnknownDisplay = errors.New("unknown display")

	// ErrUnknownProperty is returned for a style key the builder does not know.
	ErrUnknownProperty = errors.New("unknown style property")

	// ErrBadValue is returned when a style value has the wrong type or form.
	ErrBadValue = errors.New("invalid style value")

	// ErrDuplicateID is returned when two nodes of a scene share an id.
	ErrDuplicateID = errors.New("duplicate node id")
)

// Format names a scene encoding.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
	TOML Format = "toml"
)

// FormatOf picks the decoder for path from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Scene is one tree to lay out.
type Scene struct {
	Name      string   `yaml:"name" json:"name" toml:"name"`
	Available Viewport `yaml:"available" json:"available" toml:"available"`
	Root      Node     `yaml:"root" json:"root" toml:"root"`
}

// Viewport is the space offered to the root. Each axis is a number,
// "min-content" or "max-content"; a missing axis falls back to the
// configured viewport.
type Viewport struct {
	Width  any `yaml:"width" json:"width" toml:"width"`
	Height any `yaml:"height" json:"height" toml:"height"`
}

// Node describes one element. A node with Text is a measured leaf.
type Node struct {
	ID       string         `yaml:"id" json:"id" toml:"id"`
	Style    map[string]any `yaml:"style" json:"style" toml:"style"`
	Text     string         `yaml:"text" json:"text" toml:"text"`
	Children []Node         `yaml:"children" json:"children" toml:"children"`
}

// Load reads and decodes the scene at path.
func Load(path string) (*Scene, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*Scene, error) {
	var s Scene
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &s)
	case JSON:
		err = json.Unmarshal(data, &s)
	case TOML:
		err = toml.Unmarshal(data, &s)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
