// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads button descriptions from YAML or TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a button file.
type Format uint8

const (
	YAML Format = iota
	TOML
)

// File is a button description: its configuration, and the state and
// environment it is laid out in.
type File struct {
	Image                  *Image      `yaml:"image" toml:"image"`
	ShowsActivityIndicator bool        `yaml:"activity_indicator" toml:"activity_indicator"`
	Title                  string      `yaml:"title" toml:"title"`
	Subtitle               string      `yaml:"subtitle" toml:"subtitle"`
	TitleFont              Font        `yaml:"title_font" toml:"title_font"`
	SubtitleFont           Font        `yaml:"subtitle_font" toml:"subtitle_font"`
	Placement              string      `yaml:"placement" toml:"placement"`
	TitleAlignment         string      `yaml:"title_alignment" toml:"title_alignment"`
	Insets                 Insets      `yaml:"insets" toml:"insets"`
	ImagePadding           float32     `yaml:"image_padding" toml:"image_padding"`
	TitlePadding           float32     `yaml:"title_padding" toml:"title_padding"`
	Foreground             string      `yaml:"foreground" toml:"foreground"`
	TitleColor             string      `yaml:"title_color" toml:"title_color"`
	SubtitleColor          string      `yaml:"subtitle_color" toml:"subtitle_color"`
	Background             *Background `yaml:"background" toml:"background"`

	Tint       string `yaml:"tint" toml:"tint"`
	Direction  string `yaml:"direction" toml:"direction"`
	Horizontal string `yaml:"horizontal" toml:"horizontal"`
	Vertical   string `yaml:"vertical" toml:"vertical"`
	State      State  `yaml:"state" toml:"state"`
	// MaxWidth is the preferred maximum width of the button.
	MaxWidth float32 `yaml:"max_width" toml:"max_width"`

	// dir resolves relative image paths.
	dir string
}

// Image selects the image of a button or a background. Exactly one of
// Icon, Picture and Builtin must be set.
type Image struct {
	// Icon is the path of an IconVG file.
	Icon string `yaml:"icon" toml:"icon"`
	// Picture is the path of a PNG or JPEG file.
	Picture string `yaml:"picture" toml:"picture"`
	// Builtin names a material design icon, such as "home".
	Builtin string `yaml:"builtin" toml:"builtin"`
	// Width overrides the width of icons, in dp.
	Width float32 `yaml:"width" toml:"width"`
	// Scale is the size in dp of one picture pixel.
	Scale float32 `yaml:"scale" toml:"scale"`
}

type Font struct {
	Typeface string  `yaml:"typeface" toml:"typeface"`
	Weight   string  `yaml:"weight" toml:"weight"`
	Style    string  `yaml:"style" toml:"style"`
	Size     float32 `yaml:"size" toml:"size"`
}

// Insets are direction-relative unless Left or Right is set.
type Insets struct {
	Top      float32 `yaml:"top" toml:"top"`
	Bottom   float32 `yaml:"bottom" toml:"bottom"`
	Leading  float32 `yaml:"leading" toml:"leading"`
	Trailing float32 `yaml:"trailing" toml:"trailing"`
	Left     float32 `yaml:"left" toml:"left"`
	Right    float32 `yaml:"right" toml:"right"`
	// All is added to every edge.
	All float32 `yaml:"all" toml:"all"`
}

type Background struct {
	Fill         string  `yaml:"fill" toml:"fill"`
	Stroke       string  `yaml:"stroke" toml:"stroke"`
	StrokeWidth  float32 `yaml:"stroke_width" toml:"stroke_width"`
	StrokeOutset float32 `yaml:"stroke_outset" toml:"stroke_outset"`
	// Corner is "none", "fixed" or "capsule". A positive Radius
	// without Corner selects fixed corners.
	Corner  string   `yaml:"corner" toml:"corner"`
	Radius  float32  `yaml:"radius" toml:"radius"`
	Corners []string `yaml:"corners" toml:"corners"`
	// Blur is the radius of a background blur effect.
	Blur       float32 `yaml:"blur" toml:"blur"`
	CustomView uint64  `yaml:"custom_view" toml:"custom_view"`
	Image      *Image  `yaml:"image" toml:"image"`
	ImageFit   string  `yaml:"image_fit" toml:"image_fit"`
	Shadow     *Shadow `yaml:"shadow" toml:"shadow"`
}

type Shadow struct {
	Color  string     `yaml:"color" toml:"color"`
	Offset [2]float32 `yaml:"offset" toml:"offset"`
	Blur   *float32   `yaml:"blur" toml:"blur"`
}

// State is the interaction state of the button.
type State struct {
	Disabled    bool `yaml:"disabled" toml:"disabled"`
	Highlighted bool `yaml:"highlighted" toml:"highlighted"`
	Selected    bool `yaml:"selected" toml:"selected"`
}

var errFormat = errors.New("unknown file format")

// FormatOf returns the format of a file by its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, errFormat)
	}
}

// Load reads the button file at path. Relative image paths are
// resolved against the directory of the file.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// Parse decodes a button file. Unknown keys are errors.
func Parse(data []byte, format Format) (*File, error) {
	f := new(File)
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case TOML:
		md, err := toml.Decode(string(data), f)
		if err != nil {
			return nil, err
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return nil, fmt.Errorf("unknown key %q", keys[0].String())
		}
	default:
		return nil, errFormat
	}
	return f, nil
}

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		panic("unreachable")
	}
}
