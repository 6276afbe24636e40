// Package layout loads named junction definitions from YAML layout files
package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/anggasct/points"
	"gopkg.in/yaml.v3"
)

// Layout is the decoded form of a layout file
type Layout struct {
	Junctions []JunctionConfig `yaml:"junctions"`
}

// JunctionConfig describes one junction of a layout
type JunctionConfig struct {
	Name      string              `yaml:"name"`
	Type      points.JunctionType `yaml:"type"`
	Base      points.Direction    `yaml:"base"`
	Default   points.Direction    `yaml:"default"`
	Secondary points.Direction    `yaml:"secondary"`
}

// Load reads and validates a layout file
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}
	y, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return y, nil
}

// Parse decodes and validates layout YAML. Unknown fields are rejected.
func Parse(data []byte) (*Layout, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var y Layout
	if err := dec.Decode(&y); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding layout: %w", err)
	}
	if err := y.Validate(); err != nil {
		return nil, err
	}
	return &y, nil
}

// Validate reports every problem in the layout at once
func (y *Layout) Validate() error {
	var errs []error
	seen := make(map[string]int, len(y.Junctions))
	for i, jc := range y.Junctions {
		if jc.Name == "" {
			errs = append(errs, points.NewConfigurationError(fmt.Sprintf("junction #%d", i), "missing name"))
			continue
		}
		if first, ok := seen[jc.Name]; ok {
			errs = append(errs, points.NewConfigurationError(
				fmt.Sprintf("junction #%d", i),
				fmt.Sprintf("duplicate name %q, first used by junction #%d", jc.Name, first)))
			continue
		}
		seen[jc.Name] = i
		if err := jc.junction().Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Build creates a junction per entry, keyed by name. opts apply to every junction.
func (y *Layout) Build(opts ...points.Option) (map[string]*points.Junction, error) {
	if err := y.Validate(); err != nil {
		return nil, err
	}
	junctions := make(map[string]*points.Junction, len(y.Junctions))
	for _, jc := range y.Junctions {
		junctions[jc.Name] = jc.junction(opts...)
	}
	return junctions, nil
}

// Names returns the junction names in sorted order
func (y *Layout) Names() []string {
	names := make([]string, 0, len(y.Junctions))
	for _, jc := range y.Junctions {
		names = append(names, jc.Name)
	}
	sort.Strings(names)
	return names
}

// UnmarshalYAML decodes a junction mapping, rejecting unknown and missing fields
func (s *JunctionConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: junction must be a mapping", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		switch key.Value {
		case "name", "type", "base", "default", "secondary":
		default:
			return fmt.Errorf("line %d: unknown junction field %q", key.Line, key.Value)
		}
	}

	var raw struct {
		Name      string               `yaml:"name"`
		Type      *points.JunctionType `yaml:"type"`
		Base      *points.Direction    `yaml:"base"`
		Default   *points.Direction    `yaml:"default"`
		Secondary *points.Direction    `yaml:"secondary"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	switch {
	case raw.Type == nil:
		return fmt.Errorf("line %d: junction %q is missing type", value.Line, raw.Name)
	case raw.Base == nil:
		return fmt.Errorf("line %d: junction %q is missing base", value.Line, raw.Name)
	case raw.Default == nil:
		return fmt.Errorf("line %d: junction %q is missing default", value.Line, raw.Name)
	case raw.Secondary == nil:
		return fmt.Errorf("line %d: junction %q is missing secondary", value.Line, raw.Name)
	}
	*s = JunctionConfig{
		Name:      raw.Name,
		Type:      *raw.Type,
		Base:      *raw.Base,
		Default:   *raw.Default,
		Secondary: *raw.Secondary,
	}
	return nil
}

func (s JunctionConfig) junction(opts ...points.Option) *points.Junction {
	opts = append([]points.Option{points.WithName(s.Name)}, opts...)
	return points.NewJunction(s.Type, s.Base, s.Default, s.Secondary, opts...)
}
