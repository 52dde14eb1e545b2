package renderer

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// RenderConfig holds the process-wide render toggles. The config is a value:
// the frame driver snapshots it at the start of a frame and no pixel task
// ever sees a mid-frame change.
type RenderConfig struct {
	Strategy       Strategy     `yaml:"strategy"`
	ShadowsEnabled bool         `yaml:"shadows"`
	LightingMode   LightingMode `yaml:"lighting_mode"`
}

// DefaultRenderConfig returns the default configuration: parallel-for
// dispatch, shadows on, combined lighting.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Strategy:       ParallelFor,
		ShadowsEnabled: true,
		LightingMode:   Combined,
	}
}

// LoadRenderConfig reads a RenderConfig from a YAML file, applying defaults
// for absent fields
func LoadRenderConfig(path string) (RenderConfig, error) {
	config := DefaultRenderConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, "reading render config %s", path)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "parsing render config %s", path)
	}
	return config, nil
}

// MarshalYAML implements yaml.Marshaler using the strategy name
func (s Strategy) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler using the strategy name
func (s *Strategy) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseStrategy(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseLightingMode parses a lighting mode name as produced by String
func ParseLightingMode(name string) (LightingMode, error) {
	switch name {
	case "observed_area":
		return ObservedArea, nil
	case "radiance":
		return Radiance, nil
	case "brdf":
		return BRDF, nil
	case "combined":
		return Combined, nil
	default:
		return ObservedArea, errors.Errorf("unknown lighting mode %q", name)
	}
}

// MarshalYAML implements yaml.Marshaler using the mode name
func (m LightingMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler using the mode name
func (m *LightingMode) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseLightingMode(name)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
