package tagmark

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TagSpec is the plain-data definition of a tag, e.g. one entry of a marker
// set loaded from a YAML or JSON document.
type TagSpec struct {
	Position         Point             `yaml:"position" json:"position"`
	Text             string            `yaml:"text" json:"text"`
	ButtonAttributes map[string]string `yaml:"buttonAttributes,omitempty" json:"buttonAttributes,omitempty"`
	PopupAttributes  map[string]string `yaml:"popupAttributes,omitempty" json:"popupAttributes,omitempty"`
}

// NewFromSpec builds a Tag from a plain-data definition. It performs no
// validation beyond what New enforces.
func NewFromSpec(spec TagSpec, opts ...Option) (*Tag, error) {
	return New(spec.Position, spec.Text, spec.ButtonAttributes, spec.PopupAttributes, opts...)
}

// ParseSpec decodes a single tag definition from YAML (or JSON) data.
func ParseSpec(data []byte) (TagSpec, error) {
	var spec TagSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return TagSpec{}, fmt.Errorf("decoding tag definition: %w", err)
	}
	return spec, nil
}

// ParseSpecs decodes a list of tag definitions from YAML (or JSON) data.
func ParseSpecs(data []byte) ([]TagSpec, error) {
	var specs []TagSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("decoding tag definitions: %w", err)
	}
	return specs, nil
}
