package model

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for model files.
var (
	// ErrInvalidSpec indicates a model file that cannot be compiled. The
	// wrapped message names the offending field.
	ErrInvalidSpec = errors.New("model: invalid model")

	// ErrUnknownParameter indicates a likelihood reference to a parameter
	// that is not declared.
	ErrUnknownParameter = errors.New("model: unknown parameter")

	// ErrNilModel indicates Run was called with a nil *Model.
	ErrNilModel = errors.New("model: model is nil")
)

// Spec is the YAML form of a model.
type Spec struct {
	Name       string      `yaml:"name"`
	Parameters []Parameter `yaml:"parameters"`
	Likelihood Likelihood  `yaml:"likelihood"`
	Draws      int         `yaml:"draws,omitempty"`
	Seed       uint64      `yaml:"seed,omitempty"`
	Workers    int         `yaml:"workers,omitempty"`
	Widths     []float64   `yaml:"widths,omitempty"`
}

// Parameter is one grid axis with its prior.
type Parameter struct {
	Name  string  `yaml:"name"`
	Low   float64 `yaml:"low"`
	High  float64 `yaml:"high"`
	Count int     `yaml:"count"`
	Prior Prior   `yaml:"prior,omitempty"`
}

// Prior is a distribution family with constant parameters. An empty
// Family means a flat prior.
type Prior struct {
	Family string    `yaml:"family,omitempty"`
	Params []float64 `yaml:"params,omitempty"`
}

// Likelihood describes the sampling distribution of each observation.
type Likelihood struct {
	Family       string     `yaml:"family"`
	Params       []ParamRef `yaml:"params"`
	Observations []float64  `yaml:"observations"`
}

// ParamRef is a likelihood parameter: either a constant or the name of a
// grid parameter. In YAML, numbers are constants and strings are names.
type ParamRef struct {
	Name  string
	Value float64
}

// Const returns a constant reference.
func Const(v float64) ParamRef { return ParamRef{Value: v} }

// Ref returns a reference to the grid parameter called name.
func Ref(name string) ParamRef { return ParamRef{Name: name} }

// IsRef reports whether r names a grid parameter.
func (r ParamRef) IsRef() bool { return r.Name != "" }

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *ParamRef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: likelihood parameter must be a number or a name", node.Line)
	}
	switch node.ShortTag() {
	case "!!int", "!!float":
		*r = ParamRef{}
		return node.Decode(&r.Value)
	case "!!str":
		*r = ParamRef{Name: node.Value}
		return nil
	}
	return fmt.Errorf("line %d: likelihood parameter %q must be a number or a name", node.Line, node.Value)
}

// MarshalYAML implements yaml.Marshaler.
func (r ParamRef) MarshalYAML() (any, error) {
	if r.IsRef() {
		return r.Name, nil
	}
	return r.Value, nil
}
