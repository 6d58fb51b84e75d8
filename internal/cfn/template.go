// Package cfn is a small declarative model of the parts of a CloudFormation
// template that qcft emits, plus JSON and YAML rendering.
package cfn

import (
	"errors"
	"fmt"
)

const (
	FormatVersion = "2010-09-09"
	InterfaceKey  = "AWS::CloudFormation::Interface"
)

var ErrDuplicateName = errors.New("duplicate logical name")

type Template struct {
	AWSTemplateFormatVersion string               `json:"AWSTemplateFormatVersion" yaml:"AWSTemplateFormatVersion"`
	Description              string               `json:"Description,omitempty" yaml:"Description,omitempty"`
	Metadata                 map[string]any       `json:"Metadata,omitempty" yaml:"Metadata,omitempty"`
	Parameters               map[string]Parameter `json:"Parameters,omitempty" yaml:"Parameters,omitempty"`
	Conditions               map[string]any       `json:"Conditions,omitempty" yaml:"Conditions,omitempty"`
	Resources                map[string]Resource  `json:"Resources" yaml:"Resources"`
	Outputs                  map[string]Output    `json:"Outputs,omitempty" yaml:"Outputs,omitempty"`
}

type Parameter struct {
	Type                  string   `json:"Type" yaml:"Type"`
	Description           string   `json:"Description,omitempty" yaml:"Description,omitempty"`
	Default               *string  `json:"Default,omitempty" yaml:"Default,omitempty"`
	MinLength             *int     `json:"MinLength,omitempty" yaml:"MinLength,omitempty"`
	MaxLength             *int     `json:"MaxLength,omitempty" yaml:"MaxLength,omitempty"`
	AllowedPattern        string   `json:"AllowedPattern,omitempty" yaml:"AllowedPattern,omitempty"`
	AllowedValues         []string `json:"AllowedValues,omitempty" yaml:"AllowedValues,omitempty"`
	ConstraintDescription string   `json:"ConstraintDescription,omitempty" yaml:"ConstraintDescription,omitempty"`
}

type Resource struct {
	Type       string `json:"Type" yaml:"Type"`
	Properties any    `json:"Properties,omitempty" yaml:"Properties,omitempty"`
}

type Output struct {
	Description string `json:"Description,omitempty" yaml:"Description,omitempty"`
	Value       any    `json:"Value" yaml:"Value"`
}

// Interface is the AWS::CloudFormation::Interface metadata that groups and
// labels parameters in the console.
type Interface struct {
	ParameterGroups []ParameterGroup `json:"ParameterGroups" yaml:"ParameterGroups"`
	ParameterLabels map[string]Label `json:"ParameterLabels" yaml:"ParameterLabels"`
}

type ParameterGroup struct {
	Label      Label    `json:"Label" yaml:"Label"`
	Parameters []string `json:"Parameters" yaml:"Parameters"`
}

type Label struct {
	Default string `json:"default" yaml:"default"`
}

func New(description string) *Template {
	return &Template{
		AWSTemplateFormatVersion: FormatVersion,
		Description:              description,
		Metadata:                 make(map[string]any),
		Parameters:               make(map[string]Parameter),
		Conditions:               make(map[string]any),
		Resources:                make(map[string]Resource),
		Outputs:                  make(map[string]Output),
	}
}

func (t *Template) AddParameter(name string, parameter Parameter) error {
	if _, ok := t.Parameters[name]; ok {
		return fmt.Errorf("%w: parameter %s", ErrDuplicateName, name)
	}

	t.Parameters[name] = parameter

	return nil
}

func (t *Template) AddCondition(name string, condition any) error {
	if _, ok := t.Conditions[name]; ok {
		return fmt.Errorf("%w: condition %s", ErrDuplicateName, name)
	}

	t.Conditions[name] = condition

	return nil
}

// AddResource registers a resource. Parameters and resources share one
// namespace in CloudFormation, so a clash with either is rejected.
func (t *Template) AddResource(name, resourceType string, properties any) error {
	if _, ok := t.Resources[name]; ok {
		return fmt.Errorf("%w: resource %s", ErrDuplicateName, name)
	}

	if _, ok := t.Parameters[name]; ok {
		return fmt.Errorf("%w: resource %s shadows a parameter", ErrDuplicateName, name)
	}

	t.Resources[name] = Resource{Type: resourceType, Properties: properties}

	return nil
}

func (t *Template) AddOutput(name string, output Output) error {
	if _, ok := t.Outputs[name]; ok {
		return fmt.Errorf("%w: output %s", ErrDuplicateName, name)
	}

	t.Outputs[name] = output

	return nil
}

func (t *Template) SetInterface(iface Interface) {
	t.Metadata[InterfaceKey] = iface
}
