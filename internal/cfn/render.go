package cfn

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"

	DefaultIndent = 4
)

var ErrUnknownFormat = errors.New("unknown output format")

var Formats = []Format{FormatJSON, FormatYAML}

// RenderOptions control how a template is serialized. Booleans are always
// rendered as real booleans.
type RenderOptions struct {
	Format Format
	Indent int
}

func (t *Template) Render(w io.Writer, opts RenderOptions) error {
	indent := opts.Indent
	if indent <= 0 {
		indent = DefaultIndent
	}

	switch opts.Format {
	case FormatJSON, "":
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", strings.Repeat(" ", indent))
		if err := encoder.Encode(t); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(indent)
		if err := encoder.Encode(t); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to close yaml encoder: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	return nil
}
