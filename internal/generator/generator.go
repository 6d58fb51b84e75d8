package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/hogwarts-cloud/qcft/internal/cfn"
	"github.com/hogwarts-cloud/qcft/internal/chassis"
	"github.com/hogwarts-cloud/qcft/internal/models"
	"github.com/hogwarts-cloud/qcft/internal/parser"
	"github.com/hogwarts-cloud/qcft/internal/stack"
	"github.com/hogwarts-cloud/qcft/internal/validator"
	"github.com/rs/zerolog"
)

var ErrNoBackingTierForOverride = errors.New(
	"the backing volumes' type cannot be set because there are no backing volumes in the specified config",
)

type ParseFunc func(path string) (models.ChassisConfig, error)

type Config struct {
	ConfigFile                string
	NumNodes                  int
	BackingVolumeTypeOverride types.VolumeType
	SecurityGroup             string
	NodeNamePrefix            string
	Format                    cfn.Format
}

type Generator struct {
	parse  ParseFunc
	logger zerolog.Logger
}

// Layout loads the chassis config, applies the backing type override and
// builds the validated chassis layout.
func (g *Generator) Layout(ctx context.Context, cfg Config) (*chassis.Spec, error) {
	chassisConfig, err := g.parse(cfg.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse chassis config: %w", err)
	}

	if cfg.BackingVolumeTypeOverride != "" {
		if err := OverrideBackingType(&chassisConfig, cfg.BackingVolumeTypeOverride); err != nil {
			return nil, fmt.Errorf("failed to override backing volume type: %w", err)
		}

		g.logger.Debug().
			Str("volume_type", string(cfg.BackingVolumeTypeOverride)).
			Msg("overrode backing volume type")
	}

	if err := validator.Validate(chassisConfig); err != nil {
		return nil, fmt.Errorf("failed to validate chassis config: %w", err)
	}

	spec, err := chassis.FromConfig(chassisConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build chassis spec: %w", err)
	}

	g.logger.Info().
		Int("slots", spec.SlotCount()).
		Int("pairing_ratio", spec.PairingRatio()).
		Int("working_slots", spec.WorkingSlotCount()).
		Int("backing_slots", spec.BackingSlotCount()).
		Msg("computed chassis layout")

	return spec, nil
}

// Generate writes the rendered template to w. Nothing is written unless
// every step succeeds.
func (g *Generator) Generate(ctx context.Context, cfg Config, w io.Writer) error {
	spec, err := g.Layout(ctx, cfg)
	if err != nil {
		return err
	}

	template, err := stack.Build(spec, stack.Options{
		NumNodes:       cfg.NumNodes,
		NodeNamePrefix: cfg.NodeNamePrefix,
		SecurityGroup:  cfg.SecurityGroup,
	})
	if err != nil {
		return fmt.Errorf("failed to build template: %w", err)
	}

	buf := &bytes.Buffer{}
	if err := template.Render(buf, cfn.RenderOptions{Format: cfg.Format}); err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}

	g.logger.Info().
		Int("nodes", cfg.NumNodes).
		Int("resources", len(template.Resources)).
		Msg("generated template")

	return nil
}

func OverrideBackingType(cfg *models.ChassisConfig, volumeType types.VolumeType) error {
	if cfg.BackingSpec == nil {
		return ErrNoBackingTierForOverride
	}

	cfg.BackingSpec.VolumeType = volumeType

	return nil
}

func New(logger zerolog.Logger) *Generator {
	return &Generator{
		parse:  parser.Parse,
		logger: logger,
	}
}
