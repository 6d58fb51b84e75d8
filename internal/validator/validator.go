package validator

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/go-playground/validator/v10"
	"github.com/hogwarts-cloud/qcft/internal/models"
	"github.com/samber/lo"
)

var (
	ErrInvalidConfig          = errors.New("invalid chassis config")
	ErrMissingIOPS            = errors.New("provisioned iops volume requires iops")
	ErrUnsupportedIOPS        = errors.New("volume type does not accept iops")
	ErrUnsupportedThroughput  = errors.New("volume type does not accept throughput")
	ErrUnsupportedBackingType = errors.New("unsupported backing volume type override")
	ErrInvalidNodeNamePrefix  = errors.New("node name prefix must be alphanumeric")
)

var (
	provisionedIOPSTypes = []types.VolumeType{types.VolumeTypeIo1, types.VolumeTypeIo2}
	configurableIOPS     = []types.VolumeType{types.VolumeTypeIo1, types.VolumeTypeIo2, types.VolumeTypeGp3}
	configurableThrough  = []types.VolumeType{types.VolumeTypeGp3}
)

var validate = validator.New()

func init() {
	if err := validate.RegisterValidation("volumetype", func(fl validator.FieldLevel) bool {
		return lo.Contains(types.VolumeType("").Values(), types.VolumeType(fl.Field().String()))
	}); err != nil {
		panic(err)
	}
}

// Validate checks the shape of a loaded chassis config. Slot arithmetic is
// left to the chassis package.
func Validate(cfg models.ChassisConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := validateTier("working_spec", cfg.WorkingSpec); err != nil {
		return fmt.Errorf("failed to validate working tier: %w", err)
	}

	if cfg.BackingSpec != nil {
		if err := validateTier("backing_spec", cfg.BackingSpec); err != nil {
			return fmt.Errorf("failed to validate backing tier: %w", err)
		}
	}

	return nil
}

// ValidateBackingOverride accepts an empty override or one of
// models.BackingOverrideTypes.
func ValidateBackingOverride(volumeType types.VolumeType) error {
	if volumeType == "" || lo.Contains(models.BackingOverrideTypes, volumeType) {
		return nil
	}

	return fmt.Errorf("%w: %q, expected one of %v", ErrUnsupportedBackingType, volumeType, models.BackingOverrideTypes)
}

// ValidateNodeNamePrefix checks that node logical IDs built from prefix stay
// alphanumeric, as CloudFormation requires.
func ValidateNodeNamePrefix(prefix string) error {
	if err := validate.Var(prefix, "required,alphanum"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidNodeNamePrefix, prefix)
	}

	return nil
}

func validateTier(field string, tier *models.VolumeTierSpec) error {
	if lo.Contains(provisionedIOPSTypes, tier.VolumeType) && tier.IOPS == nil {
		return fmt.Errorf("%w: %s is %s", ErrMissingIOPS, field, tier.VolumeType)
	}

	if tier.IOPS != nil && !lo.Contains(configurableIOPS, tier.VolumeType) {
		return fmt.Errorf("%w: %s is %s", ErrUnsupportedIOPS, field, tier.VolumeType)
	}

	if tier.Throughput != nil && !lo.Contains(configurableThrough, tier.VolumeType) {
		return fmt.Errorf("%w: %s is %s", ErrUnsupportedThroughput, field, tier.VolumeType)
	}

	return nil
}
