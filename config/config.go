package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/hogwarts-cloud/qcft/internal/cfn"
	"github.com/hogwarts-cloud/qcft/internal/models"
	"github.com/hogwarts-cloud/qcft/internal/network"
	"github.com/hogwarts-cloud/qcft/internal/validator"
	"github.com/hogwarts-cloud/qcft/pkg/constants"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	FlagConfigFile                = "config-file"
	FlagNumNodes                  = "num-nodes"
	FlagBackingVolumeTypeOverride = "backing-volume-type-override"
	FlagSecurityGroup             = "security-group"
	FlagNodeNamePrefix            = "node-name-prefix"
	FlagOutput                    = "output"
	FlagLogLevel                  = "log-level"
)

var (
	ErrMissingConfigFile = errors.New("chassis config file is required")
	ErrInvalidNumNodes   = errors.New("number of nodes must be at least 1")
)

type Config struct {
	ConfigFile                string           `mapstructure:"config-file"`
	NumNodes                  int              `mapstructure:"num-nodes"`
	BackingVolumeTypeOverride types.VolumeType `mapstructure:"backing-volume-type-override"`
	SecurityGroup             string           `mapstructure:"security-group"`
	NodeNamePrefix            string           `mapstructure:"node-name-prefix"`
	Output                    cfn.Format       `mapstructure:"output"`
	LogLevel                  string           `mapstructure:"log-level"`
}

// RegisterFlags declares every setting on flags. Each one can also be set
// through a QCFT_ environment variable.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(FlagConfigFile, "", "Path to the chassis config file (JSON or YAML)")
	flags.Int(FlagNumNodes, constants.DefaultNumNodes, "Number of nodes in the cluster")
	flags.String(FlagBackingVolumeTypeOverride, "", fmt.Sprintf("Override the backing volume type, one of %v", models.BackingOverrideTypes))
	flags.String(FlagSecurityGroup, "", "Use an existing security group instead of creating one")
	flags.String(FlagNodeNamePrefix, constants.DefaultNodeNamePrefix, "Prefix of the logical names of node resources")
	flags.String(FlagOutput, string(cfn.FormatJSON), fmt.Sprintf("Template format, one of %v", cfn.Formats))
	flags.String(FlagLogLevel, "info", "Log level")
}

func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			models.StringToVolumeTypeHookFunc(),
		))); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Output = cfn.Format(strings.ToLower(string(cfg.Output)))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.ConfigFile == "" {
		return ErrMissingConfigFile
	}

	if c.NumNodes < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidNumNodes, c.NumNodes)
	}

	if err := validator.ValidateNodeNamePrefix(c.NodeNamePrefix); err != nil {
		return err
	}

	if !lo.Contains(cfn.Formats, c.Output) {
		return fmt.Errorf("%w: %q", cfn.ErrUnknownFormat, c.Output)
	}

	if err := validator.ValidateBackingOverride(c.BackingVolumeTypeOverride); err != nil {
		return err
	}

	if c.SecurityGroup != "" {
		if err := network.ValidateSecurityGroupID(c.SecurityGroup); err != nil {
			return err
		}
	}

	return nil
}
