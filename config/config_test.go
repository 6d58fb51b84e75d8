package config

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/hogwarts-cloud/qcft/internal/cfn"
	"github.com/hogwarts-cloud/qcft/internal/network"
	"github.com/hogwarts-cloud/qcft/internal/validator"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) (Config, error) {
	t.Helper()

	flags := pflag.NewFlagSet("qcft", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse(args))

	return Load(flags)
}

func Test_LoadDefaults(t *testing.T) {
	cfg, err := load(t, "--config-file", "chassis.json")
	require.NoError(t, err)

	assert.Equal(t, Config{
		ConfigFile:     "chassis.json",
		NumNodes:       4,
		NodeNamePrefix: "Qumulo",
		Output:         cfn.FormatJSON,
		LogLevel:       "info",
	}, cfg)
}

func Test_LoadFlags(t *testing.T) {
	cfg, err := load(t,
		"--config-file", "chassis.yaml",
		"--num-nodes", "6",
		"--backing-volume-type-override", "ST1",
		"--security-group", "sg-0a1b2c3d4e5f67890",
		"--node-name-prefix", "Edge",
		"--output", "YAML",
		"--log-level", "debug",
	)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.NumNodes)
	assert.Equal(t, types.VolumeTypeSt1, cfg.BackingVolumeTypeOverride)
	assert.Equal(t, "sg-0a1b2c3d4e5f67890", cfg.SecurityGroup)
	assert.Equal(t, "Edge", cfg.NodeNamePrefix)
	assert.Equal(t, cfn.FormatYAML, cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func Test_LoadEnv(t *testing.T) {
	t.Setenv("QCFT_CONFIG_FILE", "from-env.json")
	t.Setenv("QCFT_NUM_NODES", "5")
	t.Setenv("QCFT_BACKING_VOLUME_TYPE_OVERRIDE", "sc1")

	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, "from-env.json", cfg.ConfigFile)
	assert.Equal(t, 5, cfg.NumNodes)
	assert.Equal(t, types.VolumeTypeSc1, cfg.BackingVolumeTypeOverride)
}

func Test_LoadFlagBeatsEnv(t *testing.T) {
	t.Setenv("QCFT_NUM_NODES", "5")

	cfg, err := load(t, "--config-file", "chassis.json", "--num-nodes", "2")
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.NumNodes)
}

func Test_LoadInvalid(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		err  error
	}{
		{
			name: "missing config file",
			args: []string{},
			err:  ErrMissingConfigFile,
		},
		{
			name: "zero nodes",
			args: []string{"--config-file", "c.json", "--num-nodes", "0"},
			err:  ErrInvalidNumNodes,
		},
		{
			name: "unsupported override",
			args: []string{"--config-file", "c.json", "--backing-volume-type-override", "io2"},
			err:  validator.ErrUnsupportedBackingType,
		},
		{
			name: "unknown output",
			args: []string{"--config-file", "c.json", "--output", "toml"},
			err:  cfn.ErrUnknownFormat,
		},
		{
			name: "malformed security group",
			args: []string{"--config-file", "c.json", "--security-group", "default"},
			err:  network.ErrInvalidSecurityGroupID,
		},
		{
			name: "prefix with dash",
			args: []string{"--config-file", "c.json", "--node-name-prefix", "my-node"},
			err:  validator.ErrInvalidNodeNamePrefix,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(t, tc.args...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
