package main

import (
	"fmt"
	"os"

	"github.com/hogwarts-cloud/qcft/config"
	"github.com/hogwarts-cloud/qcft/internal/generator"
	"github.com/hogwarts-cloud/qcft/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfg    config.Config
	logger = logging.NewLogger(os.Stderr, "info")
)

func generatorConfig(cfg config.Config) generator.Config {
	return generator.Config{
		ConfigFile:                cfg.ConfigFile,
		NumNodes:                  cfg.NumNodes,
		BackingVolumeTypeOverride: cfg.BackingVolumeTypeOverride,
		SecurityGroup:             cfg.SecurityGroup,
		NodeNamePrefix:            cfg.NodeNamePrefix,
		Format:                    cfg.Output,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	g := generator.New(logger)

	if err := g.Generate(cmd.Context(), generatorConfig(cfg), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to generate template: %w", err)
	}

	return nil
}

var root = &cobra.Command{
	Use:           "qcft",
	Short:         "CloudFormation template generator for Qumulo clusters",
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		loaded, err := config.Load(cmd.Flags())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		cfg = loaded
		logger = logging.NewLogger(os.Stderr, cfg.LogLevel)

		return nil
	},
	RunE: runGenerate,
}

var generate = &cobra.Command{
	Use:   "generate",
	Short: "Print the cluster template to stdout",
	RunE:  runGenerate,
}

var validate = &cobra.Command{
	Use:   "validate",
	Short: "Validate the chassis config and print the computed layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		g := generator.New(logger)

		if _, err := g.Layout(cmd.Context(), generatorConfig(cfg)); err != nil {
			return fmt.Errorf("failed to validate chassis config: %w", err)
		}

		return nil
	},
}

func init() {
	config.RegisterFlags(root.PersistentFlags())
	root.AddCommand(generate, validate)
}

func main() {
	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("qcft failed")
		os.Exit(1)
	}
}
