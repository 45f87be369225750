package main

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	trace      string
	output     string
	cfg        *Config
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "pwmeter",
		Short:         "pwmeter renders a password input with a live strength meter",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "YAML or TOML configuration file")
	cmd.PersistentFlags().StringVar(&flags.trace, "trace", "", "trace level (error|info|debug)")
	cmd.PersistentFlags().StringVar(&flags.output, "log-format", "", "trace output format (auto|console|json)")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newReplayCmd(flags))
	cmd.AddCommand(newCSSCmd(flags))
	cmd.AddCommand(newTUICmd(flags))
	return cmd
}

// setup loads the configuration, applies flag overrides and installs
// tracing.
func (flags *rootFlags) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(flags.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("trace") {
		cfg.Trace = flags.trace
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Output = flags.output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level := tracing.TraceLevelFromString(cfg.Trace)
	tracing.SetTraceSelector(newZerologSelector(cmd.ErrOrStderr(), cfg.Output, level))
	tracing.Select("pwmeter.cli").P("command", cmd.Name()).Infof("configured, mount=%q", cfg.Mount)
	flags.cfg = cfg
	return nil
}
