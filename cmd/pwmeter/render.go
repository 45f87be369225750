package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

type renderOptions struct {
	password string
	out      string
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the host page for a password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(flags.cfg, opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&opts.password, "password", "p", "", "password to render the meter for")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func runRender(cfg *Config, opts *renderOptions, stdout io.Writer) error {
	s, err := startSession(cfg)
	if err != nil {
		return err
	}
	defer s.stop()
	if opts.password != "" {
		if err := s.Type(opts.password); err != nil {
			return err
		}
	}
	w := stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("cannot create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := s.driver.Render(w); err != nil {
		return fmt.Errorf("cannot render page: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
