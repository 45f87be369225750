package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/pwmeter/dom/style/registry"
	"github.com/npillmayer/pwmeter/dom/vdom"
	"github.com/npillmayer/pwmeter/meter"
	"github.com/spf13/cobra"
)

func newCSSCmd(flags *rootFlags) *cobra.Command {
	var maxLevel int
	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the CSS generated for all strength levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCSS(maxLevel, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&maxLevel, "max-level", meter.MaxLevel+1, "highest strength level to generate CSS for")
	return cmd
}

func runCSS(maxLevel int, w io.Writer) error {
	reg := registry.New()
	b := vdom.Builder{Styles: reg}
	for level := 0; level <= maxLevel; level++ {
		meter.View(b, strings.Repeat("*", 3*level))
	}
	_, err := fmt.Fprintln(w, reg.CSS())
	return err
}
