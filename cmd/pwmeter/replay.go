package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/pwmeter/dom"
	"github.com/npillmayer/pwmeter/dom/domdbg"
	"github.com/npillmayer/pwmeter/dom/vdom"
	"github.com/npillmayer/pwmeter/meter"
	"github.com/npillmayer/pwmeter/stream"
	"github.com/spf13/cobra"
)

type replayOptions struct {
	password string
	tree     bool
	dot      string
	page     bool
}

func newReplayCmd(flags *rootFlags) *cobra.Command {
	opts := &replayOptions{}
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Type a password one character at a time and print every frame",
		Long: `Replay types a password into the password field, one character at a time,
and prints the strength shown after every keystroke. Without --password,
every line read from stdin is entered as the complete field value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runReplay(ctx, flags.cfg, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&opts.password, "password", "p", "", "password to type")
	cmd.Flags().BoolVar(&opts.tree, "tree", false, "print the final markup tree")
	cmd.Flags().StringVar(&opts.dot, "dot", "", "write the final markup tree as GraphViz to a file")
	cmd.Flags().BoolVar(&opts.page, "page", true, "print the final page")
	return cmd
}

var meterSelector = cascadia.MustCompile("meter")

func runReplay(ctx context.Context, cfg *Config, opts *replayOptions, stdin io.Reader, stdout io.Writer) error {
	s, err := startSession(cfg)
	if err != nil {
		return err
	}
	defer s.stop()
	keystrokes := make(chan string)
	go func() {
		defer close(keystrokes)
		if opts.password != "" {
			runes := []rune(opts.password)
			for i := range runes {
				select {
				case keystrokes <- string(runes[:i+1]):
				case <-ctx.Done():
					return
				}
			}
			return
		}
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			select {
			case keystrokes <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	typed := stream.NewSubject[string]()
	frame, last := 0, ""
	var typeErr error
	cancel := typed.Subscribe(func(password string) {
		if typeErr != nil {
			return
		}
		if typeErr = s.Type(password); typeErr != nil {
			return
		}
		frame++
		last = password
		level := shownLevel(s.driver)
		fmt.Fprintf(stdout, "frame %3d: %-20q level=%d label=%q colour=%s\n",
			frame, password, level, meter.Label(level), meter.Color(level))
	})
	defer cancel()
	if err := stream.Drain(ctx, keystrokes, typed); err != nil {
		return err
	}
	if typeErr != nil {
		return typeErr
	}
	view := meter.View(vdom.Builder{Styles: s.styles}, last)
	if opts.tree {
		fmt.Fprintln(stdout, vdom.Dump(view))
	}
	if opts.dot != "" {
		if err := writeDot(opts.dot, view, s); err != nil {
			return err
		}
	}
	if opts.page {
		if err := s.driver.Render(stdout); err != nil {
			return err
		}
		fmt.Fprintln(stdout)
	}
	return nil
}

// shownLevel reads the strength level from the meter element of the
// mounted tree.
func shownLevel(d *dom.Driver) int {
	root := d.Mounted()
	if root == nil {
		return -1
	}
	m := meterSelector.MatchFirst(root)
	level, err := strconv.Atoi(dom.AttrValue(m, "value"))
	if err != nil {
		return -1
	}
	return level
}

func writeDot(path string, view *vdom.VNode, s *session) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create GraphViz file: %w", err)
	}
	defer f.Close()
	return domdbg.ToGraphViz(view, f, s.styles.StyleSheet())
}
