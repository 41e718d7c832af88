package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"marsrover/internal/watch"
)

func newWatchCmd(opts *options) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch [script]",
		Short: "Replay a script step by step in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("interval") {
				cfg.Watch.Interval.Duration = interval
			}

			prog, err := parseInput(cmd, args)
			if err != nil {
				return err
			}

			title := "<stdin>"
			if len(args) > 0 {
				title = args[0]
			}
			model := watch.New(prog, watch.Options{
				Title:     title,
				Interval:  cfg.Watch.Interval.Duration,
				MaxWidth:  cfg.Map.MaxWidth,
				MaxHeight: cfg.Map.MaxHeight,
			})

			// the script may have come from stdin, so keys are read from the terminal
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithInputTTY(), tea.WithOutput(cmd.OutOrStdout()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "delay between frames while playing")

	return cmd
}
