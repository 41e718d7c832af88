package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"marsrover/internal/config"
	"marsrover/internal/interpreter"
	"marsrover/internal/report"
)

var log = commonlog.GetLogger("marsrover.cli")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// options are the flags shared by every command.
type options struct {
	configPath string
	verbosity  int
	logFile    string
}

func newRootCmd() *cobra.Command {
	var opts options
	var format string
	var showMap bool

	cmd := &cobra.Command{
		Use:   "marsrover [script]",
		Short: "Drive rovers across a grid from a command script",
		Long: `Reads a rover script from the given file, or from standard input when no
file is given, and prints the final state of every rover in input order.

A script starts with the grid size followed by one rover per line:

  4 8
  (2, 3, E) LFRFF
  (0, 2, N) FFLFRFF`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}
			if cmd.Flags().Changed("map") {
				cfg.Map.Show = showMap
			}
			if err := report.CheckFormat(cfg.Format); err != nil {
				return err
			}

			prog, err := parseInput(cmd, args)
			if err != nil {
				return err
			}

			rovers := prog.Exec(interpreter.NewContext())
			out := cmd.OutOrStdout()
			if err := report.Write(out, cfg.Format, rovers); err != nil {
				return fmt.Errorf("write results: %w", err)
			}
			if cfg.Map.Show {
				board, err := prog.Grid.Display(rovers, cfg.Map.MaxWidth, cfg.Map.MaxHeight)
				if err != nil {
					log.Warningf("%s", err)
					return nil
				}
				fmt.Fprint(out, "\n", board)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a TOML config file")
	cmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	cmd.Flags().BoolVar(&showMap, "map", false, "draw the grid with the final rover positions")

	cmd.AddCommand(newWatchCmd(&opts))

	return cmd
}

// load reads the config file, if any, lets flags override it and sets up
// logging.
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbosity = o.verbosity
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = o.logFile
	}

	var logPath *string
	if cfg.LogFile != "" {
		logPath = &cfg.LogFile
	}
	commonlog.Configure(cfg.Verbosity, logPath)
	log.Debugf("config: %+v", *cfg)
	return cfg, nil
}

// parseInput reads the script named by args, or standard input, and parses
// it.
func parseInput(cmd *cobra.Command, args []string) (*interpreter.Program, error) {
	name, data, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return nil, err
	}
	log.Infof("read %d bytes from %s", len(data), name)
	return interpreter.Parse(name, data)
}

func readInput(stdin io.Reader, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read standard input: %w", err)
		}
		return "<stdin>", string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read script: %w", err)
	}
	return args[0], string(data), nil
}

// printError writes every syntax error on its own line; anything else is a
// single line.
func printError(w io.Writer, err error) {
	var errs interpreter.SyntaxErrors
	if errors.As(err, &errs) {
		for _, e := range errs {
			fmt.Fprintln(w, e)
		}
		return
	}
	fmt.Fprintf(w, "marsrover: %s\n", err)
}
