package main

import (
	"fmt"
	"os"

	"github.com/kiryu-dev/tic-tac-toe-match/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type overrides struct {
	cfgPath     string
	scoreLimit  int
	fallibility float64
	seed        uint64
	name        string
	events      string
}

func newRootCmd() *cobra.Command {
	o := &overrides{}
	root := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Play a tic-tac-toe match against the computer",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			fd := os.Stdout.Fd()
			tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
			return run(cmd.Context(), cfg, os.Stdin, os.Stdout, tty)
		},
	}
	root.PersistentFlags().StringVar(&o.cfgPath, "config", config.DefaultPath, "path to config")
	root.PersistentFlags().IntVar(&o.scoreLimit, "score-limit", 0, "rounds needed to become champion")
	root.PersistentFlags().Float64Var(&o.fallibility, "fallibility", 0, "probability the computer plays randomly")
	root.PersistentFlags().Uint64Var(&o.seed, "seed", 0, "random seed")
	root.PersistentFlags().StringVar(&o.name, "name", "", "your name")
	root.PersistentFlags().StringVar(&o.events, "events", "", "append JSON lines match events to this file")
	root.AddCommand(newConfigCmd(o))
	return root
}

func newConfigCmd(o *overrides) *cobra.Command {
	var env bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if env {
				config.EnvUsage(cmd.OutOrStdout())
				return nil
			}
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			out, err := cfg.Dump()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().BoolVar(&env, "env", false, "list the supported environment variables instead")
	return cmd
}

// load reads the config file and applies the flags the user actually set.
func (o *overrides) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.New(o.cfgPath)
	if err != nil {
		return config.Config{}, errors.WithMessage(err, "load config")
	}
	flags := cmd.Flags()
	if flags.Changed("score-limit") {
		cfg.ScoreLimit = o.scoreLimit
	}
	if flags.Changed("fallibility") {
		cfg.Fallibility = o.fallibility
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("name") {
		cfg.PlayerName = o.name
	}
	if flags.Changed("events") {
		cfg.EventsFile = o.events
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, errors.WithMessage(err, "validate flags")
	}
	return cfg, nil
}
