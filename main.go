package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := defaultOptions()
	cmd := &cobra.Command{
		Use:           "gateway",
		Short:         "Browse the Gateway Links directory over a drifting star field",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	f := cmd.Flags()
	f.Int64Var(&opts.seed, "seed", 0, "random seed for the star field (0 picks one from the clock)")
	f.IntVar(&opts.cellWidth, "cell-width", opts.cellWidth, "pixel width of one terminal cell")
	f.IntVar(&opts.cellHeight, "cell-height", opts.cellHeight, "pixel height of one terminal cell")
	f.IntVar(&opts.fps, "fps", opts.fps, "frame rate of the star field")
	f.StringVar(&opts.logPath, "log", "", "write debug log to this file")
	f.BoolVar(&opts.noStars, "no-stars", false, "disable the star field")
	return cmd
}
