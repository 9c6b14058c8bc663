package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vanlore/qcircuit/compiler"
	"github.com/vanlore/qcircuit/wire"
)

func newEmitCommand() *cobra.Command {
	var lanes int
	var out string

	cmd := &cobra.Command{
		Use:   "emit <fulladder|qft|ghz>",
		Short: "Compile a circuit and write its instruction stream in the .qcf wire format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildCircuit(args[0], lanes)
			if err != nil {
				return err
			}

			p := compiler.New(compiler.Options{Logger: &logger})
			comp := p.Compile(c)

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("qcircuitc: create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			for _, contraction := range comp.Contractions {
				if contraction.Plan == nil {
					logger.Warn().Int("root", contraction.Root.ID).
						Msg("qcircuitc: bare-leaf contraction has no instructions to emit, skipping")
					continue
				}
				if err := wire.Emit(cmd.Context(), w, contraction.Plan); err != nil {
					return fmt.Errorf("qcircuitc: emit: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&lanes, "lanes", 3, "lane count for qft/ghz (ignored by fulladder)")
	cmd.Flags().StringVar(&out, "out", "", "output file path (defaults to stdout)")
	return cmd
}
