package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanlore/qcircuit/compiler"
)

func newRunCommand() *cobra.Command {
	var lanes int
	var input int

	cmd := &cobra.Command{
		Use:   "run <fulladder|qft|ghz>",
		Short: "Compile a circuit, execute it on the CPU backend, and print the resulting measurement distribution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildCircuit(args[0], lanes)
			if err != nil {
				return err
			}

			p := compiler.New(compiler.Options{Logger: &logger})
			comp := p.Compile(c)
			u, err := p.Execute(cmd.Context(), comp)
			if err != nil {
				return fmt.Errorf("qcircuitc: execute: %w", err)
			}

			dim := 1 << comp.Lanes
			if input < 0 || input >= dim {
				return fmt.Errorf("qcircuitc: input %d out of range for %d lanes", input, comp.Lanes)
			}

			dist := compiler.Distribution(u, input)
			for state, p := range dist {
				if p < 1e-12 {
					continue
				}
				fmt.Printf("%0*b\t%.6f\n", comp.Lanes, state, p)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&lanes, "lanes", 3, "lane count for qft/ghz (ignored by fulladder)")
	cmd.Flags().IntVar(&input, "input", 0, "input basis state index, MSB-first")
	return cmd
}
