package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logger zerolog.Logger

func newRootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "qcircuitc",
		Short:         "Compile and run quantum circuits through the span/tensor/lowering pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v.SetEnvPrefix("QCIRCUITC")
			v.AutomaticEnv()
			level, err := zerolog.ParseLevel(v.GetString("log-level"))
			if err != nil {
				return err
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
			return nil
		},
	}

	root.PersistentFlags().String("log-level", "info", "log level: trace, debug, info, warn, error")
	_ = v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newRunCommand(), newEmitCommand())
	return root
}
