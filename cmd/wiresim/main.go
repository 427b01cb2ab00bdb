// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command wiresim resolves circuit description files.
//
//	wiresim eval circuit.txt a
//	wiresim eval --set b=a circuit.txt a
//	wiresim check circuit.txt
//
package main

import (
	"fmt"
	"os"

	"github.com/db47h/wiresim/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "wiresim",
		Short:         "Evaluate 16 bits wire circuits",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(a.evalCmd(), a.checkCmd())
	return root
}

func (a *app) setup() error {
	a.cfg = config.Default()
	if a.cfgFile != "" {
		cfg, err := config.Load(a.cfgFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	lvl, err := a.cfg.Level()
	if err != nil {
		return err
	}
	zc := zap.NewProductionConfig()
	if a.verbose {
		zc = zap.NewDevelopmentConfig()
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	if a.log, err = zc.Build(); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wiresim:", err)
		os.Exit(1)
	}
}
