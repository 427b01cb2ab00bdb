// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/db47h/wiresim"
	"github.com/db47h/wiresim/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) evalCmd() *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "eval FILE [WIRE...]",
		Short: "Resolve a circuit and print wire values",
		Long: `Resolves every wire of the circuit in FILE and prints the requested wires,
or all wires if none are given on the command line or in the configuration.

With --set WIRE=SOURCE, WIRE is pinned to the value SOURCE (a wire or a
literal) has after a first resolution, then the circuit is resolved again.
All sources are read from the first resolution.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ovs := append([]config.Override(nil), a.cfg.Overrides...)
			for _, s := range sets {
				o, err := config.ParseOverride(s)
				if err != nil {
					return err
				}
				ovs = append(ovs, o)
			}
			queries := a.cfg.Queries
			if len(args) > 1 {
				queries = args[1:]
			}
			return a.eval(cmd.OutOrStdout(), args[0], queries, ovs)
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "pin WIRE to the value of SOURCE from a first run (WIRE=SOURCE)")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Parse and validate a circuit without printing wire values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ins, err := readCircuit(args[0])
			if err != nil {
				return err
			}
			c, err := wiresim.Resolve(ins, wiresim.WithLogger(a.log))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d instructions, %d passes\n", args[0], len(ins), c.Passes())
			return nil
		},
	}
}

func readCircuit(name string) ([]wiresim.Instruction, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ins, err := wiresim.Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return ins, nil
}

func (a *app) eval(w io.Writer, name string, queries []string, ovs []config.Override) error {
	ins, err := readCircuit(name)
	if err != nil {
		return err
	}
	log := a.log.With(zap.String("circuit", name))
	log.Info("circuit loaded", zap.Int("instructions", len(ins)))

	c, err := wiresim.Resolve(ins, wiresim.WithLogger(log))
	if err != nil {
		return err
	}

	if len(ovs) > 0 {
		next := ins
		for _, o := range ovs {
			v, err := c.Get(o.From)
			if err != nil {
				return errors.Wrapf(err, "override %s", o)
			}
			if next, err = wiresim.Override(next, o.Wire, wiresim.Lit(v)); err != nil {
				return err
			}
			log.Info("wire overridden", zap.String("wire", o.Wire), zap.Uint16("value", v))
		}
		if c, err = wiresim.Resolve(next, wiresim.WithLogger(log)); err != nil {
			return err
		}
	}

	if len(queries) == 0 {
		queries = c.Store().Names()
	}
	for _, q := range queries {
		v, err := c.Get(q)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s=%d\n", q, v)
	}
	return nil
}
