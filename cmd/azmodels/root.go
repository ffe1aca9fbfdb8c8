/*
Copyright 2019 Alexander Eldeib.
*/

package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/alexeldeib/azmodels/cmd/cmdutil"
	"github.com/alexeldeib/azmodels/cmd/documents"
	"github.com/alexeldeib/azmodels/cmd/scaffold"
	"github.com/alexeldeib/azmodels/pkg/scheme"
)

func NewRootCommand(version string) *cobra.Command {
	g := &cmdutil.Globals{}
	root := cmdutil.NewRootCommand("azmodels", g)
	root.Short = "Decode, check and scaffold Azure compute documents"
	root.AddCommand(NewVersionCommand(version))
	root.AddCommand(NewEnumsCommand(g))
	root.AddCommand(documents.NewDecodeCommand(g))
	root.AddCommand(documents.NewRoundtripCommand(g))
	root.AddCommand(documents.NewLintCommand(g))
	root.AddCommand(documents.NewConvertCommand(g))
	root.AddCommand(scaffold.NewScaffoldCommand(g))
	return root
}

func NewVersionCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", version)
		},
	}
	return cmd
}

func NewEnumsCommand(g *cmdutil.Globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enums [family]",
		Short: "List enum families, or the known values of one family",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enums := scheme.Registry.Enums()
			if len(args) == 0 {
				for _, f := range enums.Families() {
					mode := "open"
					if f.Closed() {
						mode = "closed"
					}
					line := fmt.Sprintf("%s\t%s\t%d values", f.Name(), mode, len(f.Wire()))
					if d, ok := f.DefaultWire(); ok {
						line += fmt.Sprintf("\tdefault %q", d)
					}
					fmt.Fprintln(g.Out, line)
				}
				return nil
			}

			f, ok := enums.Lookup(args[0])
			if !ok {
				return errors.Errorf("unknown enum family %q, run %q to list families", args[0], "azmodels enums")
			}
			fmt.Fprintln(g.Out, strings.Join(f.Wire(), "\n"))
			return nil
		},
	}
	return cmd
}
