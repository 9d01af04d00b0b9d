package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ChristopherRabotin/kspdv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kspdv",
		Short: "Approximate delta-V planner for the Kerbol system",
		Long: `Approximate the delta-V (m/s) needed to fly between two bodies of the
Kerbol system, from the Kerbal Space Program delta-V map 1.3.0.

Bodies are referred to by name (case insensitive) or by their index in
the list printed by "kspdv list".

Examples:
  # Kerbin surface to a Mun orbit
  kspdv path kerbin mun --to-orbit

  # Every flight between orbits, exported to dv-orbits.csv
  kspdv table --from-orbit --to-orbit --out orbits
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return kspdv.LoadConfig()
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "also print the transfer rule")
	root.PersistentFlags().String("output", "", "directory where exports are written")
	viper.BindPFlag("general.verbose", root.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("general.output_path", root.PersistentFlags().Lookup("output"))

	root.AddCommand(newListCmd(), newPathCmd(), newTableCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the bodies of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tname\tkind\tparent")
			for i, b := range kspdv.KerbolSystem().Bodies() {
				parent := "-"
				if p := b.Parent(); p != nil {
					parent = p.Name()
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, b.Name(), b.Kind(), parent)
			}
			return w.Flush()
		},
	}
}

func newPathCmd() *cobra.Command {
	var fromOrbit, toOrbit bool
	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Print the delta-V of a flight path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := kspdv.Request{Start: args[0], End: args[1], StartOrbiting: fromOrbit, EndOrbiting: toOrbit}
			fp, err := kspdv.KerbolSystem().FlightPath(req)
			if err != nil {
				return err
			}
			if viper.GetBool("general.verbose") {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d m/s (%s)\n", fp, fp.DeltaV(), fp.Rule())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), fp.DeltaV())
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromOrbit, "from-orbit", false, "depart from orbit instead of the surface")
	cmd.Flags().BoolVar(&toOrbit, "to-orbit", false, "arrive in orbit instead of on the surface")
	return cmd
}

func newTableCmd() *cobra.Command {
	var fromOrbit, toOrbit, stamped bool
	var out string
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print or export the delta-V of every flight path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := kspdv.NewDeltaVMatrix(kspdv.KerbolSystem(), fromOrbit, toOrbit)
			if out == "" {
				return kspdv.WriteMatrixCSV(cmd.OutOrStdout(), m)
			}
			conf := kspdv.ExportConfig{Filename: out, Timestamp: stamped, Header: true}
			filename, err := kspdv.ExportMatrix(conf, m, kspdv.NewLogger(os.Stderr, "export"))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), filename)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromOrbit, "from-orbit", false, "depart from orbit instead of the surface")
	cmd.Flags().BoolVar(&toOrbit, "to-orbit", false, "arrive in orbit instead of on the surface")
	cmd.Flags().StringVar(&out, "out", "", "export to dv-<out>.csv in the output directory instead of printing")
	cmd.Flags().BoolVar(&stamped, "timestamp", false, "append the creation time to the exported file name")
	return cmd
}
