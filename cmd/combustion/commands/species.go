package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"combustion/internal/domain"
	"combustion/internal/services/species"
	"combustion/internal/store"
)

var errNoServer = errors.New("no server configured. use --server")

func speciesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "species",
		Short: "Manage the material library",
	}
	cmd.AddCommand(
		speciesImportCmd(),
		speciesExportCmd(),
		speciesListCmd(),
		speciesShowCmd(),
		speciesExistsCmd(),
		speciesRemoveCmd(),
		speciesFingerprintCmd(),
		speciesPublishCmd(),
		speciesPullCmd(),
	)
	return cmd
}

func speciesImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Load materials from a JSON library file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			materials, err := store.LoadLibrary(args[0])
			if err != nil {
				return err
			}
			n, err := appCtx.Species.ImportMaterials(materials)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d materials.\n", n, len(materials))
			return err
		},
	}
}

func speciesExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the material library to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			materials, err := appCtx.Materials.ListMaterials()
			if err != nil {
				return err
			}
			if err := store.WriteLibrary(args[0], materials); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d materials.\n", len(materials))
			return nil
		},
	}
}

func speciesListCmd() *cobra.Command {
	var fromServer bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				materials []domain.Material
				err       error
			)
			if fromServer {
				if appCtx.Remote == nil {
					return errNoServer
				}
				ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
				defer cancel()
				materials, err = appCtx.Remote.ListMaterials(ctx)
			} else {
				materials, err = appCtx.Species.ListMaterials()
			}
			if err != nil {
				return err
			}
			return printMaterials(cmd.OutOrStdout(), materials)
		},
	}
	cmd.Flags().BoolVar(&fromServer, "remote", false, "list the server's library instead of the local one")
	return cmd
}

func speciesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <formula>",
		Short: "Print a material's coefficient records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formula := domain.Formula(args[0])
			m, err := appCtx.Species.GetMaterial(formula)
			if err != nil {
				return err
			}
			r, err := appCtx.Species.TemperatureRange(formula)
			if err != nil {
				return err
			}
			fp, err := appCtx.Species.Fingerprint(formula)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\nRange: %.2f-%.2f K\nFingerprint: %s\n\n", m.Formula, m.DisplayName, r.Min, r.Max, fp)
			return printRecords(out, m.Records)
		},
	}
}

func speciesExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists <formula>",
		Short: "Check whether a material is in the library",
		Long:  "Exits non-zero when the material is missing.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formula := domain.Formula(args[0])
			ok, err := appCtx.Species.Exists(formula)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s", species.ErrNotFound, formula)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is in the library\n", formula)
			return nil
		},
	}
}

func speciesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <formula>",
		Short: "Remove a material from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Species.DeleteMaterial(domain.Formula(args[0])); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "removed")
			return nil
		},
	}
}

func speciesFingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <formula>",
		Short: "Print a material's data fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := appCtx.Species.Fingerprint(domain.Formula(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
}

func speciesPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <formula>",
		Short: "Push a local material to the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.Remote == nil {
				return errNoServer
			}
			m, err := appCtx.Species.GetMaterial(domain.Formula(args[0]))
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			if err := appCtx.Remote.PublishMaterial(ctx, m); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "published")
			return nil
		},
	}
}

func speciesPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull <formula>",
		Short: "Fetch a material from the server into the local library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.Remote == nil {
				return errNoServer
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			m, err := appCtx.Remote.FetchMaterial(ctx, domain.Formula(args[0]))
			if err != nil {
				return err
			}
			if err := appCtx.Species.SaveMaterial(m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pulled %s\n", m.Formula)
			return nil
		},
	}
}

func printMaterials(w io.Writer, materials []domain.Material) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FORMULA\tNAME\tINTERVALS")
	for _, m := range materials {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", m.Formula, m.DisplayName, len(m.Records))
	}
	return tw.Flush()
}

func printRecords(w io.Writer, records []domain.CoefficientRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PHASE\tT_MIN\tT_MAX\tH298 kJ/mol\ta\tb\tc\td\te\tf\tg")
	for _, r := range records {
		h := "-"
		if r.FormationEnthalpy != nil {
			h = fmt.Sprintf("%g", *r.FormationEnthalpy)
		}
		c := r.Coefficients
		fmt.Fprintf(tw, "%s\t%g\t%g\t%s\t%g\t%g\t%g\t%g\t%g\t%g\t%g\n",
			r.Phase, r.TMin, r.TMax, h, c.A, c.B, c.C, c.D, c.E, c.F, c.G)
	}
	return tw.Flush()
}
