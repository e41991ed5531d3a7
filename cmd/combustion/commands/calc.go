package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"combustion/internal/domain"
)

// calc: reaction enthalpy and adiabatic temperature for -r/-p or --request.
func calcCmd() *cobra.Command {
	var (
		reagents    []string
		products    []string
		requestPath string
		asJSON      bool
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute reaction enthalpy and adiabatic flame temperature",
		Example: `  combustion calc -r CH4:1 -r O2:2 -p CO2:1 -p H2O:2
  combustion calc --request reaction.json --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req domain.CalculationRequest
			if requestPath != "" {
				b, err := os.ReadFile(requestPath)
				if err != nil {
					return err
				}
				if err := json.Unmarshal(b, &req); err != nil {
					return fmt.Errorf("request %s: %w", requestPath, err)
				}
			}
			more, err := parseQuantities(reagents)
			if err != nil {
				return err
			}
			req.Reagents = append(req.Reagents, more...)
			if more, err = parseQuantities(products); err != nil {
				return err
			}
			req.Products = append(req.Products, more...)

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			res, err := appCtx.Calculations.Calculate(ctx, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			fmt.Fprintf(out, "Reaction enthalpy:     %.2f kJ\n", res.ReactionEnthalpy)
			fmt.Fprintf(out, "Adiabatic temperature: %.2f K\n", res.AdiabaticTemperature)
			if !res.Converged {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: solver stopped after %d iterations without converging\n", res.Iterations)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&reagents, "reagent", "r", nil, "reagent as FORMULA[:MOLES] (repeatable)")
	cmd.Flags().StringArrayVarP(&products, "product", "p", nil, "product as FORMULA[:MOLES] (repeatable)")
	cmd.Flags().StringVar(&requestPath, "request", "", "read reagents and products from a JSON request file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
