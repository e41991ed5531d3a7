package commands

import (
	"fmt"
	"strconv"
	"strings"

	"combustion/internal/domain"
)

// parseQuantities turns FORMULA[:MOLES] arguments into quantities. A missing
// mole count means one mole.
func parseQuantities(args []string) ([]domain.MaterialQuantity, error) {
	out := make([]domain.MaterialQuantity, 0, len(args))
	for _, arg := range args {
		formula, moles, found := strings.Cut(arg, ":")
		q := domain.MaterialQuantity{Formula: domain.Formula(strings.TrimSpace(formula)), MoleCount: 1}
		if found {
			n, err := strconv.ParseFloat(strings.TrimSpace(moles), 64)
			if err != nil {
				return nil, fmt.Errorf("bad mole count in %q: %w", arg, err)
			}
			q.MoleCount = n
		}
		out = append(out, q)
	}
	return out, nil
}
