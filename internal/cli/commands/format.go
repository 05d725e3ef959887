package commands

import (
	"fmt"
	"math"
	"strconv"

	"ItemKeeper/internal/model"
)

func printItem(it *model.Item) {
	fmt.Fprintf(Out, "  id:    %s\n", it.ID)
	fmt.Fprintf(Out, "  name:  %s\n", nameOrDash(it.Name))
	fmt.Fprintf(Out, "  stock: %s\n", stockOrDash(it.Stock))
}

func nameOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func stockOrDash(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

// parseStock разбирает остаток, допускаются только конечные числа.
func parseStock(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("stock must be a finite number: %s", s)
	}
	return v, nil
}
