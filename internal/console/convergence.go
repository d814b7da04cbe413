package console

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/san-kum/eulerplot/internal/integrators"
)

// WriteConvergence prints one line per scheme and refinement level.
func WriteConvergence(w io.Writer, equation string, rows []integrators.ConvergenceRow) error {
	fmt.Fprintln(w, Subtle.Render(fmt.Sprintf("convergence for %s (error at the final x)", equation)))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "SCHEME\tH\tSTEPS\tERROR\tORDER\t")

	for _, r := range rows {
		order := "-"
		if !math.IsNaN(r.Order) {
			order = fmt.Sprintf("%.3f", r.Order)
		}
		fmt.Fprintf(tw, "%s\t%.6g\t%d\t%.6e\t%s\t\n", r.Scheme, r.StepLength, r.Steps, r.Error, order)
	}

	return tw.Flush()
}
