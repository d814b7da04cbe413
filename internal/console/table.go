package console

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/eulerplot/internal/dynamo"
)

const (
	headerFormat = "%6s %16s %16s %16s\n"
	rowFormat    = "%6.2f %16.10f %16.10f %16.10f\n"
)

// WriteTable prints one fixed-width row per step under a two-line header.
func WriteTable(w io.Writer, s *dynamo.Series) error {
	if !s.Aligned() {
		return dynamo.ErrMisaligned
	}

	if _, err := fmt.Fprintf(w, headerFormat, "x", "approx y (Euler)", "approx y (Midpoint)", "exact y"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, headerFormat, "-", "----------------", "-----------------", "-------"); err != nil {
		return err
	}

	for i := range s.X {
		if _, err := fmt.Fprintf(w, rowFormat, s.X[i], s.Euler[i], s.Midpoint[i], s.Exact[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV prints the series with the absolute error of each scheme.
func WriteCSV(w io.Writer, s *dynamo.Series) error {
	if !s.Aligned() {
		return dynamo.ErrMisaligned
	}

	cw := csv.NewWriter(w)

	header := []string{"x", "euler", "midpoint", "exact", "euler_error", "midpoint_error"}
	if err := cw.Write(header); err != nil {
		return err
	}

	eulerErr, midErr := s.Errors()
	for i := range s.X {
		row := []string{
			strconv.FormatFloat(s.X[i], 'f', -1, 64),
			strconv.FormatFloat(s.Euler[i], 'f', 10, 64),
			strconv.FormatFloat(s.Midpoint[i], 'f', 10, 64),
			strconv.FormatFloat(s.Exact[i], 'f', 10, 64),
			strconv.FormatFloat(eulerErr[i], 'e', 6, 64),
			strconv.FormatFloat(midErr[i], 'e', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
