package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/bayesgrid/model"
	"github.com/katalvlaran/bayesgrid/summary"
)

// WriteSummary writes one aligned row describing the draws of name.
func WriteSummary(w io.Writer, name string, s summary.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, summaryHeader("param", s.Intervals))
	fmt.Fprintln(tw, summaryRow(name, s))
	return tw.Flush()
}

// WriteResult writes the run header and one row per parameter with the
// grid-exact estimates followed by the sample summaries.
func WriteResult(w io.Writer, r *model.Result) error {
	if r == nil {
		return ErrNoData
	}
	fmt.Fprintf(w, "model %s (run %s)\n", r.Name, r.ID)
	fmt.Fprintf(w, "grid cells: %d  draws: %d  seed: %d  log normalizer: %.4f\n\n",
		r.Cells, r.Draws, r.Seed, r.LogNormalizer)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	var intervals []summary.Interval
	if len(r.Parameters) > 0 {
		intervals = r.Parameters[0].Summary.Intervals
	}
	fmt.Fprintln(tw, "map\texact mean\texact sd\t"+summaryHeader("param", intervals))
	for _, p := range r.Parameters {
		fmt.Fprintf(tw, "%.4f\t%.4f\t%.4f\t%s\n", p.Exact.MAP, p.Exact.Mean, p.Exact.StdDev, summaryRow(p.Name, p.Summary))
	}
	return tw.Flush()
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func summaryHeader(first string, intervals []summary.Interval) string {
	cols := []string{first, "n", "mean", "sd", "median", "mode"}
	for _, iv := range intervals {
		cols = append(cols, fmt.Sprintf("%.4g%% %s", iv.Width*100, shortMethod(iv.Method)))
	}
	return strings.Join(cols, "\t")
}

func summaryRow(name string, s summary.Summary) string {
	cols := []string{
		name,
		fmt.Sprint(s.N),
		fmt.Sprintf("%.4f", s.Mean),
		fmt.Sprintf("%.4f", s.StdDev),
		fmt.Sprintf("%.4f", s.Median),
		fmt.Sprintf("%.4f", s.Mode),
	}
	for _, iv := range s.Intervals {
		cols = append(cols, fmt.Sprintf("[%.4f, %.4f]", iv.Lower, iv.Upper))
	}
	return strings.Join(cols, "\t")
}

func shortMethod(m summary.Method) string {
	if m == summary.MethodHDI {
		return "HDI"
	}
	return "PI"
}
