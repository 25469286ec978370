package report

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/bayesgrid/model"
	"github.com/katalvlaran/bayesgrid/posterior"
	"github.com/katalvlaran/bayesgrid/summary"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Sentinel errors for plotting.
var (
	// ErrNoData indicates an empty sample or a nil posterior.
	ErrNoData = errors.New("report: nothing to plot")

	// ErrInvalidBins indicates a histogram with fewer than one bin.
	ErrInvalidBins = errors.New("report: bins must be >= 1")
)

// Plot size used by Save, WriteTo and PlotResult.
const (
	Width  = 8 * vg.Inch
	Height = 5 * vg.Inch
)

var (
	posteriorColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	histFill       = color.RGBA{R: 158, G: 202, B: 225, A: 255}
	quantileColor  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	hdiColor       = color.RGBA{R: 44, G: 160, B: 44, A: 255}
)

// PosteriorPlot draws the marginal posterior mass of axis k against the
// axis grid points.
func PosteriorPlot(m *posterior.Mass, k int) (*plot.Plot, error) {
	if m == nil {
		return nil, ErrNoData
	}
	marg, err := m.Marginal(k)
	if err != nil {
		return nil, fmt.Errorf("PosteriorPlot: %w", err)
	}
	ax, _ := m.Grid().Axis(k)

	pts := make(plotter.XYs, len(marg))
	for i, p := range marg {
		pts[i] = plotter.XY{X: ax.At(i), Y: p}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("PosteriorPlot: %w", err)
	}
	line.Width = vg.Points(1.5)
	line.Color = posteriorColor

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Posterior of %s", ax.Name())
	p.X.Label.Text = ax.Name()
	p.Y.Label.Text = "posterior probability"
	p.Add(plotter.NewGrid(), line)
	return p, nil
}

// SampleHistogram draws a density-normalized histogram of draws with the
// bounds of each interval as vertical lines.
func SampleHistogram(name string, draws []float64, bins int, intervals ...summary.Interval) (*plot.Plot, error) {
	if len(draws) == 0 {
		return nil, ErrNoData
	}
	if bins < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBins, bins)
	}
	h, err := plotter.NewHist(plotter.Values(draws), bins)
	if err != nil {
		return nil, fmt.Errorf("SampleHistogram: %w", err)
	}
	h.Normalize(1)
	h.FillColor = histFill

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d draws of %s", len(draws), name)
	p.X.Label.Text = name
	p.Y.Label.Text = "density"
	p.Add(h)

	_, _, _, ymax := h.DataRange()
	for _, iv := range intervals {
		c := quantileColor
		if iv.Method == summary.MethodHDI {
			c = hdiColor
		}
		for _, x := range []float64{iv.Lower, iv.Upper} {
			l, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: ymax}})
			if err != nil {
				return nil, fmt.Errorf("SampleHistogram: %w", err)
			}
			l.Color = c
			l.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
			p.Add(l)
			if x == iv.Lower {
				p.Legend.Add(fmt.Sprintf("%.4g%% %s", iv.Width*100, iv.Method), l)
			}
		}
	}
	p.Legend.Top = true
	return p, nil
}

// Save writes p to path; the format follows the extension (.png, .svg, .pdf ...).
func Save(p *plot.Plot, path string) error {
	if err := p.Save(Width, Height, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// WriteTo renders p in format ("png", "svg", ...) to w.
func WriteTo(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(Width, Height, strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	return nil
}

// PlotResult saves a posterior plot and, when draws exist, a histogram for
// every parameter of r into dir as PNG files. It returns the written paths.
func PlotResult(dir string, r *model.Result) ([]string, error) {
	if r == nil || r.Posterior == nil {
		return nil, ErrNoData
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("PlotResult: %w", err)
	}

	var paths []string
	for k, pr := range r.Parameters {
		p, err := PosteriorPlot(r.Posterior, k)
		if err != nil {
			return paths, err
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%s_posterior.png", r.Name, pr.Name))
		if err := Save(p, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)

		if r.Samples == nil || r.Samples.Len() == 0 {
			continue
		}
		draws, err := r.Samples.Param(k)
		if err != nil {
			return paths, err
		}
		h, err := SampleHistogram(pr.Name, draws, 40, pr.Summary.Intervals...)
		if err != nil {
			return paths, err
		}
		path = filepath.Join(dir, fmt.Sprintf("%s_%s_draws.png", r.Name, pr.Name))
		if err := Save(h, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
