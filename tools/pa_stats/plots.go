package pa_stats

import (
	"bytes"
	"image/color"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// maxPlotBars bounds the x axis; reads with more colors land in the last bar.
const maxPlotBars = 64

// GenerateSetSizePlotSVG draws the colors-per-read histogram as an SVG bar chart.
func GenerateSetSizePlotSVG(setSizes map[int]uint64) (string, error) {
	if len(setSizes) == 0 {
		return "", errors.New("no reads to plot")
	}

	maxSize := 0
	for k := range setSizes {
		if k > maxSize {
			maxSize = k
		}
	}
	nBars := maxSize + 1
	overflow := false
	if nBars > maxPlotBars {
		nBars = maxPlotBars
		overflow = true
	}

	values := make(plotter.Values, nBars)
	for k, n := range setSizes {
		if k >= nBars {
			k = nBars - 1
		}
		values[k] += float64(n)
	}
	labels := make([]string, nBars)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	if overflow {
		labels[nBars-1] += "+"
	}

	p := plot.New()
	p.Title.Text = "Colors per Read"
	p.X.Label.Text = "Number of Colors"
	p.Y.Label.Text = "Read Count"

	bars, err := plotter.NewBarChart(values, vg.Points(8))
	if err != nil {
		return "", err
	}
	bars.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)

	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteSetSizePlot writes the histogram to <prefix>_set_sizes.svg and returns the file name.
func WriteSetSizePlot(prefix string, s Summary) (string, error) {
	svg, err := GenerateSetSizePlotSVG(s.SetSizes)
	if err != nil {
		return "", err
	}
	name := prefix + "_set_sizes.svg"
	if err := os.WriteFile(name, []byte(svg), 0644); err != nil {
		return "", errors.Wrap(err, "writing plot")
	}
	return name, nil
}
