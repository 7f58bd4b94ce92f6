// Package chart draws the substitution scores of a codon analysis
package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/feliixx/gomutation/mutate"
	"github.com/feliixx/gomutation/residue"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	barColor     = color.RGBA{R: 42, G: 93, B: 159, A: 255}
	defaultColor = color.RGBA{R: 77, G: 163, B: 255, A: 255}
	meanColor    = color.RGBA{R: 200, G: 50, B: 50, A: 255}
)

type integerTicks struct{}

func (integerTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i := int(math.Ceil(min)); i <= int(math.Floor(max)); i++ {
		ticks = append(ticks, plot.Tick{
			Value: float64(i),
			Label: fmt.Sprintf("%d", i),
		})
	}
	return ticks
}

// Ranking writes a bar chart of the scores of every alternative of
// result, in rank order, with the mean score as a dashed line.
// format is one of the formats supported by plot.WriterTo: png, svg,
// pdf, eps, jpg, tif
func Ranking(result mutate.Result, w io.Writer, format string) error {
	writer, err := Draw(result, format)
	if err != nil {
		return err
	}
	_, err = writer.WriteTo(w)
	return err
}

// Draw builds the chart written by Ranking without writing it, so an
// unsupported format is reported before any output is opened
func Draw(result mutate.Result, format string) (io.WriterTo, error) {

	if len(result.Alternatives) == 0 {
		return nil, fmt.Errorf("no substitute to draw for codon %s", result.Codon)
	}

	source, err := residue.Describe(result.Source)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("BLOSUM62 substitution scores, %s (%s) from %s", source.Name, source.Code, result.Codon)
	p.X.Label.Text = "Substitute"
	p.Y.Label.Text = "Score"
	p.Y.Tick.Marker = integerTicks{}

	// the default substitute gets its own bar so it stands out
	others := make(plotter.Values, len(result.Alternatives))
	deflt := make(plotter.Values, len(result.Alternatives))
	labels := make([]string, len(result.Alternatives))
	for i, n := range result.Alternatives {
		labels[i] = n.Residue.String()
		if n.Residue == result.Default {
			deflt[i] = float64(n.Score)
		} else {
			others[i] = float64(n.Score)
		}
	}

	width := vg.Points(18)
	bars, err := plotter.NewBarChart(others, width)
	if err != nil {
		return nil, err
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0

	defaultBars, err := plotter.NewBarChart(deflt, width)
	if err != nil {
		return nil, err
	}
	defaultBars.Color = defaultColor
	defaultBars.LineStyle.Width = 0

	mean := result.MeanScore()
	line, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: mean},
		{X: float64(len(result.Alternatives)) - 0.5, Y: mean},
	})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = meanColor
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(plotter.NewGrid(), bars, defaultBars, line)
	p.NominalX(labels...)
	p.Legend.Add("default substitute", defaultBars)
	p.Legend.Add(fmt.Sprintf("mean %.2f", mean), line)
	p.Legend.Top = true

	return p.WriterTo(8*vg.Inch, 4*vg.Inch, format)
}
