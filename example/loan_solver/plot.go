package main

import (
	"log"

	"github.com/aybabtme/amortize/pkg/amortize"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func plotBalance(path string, principal float64, periods []amortize.Period) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "outstanding balance"
	p.X.Label.Text = "period"
	p.Y.Label.Text = "balance"

	pts := make(plotter.XYs, 0, len(periods)+1)
	pts = append(pts, plotter.XY{X: 0, Y: principal})
	elapsed := 0.0
	for _, period := range periods {
		elapsed += period.Fraction
		pts = append(pts, plotter.XY{X: elapsed, Y: period.Balance})
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return err
	}
	log.Printf("balance chart saved to %q", path)
	return nil
}
