package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aybabtme/amortize/pkg/amortize"
	"github.com/aybabtme/amortize/pkg/utilmath"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v2"
)

// Scenario is a loan to solve. Exactly one of Principal and Periods is set,
// the other one is what gets solved for.
type Scenario struct {
	Name      string  `yaml:"name"`
	Rate      float64 `yaml:"rate"`
	PerYear   int     `yaml:"per_year"`
	Payment   float64 `yaml:"payment"`
	Principal float64 `yaml:"principal"`
	Periods   float64 `yaml:"periods"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Result is the outcome of a scenario. Amounts are rounded to cents.
type Result struct {
	Name      string           `json:"name"`
	Principal *decimal.Decimal `json:"principal,omitempty"`
	Periods   float64          `json:"periods,omitempty"`
	Error     string           `json:"error,omitempty"`
}

func batchCmd(cctx *cli.Context) error {
	f, err := os.Open(cctx.String(fileFlag.Name))
	if err != nil {
		return err
	}
	defer f.Close()
	return runBatch(f, os.Stdout)
}

func runBatch(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	var file scenarioFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return fmt.Errorf("parsing scenarios: %w", err)
	}
	enc := json.NewEncoder(w)
	for _, sc := range file.Scenarios {
		if err := enc.Encode(solveScenario(sc)); err != nil {
			return err
		}
	}
	return nil
}

func solveScenario(sc Scenario) Result {
	res := Result{Name: sc.Name}
	perYear := sc.PerYear
	if perYear == 0 {
		perYear = 12
	}
	rate := utilmath.PeriodicRate(sc.Rate/100.0, perYear)

	switch {
	case sc.Principal != 0 && sc.Periods != 0:
		res.Error = "set either principal or periods, not both"
	case sc.Principal != 0:
		n, err := amortize.NumberOfPayments(sc.Principal, rate, sc.Payment)
		if err != nil {
			res.Error = err.Error()
			return res
		}
		res.Periods = n
	case sc.Periods != 0:
		p, err := amortize.SolveForPrincipal(rate, sc.Payment, sc.Periods)
		if err != nil {
			res.Error = err.Error()
			return res
		}
		cents := decimal.NewFromFloat(p).Round(2)
		res.Principal = &cents
	default:
		res.Error = "one of principal or periods is required"
	}
	return res
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
