package main

import (
	"log"
	"os"

	"github.com/aybabtme/amortize/pkg/amortize"
	"github.com/aybabtme/amortize/pkg/utilmath"
	"github.com/urfave/cli"
)

var (
	rateFlag      = cli.Float64Flag{Name: "rate", Usage: "yearly interest rate, in percent", Required: true}
	perYearFlag   = cli.IntFlag{Name: "per_year", Value: 12, Usage: "payment periods per year"}
	paymentFlag   = cli.Float64Flag{Name: "payment", Usage: "amount paid each period", Required: true}
	periodsFlag   = cli.Float64Flag{Name: "periods", Usage: "number of periods to pay off the loan in", Required: true}
	principalFlag = cli.Float64Flag{Name: "principal", Usage: "amount that is loaned", Required: true}
	traceFlag     = cli.BoolFlag{Name: "trace", Usage: "log every step to stderr"}
	plotFlag      = cli.StringFlag{Name: "plot", Usage: "save a PNG chart of the balance to this path"}
	fileFlag      = cli.StringFlag{Name: "file", Usage: "YAML file of loan scenarios", Required: true}
)

func main() {
	app := cli.App{
		Name:  "loan-solver",
		Usage: "solve fixed-rate, fixed-payment loans",
		Commands: []cli.Command{
			{
				Name:   "principal",
				Usage:  "find the principal retired by a payment in a number of periods",
				Flags:  []cli.Flag{rateFlag, perYearFlag, paymentFlag, periodsFlag, traceFlag},
				Action: principalCmd,
			},
			{
				Name:   "periods",
				Usage:  "count the periods a payment takes to retire a principal",
				Flags:  []cli.Flag{rateFlag, perYearFlag, paymentFlag, principalFlag},
				Action: periodsCmd,
			},
			{
				Name:   "schedule",
				Usage:  "print the amortization schedule of a loan",
				Flags:  []cli.Flag{rateFlag, perYearFlag, paymentFlag, principalFlag, plotFlag, traceFlag},
				Action: scheduleCmd,
			},
			{
				Name:   "batch",
				Usage:  "solve every scenario of a YAML file, one JSON result per line",
				Flags:  []cli.Flag{fileFlag},
				Action: batchCmd,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func periodicRate(cctx *cli.Context) float64 {
	return utilmath.PeriodicRate(cctx.Float64(rateFlag.Name)/100.0, cctx.Int(perYearFlag.Name))
}

func options(cctx *cli.Context) []amortize.Option {
	if !cctx.Bool(traceFlag.Name) {
		return nil
	}
	return []amortize.Option{amortize.WithLogger(amortize.LogPretty(os.Stderr))}
}
