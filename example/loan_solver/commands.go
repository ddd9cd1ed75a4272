package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/aybabtme/amortize/pkg/amortize"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli"
)

func principalCmd(cctx *cli.Context) error {
	var (
		rate    = periodicRate(cctx)
		payment = cctx.Float64(paymentFlag.Name)
		periods = cctx.Float64(periodsFlag.Name)
	)
	sol, err := amortize.Solve(rate, payment, periods, options(cctx)...)
	if err != nil {
		return err
	}
	fmt.Printf("principal: %s\n", money(sol.Principal))
	fmt.Printf("periods:   %s\n", humanize.Ftoa(sol.Periods))
	fmt.Printf("steps:     %d\n", sol.Iterations)
	return nil
}

func periodsCmd(cctx *cli.Context) error {
	n, err := amortize.NumberOfPayments(
		cctx.Float64(principalFlag.Name),
		periodicRate(cctx),
		cctx.Float64(paymentFlag.Name),
	)
	if err != nil {
		return err
	}
	fmt.Printf("periods: %s\n", humanize.Ftoa(n))
	return nil
}

func scheduleCmd(cctx *cli.Context) error {
	principal := cctx.Float64(principalFlag.Name)
	periods, err := amortize.Schedule(
		principal,
		periodicRate(cctx),
		cctx.Float64(paymentFlag.Name),
		options(cctx)...,
	)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "period\tpayment\tinterest\trepaid\tbalance\t")
	var interest float64
	for _, p := range periods {
		interest += p.Interest
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n",
			p.Index,
			humanize.FormatFloat("#,###.##", p.Payment),
			humanize.FormatFloat("#,###.##", p.Interest),
			humanize.FormatFloat("#,###.##", p.Repaid),
			humanize.FormatFloat("#,###.##", p.Balance),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Printf("total interest: %s\n", humanize.FormatFloat("#,###.##", interest))

	if path := cctx.String(plotFlag.Name); path != "" {
		return plotBalance(path, principal, periods)
	}
	return nil
}
