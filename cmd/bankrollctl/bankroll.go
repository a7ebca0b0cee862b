package main

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/shopspring/decimal"
)

type adjustCmd struct {
	kind        string
	amount      string
	description string
}

func (*adjustCmd) Name() string     { return "adjust" }
func (*adjustCmd) Synopsis() string { return "deposit, withdraw or correct the bankroll" }
func (*adjustCmd) Usage() string {
	return `adjust -type <deposit|withdrawal|correction> -amount <amount> [-description <text>]

  A correction sets the bankroll to the amount; the others move it.
`
}

func (c *adjustCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", string(domain.TransactionTypeDeposit), "Adjustment type")
	f.StringVar(&c.amount, "amount", "", "Amount (required)")
	f.StringVar(&c.description, "description", "", "Description")
}

func (c *adjustCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid -amount %q\n", c.amount)
		return subcommands.ExitUsageError
	}
	cl, ok := authed()
	if !ok {
		return subcommands.ExitUsageError
	}
	a, err := cl.Adjust(ctx, domain.TransactionType(c.kind), amount, c.description)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "%s of %s recorded (id %d)\n",
		domain.TransactionType(a.TransactionType).Label(), domain.FormatMoney(decimal.NewFromFloat(a.Amount)), a.ID)
	return subcommands.ExitSuccess
}

type adjustmentsCmd struct {
	period string
}

func (*adjustmentsCmd) Name() string     { return "adjustments" }
func (*adjustmentsCmd) Synopsis() string { return "list bankroll adjustments" }
func (*adjustmentsCmd) Usage() string {
	return "adjustments [-period <week|month|year|all>]\n"
}

func (c *adjustmentsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "all", periodUsage)
}

func (c *adjustmentsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cl, ok := authed()
	if !ok {
		return subcommands.ExitUsageError
	}
	list, err := cl.Adjustments(ctx, c.period)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintln(stdout, list.PeriodDisplay)
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTYPE\tAMOUNT\tDESCRIPTION")
	for _, a := range list.Results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\n", a.ID, a.Date.Format(time.DateTime), a.TransactionType, a.Amount, a.Description)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type dashboardCmd struct {
	period string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the bankroll overview" }
func (*dashboardCmd) Usage() string {
	return "dashboard [-period <week|month|year|all>]\n"
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "week", periodUsage)
}

func (c *dashboardCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cl, ok := authed()
	if !ok {
		return subcommands.ExitUsageError
	}
	d, err := cl.Dashboard(ctx, c.period)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "%s, bankroll %s (%s)\n", d.User.Username, d.User.DisplayBankroll, d.PeriodDisplay)
	printStats(d.Stats.StatsResponse)
	fmt.Fprintf(stdout, "Deposits %.2f, withdrawals %.2f, net %.2f\n",
		d.Stats.TotalDeposits, d.Stats.TotalWithdrawals, d.Stats.NetAdjustments)
	if len(d.RecentTournaments) > 0 {
		fmt.Fprintln(stdout, "\nRecent tournaments")
		printTournaments(d.RecentTournaments)
	}
	return subcommands.ExitSuccess
}

type historyCmd struct {
	days int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the daily closing bankroll" }
func (*historyCmd) Usage() string {
	return "history [-days <n>]\n"
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 30, "Number of days, 1 to 365")
}

func (c *historyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cl, ok := authed()
	if !ok {
		return subcommands.ExitUsageError
	}
	h, err := cl.History(ctx, c.days)
	if err != nil {
		return fail(err)
	}
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	for _, p := range h.Points {
		fmt.Fprintf(w, "%s\t%.2f\n", p.Date, p.Balance)
	}
	w.Flush()
	return subcommands.ExitSuccess
}
