package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/saradorri/pokerbankroll/internal/client"
	"github.com/saradorri/pokerbankroll/internal/http/handlers"
	"github.com/shopspring/decimal"
)

const periodUsage = "Period: week, month, year or all"

// tournamentFlags holds the raw attribute flags; empty means not given
type tournamentFlags struct {
	date   string
	buyIn  string
	cashed string
	place  string
}

func (t *tournamentFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&t.date, "date", "", "Tournament date, YYYY-MM-DD")
	f.StringVar(&t.buyIn, "buy-in", "", "Buy-in amount")
	f.StringVar(&t.cashed, "cashed", "", "Amount cashed")
	f.StringVar(&t.place, "place", "", "Finish position")
}

func (t *tournamentFlags) params() (client.TournamentParams, error) {
	var p client.TournamentParams
	if t.date != "" {
		d, err := time.Parse(time.DateOnly, t.date)
		if err != nil {
			return p, fmt.Errorf("invalid -date %q, use YYYY-MM-DD", t.date)
		}
		p.Date = &d
	}
	if t.buyIn != "" {
		d, err := decimal.NewFromString(t.buyIn)
		if err != nil {
			return p, fmt.Errorf("invalid -buy-in %q", t.buyIn)
		}
		p.BuyIn = &d
	}
	if t.cashed != "" {
		d, err := decimal.NewFromString(t.cashed)
		if err != nil {
			return p, fmt.Errorf("invalid -cashed %q", t.cashed)
		}
		p.CashedFor = &d
	}
	if t.place != "" {
		n, err := strconv.Atoi(t.place)
		if err != nil {
			return p, fmt.Errorf("invalid -place %q", t.place)
		}
		p.PlaceFinished = &n
	}
	return p, nil
}

func printTournaments(ts []handlers.TournamentResponse) {
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tBUY-IN\tCASHED\tPLACE\tNET")
	for _, t := range ts {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%.2f\t%d\t%s\n", t.ID, t.Date, t.BuyIn, t.CashedFor, t.PlaceFinished, t.DisplayNet)
	}
	w.Flush()
}

type tournamentsCmd struct {
	period string
}

func (*tournamentsCmd) Name() string     { return "tournaments" }
func (*tournamentsCmd) Synopsis() string { return "list tournament results" }
func (*tournamentsCmd) Usage() string {
	return `tournaments [-period <week|month|year|all>]

  Lists results of the period, newest first, with the period profit.
`
}

func (c *tournamentsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "all", periodUsage)
}

func (c *tournamentsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cl, ok := authed()
	if !ok {
		return subcommands.ExitUsageError
	}
	list, err := cl.Tournaments(ctx, c.period)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "%s: %d tournaments, profit %.2f\n", list.PeriodDisplay, list.TotalCount, list.TotalProfit)
	printTournaments(list.Results)
	return subcommands.ExitSuccess
}

type addTournamentCmd struct{ tournamentFlags }

func (*addTournamentCmd) Name() string     { return "add-tournament" }
func (*addTournamentCmd) Synopsis() string { return "log a tournament result" }
func (*addTournamentCmd) Usage() string {
	return `add-tournament -buy-in <amount> -place <n> [-cashed <amount>] [-date YYYY-MM-DD]

  Records a result; the bankroll moves by cashed minus buy-in. The date defaults to today.
`
}

func (c *addTournamentCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *addTournamentCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		c.date = time.Now().Format(time.DateOnly)
	}
	p, err := c.params()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	cl, ok := authed()
	if !ok {
		return subcommands.ExitUsageError
	}
	t, err := cl.CreateTournament(ctx, p)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "Tournament added! Net: %s (id %d)\n", t.DisplayNet, t.ID)
	return subcommands.ExitSuccess
}

type editTournamentCmd struct {
	tournamentFlags
	id int64
}

func (*editTournamentCmd) Name() string     { return "edit-tournament" }
func (*editTournamentCmd) Synopsis() string { return "change attributes of a result" }
func (*editTournamentCmd) Usage() string {
	return `edit-tournament -id <id> [-date YYYY-MM-DD] [-buy-in <amount>] [-cashed <amount>] [-place <n>]

  Updates only the given attributes; the bankroll moves by the change in net amount.
`
}

func (c *editTournamentCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.Int64Var(&c.id, "id", 0, "Tournament id (required)")
}

func (c *editTournamentCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		fmt.Fprintln(stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	p, err := c.params()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	cl, ok := authed()
	if !ok {
		return subcommands.ExitUsageError
	}
	t, err := cl.UpdateTournament(ctx, c.id, p)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "Tournament updated successfully! Net: %s\n", t.DisplayNet)
	return subcommands.ExitSuccess
}

type deleteTournamentCmd struct {
	id int64
}

func (*deleteTournamentCmd) Name() string     { return "delete-tournament" }
func (*deleteTournamentCmd) Synopsis() string { return "remove a result and reverse its net amount" }
func (*deleteTournamentCmd) Usage() string {
	return "delete-tournament -id <id>\n"
}

func (c *deleteTournamentCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Tournament id (required)")
}

func (c *deleteTournamentCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		fmt.Fprintln(stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	cl, ok := authed()
	if !ok {
		return subcommands.ExitUsageError
	}
	if err := cl.DeleteTournament(ctx, c.id); err != nil {
		return fail(err)
	}
	fmt.Fprintln(stdout, "Tournament deleted successfully!")
	return subcommands.ExitSuccess
}

type statsCmd struct {
	period string
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "show tournament statistics" }
func (*statsCmd) Usage() string {
	return "stats [-period <week|month|year|all>]\n"
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "all", periodUsage)
}

func (c *statsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cl, ok := authed()
	if !ok {
		return subcommands.ExitUsageError
	}
	s, err := cl.Stats(ctx, c.period)
	if err != nil {
		return fail(err)
	}
	printStats(*s)
	return subcommands.ExitSuccess
}

func printStats(s handlers.StatsResponse) {
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Tournaments\t%d\n", s.TotalTournaments)
	fmt.Fprintf(w, "Buy-ins\t%.2f\n", s.TotalBuyIns)
	fmt.Fprintf(w, "Cashed\t%.2f\n", s.TotalCash)
	fmt.Fprintf(w, "Profit\t%.2f\n", s.TotalProfit)
	fmt.Fprintf(w, "ROI\t%.2f%%\n", s.ROI)
	fmt.Fprintf(w, "ITM\t%d (%.2f%%)\n", s.ITMCount, s.ITMPercentage)
	fmt.Fprintf(w, "Wins\t%d (%.2f%%)\n", s.FirstPlaces, s.FirstPlacePercentage)
	fmt.Fprintf(w, "Top 10\t%d (%.2f%%)\n", s.Top10Finishes, s.Top10Percentage)
	fmt.Fprintf(w, "Avg buy-in\t%.2f\n", s.AvgBuyIn)
	w.Flush()
}
