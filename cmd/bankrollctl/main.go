// Command bankrollctl drives a bankroll server from the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/saradorri/pokerbankroll/internal/client"
)

var (
	serverURL = flag.String("server", envOr("BANKROLL_SERVER", "http://localhost:8080"), "Bankroll server base URL (env BANKROLL_SERVER)")
	token     = flag.String("token", os.Getenv("BANKROLL_TOKEN"), "Bearer token (env BANKROLL_TOKEN)")
)

// stdout and stderr are swapped in tests
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newClient() *client.Client {
	return client.New(*serverURL, client.WithToken(*token))
}

// authed returns a client or reports that no token is configured
func authed() (*client.Client, bool) {
	if *token == "" {
		fmt.Fprintln(stderr, "Error: no token, run login and export BANKROLL_TOKEN or pass -token.")
		return nil, false
	}
	return newClient(), true
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

func register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&signupCmd{}, "account")
	c.Register(&loginCmd{}, "account")
	c.Register(&meCmd{}, "account")

	c.Register(&tournamentsCmd{}, "tournaments")
	c.Register(&addTournamentCmd{}, "tournaments")
	c.Register(&editTournamentCmd{}, "tournaments")
	c.Register(&deleteTournamentCmd{}, "tournaments")
	c.Register(&statsCmd{}, "tournaments")

	c.Register(&adjustCmd{}, "bankroll")
	c.Register(&adjustmentsCmd{}, "bankroll")
	c.Register(&dashboardCmd{}, "bankroll")
	c.Register(&historyCmd{}, "bankroll")
}

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
