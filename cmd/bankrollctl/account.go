package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type credentials struct {
	username string
	password string
}

func (c *credentials) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username (required)")
	f.StringVar(&c.password, "p", "", "Password, defaults to env BANKROLL_PASSWORD")
}

func (c *credentials) check() bool {
	if c.password == "" {
		c.password = os.Getenv("BANKROLL_PASSWORD")
	}
	if c.username == "" || c.password == "" {
		fmt.Fprintln(stderr, "Error: -u and -p (or BANKROLL_PASSWORD) are required.")
		return false
	}
	return true
}

type signupCmd struct{ credentials }

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "register a new player" }
func (*signupCmd) Usage() string {
	return `signup -u <username> [-p <password>]

  Creates an account with the opening bankroll.
`
}

func (c *signupCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *signupCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.check() {
		return subcommands.ExitUsageError
	}
	u, err := newClient().SignUp(ctx, c.username, c.password)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "Welcome %s! Bankroll: %s\n", u.Username, u.DisplayBankroll)
	return subcommands.ExitSuccess
}

type loginCmd struct{ credentials }

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "obtain a bearer token" }
func (*loginCmd) Usage() string {
	return `login -u <username> [-p <password>]

  Prints an export line for BANKROLL_TOKEN, e.g. eval "$(bankrollctl login -u player1)".
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *loginCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.check() {
		return subcommands.ExitUsageError
	}
	resp, err := newClient().Login(ctx, c.username, c.password)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "export BANKROLL_TOKEN=%s\n", resp.Token)
	return subcommands.ExitSuccess
}

type meCmd struct{}

func (*meCmd) Name() string     { return "me" }
func (*meCmd) Synopsis() string { return "show the authenticated player" }
func (*meCmd) Usage() string    { return "me\n" }

func (*meCmd) SetFlags(*flag.FlagSet) {}

func (*meCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, ok := authed()
	if !ok {
		return subcommands.ExitUsageError
	}
	u, err := c.Me(ctx)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "%s (#%d): %s\n", u.Username, u.ID, u.DisplayBankroll)
	return subcommands.ExitSuccess
}
