package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/subcommands"
	"github.com/saradorri/pokerbankroll/internal/http/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes one subcommand line against srv and returns its output
func run(t *testing.T, srv *httptest.Server, tok string, args ...string) (subcommands.ExitStatus, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	stdout, stderr = &out, &errOut
	*serverURL, *token = srv.URL, tok
	t.Cleanup(func() { *serverURL, *token = "", "" })

	fs := flag.NewFlagSet("bankrollctl", flag.ContinueOnError)
	commander := subcommands.NewCommander(fs, "bankrollctl")
	commander.Output, commander.Error = &out, &errOut
	register(commander)
	require.NoError(t, fs.Parse(args))
	return commander.Execute(context.Background()), out.String(), errOut.String()
}

func TestTournamentFlagsParams(t *testing.T) {
	f := tournamentFlags{date: "2024-02-20", buyIn: "50", place: "3"}
	p, err := f.params()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-20", p.Date.Format("2006-01-02"))
	assert.Equal(t, "50", p.BuyIn.String())
	assert.Nil(t, p.CashedFor)
	assert.Equal(t, 3, *p.PlaceFinished)

	_, err = (&tournamentFlags{date: "20/02/2024"}).params()
	assert.ErrorContains(t, err, "YYYY-MM-DD")

	_, err = (&tournamentFlags{place: "first"}).params()
	assert.ErrorContains(t, err, "-place")
}

func TestAddTournament(t *testing.T) {
	var got handlers.TournamentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tournaments", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(handlers.TournamentResponse{ID: 12, DisplayNet: "+$100.00"})
	}))
	defer srv.Close()

	status, out, _ := run(t, srv, "tok", "add-tournament", "-buy-in", "50", "-cashed", "150", "-place", "3", "-date", "2024-02-20")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Tournament added! Net: +$100.00 (id 12)")
	assert.Equal(t, "2024-02-20", *got.Date)
	assert.Equal(t, "150", got.CashedFor.String())
}

func TestCommandsRequireToken(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	status, _, errOut := run(t, srv, "", "me")
	assert.Equal(t, subcommands.ExitUsageError, status)
	assert.Contains(t, errOut, "no token")
}

func TestLoginPrintsExport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(handlers.LoginResponse{Token: "abc"})
	}))
	defer srv.Close()

	status, out, _ := run(t, srv, "", "login", "-u", "player1", "-p", "password123")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "export BANKROLL_TOKEN=abc\n", out)
}

func TestServerErrorIsReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"NOT_FOUND","message":"Tournament not found"},"success":false}`))
	}))
	defer srv.Close()

	status, _, errOut := run(t, srv, "tok", "delete-tournament", "-id", "99")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut, "Tournament not found")
}
