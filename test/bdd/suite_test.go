//go:build bdd

package bdd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/store"
)

// testContext holds state shared across step definitions within a scenario.
type testContext struct {
	out        bytes.Buffer
	dispatcher *app.Dispatcher
	err        error
}

// reset gives the scenario a fresh store and a clean slate.
func (tc *testContext) reset() {
	tc.out.Reset()
	tc.err = nil
	tc.dispatcher = app.NewDispatcher(app.DispatcherConfig{
		Repo:   store.NewMemory(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Out:    &tc.out,
	})
}

// InitializeScenario registers step definitions for each scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &testContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step("^a fresh quote store$", tc.aFreshQuoteStore)
	ctx.Step("^I run the command `([^`]*)`$", tc.iRunTheCommand)
	ctx.Step("^the command succeeds$", tc.theCommandSucceeds)
	ctx.Step(`^the command fails with "([^"]*)"$`, tc.theCommandFailsWith)
	ctx.Step("^the output is empty$", tc.theOutputIsEmpty)
	ctx.Step("^the output is:$", tc.theOutputIs)
	ctx.Step(`^the output contains "([^"]*)"$`, tc.theOutputContains)
}

func (tc *testContext) aFreshQuoteStore() error {
	tc.reset()
	return nil
}

func (tc *testContext) iRunTheCommand(command string) error {
	tc.err = tc.dispatcher.Run(context.Background(), command)
	return nil
}

func (tc *testContext) theCommandSucceeds() error {
	if tc.err != nil {
		return fmt.Errorf("expected success, got: %w", tc.err)
	}
	return nil
}

func (tc *testContext) theCommandFailsWith(kind string) error {
	if tc.err == nil {
		return fmt.Errorf("expected a %q failure, command succeeded", kind)
	}

	checks := map[string]func(error) bool{
		"invalid command": domain.IsInvalidCommand,
		"not implemented": domain.IsNotImplemented,
		"not modified":    domain.IsNotModified,
		"too long":        domain.IsQuoteTooLong,
	}

	check, ok := checks[kind]
	if !ok {
		return fmt.Errorf("unknown failure kind %q", kind)
	}
	if !check(tc.err) {
		return fmt.Errorf("expected a %q failure, got: %v", kind, tc.err)
	}
	return nil
}

func (tc *testContext) theOutputIsEmpty() error {
	if tc.out.Len() != 0 {
		return fmt.Errorf("expected no output, got %q", tc.out.String())
	}
	return nil
}

func (tc *testContext) theOutputIs(expected *godog.DocString) error {
	got := strings.TrimRight(tc.out.String(), "\n")
	want := strings.TrimRight(expected.Content, "\n")
	if got != want {
		return fmt.Errorf("output mismatch:\n got: %q\nwant: %q", got, want)
	}
	return nil
}

func (tc *testContext) theOutputContains(substr string) error {
	if !strings.Contains(tc.out.String(), substr) {
		return fmt.Errorf("output %q does not contain %q", tc.out.String(), substr)
	}
	return nil
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
