package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/desertthunder/myflix/internal/models"
	"github.com/desertthunder/myflix/internal/services"
	"github.com/desertthunder/myflix/internal/session"
	"github.com/desertthunder/myflix/internal/shared"
	tu "github.com/desertthunder/myflix/internal/testing"
	"github.com/urfave/cli/v3"
)

var _ services.MovieService = (*tu.MockMovieService)(nil)

// fakePrompter answers prompts without a terminal.
type fakePrompter struct {
	creds   models.Credentials
	details models.UserDetails
	confirm bool
	err     error
	asked   []string
}

func (p *fakePrompter) Credentials(c *models.Credentials) error {
	p.asked = append(p.asked, "credentials")
	if c.Username == "" {
		c.Username = p.creds.Username
	}
	if c.Password == "" {
		c.Password = p.creds.Password
	}
	return p.err
}

func (p *fakePrompter) Details(_ string, d *models.UserDetails) error {
	p.asked = append(p.asked, "details")
	if p.details.Username != "" {
		d.Username = p.details.Username
	}
	if p.details.Password != "" {
		d.Password = p.details.Password
	}
	if p.details.Email != "" {
		d.Email = p.details.Email
	}
	return p.err
}

func (p *fakePrompter) Confirm(string) (bool, error) {
	p.asked = append(p.asked, "confirm")
	return p.confirm, p.err
}

type testRunner struct {
	*Runner
	out      *bytes.Buffer
	api      *tu.MockMovieService
	store    *session.MemoryStore
	prompter *fakePrompter
}

func newTestRunner(api *tu.MockMovieService) *testRunner {
	out := &bytes.Buffer{}
	store := session.NewMemoryStore()
	prompter := &fakePrompter{}
	r := NewRunner(RunnerOpts{
		API:      api,
		Session:  store,
		Output:   out,
		Logger:   shared.NewLogger(io.Discard),
		Prompter: prompter,
	})
	return &testRunner{Runner: r, out: out, api: api, store: store, prompter: prompter}
}

// run executes args against the registered command tree.
func (tr *testRunner) run(args ...string) error {
	app := &cli.Command{
		Name:      "myflix",
		Commands:  tr.register(),
		Writer:    io.Discard,
		ErrWriter: io.Discard,
	}
	return app.Run(context.Background(), append([]string{"myflix"}, args...))
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			api := &tu.MockMovieService{}
			store := session.NewMemoryStore()
			prompter := &fakePrompter{}

			runner := NewRunner(RunnerOpts{
				Config:     config,
				ConfigPath: "custom.toml",
				Logger:     logger,
				Output:     output,
				API:        api,
				Session:    store,
				Prompter:   prompter,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.configPath != "custom.toml" {
				t.Errorf("expected configPath to be set, got %s", runner.configPath)
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.api != api {
				t.Error("expected api to be set")
			}
			if runner.session != store {
				t.Error("expected session to be set")
			}
			if runner.prompter != prompter {
				t.Error("expected prompter to be set")
			}
			if runner.raw == nil {
				t.Error("expected a raw client to be built")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.configPath != "config.toml" {
				t.Errorf("expected default configPath, got %s", runner.configPath)
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil api builds a client", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if _, ok := runner.api.(*services.Client); !ok {
				t.Errorf("expected *services.Client, got %T", runner.api)
			}
			if _, ok := runner.prompter.(huhPrompter); !ok {
				t.Errorf("expected huhPrompter, got %T", runner.prompter)
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.writeJSON(map[string]string{"key": "value"}, true)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, false); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			expected := `{"key":"value"}` + "\n"
			if output.String() != expected {
				t.Errorf("expected %q, got %q", expected, output.String())
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			// channels cannot be marshaled to JSON
			err := runner.writeJSON(make(chan int), false)
			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil {
				t.Fatal("expected error writing newline")
			}
			if !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("hello %s", "world"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if output.String() != "hello world" {
				t.Errorf("expected 'hello world', got %q", output.String())
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writePlain("test")
			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		names := map[string]bool{}
		for i, cmd := range commands {
			if cmd == nil {
				t.Fatalf("command at index %d is nil", i)
			}
			names[cmd.Name] = true
		}
		for _, want := range []string{"setup", "auth", "movies", "favorites", "profile", "api", "tui"} {
			if !names[want] {
				t.Errorf("expected %s command to be registered", want)
			}
		}
	})

	t.Run("requireUser", func(t *testing.T) {
		tr := newTestRunner(&tu.MockMovieService{})
		if _, err := tr.requireUser(); err == nil {
			t.Error("expected error without a session user")
		}

		_ = tr.store.SetUsername("alice")
		if name, err := tr.requireUser(); err != nil || name != "alice" {
			t.Errorf("requireUser() = %q, %v", name, err)
		}
	})
}
