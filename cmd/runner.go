package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/myflix/internal/services"
	"github.com/desertthunder/myflix/internal/session"
	"github.com/desertthunder/myflix/internal/shared"
	"github.com/urfave/cli/v3"
)

// rawAPI performs passthrough requests for the api command.
type rawAPI interface {
	Raw(ctx context.Context, method, path string, data []byte, auth bool) (*services.APIResponse, error)
}

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	api        services.MovieService
	raw        rawAPI
	session    session.Store
	notifier   shared.Notifier
	logger     *log.Logger
	output     io.Writer
	prompter   Prompter
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	API        services.MovieService
	Raw        rawAPI
	Session    session.Store
	Logger     *log.Logger
	Output     io.Writer
	Prompter   Prompter
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = "config.toml"
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Session == nil {
		opts.Session = session.NewMemoryStore()
	}
	if opts.Prompter == nil {
		opts.Prompter = huhPrompter{}
	}
	if opts.API == nil || opts.Raw == nil {
		client := services.NewClient(services.ClientOpts{
			BaseURL:   opts.Config.API.BaseURL,
			Session:   opts.Session,
			RateLimit: opts.Config.API.RateLimit,
			UserAgent: opts.Config.API.UserAgent,
			Timeout:   opts.Config.API.RequestTimeout(),
			Logger:    opts.Logger,
		})
		if opts.API == nil {
			opts.API = client
		}
		if opts.Raw == nil {
			opts.Raw = client
		}
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		api:        opts.API,
		raw:        opts.Raw,
		session:    opts.Session,
		notifier:   shared.NewNotifier(opts.Config.Notifications),
		logger:     opts.Logger,
		output:     opts.Output,
		prompter:   opts.Prompter,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, moviesCommand, favoritesCommand, profileCommand, apiCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// requireUser returns the session username, which the user scoped paths
// need. A missing token is left for the server to reject.
func (r *Runner) requireUser() (string, error) {
	username := r.session.Username()
	if username == "" {
		return "", fmt.Errorf("%w: run 'myflix auth login' first", shared.ErrNotAuthenticated)
	}
	return username, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}

// notify prints the message a view would show after a mutating call.
func (r *Runner) notify(msg string) error {
	return r.writePlain("✓ %s\n", r.notifier.Info(msg).Message)
}
