package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

// tokenEnv is read by "me" when -token is not given.
const tokenEnv = "AUTH_TOKEN"

const usage = `usage: auth-client <command> [flags]

commands:
  register -name NAME -email EMAIL -password PASSWORD [-image URL]
  login    -email EMAIL -password PASSWORD
  me       [-token TOKEN]   (defaults to $AUTH_TOKEN)
  version`

type App struct {
	adapter adapter.CredentialAdapter
	out     io.Writer
	logger  *logger.Logger
}

func NewApp(credentialAdapter adapter.CredentialAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{adapter: credentialAdapter, out: out, logger: logger}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrNoCommand, usage)
	}

	switch args[0] {
	case "register":
		return a.register(ctx, args[1:])
	case "login":
		return a.login(ctx, args[1:])
	case "me":
		return a.me(ctx, args[1:])
	case "version":
		return a.version(ctx)
	case "help", "-h", "--help":
		_, err := fmt.Fprintln(a.out, usage)
		return err
	default:
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, args[0], usage)
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	var req models.RegisterRequest

	fs := newFlagSet("register")
	fs.StringVar(&req.FullName, "name", "", "full name")
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.Password, "password", "", "password")
	fs.StringVar(&req.ProfileImageURL, "image", "", "profile image URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.adapter.Register(ctx, req)
	if err != nil {
		return err
	}

	a.logger.Info().Str("user_id", result.ID).Msg("registered")
	return a.print(result)
}

func (a *App) login(ctx context.Context, args []string) error {
	var req models.LoginRequest

	fs := newFlagSet("login")
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.adapter.Login(ctx, req)
	if err != nil {
		return err
	}

	a.logger.Info().Str("user_id", result.ID).Msg("logged in")
	return a.print(result)
}

func (a *App) me(ctx context.Context, args []string) error {
	fs := newFlagSet("me")
	token := fs.String("token", os.Getenv(tokenEnv), "bearer token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a.adapter.SetToken(*token)

	profile, err := a.adapter.GetUser(ctx)
	if err != nil {
		return err
	}
	return a.print(profile)
}

func (a *App) version(ctx context.Context) error {
	v, err := a.adapter.ServerVersion(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, v)
	return err
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
