// Package cli is the interactive terminal front end for the back office.
// It renders prompts and tables, collects operator input, and dispatches
// actions to the auth service, the gateway, and the provisioning workflow.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/SISDRUG/bankoffice/internal/auth"
	"github.com/SISDRUG/bankoffice/internal/config"
	"github.com/SISDRUG/bankoffice/internal/gateway"
	"github.com/SISDRUG/bankoffice/internal/logging"
	"github.com/SISDRUG/bankoffice/internal/provision"
)

// authService is the slice of the auth API the CLI needs; the real
// auth.Service satisfies it, tests can provide a stub.
type authService interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context)
	IsAuthenticated() bool
	Username() string
}

type App struct {
	config      *config.Config
	authService authService
	gw          gateway.Gateway
	workflow    *provision.Workflow
	log         logging.Logger
	reader      *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	as := auth.NewService(c.IdpURL, c.Realm, c.ClientID, c.RequestTimeout, log)
	gw := gateway.NewHTTPGateway(c.APIBaseURL, as, c.RequestTimeout, log)

	return &App{
		config:      c,
		authService: as,
		gw:          gw,
		workflow:    provision.NewWorkflow(gw, log),
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsAuthenticated()
}
