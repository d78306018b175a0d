package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/vidhub/internal/client/client"
	"github.com/dmitrijs2005/vidhub/internal/client/config"
	"github.com/dmitrijs2005/vidhub/internal/client/notify"
	"github.com/dmitrijs2005/vidhub/internal/client/services"
	"github.com/dmitrijs2005/vidhub/internal/common"
	"github.com/dmitrijs2005/vidhub/internal/filex"
	"github.com/dmitrijs2005/vidhub/internal/logging"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	logger   *logging.ZapLogger
	in       *bufio.Reader
	out      io.Writer
	notifier notify.Notifier

	api     *client.APIClient
	session *services.Session
	catalog *services.Catalog
	watch   *services.WatchPage

	mu    sync.Mutex
	title string
}

// NewApp wires the CLI against stdin and stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, os.Stdin, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer) (*App, error) {
	dataDir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}
	cfg := *c
	cfg.DataDir = dataDir

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Dev: cfg.LogDev, OutputPath: cfg.LogPath()})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := client.InitDatabase(ctx, cfg.DatabasePath())
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		_ = logger.Sync()
		return nil, err
	}

	a := &App{
		config:   &cfg,
		db:       db,
		logger:   logger,
		in:       bufio.NewReader(in),
		out:      out,
		notifier: notify.NewConsole(out),
	}

	creds := services.NewCredentialStore(db)
	a.api = client.NewAPIClient(cfg.APIBaseURL, creds,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithNotifier(a.notifier),
		client.WithLogger(logger),
	)
	a.session = services.NewSession(a.api, creds, a.notifier, a, logger)
	a.api.SetUnauthorizedHandler(a.session.HandleUnauthorized)

	thread := services.NewThread(a.api, a.session, a.notifier, logger)
	a.watch = services.NewWatchPage(a.api, thread, a.session, a.notifier, logger)
	a.catalog = services.NewCatalog(a.api, a.session, a.notifier, logger)
	a.session.Subscribe(a.sessionChanged)

	logger.Info(ctx, "client started", "api", cfg.APIBaseURL, "data_dir", dataDir)
	return a, nil
}

// Run restores the stored session in the background and serves the REPL
// until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	ctx = services.WithSession(ctx, a.session)
	go a.session.Restore(ctx)

	fmt.Fprintln(a.out, "Welcome to vidhub CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.in)
}

func (a *App) Close() {
	if err := a.db.Close(); err != nil {
		a.logger.Error(context.Background(), "closing database", "error", err)
	}
	_ = a.logger.Sync()
}

// Navigate implements services.Navigator. The root route closes the open
// video; the CLI has no other routes.
func (a *App) Navigate(route string) {
	if route != common.RootRoute {
		return
	}
	a.watch.Close()
	a.setTitle("")
	fmt.Fprintln(a.out, "Returned to home.")
}

// sessionChanged drops an armed reply once nobody is signed in.
func (a *App) sessionChanged(s services.SessionSnapshot) {
	a.logger.Debug(context.Background(), "session changed", "state", s.State.String(), "authenticated", s.IsAuthenticated())
	if !s.IsLoading() && !s.IsAuthenticated() {
		a.watch.Thread().CancelReply()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) watching() bool {
	return a.watch.State().Video != nil
}

func (a *App) setTitle(t string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.title = t
}

func (a *App) status() string {
	snap := a.session.Snapshot()

	s := "guest"
	switch {
	case snap.IsLoading():
		s = "…"
	case snap.IsAuthenticated():
		s = snap.User.UserName
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.title != "" {
		s += " | " + a.title
	}
	return fmt.Sprintf("(%s)", s)
}
