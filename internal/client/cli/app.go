package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/lightgallery/internal/client/client"
	"github.com/dmitrijs2005/lightgallery/internal/client/config"
	"github.com/dmitrijs2005/lightgallery/internal/client/models"
	"github.com/dmitrijs2005/lightgallery/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/lightgallery/internal/client/services"
	"github.com/dmitrijs2005/lightgallery/internal/client/session"
	"github.com/dmitrijs2005/lightgallery/internal/logging"
)

// galleryAPI is the read side of the API the gallery commands use.
type galleryAPI interface {
	ListAlbums(ctx context.Context, page, pageSize int, perm models.Permission) (*models.Page[models.Album], error)
	ListPosts(ctx context.Context, page, pageSize int, f client.PostFilter) (*models.Page[models.BlogPost], error)
	FullTextSearch(ctx context.Context, keyword, kind string, page, pageSize int) (*models.Page[models.SearchHit], error)
	SystemStats(ctx context.Context) (*models.SystemStats, error)
}

type App struct {
	config      *config.Config
	store       *session.Store
	authService services.AuthService
	api         galleryAPI
	registry    *prometheus.Registry
	log         logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// set by the session event handler, consumed by the REPL
	expired     atomic.Bool
	unsubscribe func()
	db          *sql.DB
}

// NewApp wires storage, the credential store, the API client and the auth
// service from c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel)

	db, err := credentials.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := session.NewStore(
		credentials.NewSQLiteRepository(db),
		credentials.NewMemoryRepository(),
		session.WithRememberFor(c.RememberFor),
		session.WithLogger(log),
	)

	registry := prometheus.NewRegistry()
	api := client.NewHTTPClient(c.APIBaseURL, store,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log),
		client.WithMetrics(client.NewMetrics(registry)),
	)

	a := newApp(c, store, api, services.NewAuthService(api, store, log), log)
	a.registry = registry
	a.db = db
	a.unsubscribe = api.Events().Subscribe(a.onSessionTerminated)
	return a, nil
}

func newApp(c *config.Config, store *session.Store, api galleryAPI, auth services.AuthService, log logging.Logger) *App {
	return &App{
		config:      c,
		store:       store,
		authService: auth,
		api:         api,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}
}

// onSessionTerminated runs on the goroutine of the failing request. It only
// records the event; the REPL reports it before the next prompt.
func (a *App) onSessionTerminated(ev client.SessionEvent) {
	a.expired.Store(true)
	a.log.Info(context.Background(), "session terminated", "reason", ev.Reason)
}

// takeExpired reports and resets a pending session termination notice.
func (a *App) takeExpired() bool {
	return a.expired.Swap(false)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.store.IsAuthenticated(ctx)
}

func (a *App) getStatus(ctx context.Context) string {
	u := a.store.User()
	if u == nil || !a.isLoggedIn(ctx) {
		return "(guest)"
	}
	return fmt.Sprintf("(%s %s)", u.Username, u.Role)
}

// Run restores a remembered session and blocks in the REPL until the user
// exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to Light Gallery CLI (type 'help' for commands)")
	if u, err := a.authService.Restore(ctx); err != nil {
		a.log.Warn(ctx, "stored session not restored", "error", err)
	} else if u != nil {
		fmt.Fprintf(a.out, "Welcome back, %s\n", u.Username)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}
