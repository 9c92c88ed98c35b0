package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/nextboard/boardcli/internal/client/api"
	"github.com/nextboard/boardcli/internal/client/config"
	"github.com/nextboard/boardcli/internal/client/models"
	"github.com/nextboard/boardcli/internal/client/session"
	"github.com/nextboard/boardcli/internal/client/stores"
	"github.com/nextboard/boardcli/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the API client, session store, and data stores behind the REPL.
type App struct {
	config     *config.Config
	api        *api.Client
	session    *session.Store
	userStore  *stores.UserStore
	adminStore *stores.AdminStore
	log        logging.Logger
	db         *sql.DB
	reader     *bufio.Reader

	// Current page per admin collection; mutating commands re-fetch these.
	userPage  int
	nodePage  int
	planPage  int
	labelPage int
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	apiClient := api.New(c.ServerBaseURL, c.RequestTimeout, log)

	sess, err := session.NewStore(ctx, apiClient, db, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	apiClient.Bind(sess)

	return &App{
		config:     c,
		api:        apiClient,
		session:    sess,
		userStore:  stores.NewUserStore(apiClient, log),
		adminStore: stores.NewAdminStore(apiClient, log),
		log:        log,
		db:         db,
		reader:     bufio.NewReader(os.Stdin),
		userPage:   1,
		nodePage:   1,
		planPage:   1,
		labelPage:  1,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	u := a.session.User()
	return u != nil && u.Role == models.RoleAdmin
}
