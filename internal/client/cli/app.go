package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/tuguldur-s/travelfeed/internal/client/api"
	"github.com/tuguldur-s/travelfeed/internal/client/config"
	sessionrepo "github.com/tuguldur-s/travelfeed/internal/client/repositories/session"
	"github.com/tuguldur-s/travelfeed/internal/client/session"
	"github.com/tuguldur-s/travelfeed/internal/client/state"
	"github.com/tuguldur-s/travelfeed/internal/common"
	"github.com/tuguldur-s/travelfeed/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB
	sess   *session.Session
	client api.Client
	store  *state.Store
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewDefault()

	db, err := sessionrepo.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}

	sess := session.New(db)
	client := api.NewRESTClient(c.ServerBaseURL, sess, api.WithTimeout(c.RequestTimeout), api.WithLogger(log))
	store := state.NewStore(client, sess, log, state.Options{
		DoubleTapWindow: c.DoubleTapWindow,
		SearchDebounce:  c.SearchDebounce,
	})

	return &App{
		config: c,
		log:    log,
		db:     db,
		sess:   sess,
		client: client,
		store:  store,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// restore loads a previously persisted session, if any, into app state.
// Expired or unreadable tokens are cleared silently; the user just has to
// log in again.
func (a *App) restore(ctx context.Context) {
	user, err := a.sess.Restore(ctx)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			fmt.Println("Your session has expired, please log in again.")
		}
		return
	}
	if user != nil {
		token, _ := a.sess.Token(ctx)
		a.store.AdoptSession(user, token)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.restore(ctx)

	fmt.Println("Welcome to TravelFeed CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Close flushes background work and releases resources.
func (a *App) Close() {
	a.store.Close()
	if err := a.client.Close(); err != nil {
		a.log.Warn(context.Background(), "closing api client", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "closing session database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.sess.LoggedIn()
}

func (a *App) getStatus() string {
	if u := a.sess.CurrentUser(); u != nil {
		return fmt.Sprintf("(%s)", u.Name)
	}
	return ""
}
