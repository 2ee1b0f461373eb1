package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/donapoint/donapoint/internal/api"
	"github.com/donapoint/donapoint/internal/config"
	"github.com/donapoint/donapoint/internal/logging"
	"github.com/donapoint/donapoint/internal/models"
	"github.com/donapoint/donapoint/internal/repositories/metadata"
	"github.com/donapoint/donapoint/internal/services"
	"github.com/donapoint/donapoint/internal/session"
	"github.com/donapoint/donapoint/internal/storage"
)

// App glues the session, services, and REPL together. Views read auth
// state through the session manager and data through the services; results
// of the async listing land in a small amount of state guarded by mu.
type App struct {
	config   *config.Config
	log      logging.Logger
	session  *session.Manager
	points   services.PointService
	creators services.CreatorService
	lister   *services.Lister
	reader   *bufio.Reader

	mu       sync.Mutex
	results  []models.DonationPoint
	location *models.Location
	filter   models.Filter
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening client database: %w", err)
	}

	store := metadata.NewStore(db)
	client := api.NewRESTClient(cfg.ServerBaseURL, cfg.RequestTimeout)
	sess := session.NewManager(client, store, log)

	client.SetTokenProvider(sess.Token)
	client.SetUnauthorizedHook(sess.HandleUnauthorized)

	pointSvc := services.NewPointService(client, cfg.SearchRadiusKm, log)

	app := &App{
		config:   cfg,
		log:      log,
		session:  sess,
		points:   pointSvc,
		creators: services.NewCreatorService(client, sess),
		reader:   bufio.NewReader(os.Stdin),
	}
	app.lister = services.NewLister(pointSvc, log, app.handleListResult)

	sess.Subscribe(app.handleSessionEvent)

	return app, nil
}

// Run restores any persisted session and enters the REPL, blocking until
// the user exits.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "err", err)
	}

	if user := a.session.CurrentUser(); user != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", user.Name))
	}

	printlnFn("donapoint CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// status renders the prompt suffix: account, verification, and whether a
// location is set for nearest-first listings.
func (a *App) status() string {
	s := ""
	if user := a.session.CurrentUser(); user != nil {
		s = user.Email
		if user.Verified {
			s += " ✓"
		}
	}

	a.mu.Lock()
	hasLoc := a.location != nil
	a.mu.Unlock()
	if hasLoc {
		s += " @loc"
	}

	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) handleSessionEvent(ev session.Event) {
	switch ev {
	case session.EventExpired:
		printlnFn("Session expired, please login again.")
	case session.EventLoggedOut:
		printlnFn("Logged out.")
	}
}

// handleListResult receives winning fetches from the lister; stale results
// never reach it.
func (a *App) handleListResult(res services.ListResult) {
	if res.Err != nil {
		printlnFn("Could not load donation points: " + userMessage(res.Err))
		return
	}

	a.mu.Lock()
	a.results = res.Points
	a.mu.Unlock()

	printPoints(res.Points, a.currentLocation())
}

func (a *App) currentLocation() *models.Location {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.location
}

// refresh re-runs the listing with the current filter, e.g. after a point
// was created.
func (a *App) refresh(ctx context.Context) {
	a.mu.Lock()
	filter := a.filter
	a.mu.Unlock()

	select {
	case <-a.lister.Apply(ctx, filter):
	case <-time.After(a.config.RequestTimeout + time.Second):
		printlnFn("Still loading...")
	}
}
