// Package cli implements the interactive GemVault client: a REPL over the
// query coordinator, session, media uploader and report generators.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/msurana/gemvault/internal/client/auth"
	"github.com/msurana/gemvault/internal/client/cache"
	"github.com/msurana/gemvault/internal/client/catalog"
	"github.com/msurana/gemvault/internal/client/config"
	"github.com/msurana/gemvault/internal/client/coordinator"
	"github.com/msurana/gemvault/internal/client/media"
	"github.com/msurana/gemvault/internal/client/models"
	"github.com/msurana/gemvault/internal/client/notify"
	"github.com/msurana/gemvault/internal/logging"
)

// gemService is the slice of the coordinator the CLI commands use.
type gemService interface {
	SetFilters(f models.Filter)
	Filters() models.Filter
	LoadMore()
	Refresh(ctx context.Context) coordinator.Snapshot
	Flush(ctx context.Context) coordinator.Snapshot
	Snapshot() coordinator.Snapshot
	GetGemstone(ctx context.Context, id string) (models.Gemstone, bool)
	AddGemstone(ctx context.Context, g models.Gemstone) (*models.Gemstone, error)
	UpdateGemstone(ctx context.Context, id string, patch models.GemstonePatch) (*models.Gemstone, error)
	DeleteGemstone(ctx context.Context, id string) bool
	Categories() []string
	Tags() []string
}

type sessionService interface {
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context)
	Active() bool
}

type mediaService interface {
	UploadAll(ctx context.Context, paths []string) ([]string, error)
}

type App struct {
	config   *config.Config
	log      logging.Logger
	gems     gemService
	session  sessionService
	uploader mediaService

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the full client stack from config: logger, encrypted token
// store, REST catalog client, caches, coordinator and S3 uploader.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewDefault(os.Stderr, cfg.LogLevel)
	sink := notify.NewConsoleSink(os.Stdout)

	store := auth.NewTokenStore(cfg.TokenFile)
	session := auth.NewSession(cfg.AuthEmail, cfg.AuthPassword, cfg.APIToken, store, log)

	client := catalog.NewHTTPClient(cfg.APIBaseURL, store, cfg.RequestTimeout, log)
	coord := coordinator.New(client, cache.NewQueryCache(), cache.NewGemstoneCache(), sink, log,
		coordinator.WithDebounce(cfg.DebounceInterval),
		coordinator.WithPageSize(cfg.PageSize),
	)

	uploader, err := media.New(ctx, media.Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		PublicURL: cfg.S3PublicURL,
		KeyPrefix: cfg.S3KeyPrefix,
	}, log)
	if err != nil {
		return nil, err
	}

	return &App{
		config:   cfg,
		log:      log,
		gems:     coord,
		session:  session,
		uploader: uploader,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Active()
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
