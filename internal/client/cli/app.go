// Package cli is the datingctl command line client. Commands are routes: each one navigates
// through the guard layer, so protected commands never run without a rehydrated session.
package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"dating/internal/client/api"
	"dating/internal/client/guard"
	"dating/internal/client/notify"
	"dating/internal/client/pipeline"
	"dating/internal/client/session"
	"dating/internal/errors"
)

const (
	defaultAPIURL = "http://localhost:5001/api"
	envAPIURL     = "DATINGCTL_API"
	envSession    = "DATINGCTL_SESSION"
)

const (
	routeMembers = "/members"
	routeMember  = "/members/:id"
	routeMe      = "/me"
	routePhotos  = "/me/photos"
)

// ErrUsage is returned for unknown commands or bad arguments.
var ErrUsage = errors.New("usage error")

// Options wires the app to its environment.
type Options struct {
	Stdin      *os.File
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
	HTTPClient *http.Client
}

type App struct {
	opts     Options
	reader   *bufio.Reader
	logger   *slog.Logger
	store    *session.Store
	client   *api.Client
	nav      *guard.Navigator
	notifier notify.Notifier
}

// Run parses global flags, rehydrates the session and executes one command.
func Run(ctx context.Context, args []string, opts Options) error {
	global := flag.NewFlagSet("datingctl", flag.ContinueOnError)
	global.SetOutput(opts.Err)
	apiURL := global.String("api", envOr(envAPIURL, defaultAPIURL), "API base URL")
	sessionPath := global.String("session", envOr(envSession, defaultSessionPath()), "session snapshot file")
	verbose := global.Bool("v", false, "log debug output")
	global.Usage = func() { usage(opts.Err, global) }
	if err := global.Parse(args); err != nil {
		return ErrUsage
	}
	if global.NArg() == 0 {
		global.Usage()

		return ErrUsage
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(opts.Err, &slog.HandlerOptions{Level: level}))

	app, err := newApp(*apiURL, session.NewFileStorage(*sessionPath), logger, opts)
	if err != nil {
		return err
	}
	defer app.client.Close()

	if err := app.store.Rehydrate(ctx); err != nil {
		return errors.Wrap(err, "load session")
	}

	return app.dispatch(ctx, global.Arg(0), global.Args()[1:])
}

func newApp(apiURL string, storage session.Storage, logger *slog.Logger, opts Options) (*App, error) {
	store := session.NewStore(storage, logger)
	notifier := notify.NewWriterNotifier(opts.Err)

	client, err := api.New(api.Options{
		BaseURL:    apiURL,
		HTTPClient: opts.HTTPClient,
		Store:      store,
		Notifier:   notifier,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	app := &App{
		opts:     opts,
		reader:   bufio.NewReader(opts.In),
		logger:   logger,
		store:    store,
		client:   client,
		notifier: notifier,
	}
	app.nav = app.navigator()

	return app, nil
}

func (a *App) navigator() *guard.Navigator {
	authenticated := []guard.Guard{guard.NewAuthGuard(a.store, a.notifier)}

	return guard.NewNavigator(a.store.Wait, a.logger,
		guard.Route{Pattern: guard.NotFoundPath},
		guard.Route{
			Pattern: routeMembers,
			Resolvers: map[string]guard.Resolver{
				"members": func(ctx context.Context, _ guard.RouteContext) (any, error) {
					return a.client.ListMembers(ctx)
				},
			},
		},
		guard.Route{
			Pattern: routeMember,
			Guards:  authenticated,
			Resolvers: map[string]guard.Resolver{
				"member": func(ctx context.Context, route guard.RouteContext) (any, error) {
					return a.client.GetMember(ctx, route.Params["id"])
				},
			},
		},
		guard.Route{Pattern: routeMe, Guards: authenticated},
		guard.Route{
			Pattern: routePhotos,
			Guards:  authenticated,
			Resolvers: map[string]guard.Resolver{
				"photos": func(ctx context.Context, _ guard.RouteContext) (any, error) {
					return a.client.GetMemberPhotos(ctx, a.store.Current().AccountID)
				},
			},
		},
	)
}

func (a *App) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return a.register(ctx, args)
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.logout()
	case "whoami":
		return a.whoami(ctx)
	case "members":
		return a.members(ctx)
	case "member":
		return a.member(ctx, args)
	case "update":
		return a.update(ctx, args)
	case "upload":
		return a.upload(ctx, args)
	case "set-main":
		return a.setMain(ctx, args)
	case "delete-photo":
		return a.deletePhoto(ctx, args)
	default:
		_, _ = fmt.Fprintf(a.opts.Err, "unknown command %q\n", command)

		return ErrUsage
	}
}

// Reported tells whether err has already been shown to the user by a notification.
func Reported(err error) bool {
	if errors.Is(err, guard.ErrDenied) {
		return true
	}
	_, ok := errors.AsType[*pipeline.Error](err)

	return ok
}

func usage(w io.Writer, global *flag.FlagSet) {
	_, _ = fmt.Fprint(w, `Usage: datingctl [flags] <command> [args]

Commands:
  register                 create an account (prompts for the password)
  login -email <email>     sign in (prompts for the password)
  logout                   forget the stored session
  whoami                   show the signed-in member
  members                  list members
  member <id>              show a member and their photos
  update [-name] [-description] [-city] [-country]
  upload <file>            add a photo
  set-main <photoId>       make a photo your main image
  delete-photo <photoId>   remove a photo

Flags:
`)
	global.PrintDefaults()
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "datingctl", "session.json")
	}

	return filepath.Join(dir, "datingctl", "session.json")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Local().Format(time.DateTime)
}
