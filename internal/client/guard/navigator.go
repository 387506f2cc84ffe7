package guard

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"dating/internal/client/pipeline"
	"dating/internal/errors"
)

// NotFoundPath is where navigation lands when a resolver reports a missing resource.
const NotFoundPath = "/not-found"

var (
	// ErrDenied is returned when a guard refuses entry.
	ErrDenied = errors.New("navigation denied")
	// ErrCancelled is returned when a leave guard keeps the user on the current route.
	ErrCancelled = errors.New("navigation cancelled")
	// ErrNoRoute is returned for paths no route matches.
	ErrNoRoute = errors.New("no route matches path")
)

// Resolver loads data a route needs before it is entered.
type Resolver func(ctx context.Context, route RouteContext) (any, error)

// Route is a navigable location. Pattern segments starting with ':' are parameters.
type Route struct {
	Pattern     string
	Guards      []Guard
	LeaveGuards []LeaveGuard
	Resolvers   map[string]Resolver
}

// Navigation is the result of a committed navigation.
type Navigation struct {
	Route    RouteContext
	Resolved map[string]any
}

// Navigator evaluates guards and resolvers and tracks the current route.
type Navigator struct {
	routes []Route
	ready  func(ctx context.Context) error
	logger *slog.Logger

	mu      sync.Mutex
	current *Route
	at      RouteContext
}

// NewNavigator creates a navigator. ready is the startup barrier awaited before any guard
// runs, normally the session store's Wait.
func NewNavigator(ready func(ctx context.Context) error, logger *slog.Logger, routes ...Route) *Navigator {
	return &Navigator{routes: routes, ready: ready, logger: logger}
}

// Current returns the route the navigator is on.
func (n *Navigator) Current() RouteContext {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.at
}

// Navigate moves to path. Leave guards of the current route run first, then the target's
// guards in order; the first denial aborts and no resolver runs. Resolvers run only after
// every guard allowed. A resolver reporting a missing resource redirects to NotFoundPath.
func (n *Navigator) Navigate(ctx context.Context, path string) (*Navigation, error) {
	if err := n.ready(ctx); err != nil {
		return nil, errors.Wrap(err, "wait for session rehydration")
	}

	route, params, ok := n.match(path)
	if !ok {
		return nil, errors.Wrap(ErrNoRoute, path)
	}

	n.mu.Lock()
	from, fromContext := n.current, n.at
	n.mu.Unlock()

	target := RouteContext{Path: path, Params: params, From: fromContext.Path}

	if from != nil {
		for _, leave := range from.LeaveGuards {
			if !leave.CanLeave(ctx, fromContext) {
				return nil, ErrCancelled
			}
		}
	}

	for _, g := range route.Guards {
		if !g.CanEnter(ctx, target) {
			n.logger.Debug("Navigation denied", slog.String("path", path))

			return nil, ErrDenied
		}
	}

	resolved := make(map[string]any, len(route.Resolvers))
	for name, resolve := range route.Resolvers {
		value, err := resolve(ctx, target)
		if err != nil {
			if pipeline.IsKind(err, pipeline.KindNotFound) && path != NotFoundPath {
				return n.Navigate(ctx, NotFoundPath)
			}

			return nil, errors.Wrapf(err, "resolve %s", name)
		}
		resolved[name] = value
	}

	n.mu.Lock()
	n.current, n.at = route, target
	n.mu.Unlock()

	return &Navigation{Route: target, Resolved: resolved}, nil
}

func (n *Navigator) match(path string) (*Route, map[string]string, bool) {
	segments := splitPath(path)
	for i := range n.routes {
		if params, ok := matchPattern(splitPath(n.routes[i].Pattern), segments); ok {
			return &n.routes[i], params, true
		}
	}

	return nil, nil, false
}

func matchPattern(pattern, segments []string) (map[string]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}

	params := make(map[string]string)
	for i, part := range pattern {
		if name, ok := strings.CutPrefix(part, ":"); ok {
			params[name] = segments[i]

			continue
		}
		if part != segments[i] {
			return nil, false
		}
	}

	return params, true
}

func splitPath(path string) []string {
	path, _, _ = strings.Cut(path, "?")
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}

	return strings.Split(trimmed, "/")
}
