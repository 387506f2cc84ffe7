// Package guard decides whether navigation into or out of a client route may proceed.
package guard

import (
	"context"

	"dating/internal/client/notify"
	"dating/internal/client/session"
)

// RouteContext describes the navigation being evaluated.
type RouteContext struct {
	Path   string
	Params map[string]string
	From   string
}

// Guard is consulted before entering a route.
type Guard interface {
	CanEnter(ctx context.Context, route RouteContext) bool
}

// LeaveGuard is consulted before leaving a route.
type LeaveGuard interface {
	CanLeave(ctx context.Context, route RouteContext) bool
}

// GuardFunc adapts a function to Guard.
type GuardFunc func(ctx context.Context, route RouteContext) bool

func (f GuardFunc) CanEnter(ctx context.Context, route RouteContext) bool {
	return f(ctx, route)
}

// All evaluates guards in order and stops at the first denial.
func All(guards ...Guard) Guard {
	return GuardFunc(func(ctx context.Context, route RouteContext) bool {
		for _, g := range guards {
			if !g.CanEnter(ctx, route) {
				return false
			}
		}

		return true
	})
}

// DeniedMessage is shown when an anonymous user tries to enter a protected route.
const DeniedMessage = "You shall not pass!"

// AuthGuard admits the route only while a session is present. It reads the store on every
// call, so a logout takes effect on the next navigation.
type AuthGuard struct {
	store    *session.Store
	notifier notify.Notifier
}

func NewAuthGuard(store *session.Store, notifier notify.Notifier) *AuthGuard {
	return &AuthGuard{store: store, notifier: notifier}
}

func (g *AuthGuard) CanEnter(_ context.Context, _ RouteContext) bool {
	if g.store.Current() != nil {
		return true
	}

	g.notifier.Notify(notify.LevelError, DeniedMessage)

	return false
}

// UnsavedChangesGuard asks for confirmation before leaving a route with a dirty form.
type UnsavedChangesGuard struct {
	dirty   func() bool
	confirm func(message string) bool
}

// UnsavedChangesMessage is the confirmation prompt.
const UnsavedChangesMessage = "Are you sure you want to continue? Any unsaved changes will be lost"

func NewUnsavedChangesGuard(dirty func() bool, confirm func(message string) bool) *UnsavedChangesGuard {
	return &UnsavedChangesGuard{dirty: dirty, confirm: confirm}
}

func (g *UnsavedChangesGuard) CanLeave(_ context.Context, _ RouteContext) bool {
	if !g.dirty() {
		return true
	}

	return g.confirm(UnsavedChangesMessage)
}
