package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"dating/internal/client/api"
	"dating/internal/client/guard"
	"dating/internal/client/pipeline"
	"dating/internal/errors"
)

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.opts.Err)

	return fs
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := a.flagSet("register")
	email := fs.String("email", "", "email address")
	name := fs.String("name", "", "display name")
	gender := fs.String("gender", "", "gender")
	dob := fs.String("dob", "", "date of birth, YYYY-MM-DD")
	city := fs.String("city", "", "city")
	country := fs.String("country", "", "country")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	var err error
	if *email == "" {
		if *email, err = prompt(a.reader, a.opts.Out, "Email"); err != nil {
			return err
		}
	}
	if *name == "" {
		if *name, err = prompt(a.reader, a.opts.Out, "Display name"); err != nil {
			return err
		}
	}
	password, err := promptPassword(a.reader, a.opts.Out, a.opts.Stdin)
	if err != nil {
		return err
	}

	current, err := a.client.Register(ctx, api.RegisterRequest{
		Email:       *email,
		DisplayName: *name,
		Password:    password,
		Gender:      *gender,
		DateOfBirth: *dob,
		City:        *city,
		Country:     *country,
	})
	if err != nil {
		a.printFieldErrors(err)

		return err
	}

	_, _ = fmt.Fprintf(a.opts.Out, "Registered and signed in as %s (%s)\n", current.DisplayName, current.AccountID)

	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.flagSet("login")
	email := fs.String("email", "", "email address")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	var err error
	if *email == "" {
		if *email, err = prompt(a.reader, a.opts.Out, "Email"); err != nil {
			return err
		}
	}
	password, err := promptPassword(a.reader, a.opts.Out, a.opts.Stdin)
	if err != nil {
		return err
	}

	current, err := a.client.Login(ctx, *email, password)
	if err != nil {
		a.printFieldErrors(err)

		return err
	}

	_, _ = fmt.Fprintf(a.opts.Out, "Signed in as %s\n", current.DisplayName)

	return nil
}

func (a *App) logout() error {
	if err := a.client.Logout(); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(a.opts.Out, "Signed out")

	return nil
}

func (a *App) whoami(ctx context.Context) error {
	if _, err := a.nav.Navigate(ctx, routeMe); err != nil {
		return err
	}

	current := a.store.Current()
	_, _ = fmt.Fprintf(a.opts.Out, "%s (%s)\n", current.DisplayName, current.AccountID)
	if current.MainImageURL != nil {
		_, _ = fmt.Fprintf(a.opts.Out, "main image: %s\n", *current.MainImageURL)
	}
	if !current.TokenExpiry.IsZero() {
		_, _ = fmt.Fprintf(a.opts.Out, "session expires: %s\n", formatTime(current.TokenExpiry))
	}

	return nil
}

func (a *App) members(ctx context.Context) error {
	nav, err := a.nav.Navigate(ctx, routeMembers)
	if err != nil {
		return err
	}

	members, _ := nav.Resolved["members"].([]*api.Member)
	if len(members) == 0 {
		_, _ = fmt.Fprintln(a.opts.Out, "No members yet")

		return nil
	}
	for _, member := range members {
		_, _ = fmt.Fprintf(a.opts.Out, "%s\t%s\t%s\n", member.ID, member.DisplayName, location(member))
	}

	return nil
}

func (a *App) member(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}

	nav, err := a.nav.Navigate(ctx, "/members/"+args[0])
	if err != nil {
		return err
	}
	if nav.Route.Path == guard.NotFoundPath {
		_, _ = fmt.Fprintf(a.opts.Out, "No member %s\n", args[0])

		return nil
	}

	member, _ := nav.Resolved["member"].(*api.Member)
	_, _ = fmt.Fprintf(a.opts.Out, "%s (%s)\n", member.DisplayName, member.ID)
	if loc := location(member); loc != "" {
		_, _ = fmt.Fprintf(a.opts.Out, "from: %s\n", loc)
	}
	if member.Age > 0 {
		_, _ = fmt.Fprintf(a.opts.Out, "age: %d\n", member.Age)
	}
	if member.Description != "" {
		_, _ = fmt.Fprintf(a.opts.Out, "about: %s\n", member.Description)
	}
	_, _ = fmt.Fprintf(a.opts.Out, "last active: %s\n", formatTime(member.LastActive))
	for _, photo := range member.Photos {
		a.printPhoto(photo)
	}

	return nil
}

func (a *App) update(ctx context.Context, args []string) error {
	fs := a.flagSet("update")
	var update api.MemberUpdate
	fs.Func("name", "display name", func(v string) error { update.DisplayName = &v; return nil })
	fs.Func("description", "about text", func(v string) error { update.Description = &v; return nil })
	fs.Func("city", "city", func(v string) error { update.City = &v; return nil })
	fs.Func("country", "country", func(v string) error { update.Country = &v; return nil })
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	if _, err := a.nav.Navigate(ctx, routeMe); err != nil {
		return err
	}
	if err := a.client.UpdateMember(ctx, update); err != nil {
		a.printFieldErrors(err)

		return err
	}

	_, _ = fmt.Fprintln(a.opts.Out, "Profile saved")

	return nil
}

func (a *App) upload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if _, err := a.nav.Navigate(ctx, routePhotos); err != nil {
		return err
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "read %s", args[0])
	}

	photo, err := a.client.UploadPhoto(ctx, filepath.Base(args[0]), content)
	if err != nil {
		a.printFieldErrors(err)

		return err
	}

	a.printPhoto(photo)

	return nil
}

func (a *App) setMain(ctx context.Context, args []string) error {
	photo, err := a.ownedPhoto(ctx, args)
	if err != nil || photo == nil {
		return err
	}

	if err := a.client.SetMainPhoto(ctx, photo); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.opts.Out, "Main image is now %s\n", photo.URL)

	return nil
}

func (a *App) deletePhoto(ctx context.Context, args []string) error {
	photo, err := a.ownedPhoto(ctx, args)
	if err != nil || photo == nil {
		return err
	}

	if err := a.client.DeletePhoto(ctx, photo.ID); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.opts.Out, "Deleted photo %d\n", photo.ID)
	if current := a.store.Current(); current != nil && current.MainImageURL != nil {
		_, _ = fmt.Fprintf(a.opts.Out, "Main image: %s\n", *current.MainImageURL)
	}

	return nil
}

// ownedPhoto resolves the caller's gallery and picks photoId from it. A nil photo with a nil
// error means the id is not in the gallery, which has already been reported.
func (a *App) ownedPhoto(ctx context.Context, args []string) (*api.Photo, error) {
	if len(args) != 1 {
		return nil, ErrUsage
	}
	photoID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		_, _ = fmt.Fprintf(a.opts.Err, "invalid photo id %q\n", args[0])

		return nil, ErrUsage
	}

	nav, err := a.nav.Navigate(ctx, routePhotos)
	if err != nil {
		return nil, err
	}

	photos, _ := nav.Resolved["photos"].([]*api.Photo)
	for _, photo := range photos {
		if photo.ID == photoID {
			return photo, nil
		}
	}

	_, _ = fmt.Fprintf(a.opts.Out, "No photo %d in your gallery\n", photoID)

	return nil, nil
}

func (a *App) printPhoto(photo *api.Photo) {
	marker := " "
	if photo.IsMain {
		marker = "*"
	}
	_, _ = fmt.Fprintf(a.opts.Out, "%s %d\t%s\n", marker, photo.ID, photo.URL)
}

// printFieldErrors shows field-level validation messages, which the pipeline leaves to callers.
func (a *App) printFieldErrors(err error) {
	apiErr, ok := errors.AsType[*pipeline.Error](err)
	if !ok {
		return
	}
	for field, message := range apiErr.Fields {
		_, _ = fmt.Fprintf(a.opts.Err, "  %s %s\n", field, message)
	}
}

func location(member *api.Member) string {
	parts := make([]string, 0, 2)
	for _, part := range []string{member.City, member.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ", ")
}
