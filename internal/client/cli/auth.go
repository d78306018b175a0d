package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vidhub/internal/client/models"
	"github.com/dmitrijs2005/vidhub/internal/client/services"
	"github.com/dmitrijs2005/vidhub/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Register prompts for the registration form, validates it locally and
// creates the account. Avatar and cover image are optional file paths.
func (a *App) Register(ctx context.Context) error {
	var form models.RegisterForm
	var err error

	prompts := []struct {
		label string
		dst   *string
	}{
		{"Username", &form.UserName},
		{"Email", &form.Email},
		{"Full name", &form.FullName},
	}
	for _, p := range prompts {
		if *p.dst, err = getSimpleText(a.in, p.label, a.out); err != nil {
			return err
		}
	}

	password, err := getPassword(a.in, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.in, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	form.Password, form.ConfirmPassword = string(password), string(confirm)

	if form.AvatarPath, err = getSimpleText(a.in, "Avatar image file (optional)", a.out); err != nil {
		return err
	}
	if form.CoverImagePath, err = getSimpleText(a.in, "Cover image file (optional)", a.out); err != nil {
		return err
	}

	if err := form.Validate(); err != nil {
		a.printValidation(err)
		return err
	}

	return services.SessionFrom(ctx).Register(ctx, form, func() {
		fmt.Fprintf(a.out, "Welcome, %s!\n", form.FullName)
	})
}

// Login prompts for credentials and signs in. Validation failures are
// reported without contacting the server.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.in, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.in, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	form := models.LoginForm{Email: email, Password: string(password)}
	if err := form.Validate(); err != nil {
		a.printValidation(err)
		return err
	}

	return services.SessionFrom(ctx).Login(ctx, form.Email, form.Password)
}

// Logout forgets the session and closes the open video.
func (a *App) Logout(ctx context.Context) error {
	services.SessionFrom(ctx).Logout(ctx)
	a.Navigate(common.RootRoute)
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	snap := services.SessionFrom(ctx).Snapshot()
	switch {
	case snap.IsLoading():
		fmt.Fprintln(a.out, "Checking session…")
	case !snap.IsAuthenticated():
		fmt.Fprintln(a.out, "Not logged in.")
	default:
		u := snap.User
		fmt.Fprintf(a.out, "%s (@%s) <%s>\n", u.FullName, u.UserName, u.Email)
		if ref := u.AvatarRef(); ref != "" {
			fmt.Fprintf(a.out, "avatar: %s\n", ref)
		}
	}
	return nil
}

func (a *App) printValidation(err error) {
	if verr, ok := err.(models.ValidationError); ok {
		for _, field := range verr.Fields() {
			fmt.Fprintf(a.out, "✖ %s\n", verr[field])
		}
		return
	}
	fmt.Fprintf(a.out, "✖ %v\n", err)
}
