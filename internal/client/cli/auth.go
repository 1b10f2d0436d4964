package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/tuguldur-s/travelfeed/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, email and password and creates an account.
// On success the backend returns a live session, so the user is logged in
// immediately.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	reg := api.Registration{Name: name, Email: email, Password: string(password)}
	if err := a.store.Register(ctx, reg); err != nil {
		fmt.Println("Registration failed:", err)
		return err
	}

	fmt.Println("Welcome,", a.sess.CurrentUser().Name)
	return nil
}

// Login prompts for credentials and authenticates. A failed attempt leaves
// any previously stored session in place.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	creds := api.Credentials{Email: email, Password: string(password)}
	if err := a.store.Login(ctx, creds); err != nil {
		fmt.Println("Login failed:", err)
		return err
	}

	fmt.Println("Logged in as", a.sess.CurrentUser().Name)
	return nil
}

// Logout destroys the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		fmt.Println("Logout failed:", err)
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// WhoAmI prints the logged-in user.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.sess.CurrentUser()
	if u == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s> (id %s)\n", u.Name, u.Email, u.ID)
	return nil
}
