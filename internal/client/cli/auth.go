package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"braindash/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates a new account.
// On success the issued session is cached and the user is logged in.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	session, err := a.api.Register(ctx, userName, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			log.Printf("Username is already taken")
			return err
		}
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	a.userName = session.Username
	if err := a.saveSession(session); err != nil {
		log.Printf("Could not cache session: %s", err.Error())
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts for credentials and authenticates. On success the issued
// session is cached so the next start does not ask again.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	session, err := a.api.Login(ctx, userName, string(password))
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.userName = session.Username
	if err := a.saveSession(session); err != nil {
		log.Printf("Could not cache session: %s", err.Error())
	}

	log.Printf("Login successful")
	return nil
}

// Logout drops the cached session and the in-memory token.
func (a *App) Logout(ctx context.Context) error {
	a.clearSession()
	a.api.SetToken("")
	a.userName = ""
	return nil
}
