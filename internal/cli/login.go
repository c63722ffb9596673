package cli

import (
	"context"
	"log"
)

func (a *App) Login(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Enter username", osStdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := getPassword(osStdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.authService.Login(ctx, username, string(password)); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return
	}
	log.Printf("Login successful")
}

func (a *App) Logout(ctx context.Context) {
	a.authService.Logout(ctx)
	log.Printf("Logged out")
}
