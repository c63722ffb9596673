package cli

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/SISDRUG/bankoffice/internal/gateway"
)

func (a *App) Users(ctx context.Context) {
	users, err := a.gw.ListUsers(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if len(users) == 0 {
		printlnFn("No users")
		return
	}
	for _, u := range users {
		fmt.Printf("%6d  %-20s %-12s %s\n", u.ID, u.FirstName+" "+u.LastName, u.Phone, u.DateOfBirth)
	}
}

func (a *App) SearchUsers(ctx context.Context) {
	var search gateway.UserSearch
	var err error

	if search.FirstName, err = getSimpleText(a.reader, "First name (empty to skip)", osStdout); err != nil {
		return
	}
	if search.LastName, err = getSimpleText(a.reader, "Last name (empty to skip)", osStdout); err != nil {
		return
	}
	if search.Email, err = getSimpleText(a.reader, "Email (empty to skip)", osStdout); err != nil {
		return
	}

	users, err := a.gw.SearchUsers(ctx, search)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if len(users) == 0 {
		printlnFn("No matches")
		return
	}
	for _, u := range users {
		fmt.Printf("%6d  %-20s %s\n", u.ID, u.FirstName+" "+u.LastName, u.Phone)
	}
}

// UserDetails shows one user with the linked login, credential and accounts.
// A user without a login is still shown; the login and credential lookups
// are best effort.
func (a *App) UserDetails(ctx context.Context, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		printlnFn("Not a user id:", arg)
		return
	}

	user, err := a.gw.GetUser(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	fmt.Printf("User #%d\n", user.ID)
	fmt.Printf("  name:    %s %s\n", user.FirstName, user.LastName)
	fmt.Printf("  born:    %s\n", user.DateOfBirth)
	fmt.Printf("  phone:   %s\n", user.Phone)
	fmt.Printf("  address: %s\n", user.Address)

	login, err := a.gw.GetLoginByUserID(ctx, id)
	if err != nil {
		if !gateway.IsNotFound(err) {
			log.Printf("login lookup failed: %v", err)
		}
	} else {
		fmt.Printf("  email:   %s (login #%d)\n", login.Email, login.ID)

		cred, err := a.gw.GetCredentialByLoginID(ctx, login.ID)
		if err != nil {
			if !gateway.IsNotFound(err) {
				log.Printf("credential lookup failed: %v", err)
			}
		} else {
			fmt.Printf("  role:    %s (credential #%d)\n", cred.Role.Name, cred.ID)
		}
	}

	accounts, err := a.gw.ListAccountsByUserID(ctx, id)
	if err != nil {
		log.Printf("accounts lookup failed: %v", err)
		return
	}
	for _, acc := range accounts {
		fmt.Printf("  account #%d  %-8s %10.2f %s\n", acc.ID, acc.Type, acc.Balance, acc.Currency)
	}
}
