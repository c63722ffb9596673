package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

func (a *App) getStatus() string {
	if name := a.authService.Username(); name != "" {
		return fmt.Sprintf("(%s)", name)
	}
	return ""
}

// Root runs the main read-eval-print loop. It reads a line, parses the first
// token as the command, and dispatches to methods on a. The loop exits on
// scanner EOF or when the user types "exit" or "quit".
//
// Command handlers print their own errors; the loop stays resilient and
// focused on I/O.
func (a *App) Root(ctx context.Context) {
	printlnFn("Bank back office CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("bo %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "users":
			a.Users(ctx)
		case "user":
			if len(args) == 0 {
				printlnFn("Usage: user <id>")
				continue
			}
			a.UserDetails(ctx, args[0])
		case "search":
			a.SearchUsers(ctx)
		case "provision":
			a.Provision(ctx)
		case "accounts":
			a.Accounts(ctx, args)
		case "newaccount":
			a.NewAccount(ctx)
		case "cards":
			a.Cards(ctx)
		case "newcard":
			a.NewCard(ctx)
		case "ops":
			a.Operations(ctx)
		case "transfer":
			a.Transfer(ctx)
		case "rates":
			a.Rates(ctx)
		case "convert":
			a.ConvertCurrency(ctx)
		case "nearby":
			a.Nearby(ctx)
		case "loan":
			a.LoanCalculator()
		case "mortgage":
			a.MortgageCalculator()
		case "deposit":
			a.DepositCalculator()
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		printlnFn("Available commands:")
		printlnFn("  users, user <id>, search, provision")
		printlnFn("  accounts [userId], newaccount, cards, newcard, ops, transfer")
		printlnFn("  rates, convert, nearby")
		printlnFn("  loan, mortgage, deposit")
		printlnFn("  logout, exit")
	} else {
		printlnFn("Available commands: login, loan, mortgage, deposit, exit")
	}
}
