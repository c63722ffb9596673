package cli

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/SISDRUG/bankoffice/internal/gateway"
)

func (a *App) Accounts(ctx context.Context, args []string) {
	var accounts []gateway.Account
	var err error

	if len(args) > 0 {
		userID, parseErr := strconv.ParseInt(args[0], 10, 64)
		if parseErr != nil {
			printlnFn("Not a user id:", args[0])
			return
		}
		accounts, err = a.gw.ListAccountsByUserID(ctx, userID)
	} else {
		accounts, err = a.gw.ListAccounts(ctx)
	}
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if len(accounts) == 0 {
		printlnFn("No accounts")
		return
	}
	for _, acc := range accounts {
		fmt.Printf("%6d  user %-6d %-8s %12.2f %s\n", acc.ID, acc.UserID, acc.Type, acc.Balance, acc.Currency)
	}
}

func (a *App) NewAccount(ctx context.Context) {
	userID, err := GetInt(a.reader, "User id", osStdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	currencies, err := a.gw.ListCurrencies(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	for _, c := range currencies {
		fmt.Printf("  %d: %s\n", c.ID, c.Abbreviation)
	}
	currencyID, err := GetInt(a.reader, "Currency id", osStdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	account, err := a.gw.CreateAccount(ctx, gateway.CreateAccountRequest{
		UserID:     int64(userID),
		CurrencyID: int64(currencyID),
		Type:       "CURRENT",
	})
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Printf("Account #%d created\n", account.ID)
}

func (a *App) Cards(ctx context.Context) {
	cards, err := a.gw.ListCards(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if len(cards) == 0 {
		printlnFn("No cards")
		return
	}
	for _, c := range cards {
		fmt.Printf("%6d  user %-6d %-8s %-8s %s\n", c.ID, c.UserID, c.CardType, c.Status, c.Number)
	}
}

func (a *App) NewCard(ctx context.Context) {
	userID, err := GetInt(a.reader, "User id", osStdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	card, err := a.gw.CreateCard(ctx, gateway.CreateCardRequest{
		UserID:   int64(userID),
		CardType: "DEBIT",
	})
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Printf("Card #%d created\n", card.ID)
}

func (a *App) Operations(ctx context.Context) {
	ops, err := a.gw.ListOperations(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if len(ops) == 0 {
		printlnFn("No operations")
		return
	}
	for _, op := range ops {
		fmt.Printf("%6d  card %-6d %-10s %-10s %10.2f  %s\n",
			op.ID, op.CardID, op.OperationType, op.Status, op.Value, op.Description)
	}
}

func (a *App) Transfer(ctx context.Context) {
	cardID, err := GetInt(a.reader, "Source card id", osStdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	recipient, err := getSimpleText(a.reader, "Recipient card number", osStdout)
	if err != nil || recipient == "" {
		return
	}
	amount, err := GetFloat(a.reader, "Amount", osStdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	description, err := getSimpleText(a.reader, "Description (optional)", osStdout)
	if err != nil {
		return
	}

	op, err := a.gw.CreateOperation(ctx, gateway.CreateOperationRequest{
		CardID:           int64(cardID),
		Value:            amount,
		RecipientDetails: recipient,
		Description:      description,
		OperationType:    "TRANSFER",
		Status:           "PENDING",
	})
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Printf("Transfer #%d initiated\n", op.ID)
}
