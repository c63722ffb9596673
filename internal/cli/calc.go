package cli

import (
	"fmt"
	"log"

	"github.com/SISDRUG/bankoffice/internal/fincalc"
)

func (a *App) LoanCalculator() {
	amount, err := GetFloat(a.reader, "Loan amount", osStdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	months, err := GetInt(a.reader, "Term (months)", osStdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	rate, err := GetFloat(a.reader, "Annual rate (%)", osStdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	result, err := fincalc.Loan(amount, months, rate)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	printLoanResult(result)
}

func (a *App) MortgageCalculator() {
	price, err := GetFloat(a.reader, "Property price", osStdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	downPayment, err := GetFloat(a.reader, "Down payment", osStdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	months, err := GetInt(a.reader, "Term (months)", osStdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	rate, err := GetFloat(a.reader, "Annual rate (%)", osStdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	result, err := fincalc.Mortgage(price, downPayment, months, rate)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	printLoanResult(result)
}

func (a *App) DepositCalculator() {
	amount, err := GetFloat(a.reader, "Deposit amount", osStdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	months, err := GetInt(a.reader, "Term (months)", osStdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	rate, err := GetFloat(a.reader, "Annual rate (%)", osStdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	refRate, err := GetFloat(a.reader, "Refinancing rate (%)", osStdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	result, err := fincalc.Deposit(amount, months, rate, refRate)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Printf("Simple interest:      %.2f\n", result.SimpleInterest)
	fmt.Printf("Compound interest:    %.2f\n", result.CompoundInterest)
	fmt.Printf("At refinancing rate:  %.2f\n", result.RefinancingInterest)
}

func printLoanResult(result *fincalc.LoanResult) {
	fmt.Printf("Monthly payment: %.2f\n", result.MonthlyPayment)
	fmt.Printf("Total payment:   %.2f\n", result.TotalPayment)
	fmt.Printf("Total interest:  %.2f\n", result.TotalInterest)
	printlnFn("Schedule:")
	for _, row := range result.Schedule {
		fmt.Printf("  %3d  payment %10.2f  principal %10.2f  interest %9.2f  balance %12.2f\n",
			row.Month, row.Payment, row.Principal, row.Interest, row.Balance)
	}
}
