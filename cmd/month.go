package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"grana/internal/cli"
	"grana/internal/ledger"

	"github.com/spf13/cobra"
)

// runMonth is the default command: print the month's ledger as static
// tables, no TUI.
func runMonth(_ *cobra.Command, _ []string) error {
	sess, err := requireSession()
	if err != nil {
		return err
	}

	cur := monthCursor()
	client := apiClient()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	data, err := client.FetchMonth(ctx, sess.UserID, cur.APIMonth())
	if err != nil {
		return fmt.Errorf("fetching %s: %w", cur.Label(), err)
	}

	led := ledger.FromRecords(cur.Year, cur.MonthIndex, data.Expenses, data.Incomes)
	totals := led.Totals()

	fmt.Println()
	fmt.Println(cli.RenderTitle(strings.ToUpper(cur.Label())))
	fmt.Println()

	expenseRows := [][]string{}
	for _, r := range led.Expenses {
		if r.IsDraft() {
			continue
		}
		status := string(r.Status)
		if r.Status == ledger.StatusPaid {
			status = cli.PaintGood(status)
		} else {
			status = cli.PaintBad(status)
		}
		expenseRows = append(expenseRows, []string{
			r.Description,
			r.DueDay,
			cli.FormatAmountCell(r.Amount),
			cli.FormatAmountCell(r.AmountPaid),
			r.Installments,
			status,
		})
	}
	if len(expenseRows) > 0 {
		fmt.Println(cli.RenderTable(cli.Table{
			Title:   "EXPENSES",
			Headers: []string{"Description", "Day", "Amount", "Paid", "Inst.", "Status"},
			Rows:    expenseRows,
			Footers: [][]string{
				{"TOTAL", "", cli.FormatBRL(totals.Expense), "", "", ""},
			},
		}))
		fmt.Println()
	} else {
		fmt.Println("  No expenses recorded this month.")
		fmt.Println()
	}

	incomeRows := [][]string{}
	for _, r := range led.Incomes {
		if r.IsDraft() {
			continue
		}
		incomeRows = append(incomeRows, []string{
			r.Description,
			cli.FormatAmountCell(r.Amount),
			r.Status,
		})
	}
	if len(incomeRows) > 0 {
		fmt.Println(cli.RenderTable(cli.Table{
			Title:   "INCOME",
			Headers: []string{"Description", "Amount", "Status"},
			Rows:    incomeRows,
			Footers: [][]string{
				{"TOTAL", cli.FormatBRL(totals.Income), ""},
			},
		}))
		fmt.Println()
	} else {
		fmt.Println("  No income recorded this month.")
		fmt.Println()
	}

	balance := cli.FormatBRL(totals.Balance)
	if totals.Balance.IsNegative() {
		balance = cli.PaintBad(balance)
	} else {
		balance = cli.PaintGood(balance)
	}
	fmt.Println(cli.RenderSummaryLine("BALANCE", balance))
	fmt.Println()

	return nil
}
