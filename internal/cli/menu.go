// Package cli implements the interactive text menu. It owns all prompting
// and input parsing, and hands parameter structs to the auth registry and
// the ledger; domain errors come back as sentinels and are printed as
// messages without ever stopping the loop.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"pharmadesk/internal/auth"
	"pharmadesk/internal/ledger"
)

// Menu bundles dependencies for the interactive loop.
type Menu struct {
	registry *auth.Registry
	ledger   *ledger.Ledger
	in       *bufio.Scanner
	out      io.Writer
	log      zerolog.Logger
}

func New(registry *auth.Registry, ledger *ledger.Ledger, in io.Reader, out io.Writer, log zerolog.Logger) *Menu {
	return &Menu{
		registry: registry,
		ledger:   ledger,
		in:       bufio.NewScanner(in),
		out:      out,
		log:      log,
	}
}

// Run shows the menu and dispatches one operation per choice until the user
// exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprint(m.out, "\nPharmacy System Menu:\n"+
			"1. Register User\n"+
			"2. Login User\n"+
			"3. Add Drug\n"+
			"4. Update Drug\n"+
			"5. Delete Drug\n"+
			"6. Sell Drug\n"+
			"7. Generate Daily Sales Report\n"+
			"8. Generate Stock Report\n"+
			"9. Generate Order History Report\n"+
			"10. Exit\n")

		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			m.registerUser(ctx)
		case "2":
			m.loginUser(ctx)
		case "3":
			m.addDrug(ctx)
		case "4":
			m.updateDrug(ctx)
		case "5":
			m.deleteDrug(ctx)
		case "6":
			m.sellDrug(ctx)
		case "7":
			m.dailySalesReport(ctx)
		case "8":
			m.stockReport(ctx)
		case "9":
			m.orderHistoryReport(ctx)
		case "10":
			fmt.Fprintln(m.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice, try again.")
		}
	}
}

// prompt prints label and reads one trimmed line. ok is false once input is
// exhausted.
func (m *Menu) prompt(label string) (value string, ok bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) registerUser(ctx context.Context) {
	username, ok := m.prompt("Enter username: ")
	if !ok {
		return
	}
	password, ok := m.prompt("Enter password: ")
	if !ok {
		return
	}
	role, ok := m.prompt("Enter role (e.g., pharmacist, staff): ")
	if !ok {
		return
	}

	_, err := m.registry.Register(ctx, username, password, role)
	if errors.Is(err, auth.ErrDuplicateUser) {
		fmt.Fprintln(m.out, "User already exists!")
		return
	}
	if err != nil {
		m.fail("register user", err)
		return
	}
	fmt.Fprintf(m.out, "User %s registered successfully!\n", username)
}

func (m *Menu) loginUser(ctx context.Context) {
	username, ok := m.prompt("Enter username: ")
	if !ok {
		return
	}
	password, ok := m.prompt("Enter password: ")
	if !ok {
		return
	}

	valid, err := m.registry.Authenticate(ctx, username, password)
	if err != nil {
		m.fail("login", err)
		return
	}
	if valid {
		fmt.Fprintf(m.out, "Welcome back, %s!\n", username)
	} else {
		fmt.Fprintln(m.out, "Invalid username or password!")
	}
}

func (m *Menu) addDrug(ctx context.Context) {
	name, ok := m.prompt("Enter drug name: ")
	if !ok {
		return
	}
	priceText, ok := m.prompt("Enter drug price: ")
	if !ok {
		return
	}
	price, err := decimal.NewFromString(priceText)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid price, expected a number.")
		return
	}
	quantityText, ok := m.prompt("Enter drug quantity: ")
	if !ok {
		return
	}
	quantity, err := strconv.ParseInt(quantityText, 10, 64)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid quantity, expected a whole number.")
		return
	}
	description, ok := m.prompt("Enter drug description: ")
	if !ok {
		return
	}

	_, err = m.ledger.AddDrug(ctx, ledger.AddDrugParams{
		Name:        name,
		Price:       price,
		Quantity:    quantity,
		Description: description,
	})
	if errors.Is(err, ledger.ErrInvalidInput) {
		fmt.Fprintf(m.out, "%s.\n", capitalize(err.Error()))
		return
	}
	if err != nil {
		m.fail("add drug", err)
		return
	}
	fmt.Fprintf(m.out, "Drug %s added successfully!\n", name)
}

func (m *Menu) updateDrug(ctx context.Context) {
	name, ok := m.prompt("Enter drug name to update: ")
	if !ok {
		return
	}

	drug, err := m.ledger.GetDrugByName(ctx, name)
	if errors.Is(err, ledger.ErrNotFound) {
		fmt.Fprintln(m.out, "Drug not found!")
		return
	}
	if err != nil {
		m.fail("update drug", err)
		return
	}

	var params ledger.UpdateDrugParams

	newName, ok := m.prompt(fmt.Sprintf("Enter new name (current: %s): ", drug.Name))
	if !ok {
		return
	}
	if newName != "" {
		params.Name = &newName
	}

	priceText, ok := m.prompt(fmt.Sprintf("Enter new price (current: %s): ", drug.Price))
	if !ok {
		return
	}
	if priceText != "" {
		price, err := decimal.NewFromString(priceText)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid price, expected a number.")
			return
		}
		params.Price = &price
	}

	quantityText, ok := m.prompt(fmt.Sprintf("Enter new quantity (current: %d): ", drug.Quantity))
	if !ok {
		return
	}
	if quantityText != "" {
		quantity, err := strconv.ParseInt(quantityText, 10, 64)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid quantity, expected a whole number.")
			return
		}
		params.Quantity = &quantity
	}

	description, ok := m.prompt(fmt.Sprintf("Enter new description (current: %s): ", drug.Description))
	if !ok {
		return
	}
	if description != "" {
		params.Description = &description
	}

	updated, err := m.ledger.UpdateDrug(ctx, name, params)
	if errors.Is(err, ledger.ErrInvalidInput) {
		fmt.Fprintf(m.out, "%s.\n", capitalize(err.Error()))
		return
	}
	if errors.Is(err, ledger.ErrNotFound) {
		fmt.Fprintln(m.out, "Drug not found!")
		return
	}
	if err != nil {
		m.fail("update drug", err)
		return
	}
	fmt.Fprintf(m.out, "Drug %s updated successfully!\n", updated.Name)
}

func (m *Menu) deleteDrug(ctx context.Context) {
	idText, ok := m.prompt("Enter drug ID to delete: ")
	if !ok {
		return
	}
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid ID, expected a whole number.")
		return
	}

	drug, err := m.ledger.GetDrugByID(ctx, id)
	if errors.Is(err, ledger.ErrNotFound) {
		fmt.Fprintln(m.out, "Drug not found!")
		return
	}
	if err != nil {
		m.fail("delete drug", err)
		return
	}

	if err := m.ledger.DeleteDrug(ctx, id); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			fmt.Fprintln(m.out, "Drug not found!")
			return
		}
		m.fail("delete drug", err)
		return
	}
	fmt.Fprintf(m.out, "Drug %s deleted successfully!\n", drug.Name)
}

func (m *Menu) sellDrug(ctx context.Context) {
	name, ok := m.prompt("Enter drug name: ")
	if !ok {
		return
	}
	quantityText, ok := m.prompt("Enter quantity to sell: ")
	if !ok {
		return
	}
	quantity, err := strconv.ParseInt(quantityText, 10, 64)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid quantity, expected a whole number.")
		return
	}

	sale, err := m.ledger.Sell(ctx, name, quantity)
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		fmt.Fprintln(m.out, "Drug not found!")
		return
	case errors.Is(err, ledger.ErrInsufficientStock):
		fmt.Fprintln(m.out, "Not enough stock!")
		return
	case errors.Is(err, ledger.ErrInvalidInput):
		fmt.Fprintf(m.out, "%s.\n", capitalize(err.Error()))
		return
	case err != nil:
		m.fail("sell drug", err)
		return
	}

	fmt.Fprintf(m.out, "Sale completed! Drug: %s | Quantity: %d | Total Price: %s\n", name, sale.Quantity, sale.TotalPrice)
	fmt.Fprintln(m.out, "Receipt: Sale recorded successfully!")
}

func (m *Menu) dailySalesReport(ctx context.Context) {
	report, err := m.ledger.DailySalesReport(ctx, time.Now())
	if err != nil {
		m.fail("daily sales report", err)
		return
	}
	if len(report.Rows) == 0 {
		fmt.Fprintln(m.out, "No sales data found for today.")
		return
	}
	fmt.Fprintf(m.out, "Sales Report for %s:\n", report.Date)
	for _, row := range report.Rows {
		fmt.Fprintf(m.out, "Drug: %s | Quantity Sold: %d | Total Price: %s\n", row.DrugName, row.Quantity, row.TotalPrice)
	}
	fmt.Fprintf(m.out, "\nTotal sales today: %s\n", report.Total)
}

func (m *Menu) stockReport(ctx context.Context) {
	lines, err := m.ledger.StockReport(ctx)
	if err != nil {
		m.fail("stock report", err)
		return
	}
	if len(lines) == 0 {
		fmt.Fprintln(m.out, "No drugs in inventory.")
		return
	}
	fmt.Fprintln(m.out, "Current Stock Levels:")
	for _, line := range lines {
		fmt.Fprintf(m.out, "Drug: %s | Quantity: %d\n", line.Name, line.Quantity)
	}
}

func (m *Menu) orderHistoryReport(ctx context.Context) {
	rows, err := m.ledger.OrderHistoryReport(ctx)
	if err != nil {
		m.fail("order history report", err)
		return
	}
	if len(rows) == 0 {
		fmt.Fprintln(m.out, "No order history found.")
		return
	}
	fmt.Fprintln(m.out, "Order History Report:")
	for _, row := range rows {
		fmt.Fprintf(m.out, "Drug: %s | Quantity Sold: %d | Total Price: %s | Date: %s\n", row.DrugName, row.Quantity, row.TotalPrice, row.Date)
	}
}

// fail handles store-level errors: log the detail, tell the user something
// went wrong, keep the loop alive.
func (m *Menu) fail(op string, err error) {
	m.log.Error().Err(err).Str("op", op).Msg("operation failed")
	fmt.Fprintln(m.out, "Something went wrong, please try again.")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
