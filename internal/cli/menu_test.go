package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"pharmadesk/internal/auth"
	"pharmadesk/internal/ledger"
	"pharmadesk/internal/testutil"
)

// runScript feeds one input line per element and returns everything printed.
func runScript(t *testing.T, name string, lines ...string) string {
	t.Helper()
	db := testutil.OpenDB(t, name)
	var out bytes.Buffer
	menu := New(auth.NewRegistry(db), ledger.New(db), strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, zerolog.Nop())
	require.NoError(t, menu.Run(context.Background()))
	return out.String()
}

func TestMenuExit(t *testing.T) {
	out := runScript(t, "cli_exit", "10")
	require.Contains(t, out, "Pharmacy System Menu:")
	require.Contains(t, out, "Exiting...")
}

func TestMenuInvalidChoiceRedisplays(t *testing.T) {
	out := runScript(t, "cli_invalid", "banana", "10")
	require.Contains(t, out, "Invalid choice, try again.")
	require.Equal(t, 2, strings.Count(out, "Pharmacy System Menu:"))
}

func TestMenuExitsCleanlyOnEOF(t *testing.T) {
	out := runScript(t, "cli_eof")
	require.Contains(t, out, "Choose an option: ")
}

func TestRegisterAndLoginFlow(t *testing.T) {
	out := runScript(t, "cli_auth",
		"1", "alice", "s3cret", "pharmacist",
		"1", "alice", "other", "staff",
		"2", "alice", "s3cret",
		"2", "alice", "wrong",
		"10")
	require.Contains(t, out, "User alice registered successfully!")
	require.Contains(t, out, "User already exists!")
	require.Contains(t, out, "Welcome back, alice!")
	require.Contains(t, out, "Invalid username or password!")
}

func TestSellFlowPrintsReceiptAndStock(t *testing.T) {
	out := runScript(t, "cli_sell",
		"3", "Aspirin", "5.00", "100", "pain reliever",
		"6", "Aspirin", "10",
		"6", "Aspirin", "1000",
		"6", "Ghost", "1",
		"8",
		"10")
	require.Contains(t, out, "Drug Aspirin added successfully!")
	require.Contains(t, out, "Sale completed! Drug: Aspirin | Quantity: 10 | Total Price: 50")
	require.Contains(t, out, "Receipt: Sale recorded successfully!")
	require.Contains(t, out, "Not enough stock!")
	require.Contains(t, out, "Drug not found!")
	require.Contains(t, out, "Drug: Aspirin | Quantity: 90")
}

func TestAddDrugRejectsUnparsableNumbers(t *testing.T) {
	out := runScript(t, "cli_add_invalid",
		"3", "Aspirin", "cheap",
		"3", "Aspirin", "5.00", "many",
		"8",
		"10")
	require.Contains(t, out, "Invalid price, expected a number.")
	require.Contains(t, out, "Invalid quantity, expected a whole number.")
	require.Contains(t, out, "No drugs in inventory.")
}

func TestUpdateDrugKeepsFieldsOnEmptyInput(t *testing.T) {
	out := runScript(t, "cli_update",
		"3", "Aspirin", "5.00", "100", "pain reliever",
		"4", "Aspirin", "", "", "", "",
		"4", "Aspirin", "", "6.50", "", "",
		"4", "Aspirin", "", "", "", "",
		"4", "Ghost",
		"8",
		"10")
	require.Contains(t, out, "Enter new name (current: Aspirin): ")
	require.Contains(t, out, "Enter new price (current: 5): ")
	require.Contains(t, out, "Enter new price (current: 6.5): ")
	require.Contains(t, out, "Drug Aspirin updated successfully!")
	require.Contains(t, out, "Drug not found!")
	require.Contains(t, out, "Drug: Aspirin | Quantity: 100")
}

func TestDeleteDrugFlow(t *testing.T) {
	out := runScript(t, "cli_delete",
		"3", "Aspirin", "5.00", "100", "pain reliever",
		"5", "1",
		"5", "1",
		"5", "abc",
		"10")
	require.Contains(t, out, "Drug Aspirin deleted successfully!")
	require.Contains(t, out, "Drug not found!")
	require.Contains(t, out, "Invalid ID, expected a whole number.")
}

func TestReportsOnEmptyStore(t *testing.T) {
	out := runScript(t, "cli_reports_empty", "7", "8", "9", "10")
	require.Contains(t, out, "No sales data found for today.")
	require.Contains(t, out, "No drugs in inventory.")
	require.Contains(t, out, "No order history found.")
}

func TestDailyAndHistoryReports(t *testing.T) {
	out := runScript(t, "cli_reports",
		"3", "Aspirin", "5.00", "100", "pain reliever",
		"6", "Aspirin", "10",
		"7",
		"9",
		"10")
	require.Contains(t, out, "Sales Report for ")
	require.Contains(t, out, "Drug: Aspirin | Quantity Sold: 10 | Total Price: 50")
	require.Contains(t, out, "Total sales today: 50")
	require.Contains(t, out, "Order History Report:")
	require.Contains(t, out, "| Date: ")
}
