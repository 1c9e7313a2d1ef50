package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minipos/internal/adapters/persistence/repositories"
	"minipos/internal/core/domain"
	"minipos/internal/core/services"
	"minipos/internal/pkg/calendar"
)

// runScript feeds a scripted operator session through a fresh system
// and returns everything printed to the terminal.
func runScript(t *testing.T, script string) string {
	t.Helper()

	ctx := context.Background()
	userRepo := repositories.NewUserRepository()
	productRepo := repositories.NewProductRepository()
	txRepo := repositories.NewTransactionRepository()

	for _, user := range []domain.User{
		{Username: "admin", Password: "adminpass", Role: domain.RoleAdmin},
		{Username: "manager", Password: "managerpass", Role: domain.RoleManager},
		{Username: "staff", Password: "staffpass", Role: domain.RoleStaff},
	} {
		u := user
		require.NoError(t, userRepo.Create(ctx, &u))
	}

	cal := calendar.New(time.UTC)
	auth := services.NewAuthService(userRepo)
	catalog := services.NewCatalogService(productRepo)
	sales := services.NewSalesService(productRepo, txRepo, cal)

	var out bytes.Buffer
	term := New("Inventory Management System", auth, catalog, sales, cal, strings.NewReader(script), &out)
	require.NoError(t, term.Run(ctx))
	return out.String()
}

// TestRunExit verifies 'exit' at the username prompt ends the loop
func TestRunExit(t *testing.T) {
	out := runScript(t, "exit\n")
	assert.Contains(t, out, "Enter username (or 'exit' to quit): ")
	assert.NotContains(t, out, "Enter password")
}

// TestRunRejectsBadCredentials verifies the denial line and re-prompt
func TestRunRejectsBadCredentials(t *testing.T) {
	out := runScript(t, "ghost\nwrong\nexit\n")
	assert.Contains(t, out, "Invalid username or password. Access denied.")
	assert.Equal(t, 2, strings.Count(out, "Enter username (or 'exit' to quit): "))
}

// TestRunWelcomeAndLogout verifies the session banner and return to
// the login prompt after logout.
func TestRunWelcomeAndLogout(t *testing.T) {
	out := runScript(t, "staff\nstaffpass\n11\nexit\n")
	assert.Contains(t, out, "Welcome, staff!")
	assert.Contains(t, out, "Role: STAFF")
	assert.Contains(t, out, "=====Inventory Management System=====")
	assert.Equal(t, 2, strings.Count(out, "Enter username (or 'exit' to quit): "))
}

// TestRunStaffDeniedAddProduct verifies the role gate message without
// any prompting for product details.
func TestRunStaffDeniedAddProduct(t *testing.T) {
	out := runScript(t, "staff\nstaffpass\n1\n11\nexit\n")
	assert.Contains(t, out, "Only administrators can add products.")
	assert.NotContains(t, out, "Enter Product ID: ")
}

// TestRunFullSaleFlow drives add, sell, receipt and revenue through
// the menu exactly as an operator would.
func TestRunFullSaleFlow(t *testing.T) {
	script := strings.Join([]string{
		"admin", "adminpass",
		"1", "1", "Pen", "1.0", "2.0", "10", // add product
		"5", "1", "3", // sell 3
		"4",      // show inventory
		"7", "1", // receipt for transaction 1
		"9", "month", // revenue
		"11",
		"exit",
	}, "\n") + "\n"

	out := runScript(t, script)

	assert.Contains(t, out, "Added product: Pen")
	assert.Contains(t, out, "Sold 3 of Pen.")
	assert.Contains(t, out, "Remaining stock: 7")
	assert.Contains(t, out, "Receipt")
	assert.Contains(t, out, "Total Amount: 6.00")
	assert.Contains(t, out, "Revenue (month):")
}

// TestRunEmptyStates verifies the empty-inventory and empty-ledger lines
func TestRunEmptyStates(t *testing.T) {
	out := runScript(t, "staff\nstaffpass\n4\n6\n7\n11\nexit\n")
	assert.Contains(t, out, "The inventory is empty.")
	assert.Contains(t, out, "No transactions available.")
}

// TestRunInvalidReceipt verifies the out-of-range receipt message
func TestRunInvalidReceipt(t *testing.T) {
	script := strings.Join([]string{
		"admin", "adminpass",
		"1", "1", "Pen", "1.0", "2.0", "10",
		"5", "1", "1",
		"7", "5", // only one transaction exists
		"11",
		"exit",
	}, "\n") + "\n"

	out := runScript(t, script)
	assert.Contains(t, out, "Invalid transaction ID.")
}

// TestRunInvalidPeriod verifies the revenue period gate
func TestRunInvalidPeriod(t *testing.T) {
	out := runScript(t, "staff\nstaffpass\n9\nweekly\n11\nexit\n")
	assert.Contains(t, out, "Invalid period specified.")
}

// TestRunAddUser verifies admin user creation and role validation
func TestRunAddUser(t *testing.T) {
	t.Run("staff denied", func(t *testing.T) {
		out := runScript(t, "staff\nstaffpass\n10\n11\nexit\n")
		assert.Contains(t, out, "Only administrators can add users.")
	})

	t.Run("admin adds a staff account", func(t *testing.T) {
		script := strings.Join([]string{
			"admin", "adminpass",
			"10", "cashier", "till123", "STAFF",
			"11",
			"cashier", "till123", // the new account logs straight in
			"11",
			"exit",
		}, "\n") + "\n"

		out := runScript(t, script)
		assert.Contains(t, out, "User added successfully.")
		assert.Contains(t, out, "Welcome, cashier!")
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		script := strings.Join([]string{
			"admin", "adminpass",
			"10", "odd", "pw", "OVERLORD",
			"11",
			"exit",
		}, "\n") + "\n"

		out := runScript(t, script)
		assert.Contains(t, out, "Invalid role. Use ADMIN, MANAGER or STAFF.")
	})
}

// TestRunInvalidMenuChoice verifies unknown choices re-show the menu
func TestRunInvalidMenuChoice(t *testing.T) {
	out := runScript(t, "staff\nstaffpass\n99\nnope\n11\nexit\n")
	assert.Equal(t, 2, strings.Count(out, "Invalid choice. Please try again."))
}
