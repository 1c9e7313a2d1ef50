package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"minipos/internal/core/domain"
	"minipos/internal/core/services"
	"minipos/internal/pkg/calendar"
)

// Terminal drives the interactive login and menu loops. It owns all
// prompt text and rendering; the services own every behavioral rule.
type Terminal struct {
	appName string
	auth    *services.AuthService
	catalog *services.CatalogService
	sales   *services.SalesService
	cal     *calendar.Calendar
	in      *bufio.Reader
	out     io.Writer
}

// New creates a terminal bound to the given reader and writer
func New(appName string, auth *services.AuthService, catalog *services.CatalogService, sales *services.SalesService, cal *calendar.Calendar, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		appName: appName,
		auth:    auth,
		catalog: catalog,
		sales:   sales,
		cal:     cal,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Run executes the outer login loop until the operator types 'exit'
// at the username prompt or input ends.
func (t *Terminal) Run(ctx context.Context) error {
	for {
		username, err := t.prompt("Enter username (or 'exit' to quit): ")
		if err != nil {
			return nil
		}
		if username == "exit" {
			return nil
		}

		password, err := t.prompt("Enter password: ")
		if err != nil {
			return nil
		}

		session, err := t.auth.Login(ctx, username, password)
		if err != nil {
			t.printf("Invalid username or password. Access denied.\n")
			continue
		}

		t.printf("Welcome, %s!\nRole: %s\n", session.Username, session.Role)
		t.menuLoop(ctx, session)
		t.auth.Logout(session)
	}
}

// menuLoop dispatches menu choices until the operator logs out
func (t *Terminal) menuLoop(ctx context.Context, session *domain.Session) {
	for {
		t.printMenu()
		line, err := t.prompt("Enter your choice: ")
		if err != nil {
			return
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			t.printf("Invalid choice. Please try again.\n")
			continue
		}

		if choice == 11 {
			return
		}

		switch choice {
		case 1:
			t.handleAddProduct(ctx, session)
		case 2:
			t.handleUpdatePrice(ctx, session)
		case 3:
			t.handleRestock(ctx, session)
		case 4:
			t.handleShowInventory(ctx)
		case 5:
			t.handleSell(ctx, session)
		case 6:
			t.handleShowTransactions(ctx)
		case 7:
			t.handleReceipt(ctx)
		case 8:
			t.handleSearch(ctx)
		case 9:
			t.handleRevenue(ctx)
		case 10:
			t.handleAddUser(ctx, session)
		default:
			t.printf("Invalid choice. Please try again.\n")
		}
	}
}

func (t *Terminal) printMenu() {
	t.printf("\n=====%s=====\n", t.appName)
	t.printf("1. Add Product\n")
	t.printf("2. Update Prices\n")
	t.printf("3. Restock Product\n")
	t.printf("4. Show Inventory\n")
	t.printf("5. Sell Product\n")
	t.printf("6. Show Transactions\n")
	t.printf("7. Display Receipt\n")
	t.printf("8. Search Product\n")
	t.printf("9. Calculate Revenue\n")
	t.printf("10. Add User\n")
	t.printf("11. Logout\n")
}

// prompt prints a prompt and reads one trimmed input line
func (t *Terminal) prompt(label string) (string, error) {
	t.printf("%s", label)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt prompts until it gets an integer line or input ends
func (t *Terminal) promptInt(label string) (int, error) {
	line, err := t.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		t.printf("Invalid number.\n")
		return 0, err
	}
	return n, nil
}

// promptFloat prompts for a decimal value
func (t *Terminal) promptFloat(label string) (float64, error) {
	line, err := t.prompt(label)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(line, 64)
	if err != nil {
		t.printf("Invalid number.\n")
		return 0, err
	}
	return f, nil
}

func (t *Terminal) printf(format string, args ...interface{}) {
	fmt.Fprintf(t.out, format, args...)
}
