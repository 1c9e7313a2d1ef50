package terminal

import (
	"context"
	"errors"
	"strconv"

	"minipos/internal/core/domain"
	"minipos/internal/core/services"
	"minipos/internal/pkg/calendar"
)

func (t *Terminal) handleAddProduct(ctx context.Context, session *domain.Session) {
	if !t.auth.Authorize(session, services.CanAddProduct...) {
		t.printf("Only administrators can add products.\n")
		return
	}

	id, err := t.promptInt("Enter Product ID: ")
	if err != nil {
		return
	}
	name, err := t.prompt("Enter Product Name: ")
	if err != nil {
		return
	}
	purchasePrice, err := t.promptFloat("Enter Purchase Price: ")
	if err != nil {
		return
	}
	sellingPrice, err := t.promptFloat("Enter Selling Price: ")
	if err != nil {
		return
	}
	stock, err := t.promptInt("Enter Stock Quantity: ")
	if err != nil {
		return
	}

	product, err := t.catalog.AddProduct(ctx, session, services.AddProductInput{
		ID:            id,
		Name:          name,
		PurchasePrice: purchasePrice,
		SellingPrice:  sellingPrice,
		Stock:         stock,
	})
	switch {
	case errors.Is(err, domain.ErrProductExists):
		t.printf("A product with ID %d already exists.\n", id)
	case errors.Is(err, domain.ErrInvalidInput):
		t.printf("Invalid product details.\n")
	case err != nil:
		t.printf("Could not add product: %v\n", err)
	default:
		t.printf("Added product: %s\n", product.Name)
	}
}

func (t *Terminal) handleUpdatePrice(ctx context.Context, session *domain.Session) {
	id, err := t.promptInt("Enter Product ID to Update Prices: ")
	if err != nil {
		return
	}
	purchasePrice, err := t.promptFloat("Enter New Purchase Price: ")
	if err != nil {
		return
	}
	sellingPrice, err := t.promptFloat("Enter New Selling Price: ")
	if err != nil {
		return
	}

	product, err := t.catalog.UpdatePrice(ctx, session, id, purchasePrice, sellingPrice)
	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		t.printf("Only managers or administrators can update prices.\n")
	case errors.Is(err, domain.ErrProductNotFound):
		t.printf("Product not found.\n")
	case errors.Is(err, domain.ErrInvalidInput):
		t.printf("Prices must not be negative.\n")
	case err != nil:
		t.printf("Could not update prices: %v\n", err)
	default:
		t.printf("Updated prices for: %s\n", product.Name)
	}
}

func (t *Terminal) handleRestock(ctx context.Context, session *domain.Session) {
	id, err := t.promptInt("Enter Product ID to Restock: ")
	if err != nil {
		return
	}
	quantity, err := t.promptInt("Enter Quantity to Add: ")
	if err != nil {
		return
	}

	product, err := t.catalog.Restock(ctx, session, id, quantity)
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		t.printf("Product not found.\n")
	case errors.Is(err, domain.ErrInvalidQuantity):
		t.printf("Quantity to add must be positive.\n")
	case err != nil:
		t.printf("Could not restock: %v\n", err)
	default:
		t.printf("Restocked: %s. New stock: %d\n", product.Name, product.Stock)
	}
}

func (t *Terminal) handleShowInventory(ctx context.Context) {
	products, err := t.catalog.ListAll(ctx)
	if err != nil {
		t.printf("Could not list inventory: %v\n", err)
		return
	}
	if len(products) == 0 {
		t.printf("The inventory is empty.\n")
		return
	}
	t.renderInventory(products)
}

func (t *Terminal) handleSell(ctx context.Context, session *domain.Session) {
	id, err := t.promptInt("Enter Product ID to Sell: ")
	if err != nil {
		return
	}
	quantity, err := t.promptInt("Enter Quantity to Sell: ")
	if err != nil {
		return
	}

	tx, err := t.sales.Sell(ctx, session, id, quantity)
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		t.printf("Product not found.\n")
	case errors.Is(err, domain.ErrInvalidQuantity):
		t.printf("Quantity to sell must be positive.\n")
	case errors.Is(err, domain.ErrInsufficientStock):
		t.printInsufficientStock(ctx, id)
	case err != nil:
		t.printf("Could not sell product: %v\n", err)
	default:
		t.printf("Sold %d of %s.", tx.Quantity, tx.ProductName)
		if product, err := t.catalog.Search(ctx, strconv.Itoa(id)); err == nil && len(product) > 0 {
			t.printf(" Remaining stock: %d", product[0].Stock)
		}
		t.printf("\n")
	}
}

// printInsufficientStock reproduces the register's over-sell message
// with the product's actual remaining count.
func (t *Terminal) printInsufficientStock(ctx context.Context, id int) {
	matches, err := t.catalog.Search(ctx, strconv.Itoa(id))
	if err != nil || len(matches) == 0 {
		t.printf("Not enough stock available.\n")
		return
	}
	t.printf("Not enough stock available for %s. Only %d items left.\n", matches[0].Name, matches[0].Stock)
}

func (t *Terminal) handleShowTransactions(ctx context.Context) {
	transactions, err := t.sales.List(ctx)
	if err != nil {
		t.printf("Could not list transactions: %v\n", err)
		return
	}
	if len(transactions) == 0 {
		t.printf("No transactions available.\n")
		return
	}
	t.renderTransactions(transactions)
}

func (t *Terminal) handleReceipt(ctx context.Context) {
	count, err := t.sales.Count(ctx)
	if err == nil && count == 0 {
		t.printf("No transactions available.\n")
		return
	}

	seq, err := t.promptInt("Enter Transaction ID to Display Receipt: ")
	if err != nil {
		return
	}
	tx, err := t.sales.Receipt(ctx, seq)
	if err != nil {
		t.printf("Invalid transaction ID.\n")
		return
	}
	t.renderReceipt(tx)
}

func (t *Terminal) handleSearch(ctx context.Context) {
	query, err := t.prompt("Enter Product Name or ID to Search: ")
	if err != nil {
		return
	}

	matches, err := t.catalog.Search(ctx, query)
	if err != nil {
		t.printf("Could not search: %v\n", err)
		return
	}
	if len(matches) == 0 {
		t.printf("Product not found.\n")
		return
	}
	for _, product := range matches {
		t.printf("Product found: ID: %d, Name: %s, Purchase Price: %.2f, Selling Price: %.2f, Stock: %d\n",
			product.ID, product.Name, product.PurchasePrice, product.SellingPrice, product.Stock)
	}
}

func (t *Terminal) handleRevenue(ctx context.Context) {
	input, err := t.prompt("Enter period to calculate revenue (month/quarter/year): ")
	if err != nil {
		return
	}
	period, err := calendar.ParsePeriod(input)
	if err != nil {
		t.printf("Invalid period specified.\n")
		return
	}

	buckets, err := t.sales.RevenueByPeriod(ctx, period)
	if err != nil {
		t.printf("Could not calculate revenue: %v\n", err)
		return
	}
	t.renderRevenue(period, buckets)
}

func (t *Terminal) handleAddUser(ctx context.Context, session *domain.Session) {
	if !t.auth.Authorize(session, services.CanAddUser...) {
		t.printf("Only administrators can add users.\n")
		return
	}

	username, err := t.prompt("Enter new username: ")
	if err != nil {
		return
	}
	password, err := t.prompt("Enter password: ")
	if err != nil {
		return
	}
	role, err := t.prompt("Enter role (ADMIN/MANAGER/STAFF): ")
	if err != nil {
		return
	}

	_, err = t.auth.AddUser(ctx, session, username, password, role)
	switch {
	case errors.Is(err, domain.ErrInvalidRole):
		t.printf("Invalid role. Use ADMIN, MANAGER or STAFF.\n")
	case errors.Is(err, domain.ErrUserExists):
		t.printf("Username already exists.\n")
	case err != nil:
		t.printf("Could not add user: %v\n", err)
	default:
		t.printf("User added successfully.\n")
	}
}
