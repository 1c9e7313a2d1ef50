package terminal

import (
	"fmt"
	"text/tabwriter"

	"minipos/internal/core/domain"
	"minipos/internal/core/services"
	"minipos/internal/pkg/calendar"
)

const timestampLayout = "2006-01-02 15:04:05"

// renderInventory prints the catalog as a fixed-width table. Revenue
// is derived per row at display time.
func (t *Terminal) renderInventory(products []*domain.Product) {
	w := tabwriter.NewWriter(t.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tPurchase Price\tSelling Price\tStock\tSold\tRevenue")
	fmt.Fprintln(w, "--\t----\t--------------\t-------------\t-----\t----\t-------")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%.2f\t%d\t%d\t%.2f\n",
			p.ID, p.Name, p.PurchasePrice, p.SellingPrice, p.Stock, p.Sold, p.Revenue())
	}
	w.Flush()
}

func (t *Terminal) renderTransactions(transactions []*domain.SalesTransaction) {
	w := tabwriter.NewWriter(t.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tProduct\tQuantity\tPrice/Unit\tTotal Amount\tTimestamp")
	fmt.Fprintln(w, "--\t-------\t--------\t----------\t------------\t---------")
	for _, tx := range transactions {
		fmt.Fprintf(w, "%d\t%s\t%d\t%.2f\t%.2f\t%s\n",
			tx.Seq, tx.ProductName, tx.Quantity, tx.PricePerUnit, tx.TotalAmount,
			tx.Timestamp.In(t.cal.Location()).Format(timestampLayout))
	}
	w.Flush()
}

func (t *Terminal) renderReceipt(tx *domain.SalesTransaction) {
	t.printf("\nReceipt\n")
	t.printf("------------------------\n")
	t.printf("Transaction: #%d\n", tx.Seq)
	t.printf("Product: %s\n", tx.ProductName)
	t.printf("Quantity: %d\n", tx.Quantity)
	t.printf("Price per Unit: %.2f\n", tx.PricePerUnit)
	t.printf("Total Amount: %.2f\n", tx.TotalAmount)
	t.printf("Timestamp: %s\n", tx.Timestamp.In(t.cal.Location()).Format(timestampLayout))
	t.printf("------------------------\n")
}

func (t *Terminal) renderRevenue(period calendar.Period, buckets []services.PeriodRevenue) {
	t.printf("Revenue (%s):\n", period)
	for _, bucket := range buckets {
		t.printf("Period: %s, Revenue: %.2f\n", t.cal.Format(period, bucket.Key), bucket.Revenue)
	}
}
