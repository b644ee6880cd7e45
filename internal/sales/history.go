package sales

import (
	"github.com/greenacre/farmshop/internal/catalog"
)

// TransactionHistory is the append-only record of all completed sales.
// Statistics are computed by scanning the full log on demand; nothing is
// maintained incrementally.
type TransactionHistory struct {
	transactions []*Transaction
}

// NewTransactionHistory creates an empty history.
func NewTransactionHistory() *TransactionHistory {
	return &TransactionHistory{}
}

// RecordTransaction appends the given transaction to the record of past
// transactions. Transactions that are not finalised are silently ignored.
func (h *TransactionHistory) RecordTransaction(t *Transaction) {
	if t.IsFinalised() {
		h.transactions = append(h.transactions, t)
	}
}

// LastTransaction returns the most recently recorded transaction, nil if the
// history is empty.
func (h *TransactionHistory) LastTransaction() *Transaction {
	if len(h.transactions) == 0 {
		return nil
	}
	return h.transactions[len(h.transactions)-1]
}

// GrossEarnings returns the total income over all transactions, in cents.
// Discounted transactions contribute their discounted totals.
func (h *TransactionHistory) GrossEarnings() int64 {
	var total int64
	for _, t := range h.transactions {
		total += t.Total()
	}
	return total
}

// GrossEarningsFor returns the total income from all sales of the given
// product type, in cents. Each unit sold counts at its raw base price;
// discounts are not reflected here.
func (h *TransactionHistory) GrossEarningsFor(barcode catalog.Barcode) int64 {
	var total int64
	for _, t := range h.transactions {
		for _, p := range t.Purchases() {
			if p.Barcode == barcode {
				total += p.BasePrice()
			}
		}
	}
	return total
}

// TotalTransactionsMade returns the number of recorded transactions.
func (h *TransactionHistory) TotalTransactionsMade() int {
	return len(h.transactions)
}

// TotalProductsSold returns the number of items sold over all transactions.
func (h *TransactionHistory) TotalProductsSold() int {
	var sold int
	for _, t := range h.transactions {
		sold += len(t.Purchases())
	}
	return sold
}

// TotalProductsSoldFor returns the number of items of the given type sold
// over all transactions.
func (h *TransactionHistory) TotalProductsSoldFor(barcode catalog.Barcode) int {
	var sold int
	for _, t := range h.transactions {
		for _, p := range t.Purchases() {
			if p.Barcode == barcode {
				sold++
			}
		}
	}
	return sold
}

// HighestGrossingTransaction returns the transaction with the highest total.
// Among equals the earliest recorded wins. Nil if the history is empty.
func (h *TransactionHistory) HighestGrossingTransaction() *Transaction {
	if len(h.transactions) == 0 {
		return nil
	}
	highest := h.transactions[0]
	for _, t := range h.transactions[1:] {
		if t.Total() > highest.Total() {
			highest = t
		}
	}
	return highest
}

// MostPopularProduct returns the product type with the highest number of
// units sold. Ties go to the type declared first in the catalog; an empty
// history reports eggs.
func (h *TransactionHistory) MostPopularProduct() catalog.Barcode {
	mostPopular := catalog.Egg
	maxSold := 0
	for _, b := range catalog.Barcodes() {
		if sold := h.TotalProductsSoldFor(b); sold > maxSold {
			maxSold = sold
			mostPopular = b
		}
	}
	return mostPopular
}

// AverageSpendPerVisit returns the mean transaction total in cents, 0.0 for
// an empty history.
func (h *TransactionHistory) AverageSpendPerVisit() float64 {
	if len(h.transactions) == 0 {
		return 0.0
	}
	return float64(h.GrossEarnings()) / float64(h.TotalTransactionsMade())
}

// AverageProductDiscount returns the mean discount percentage applied to the
// given product type, weighted by units sold, across all special sales that
// discounted it. 0.0 when no such sales exist.
func (h *TransactionHistory) AverageProductDiscount(barcode catalog.Barcode) float64 {
	var totalDiscount float64
	var discountedUnits int
	for _, t := range h.transactions {
		if t.Kind() != KindSpecialSale {
			continue
		}
		discount := t.DiscountAmount(barcode)
		if discount <= 0 {
			continue
		}
		quantity := t.PurchaseQuantity(barcode)
		totalDiscount += float64(discount * quantity)
		discountedUnits += quantity
	}
	if discountedUnits == 0 {
		return 0.0
	}
	return totalDiscount / float64(discountedUnits)
}
