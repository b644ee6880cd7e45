// Package shopfront implements the text-menu driver through which the farmer
// operates the shop. It interprets user input, calls into the farm model, and
// converts every domain error into a user-facing message; no error propagates
// past this layer.
package shopfront

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/greenacre/farmshop/internal/catalog"
	"github.com/greenacre/farmshop/internal/customer"
	"github.com/greenacre/farmshop/internal/farm"
	"github.com/greenacre/farmshop/internal/sales"
)

// ShopFront drives the interactive session. Reader and writer are injectable
// so scripted sessions can be tested.
type ShopFront struct {
	farm     *farm.Farm
	shopName string
	fancy    bool // whether bulk quantities are permitted by the inventory
	in       *bufio.Scanner
	out      io.Writer
	logger   *slog.Logger
	validate *validator.Validate
}

// New creates a shopfront for the given farm. fancy reports whether the
// farm's inventory supports bulk quantities.
func New(f *farm.Farm, shopName string, fancy bool, in io.Reader, out io.Writer, logger *slog.Logger) *ShopFront {
	return &ShopFront{
		farm:     f,
		shopName: shopName,
		fancy:    fancy,
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   logger,
		validate: validator.New(),
	}
}

// Run starts the mode-selection loop and blocks until the user quits, input
// is exhausted, or the context is cancelled.
func (s *ShopFront) Run(ctx context.Context) error {
	fmt.Fprintf(s.out, "Welcome to %s!\n", s.shopName)
	for {
		line, ok := s.prompt(ctx, "Select mode [inventory|address|sales|history|q]: ")
		if !ok {
			return ctx.Err()
		}
		switch line {
		case "q":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		case "inventory":
			if !s.inventoryMode(ctx) {
				return ctx.Err()
			}
		case "address":
			if !s.addressMode(ctx) {
				return ctx.Err()
			}
		case "sales":
			if !s.salesMode(ctx) {
				return ctx.Err()
			}
		case "history":
			if !s.historyMode(ctx) {
				return ctx.Err()
			}
		case "":
		default:
			fmt.Fprintf(s.out, "Unknown mode: %s\n", line)
		}
	}
}

// inventoryMode handles stocking and stock listing. It returns false when
// input is exhausted or the context is cancelled.
func (s *ShopFront) inventoryMode(ctx context.Context) bool {
	for {
		line, ok := s.prompt(ctx, "inventory> [add <product> [qty]|list|exit] ")
		if !ok {
			return false
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "exit":
			return true
		case "list":
			s.displayStock()
		case "add":
			s.addToInventory(fields[1:])
		default:
			fmt.Fprintf(s.out, "Unknown command: %s\n", fields[0])
		}
	}
}

func (s *ShopFront) addToInventory(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: add <product> [qty]")
		return
	}
	barcode, ok := catalog.ParseBarcode(args[0])
	if !ok {
		fmt.Fprintf(s.out, "Invalid product name: %s\n", args[0])
		return
	}
	quantity := 1
	if len(args) > 1 {
		var err error
		quantity, err = strconv.Atoi(args[1])
		if err != nil || quantity < 1 {
			fmt.Fprintf(s.out, "Quantity must be a positive number, got %s\n", args[1])
			return
		}
	}
	if !s.fancy && quantity > 1 {
		fmt.Fprintln(s.out, "Current inventory is not fancy enough. Please supply products one at a time.")
		return
	}
	if err := s.farm.StockProducts(barcode, catalog.Regular, quantity); err != nil {
		fmt.Fprintf(s.out, "Failed to add product: %v\n", err)
		return
	}
	s.logger.Info("product stocked", "product", barcode.DisplayName(), "quantity", quantity)
	fmt.Fprintln(s.out, "Product added successfully.")
}

func (s *ShopFront) displayStock() {
	stock := s.farm.AllStock()
	if len(stock) == 0 {
		fmt.Fprintln(s.out, "No stock on hand.")
		return
	}
	for _, p := range stock {
		fmt.Fprintln(s.out, p)
	}
}

// customerForm is the registration input, checked before a customer record is
// created.
type customerForm struct {
	Name    string `validate:"required"`
	Phone   int    `validate:"required,min=1"`
	Address string `validate:"required"`
}

// addressMode handles customer registration and listing.
func (s *ShopFront) addressMode(ctx context.Context) bool {
	for {
		line, ok := s.prompt(ctx, "address> [add|list|exit] ")
		if !ok {
			return false
		}
		switch line {
		case "exit":
			return true
		case "list":
			s.displayCustomers()
		case "add":
			if !s.createCustomer(ctx) {
				return false
			}
		case "":
		default:
			fmt.Fprintf(s.out, "Unknown command: %s\n", line)
		}
	}
}

func (s *ShopFront) createCustomer(ctx context.Context) bool {
	name, ok := s.prompt(ctx, "Customer name: ")
	if !ok {
		return false
	}
	phoneRaw, ok := s.prompt(ctx, "Phone number: ")
	if !ok {
		return false
	}
	address, ok := s.prompt(ctx, "Address: ")
	if !ok {
		return false
	}
	phone, err := strconv.Atoi(phoneRaw)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid phone number.")
		return true
	}
	form := customerForm{Name: name, Phone: phone, Address: address}
	if err := s.validate.Struct(form); err != nil {
		fmt.Fprintf(s.out, "Invalid customer details: %v\n", err)
		return true
	}
	if err := s.farm.SaveCustomer(customer.New(form.Name, form.Phone, form.Address)); err != nil {
		fmt.Fprintf(s.out, "Could not register customer: %v\n", err)
		return true
	}
	s.logger.Info("customer registered", "name", form.Name)
	fmt.Fprintln(s.out, "Customer created successfully!")
	return true
}

func (s *ShopFront) displayCustomers() {
	records := s.farm.AllCustomers()
	if len(records) == 0 {
		fmt.Fprintln(s.out, "No customers on record.")
		return
	}
	for _, c := range records {
		fmt.Fprintln(s.out, c)
	}
}

// salesMode handles starting transactions, reserving items, and checkout.
func (s *ShopFront) salesMode(ctx context.Context) bool {
	for {
		line, ok := s.prompt(ctx, "sales> [start [-c|-s]|add <product> [qty]|checkout|exit] ")
		if !ok {
			return false
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "exit":
			return true
		case "start":
			kind := ""
			if len(fields) > 1 {
				kind = fields[1]
			}
			if !s.initiateTransaction(ctx, kind) {
				return false
			}
		case "add":
			s.addToCart(fields[1:])
		case "checkout":
			s.checkout()
		default:
			fmt.Fprintf(s.out, "Unknown command: %s\n", fields[0])
		}
	}
}

func (s *ShopFront) initiateTransaction(ctx context.Context, kind string) bool {
	name, ok := s.prompt(ctx, "Customer name: ")
	if !ok {
		return false
	}
	phoneRaw, ok := s.prompt(ctx, "Phone number: ")
	if !ok {
		return false
	}
	phone, err := strconv.Atoi(phoneRaw)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid phone number.")
		return true
	}
	c, err := s.farm.Customer(name, phone)
	if err != nil {
		fmt.Fprintln(s.out, "Customer does not exist in the address book.")
		return true
	}

	var t *sales.Transaction
	switch kind {
	case "-s", "-specialsale":
		discounts, ok := s.promptForDiscounts(ctx)
		if !ok {
			return false
		}
		t = sales.NewSpecialSaleTransaction(c, discounts)
	case "-c", "-categorised":
		t = sales.NewCategorisedTransaction(c)
	default:
		t = sales.NewTransaction(c)
	}

	if err := s.farm.StartTransaction(t); err != nil {
		fmt.Fprintln(s.out, "A transaction could not be started: one is already in progress.")
		return true
	}
	s.logger.Info("transaction started", "transaction_id", t.ID(), "customer", c.Name())
	fmt.Fprintln(s.out, "Transaction started.")
	return true
}

// promptForDiscounts collects a discount percentage per product type. Blank
// answers mean no discount. Values are passed through unvalidated.
func (s *ShopFront) promptForDiscounts(ctx context.Context) (map[catalog.Barcode]int, bool) {
	discounts := make(map[catalog.Barcode]int)
	for _, b := range catalog.Barcodes() {
		raw, ok := s.prompt(ctx, fmt.Sprintf("Discount for %s (percent, blank for none): ", b.DisplayName()))
		if !ok {
			return nil, false
		}
		if raw == "" {
			continue
		}
		d, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintf(s.out, "Not a number, skipping discount for %s.\n", b.DisplayName())
			continue
		}
		discounts[b] = d
	}
	return discounts, true
}

func (s *ShopFront) addToCart(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: add <product> [qty]")
		return
	}
	barcode, ok := catalog.ParseBarcode(args[0])
	if !ok {
		fmt.Fprintf(s.out, "Invalid product name: %s\n", args[0])
		return
	}
	quantity := 1
	if len(args) > 1 {
		var err error
		quantity, err = strconv.Atoi(args[1])
		if err != nil || quantity < 1 {
			fmt.Fprintf(s.out, "Quantity must be a positive number, got %s\n", args[1])
			return
		}
	}

	var added int
	var err error
	if quantity == 1 {
		added, err = s.farm.AddToCart(barcode)
	} else {
		added, err = s.farm.AddManyToCart(barcode, quantity)
	}
	if err != nil {
		fmt.Fprintf(s.out, "Could not add to cart: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Added %d x %s to cart.\n", added, barcode.DisplayName())
}

func (s *ShopFront) checkout() {
	purchased, err := s.farm.Checkout()
	if err != nil {
		fmt.Fprintf(s.out, "Checkout failed: %v\n", err)
		return
	}
	if !purchased {
		fmt.Fprintln(s.out, "No purchase was made; the cart was empty.")
		return
	}
	s.logger.Info("transaction closed", "total_transactions",
		s.farm.TransactionHistory().TotalTransactionsMade())
	fmt.Fprintln(s.out, "Thank you for your purchase!")
	fmt.Fprint(s.out, s.farm.LastReceipt())
}

// historyMode answers statistics queries over the transaction log.
func (s *ShopFront) historyMode(ctx context.Context) bool {
	for {
		line, ok := s.prompt(ctx, "history> [stats [product]|last-receipt|popular|grossing|exit] ")
		if !ok {
			return false
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "exit":
			return true
		case "stats":
			s.displayStats(fields[1:])
		case "last-receipt":
			s.displayLastReceipt()
		case "popular":
			fmt.Fprintf(s.out, "Most popular product: %s\n",
				s.farm.TransactionHistory().MostPopularProduct().DisplayName())
		case "grossing":
			s.displayHighestGrossing()
		default:
			fmt.Fprintf(s.out, "Unknown command: %s\n", fields[0])
		}
	}
}

func (s *ShopFront) displayStats(args []string) {
	history := s.farm.TransactionHistory()
	if len(args) > 0 {
		barcode, ok := catalog.ParseBarcode(args[0])
		if !ok {
			fmt.Fprintf(s.out, "Invalid product name: %s\n", args[0])
			return
		}
		fmt.Fprintf(s.out, "Gross earnings from %s: %s\n", barcode.DisplayName(),
			formatStatCents(history.GrossEarningsFor(barcode)))
		fmt.Fprintf(s.out, "Units of %s sold: %d\n", barcode.DisplayName(),
			history.TotalProductsSoldFor(barcode))
		fmt.Fprintf(s.out, "Average discount for %s: %.2f%%\n", barcode.DisplayName(),
			history.AverageProductDiscount(barcode))
		return
	}
	fmt.Fprintf(s.out, "Transactions made: %d\n", history.TotalTransactionsMade())
	fmt.Fprintf(s.out, "Products sold: %d\n", history.TotalProductsSold())
	fmt.Fprintf(s.out, "Gross earnings: %s\n", formatStatCents(history.GrossEarnings()))
	fmt.Fprintf(s.out, "Average spend per visit: %.2fc\n", history.AverageSpendPerVisit())
}

func (s *ShopFront) displayLastReceipt() {
	receipt := s.farm.LastReceipt()
	if receipt == "" {
		fmt.Fprintln(s.out, "No transactions recorded yet.")
		return
	}
	fmt.Fprint(s.out, receipt)
}

func (s *ShopFront) displayHighestGrossing() {
	t := s.farm.TransactionHistory().HighestGrossingTransaction()
	if t == nil {
		fmt.Fprintln(s.out, "No transactions recorded yet.")
		return
	}
	fmt.Fprintf(s.out, "Highest grossing transaction: %s by %s\n",
		formatStatCents(t.Total()), t.AssociatedCustomer().Name())
}

func formatStatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

// prompt prints the given prompt and reads one trimmed line. The second
// return value is false when input is exhausted or the context is done.
func (s *ShopFront) prompt(ctx context.Context, text string) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	default:
	}
	fmt.Fprint(s.out, text)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}
