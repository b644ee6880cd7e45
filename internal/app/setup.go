// Package app contains the application setup for the farmshop binary.
package app

import (
	"io"
	"log/slog"

	"github.com/greenacre/farmshop/internal/config"
	"github.com/greenacre/farmshop/internal/customer"
	"github.com/greenacre/farmshop/internal/farm"
	"github.com/greenacre/farmshop/internal/inventory"
	"github.com/greenacre/farmshop/internal/shopfront"
)

// Dependencies holds the wired application components.
type Dependencies struct {
	Farm      *farm.Farm
	ShopFront *shopfront.ShopFront
	Logger    *slog.Logger
}

// SetupDependencies builds the farm and its shopfront from the configuration.
// The inventory variant is selected by inventory.type.
func SetupDependencies(cfg *config.Config, in io.Reader, out io.Writer, logger *slog.Logger) *Dependencies {
	var inv inventory.Inventory
	fancy := cfg.Inventory.Type == "fancy"
	if fancy {
		inv = inventory.NewFancyInventory()
	} else {
		inv = inventory.NewBasicInventory()
	}

	f := farm.New(inv, customer.NewAddressBook())
	shop := shopfront.New(f, cfg.Shop.Name, fancy, in, out, logger)

	return &Dependencies{
		Farm:      f,
		ShopFront: shop,
		Logger:    logger,
	}
}
