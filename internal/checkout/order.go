package checkout

import (
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/skinshop-backend/internal/cart"
	"github.com/angelmondragon/skinshop-backend/pkg/enums"
)

// Customer identifies who placed an order.
type Customer struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Order is the receipt of a simulated checkout. It is returned to the caller
// and never stored.
type Order struct {
	ID          uuid.UUID         `json:"id"`
	Items       []cart.Line       `json:"items"`
	Total       int               `json:"total"`
	ItemCount   int               `json:"item_count"`
	Customer    Customer          `json:"customer"`
	EpicGamesID string            `json:"epic_games_id"`
	Status      enums.OrderStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Input is the checkout form. Payment fields are accepted for parity with the
// storefront form but are never read back out.
type Input struct {
	Email          string
	Name           string
	EpicGamesID    string
	CardNumber     string
	ExpiryDate     string
	CVV            string
	BillingAddress string
	City           string
	PostalCode     string
	Country        string
}
