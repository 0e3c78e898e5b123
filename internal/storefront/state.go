package storefront

import (
	"fmt"

	"github.com/campanini-sabores/storefront/internal/models"
	"github.com/shopspring/decimal"
)

// Screen is one step of the ordering flow
type Screen string

const (
	ScreenWelcome Screen = "welcome"
	ScreenMenu    Screen = "menu"
	ScreenBag     Screen = "bag"
	ScreenSuccess Screen = "success"
)

// State is a serializable snapshot of the session. Totals are recomputed
// from the bag every time a snapshot is taken.
type State struct {
	Screen        Screen              `json:"screen"`
	Bag           []models.BagEntry   `json:"bag"`
	TotalItems    int                 `json:"totalItems"`
	TotalPrice    decimal.Decimal     `json:"totalPrice"`
	Customer      models.CustomerInfo `json:"customer"`
	RatingProduct *models.Product     `json:"ratingProduct,omitempty"`
	OrderMessage  string              `json:"orderMessage,omitempty"`
}

// TransitionError reports an action that is not available on the current screen
type TransitionError struct {
	Action string
	Screen Screen
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s on %s screen", e.Action, e.Screen)
}
