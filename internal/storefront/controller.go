// Package storefront sequences the ordering flow: welcome, menu, bag and
// success screens, with a rating dialog that can be opened over the menu.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/campanini-sabores/storefront/internal/bag"
	"github.com/campanini-sabores/storefront/internal/messaging"
	"github.com/campanini-sabores/storefront/internal/models"
	"github.com/campanini-sabores/storefront/internal/order"
	"github.com/campanini-sabores/storefront/internal/repository"
)

var (
	ErrNoRatingDialog = errors.New("rating dialog is not open")
	ErrNoOrder        = errors.New("no registered order")
)

// RatingRepository is the rating store used by the controller
type RatingRepository interface {
	Submit(ctx context.Context, productID string, score int, comment string) (models.Rating, error)
	AverageFor(productID string) float64
}

// Controller owns the session state. All mutations go through its methods
// and are serialized by a mutex.
type Controller struct {
	catalog []models.Product
	byID    map[string]models.Product
	ratings RatingRepository
	sender  messaging.Sender
	logger  *slog.Logger

	mu            sync.Mutex
	screen        Screen
	bag           *bag.Bag
	customer      models.CustomerInfo
	ratingProduct *models.Product
	orderMessage  string
}

// NewController creates a controller on the welcome screen
func NewController(ctx context.Context, products repository.ProductRepository, ratings RatingRepository, sender messaging.Sender, logger *slog.Logger) (*Controller, error) {
	catalog, err := products.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	byID := make(map[string]models.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	return &Controller{
		catalog: catalog,
		byID:    byID,
		ratings: ratings,
		sender:  sender,
		logger:  logger,
		screen:  ScreenWelcome,
		bag:     bag.New(),
	}, nil
}

// Catalog returns the products with their average rating, in menu order
func (c *Controller) Catalog() []models.ProductView {
	views := make([]models.ProductView, len(c.catalog))
	for i, p := range c.catalog {
		views[i] = models.ProductView{Product: p, AverageRating: c.ratings.AverageFor(p.ID)}
	}
	return views
}

// Product returns a single catalog entry
func (c *Controller) Product(id string) (models.ProductView, error) {
	p, ok := c.byID[id]
	if !ok {
		return models.ProductView{}, repository.ErrProductNotFound
	}
	return models.ProductView{Product: p, AverageRating: c.ratings.AverageFor(id)}, nil
}

// Snapshot returns the current state
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) snapshot() State {
	s := State{
		Screen:       c.screen,
		Bag:          c.bag.Entries(c.productOrder()),
		TotalItems:   c.bag.TotalItems(),
		TotalPrice:   order.TotalPrice(c.bag, c.catalog),
		Customer:     c.customer,
		OrderMessage: c.orderMessage,
	}
	if c.ratingProduct != nil {
		p := *c.ratingProduct
		s.RatingProduct = &p
	}
	return s
}

func (c *Controller) productOrder() []string {
	ids := make([]string, len(c.catalog))
	for i, p := range c.catalog {
		ids[i] = p.ID
	}
	return ids
}

// transition moves between screens when the current screen is one of from
func (c *Controller) transition(action string, to Screen, from ...Screen) error {
	if err := c.require(action, from...); err != nil {
		return err
	}
	c.logger.Debug("screen transition", "action", action, "from", c.screen, "to", to)
	c.screen = to
	return nil
}

func (c *Controller) require(action string, screens ...Screen) error {
	for _, s := range screens {
		if c.screen == s {
			return nil
		}
	}
	return &TransitionError{Action: action, Screen: c.screen}
}

// Start leaves the welcome screen for the menu
func (c *Controller) Start() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.transition("start", ScreenMenu, ScreenWelcome); err != nil {
		return State{}, err
	}
	return c.snapshot(), nil
}

// OpenBag goes from the menu to the bag screen
func (c *Controller) OpenBag() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.transition("open bag", ScreenBag, ScreenMenu); err != nil {
		return State{}, err
	}
	c.ratingProduct = nil
	return c.snapshot(), nil
}

// BackToMenu returns from the bag screen to the menu
func (c *Controller) BackToMenu() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.transition("back to menu", ScreenMenu, ScreenBag); err != nil {
		return State{}, err
	}
	return c.snapshot(), nil
}

// Add puts one unit of productID in the bag
func (c *Controller) Add(productID string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.require("add to bag", ScreenMenu, ScreenBag); err != nil {
		return State{}, err
	}
	if _, ok := c.byID[productID]; !ok {
		return State{}, repository.ErrProductNotFound
	}
	c.bag.Add(productID)
	return c.snapshot(), nil
}

// Remove takes one unit of productID out of the bag
func (c *Controller) Remove(productID string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.require("remove from bag", ScreenMenu, ScreenBag); err != nil {
		return State{}, err
	}
	if _, ok := c.byID[productID]; !ok {
		return State{}, repository.ErrProductNotFound
	}
	c.bag.Remove(productID)
	return c.snapshot(), nil
}

// SetCustomerInfo replaces the delivery details typed on the bag screen
func (c *Controller) SetCustomerInfo(info models.CustomerInfo) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.require("edit customer info", ScreenBag); err != nil {
		return State{}, err
	}
	c.customer = info
	return c.snapshot(), nil
}

// RegisterOrder validates the bag and customer info, composes the order
// message and moves to the success screen. On a validation error the
// session stays on the bag screen.
func (c *Controller) RegisterOrder() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.require("register order", ScreenBag); err != nil {
		return State{}, err
	}
	if err := order.Validate(c.bag, c.customer); err != nil {
		c.logger.Info("order rejected", "error", err)
		return State{}, err
	}

	c.orderMessage = order.Compose(c.bag, c.catalog, c.customer)
	if err := c.transition("register order", ScreenSuccess, ScreenBag); err != nil {
		return State{}, err
	}
	c.logger.Info("order registered",
		"items", c.bag.TotalItems(),
		"total", order.TotalPrice(c.bag, c.catalog).StringFixed(2),
	)
	return c.snapshot(), nil
}

// SendLink returns the link that opens the messaging app with the order
func (c *Controller) SendLink() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.require("send order", ScreenSuccess); err != nil {
		return "", err
	}
	if c.orderMessage == "" {
		return "", ErrNoOrder
	}
	return c.sender.Link(c.orderMessage)
}

// OpenRating opens the rating dialog for productID over the menu
func (c *Controller) OpenRating(productID string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.require("open rating", ScreenMenu); err != nil {
		return State{}, err
	}
	p, ok := c.byID[productID]
	if !ok {
		return State{}, repository.ErrProductNotFound
	}
	c.ratingProduct = &p
	return c.snapshot(), nil
}

// CloseRating dismisses the rating dialog without saving
func (c *Controller) CloseRating() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ratingProduct = nil
	return c.snapshot()
}

// SubmitRating stores a rating for the product in the open dialog and closes it
func (c *Controller) SubmitRating(ctx context.Context, score int, comment string) (models.Rating, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ratingProduct == nil {
		return models.Rating{}, ErrNoRatingDialog
	}

	rating, err := c.ratings.Submit(ctx, c.ratingProduct.ID, score, comment)
	if err != nil {
		return models.Rating{}, err
	}
	c.ratingProduct = nil
	return rating, nil
}

// Reset starts the session over as a page reload would. Ratings are kept.
func (c *Controller) Reset() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.screen = ScreenWelcome
	c.bag = bag.New()
	c.customer = models.CustomerInfo{}
	c.ratingProduct = nil
	c.orderMessage = ""
	c.logger.Debug("session reset")
	return c.snapshot()
}
