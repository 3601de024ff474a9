// Package menu implements the interactive text menu over a types.Parlor.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/parlor/pkg/types"
)

// Menu choices.
const (
	choiceAddFlavor      = "1"
	choiceAddIngredient  = "2"
	choiceAddAllergen    = "3"
	choiceSearchFlavors  = "4"
	choiceAddToCart      = "5"
	choiceViewCart       = "6"
	choiceRemoveFromCart = "7"
	choiceExit           = "8"
)

const title = "--- Icecream Parlor Management ---"

var options = []string{
	"1. Add Seasonal Flavor",
	"2. Add Ingredient",
	"3. Add Allergen",
	"4. Search Flavors",
	"5. Add To Cart",
	"6. View Cart",
	"7. Remove from Cart",
	"8. Exit",
}

// Menu runs one command per iteration against a parlor until Exit is chosen
// or the input ends.
type Menu struct {
	parlor types.Parlor
	prompt *Prompter
	out    io.Writer
	logger *zap.Logger
}

// New returns a Menu reading commands from in and printing to out. A nil
// logger disables logging.
func New(parlor types.Parlor, in io.Reader, out io.Writer, logger *zap.Logger) *Menu {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Menu{
		parlor: parlor,
		prompt: NewPrompter(in, out),
		out:    out,
		logger: logger.With(zap.String("session", newSessionID())),
	}
}

func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Run processes commands until Exit or end of input, both of which return
// nil. A store error aborts the loop and is returned.
func (m *Menu) Run(ctx context.Context) error {
	m.logger.Debug("menu started")
	for {
		m.printMenu()

		choice, err := m.prompt.Line("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			return m.exit()
		}
		if err != nil {
			return fmt.Errorf("read choice: %w", err)
		}

		choice = strings.TrimSpace(choice)
		if choice == choiceExit {
			return m.exit()
		}

		err = m.dispatch(ctx, choice)
		if errors.Is(err, io.EOF) {
			return m.exit()
		}
		if err != nil {
			m.logger.Error("command failed", zap.String("choice", choice), zap.Error(err))
			return err
		}
	}
}

func (m *Menu) exit() error {
	fmt.Fprintln(m.out, "\nExiting...")
	m.logger.Debug("menu exited")
	return nil
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.prompt.styles.header.Render(title))
	for _, opt := range options {
		fmt.Fprintln(m.out, opt)
	}
}

func (m *Menu) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case choiceAddFlavor:
		return m.addFlavor(ctx)
	case choiceAddIngredient:
		return m.addIngredient(ctx)
	case choiceAddAllergen:
		return m.addAllergen(ctx)
	case choiceSearchFlavors:
		return m.searchFlavors(ctx)
	case choiceAddToCart:
		return m.addToCart(ctx)
	case choiceViewCart:
		return m.viewCart(ctx)
	case choiceRemoveFromCart:
		return m.removeFromCart(ctx)
	default:
		fmt.Fprintln(m.out, "\n"+m.prompt.styles.warn.Render("Invalid Choice, please try again."))
		return nil
	}
}

func (m *Menu) addFlavor(ctx context.Context) error {
	name, err := m.prompt.String("Enter Flavor Name: ")
	if err != nil {
		return err
	}
	description, err := m.prompt.String("Enter Description: ")
	if err != nil {
		return err
	}
	seasonal, err := m.prompt.Seasonal("Is Seasonal? (1-yes/0-no): ")
	if err != nil {
		return err
	}

	msg, err := m.parlor.AddFlavor(ctx, &types.Flavor{Name: name, Description: description, Seasonal: seasonal})
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, msg)
	return nil
}

func (m *Menu) addIngredient(ctx context.Context) error {
	name, err := m.prompt.String("Enter Ingredient Name: ")
	if err != nil {
		return err
	}
	quantity, err := m.prompt.Int("Enter Quantity: ", Min(0))
	if err != nil {
		return err
	}
	unit, err := m.prompt.String("Enter Unit: ")
	if err != nil {
		return err
	}

	msg, err := m.parlor.AddIngredient(ctx, &types.Ingredient{Name: name, Quantity: quantity, Unit: unit})
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, msg)
	return nil
}

func (m *Menu) addAllergen(ctx context.Context) error {
	name, err := m.prompt.String("Enter Allergen Name: ")
	if err != nil {
		return err
	}

	msg, err := m.parlor.AddAllergen(ctx, &types.Allergen{Name: name})
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, msg)
	return nil
}

func (m *Menu) searchFlavors(ctx context.Context) error {
	keyword, err := m.prompt.String("Enter Keyword: ")
	if err != nil {
		return err
	}

	flavors, err := m.parlor.SearchFlavors(ctx, keyword)
	if err != nil {
		return err
	}
	if len(flavors) == 0 {
		fmt.Fprintln(m.out, "\nNo Flavors found.")
		return nil
	}

	fmt.Fprintln(m.out, "\n"+m.prompt.styles.heading.Render("Search Results:"))
	for _, f := range flavors {
		fmt.Fprintln(m.out, FormatFlavor(f))
	}
	return nil
}

func (m *Menu) addToCart(ctx context.Context) error {
	id, err := m.prompt.Int("Enter Flavor ID to add to cart: ")
	if err != nil {
		return err
	}

	msg, err := m.parlor.AddToCart(ctx, int64(id))
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, msg)
	return nil
}

func (m *Menu) viewCart(ctx context.Context) error {
	items, err := m.parlor.ViewCart(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(m.out, "\nCart is empty!")
		return nil
	}

	fmt.Fprintln(m.out, "\n"+m.prompt.styles.heading.Render("Cart items:"))
	for _, item := range items {
		fmt.Fprintln(m.out, FormatCartItem(item))
	}
	return nil
}

func (m *Menu) removeFromCart(ctx context.Context) error {
	id, err := m.prompt.Int("Enter Flavor ID to remove from cart: ")
	if err != nil {
		return err
	}

	msg, err := m.parlor.RemoveFromCart(ctx, int64(id))
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, msg)
	return nil
}

// FormatFlavor renders one search result line.
func FormatFlavor(f types.Flavor) string {
	return fmt.Sprintf("ID: %d, Name: %s, Description: %s, Seasonal: %s",
		f.ID, f.Name, f.Description, f.SeasonalLabel())
}

// FormatCartItem renders one cart line.
func FormatCartItem(item types.CartItem) string {
	return fmt.Sprintf("ID: %d, Name: %s", item.FlavorID, item.FlavorName)
}
