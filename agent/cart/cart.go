// Package cart is the in-memory cart store for one shopping session.
package cart

import (
	"fmt"
	"strings"

	contractx "github.com/natthawee/shopflow/agent/contract"
)

// Cart holds the ordered cart lines for one session. At most one line exists
// per distinct product name (case-insensitive); adding an already-present
// product increments its quantity instead of appending a duplicate line.
type Cart struct {
	Lines []contractx.CartLine `json:"lines,omitempty"`
}

// Add puts a product in the cart. Always succeeds; the returned message is
// user-facing.
func (c *Cart) Add(p contractx.Product) string {
	for i := range c.Lines {
		if strings.EqualFold(c.Lines[i].Product.Name, p.Name) {
			c.Lines[i].Quantity++
			return fmt.Sprintf("Increased quantity of %s in your cart to %d.", c.Lines[i].Product.Name, c.Lines[i].Quantity)
		}
	}
	c.Lines = append(c.Lines, contractx.CartLine{Product: p, Quantity: 1})
	return fmt.Sprintf("Added %s to your cart.", p.Name)
}

// UpdateQuantity sets the quantity of the first line matching the typed name
// fragment. A quantity <= 0 removes the line. The bool reports whether a line
// matched; a miss leaves the cart untouched.
func (c *Cart) UpdateQuantity(fragment string, quantity int) (bool, string) {
	for i := range c.Lines {
		if contractx.NameMatch(c.Lines[i].Product.Name, fragment) {
			name := c.Lines[i].Product.Name
			if quantity <= 0 {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
				return true, fmt.Sprintf("Removed %s from your cart.", name)
			}
			c.Lines[i].Quantity = quantity
			return true, fmt.Sprintf("Updated quantity of %s to %d.", name, quantity)
		}
	}
	return false, "Product not found in cart."
}

// Remove deletes the first line matching the typed name fragment.
func (c *Cart) Remove(fragment string) (bool, string) {
	return c.UpdateQuantity(fragment, 0)
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Lines = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Total sums price times quantity over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.LineTotal()
	}
	return total
}

// Summary renders the cart for the chat transport: one line per product,
// the grand total, then the fixed cart-management menu.
func (c *Cart) Summary() string {
	if c.IsEmpty() {
		return "Your cart is empty."
	}

	var b strings.Builder
	b.WriteString("🛒 Your Cart:\n")
	for _, line := range c.Lines {
		fmt.Fprintf(&b, "- %s | Price: $%g | Quantity: %d | Subtotal: $%.2f\n",
			line.Product.Name, line.Product.Price, line.Quantity, line.LineTotal())
	}
	fmt.Fprintf(&b, "\n💰 Total: $%.2f", c.Total())

	b.WriteString("\n\n📝 Cart Management Options:\n")
	b.WriteString("- Update quantity: Type 'update <product name> <quantity>'\n")
	b.WriteString("- Remove item: Type 'remove <product name>'\n")
	b.WriteString("- Clear cart: Type 'clear cart'")
	return b.String()
}

// Clone deep-copies the cart so stored session state never aliases the
// caller's copy.
func (c *Cart) Clone() Cart {
	if len(c.Lines) == 0 {
		return Cart{}
	}
	return Cart{Lines: append([]contractx.CartLine(nil), c.Lines...)}
}
