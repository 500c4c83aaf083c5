// Package command parses one line of user chat text into a cart/search
// action. The grammar is fixed prefixes, not natural language.
package command

import (
	"errors"
	"strconv"
	"strings"
)

type Kind int

const (
	// KindSearch treats the whole line as a new catalog query.
	KindSearch Kind = iota
	KindRefine
	KindAdd
	KindViewCart
	KindCheckout
	KindUpdate
	KindRemove
	KindClearCart
)

var (
	ErrMissingQuery    = errors.New("refine needs a query")
	ErrMissingName     = errors.New("product name is missing")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// Command is one parsed user action.
type Command struct {
	Kind     Kind
	Query    string // KindSearch, KindRefine
	Name     string // KindAdd, KindUpdate, KindRemove
	Quantity int    // KindUpdate
}

// Parse interprets a single trimmed line. Rules are tried in priority
// order; the first matching prefix or exact form wins, and anything left
// over is a search query. A recognized prefix with a malformed argument
// returns the command kind together with a validation error so the caller
// can render a usage message without mutating state.
func Parse(line string) (Command, error) {
	trimmed := strings.TrimSpace(line)
	folded := strings.ToLower(trimmed)

	switch folded {
	case "view cart":
		return Command{Kind: KindViewCart}, nil
	case "checkout":
		return Command{Kind: KindCheckout}, nil
	case "clear cart":
		return Command{Kind: KindClearCart}, nil
	}

	head, rest := splitHead(trimmed)
	switch strings.ToLower(head) {
	case "refine":
		if rest == "" {
			return Command{Kind: KindRefine}, ErrMissingQuery
		}
		return Command{Kind: KindRefine, Query: rest}, nil

	case "add":
		if rest == "" {
			return Command{Kind: KindAdd}, ErrMissingName
		}
		return Command{Kind: KindAdd, Name: rest}, nil

	case "remove":
		if rest == "" {
			return Command{Kind: KindRemove}, ErrMissingName
		}
		return Command{Kind: KindRemove, Name: rest}, nil

	case "update":
		return parseUpdate(rest)
	}

	return Command{Kind: KindSearch, Query: trimmed}, nil
}

// parseUpdate handles "update <name-fragment> <positive-int>". The last
// token must parse as an integer; the middle tokens form the fragment. Zero
// and negative quantities are rejected here so removal-via-zero is only
// reachable through the remove command.
func parseUpdate(rest string) (Command, error) {
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return Command{Kind: KindUpdate}, ErrMissingName
	}

	last := fields[len(fields)-1]
	quantity, err := strconv.Atoi(last)
	if err != nil {
		return Command{Kind: KindUpdate}, ErrInvalidQuantity
	}
	if quantity <= 0 {
		return Command{Kind: KindUpdate}, ErrInvalidQuantity
	}

	name := strings.Join(fields[:len(fields)-1], " ")
	return Command{Kind: KindUpdate, Name: name, Quantity: quantity}, nil
}

func splitHead(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}
