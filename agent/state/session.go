package state

import (
	"strings"
	"time"

	cartx "github.com/natthawee/shopflow/agent/cart"
	contractx "github.com/natthawee/shopflow/agent/contract"
)

// SessionState is the complete mutable state for one chat session. It is
// created at session start, passed explicitly through the assistant graph,
// and discarded when the session ends. No ambient lookup, no sharing between
// sessions.
type SessionState struct {
	SessionID string `json:"session_id"`

	UserQuery       string              `json:"user_query,omitempty"`
	SearchResults   []contractx.Product `json:"search_results,omitempty"`
	Recommended     []contractx.Product `json:"recommended_products,omitempty"`
	PreviousResults []contractx.Product `json:"previous_results,omitempty"`

	Cart           cartx.Cart               `json:"cart,omitempty"`
	CheckoutStatus contractx.CheckoutStatus `json:"checkout_status,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

func NewSessionState(sessionID string, now time.Time) *SessionState {
	return &SessionState{
		SessionID: sessionID,
		UpdatedAt: now.UTC(),
	}
}

func (s *SessionState) Touch(now time.Time) {
	s.UpdatedAt = now.UTC()
}

// HasResults reports whether a result set is currently displayed. This is
// the super-state switch of the command interpreter: with no results every
// message is a search query.
func (s *SessionState) HasResults() bool {
	return len(s.Recommended) > 0
}

// ReplaceResults installs a fresh result set. The previously shown
// recommendations roll into PreviousResults (deduplicated by name) so the
// user can still add items from earlier searches.
func (s *SessionState) ReplaceResults(query string, products, recommended []contractx.Product) {
	if len(s.Recommended) > 0 {
		s.PreviousResults = mergeByName(s.PreviousResults, s.Recommended)
	}
	s.UserQuery = query
	s.SearchResults = products
	s.Recommended = recommended
}

// KnownProducts returns the union of current results, recommendations, and
// previous results, deduplicated by name, in that iteration order. This is
// the search space for 'add': a fragment matching both a current result and
// a recommendation resolves to the current result.
func (s *SessionState) KnownProducts() []contractx.Product {
	all := mergeByName(nil, s.SearchResults)
	all = mergeByName(all, s.Recommended)
	all = mergeByName(all, s.PreviousResults)
	return all
}

// FindProduct resolves a typed name fragment against KnownProducts. The
// first product in iteration order satisfying the bidirectional substring
// test wins; there is no ranking by closeness.
func (s *SessionState) FindProduct(fragment string) (contractx.Product, bool) {
	for _, p := range s.KnownProducts() {
		if contractx.NameMatch(p.Name, fragment) {
			return p, true
		}
	}
	return contractx.Product{}, false
}

// Clone deep-copies the session state.
func (s *SessionState) Clone() *SessionState {
	if s == nil {
		return nil
	}
	cp := *s
	cp.SearchResults = append([]contractx.Product(nil), s.SearchResults...)
	cp.Recommended = append([]contractx.Product(nil), s.Recommended...)
	cp.PreviousResults = append([]contractx.Product(nil), s.PreviousResults...)
	cp.Cart = s.Cart.Clone()
	return &cp
}

func mergeByName(dst, src []contractx.Product) []contractx.Product {
	seen := make(map[string]struct{}, len(dst)+len(src))
	for _, p := range dst {
		seen[strings.ToLower(p.Name)] = struct{}{}
	}
	for _, p := range src {
		key := strings.ToLower(p.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		dst = append(dst, p)
	}
	return dst
}

// MergeRecommended appends products into the recommended set, keeping the
// existing order first and dropping duplicates by name.
func (s *SessionState) MergeRecommended(products []contractx.Product) {
	s.Recommended = mergeByName(s.Recommended, products)
}
