package state

import (
	"testing"
	"time"

	contractx "github.com/natthawee/shopflow/agent/contract"
)

func TestReplaceResultsRollsOldRecommendationsIntoPrevious(t *testing.T) {
	t.Parallel()

	st := NewSessionState("s1", time.Now())
	st.ReplaceResults("sofa", []contractx.Product{{Name: "Blue Sofa"}}, []contractx.Product{{Name: "Blue Sofa"}})
	st.ReplaceResults("lamp", []contractx.Product{{Name: "Table Lamp"}}, []contractx.Product{{Name: "Table Lamp"}})

	if st.UserQuery != "lamp" {
		t.Fatalf("unexpected query: %q", st.UserQuery)
	}
	if len(st.PreviousResults) != 1 || st.PreviousResults[0].Name != "Blue Sofa" {
		t.Fatalf("previous results not rolled over: %v", st.PreviousResults)
	}
	if len(st.Recommended) != 1 || st.Recommended[0].Name != "Table Lamp" {
		t.Fatalf("unexpected recommended: %v", st.Recommended)
	}

	// A third search must not duplicate Blue Sofa in previous results.
	st.ReplaceResults("sofa again", []contractx.Product{{Name: "blue sofa"}}, []contractx.Product{{Name: "blue sofa"}})
	st.ReplaceResults("chair", nil, []contractx.Product{{Name: "Chair"}})
	if len(st.PreviousResults) != 2 {
		t.Fatalf("expected 2 previous products, got %v", st.PreviousResults)
	}
}

func TestFindProductPrefersCurrentResults(t *testing.T) {
	t.Parallel()

	st := NewSessionState("s1", time.Now())
	st.PreviousResults = []contractx.Product{{Name: "Old Sofa", Price: 100}}
	st.Recommended = []contractx.Product{{Name: "Blue Sofa", Price: 300}}

	p, ok := st.FindProduct("sofa")
	if !ok {
		t.Fatal("expected a match")
	}
	if p.Name != "Blue Sofa" {
		t.Fatalf("expected current result to win, got %q", p.Name)
	}
}

func TestFindProductTieBreaksSearchResultsOverRecommended(t *testing.T) {
	t.Parallel()

	st := NewSessionState("s1", time.Now())
	st.SearchResults = []contractx.Product{{Name: "Sofa Table", Price: 120}}
	st.Recommended = []contractx.Product{{Name: "Blue Sofa", Price: 300}}

	p, ok := st.FindProduct("sofa")
	if !ok {
		t.Fatal("expected a match")
	}
	if p.Name != "Sofa Table" {
		t.Fatalf("expected search result to win over recommendation, got %q", p.Name)
	}
}

func TestFindProductFallsBackToPreviousResults(t *testing.T) {
	t.Parallel()

	st := NewSessionState("s1", time.Now())
	st.PreviousResults = []contractx.Product{{Name: "Old Sofa", Price: 100}}
	st.Recommended = []contractx.Product{{Name: "Table Lamp", Price: 45}}

	p, ok := st.FindProduct("old sofa")
	if !ok {
		t.Fatal("expected a match from previous results")
	}
	if p.Name != "Old Sofa" {
		t.Fatalf("unexpected match: %q", p.Name)
	}

	if _, ok := st.FindProduct("bookshelf"); ok {
		t.Fatal("expected no match")
	}
}

func TestMergeRecommendedDedupByName(t *testing.T) {
	t.Parallel()

	st := NewSessionState("s1", time.Now())
	st.Recommended = []contractx.Product{{Name: "Blue Sofa"}}
	st.MergeRecommended([]contractx.Product{{Name: "BLUE SOFA"}, {Name: "Coffee Table"}})

	if len(st.Recommended) != 2 {
		t.Fatalf("expected 2 recommended, got %v", st.Recommended)
	}
	if st.Recommended[0].Name != "Blue Sofa" || st.Recommended[1].Name != "Coffee Table" {
		t.Fatalf("unexpected merge order: %v", st.Recommended)
	}
}
