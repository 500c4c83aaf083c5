package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/search.txt
	searchRaw string

	//go:embed template/recommend.txt
	recommendRaw string
)

// PromptSet holds loaded prompt content.
type PromptSet struct {
	Search    string
	Recommend string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Search:    strings.TrimSpace(searchRaw),
		Recommend: strings.TrimSpace(recommendRaw),
	}
}
