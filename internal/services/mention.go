package services

import (
	"strings"

	"github.com/paclead/paclead-backend/internal/types"
)

// ExtractMentions returns the products whose name occurs, case-insensitively,
// as a substring of the generated text, preserving snapshot order.
//
// The match is deliberately naive: no tokenization and no word-boundary
// guarding, so a short product name can match inside an unrelated word. That
// is the documented behavior of the product-detection step, not a bug.
func ExtractMentions(generated string, snapshot []*types.Product) []*types.Product {
	mentioned := []*types.Product{}
	if generated == "" {
		return mentioned
	}
	lowered := strings.ToLower(generated)
	for _, p := range snapshot {
		if p == nil || p.Name == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(p.Name)) {
			mentioned = append(mentioned, p)
		}
	}
	return mentioned
}
