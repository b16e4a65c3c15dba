// Package conflict holds the static conflict catalog and the keyword
// correlator that tags articles with the conflicts they reference.
package conflict

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/cerebrohq/cerebro/internal/domain"
)

//go:embed data/conflicts.json
var conflictsJSON []byte

// LoadRegistry decodes the embedded conflict catalog. It is called once at
// startup; the returned slice is treated as read-only for the lifetime of
// the process.
func LoadRegistry() ([]domain.Conflict, error) {
	var conflicts []domain.Conflict
	if err := json.Unmarshal(conflictsJSON, &conflicts); err != nil {
		return nil, fmt.Errorf("conflict: decode embedded catalog: %w", err)
	}
	return conflicts, nil
}
