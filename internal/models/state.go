package models

import (
	"time"
)

// AppState is the aggregate persisted inventory state: the item collection
// plus the anchor timestamp for the next startup decay calculation.
// UpdatedAt is nil only before the first run.
type AppState struct {
	Items     []Item     `json:"items"`
	UpdatedAt *time.Time `json:"updatedAt"`
}
