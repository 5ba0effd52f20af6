package inventory

import (
	"github.com/shopspring/decimal"
)

// ItemDraft contains data for creating a new tracked item. The identifier
// and sort order are assigned by the service.
type ItemDraft struct {
	Name          string
	Stock         decimal.Decimal
	Daily         decimal.Decimal
	DefaultRefill decimal.Decimal
}
