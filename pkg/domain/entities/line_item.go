package entities

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used whenever a document or entity carries no usable currency
const DefaultCurrency = "AED"

// LineItem is a normalized commercial line shared by deals, quotes and customer POs
type LineItem struct {
	Description          string          `json:"description" yaml:"description"`
	Specification        string          `json:"specification,omitempty" yaml:"specification,omitempty"`
	MaterialSpec         string          `json:"material_spec" yaml:"material_spec"`
	Quantity             decimal.Decimal `json:"quantity" yaml:"quantity"`
	Unit                 string          `json:"unit" yaml:"unit"`
	UnitPrice            decimal.Decimal `json:"unit_price" yaml:"unit_price"`
	TotalPrice           decimal.Decimal `json:"total_price" yaml:"total_price"`
	RequiredDeliveryDate string          `json:"required_delivery_date,omitempty" yaml:"required_delivery_date,omitempty"`
}

// MarshalJSON writes the amounts as JSON numbers
func (l LineItem) MarshalJSON() ([]byte, error) {
	type plain LineItem
	return json.Marshal(struct {
		plain
		Quantity   json.Number `json:"quantity"`
		UnitPrice  json.Number `json:"unit_price"`
		TotalPrice json.Number `json:"total_price"`
	}{
		plain:      plain(l),
		Quantity:   Amount(l.Quantity),
		UnitPrice:  Amount(l.UnitPrice),
		TotalPrice: Amount(l.TotalPrice),
	})
}

// Amount renders a decimal as an exact JSON number
func Amount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// Extended returns quantity multiplied by unit price
func (l LineItem) Extended() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// SumLineTotals adds up the total price of every line
func SumLineTotals(lines []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.TotalPrice)
	}
	return sum
}

func cloneLineItems(lines []LineItem) []LineItem {
	if lines == nil {
		return nil
	}
	out := make([]LineItem, len(lines))
	copy(out, lines)
	return out
}
