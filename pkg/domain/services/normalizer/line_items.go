package normalizer

import (
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/vsinha/tradeops/pkg/domain/entities"
)

// lineItemsOf returns the raw line items; a missing or non-array value has none
func lineItemsOf(doc gjson.Result) []gjson.Result {
	items := doc.Get("line_items")
	if !items.IsArray() {
		return nil
	}
	return items.Array()
}

// mapLineItems normalizes every line item with the rule's field precedence
func mapLineItems(doc gjson.Result, r rule, diag *diagnostics) []entities.LineItem {
	raw := lineItemsOf(doc)
	items := make([]entities.LineItem, 0, len(raw))
	for idx, item := range raw {
		quantity := numberOr(item.Get("quantity"))

		unitPrice, found := firstNumber(item, r.priceFields...)
		if !found {
			diag.add("Line item %d: Missing unit price", idx+1)
		}

		total := quantity.Mul(unitPrice)
		if supplied, ok := firstNumber(item, r.lineTotalFields...); ok && !supplied.IsZero() {
			total = supplied
		}

		line := entities.LineItem{
			Description:   text(item.Get("description")),
			Specification: text(item.Get("specification")),
			MaterialSpec:  firstText(item, r.specFields...),
			Quantity:      quantity,
			Unit:          canonicalUnit(text(item.Get("unit"))),
			UnitPrice:     unitPrice,
			TotalPrice:    total,
		}
		if r.deliveryFallback != "" {
			line.RequiredDeliveryDate = firstText(item, "required_delivery_date")
			if line.RequiredDeliveryDate == "" {
				line.RequiredDeliveryDate = text(doc.Get(r.deliveryFallback))
			}
		}
		items = append(items, line)
	}

	return items
}

// documentTotal resolves the document-level total. An absent total is derived
// from the lines; a total that disagrees with the lines is kept but flagged.
func documentTotal(doc gjson.Result, field string, items []entities.LineItem, diag *diagnostics) decimal.Decimal {
	sum := entities.SumLineTotals(items)

	total, ok := number(doc.Get(field))
	if !ok {
		if len(items) > 0 {
			diag.add("Total missing, derived from line items")
			return sum
		}
		return decimal.Zero
	}

	if !total.IsZero() && !sum.IsZero() && !total.Equal(sum) {
		diag.add("Line item totals (%s) do not match document total (%s)", sum.String(), total.String())
	}
	return total
}
