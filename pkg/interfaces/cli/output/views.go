package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/vsinha/tradeops/pkg/application/dto"
	"github.com/vsinha/tradeops/pkg/domain/entities"
)

// NormalizationView prints a normalization report
type NormalizationView struct {
	Report dto.NormalizationReport
}

func (v NormalizationView) Value() any { return v.Report }

func (v NormalizationView) WriteText(w io.Writer) error {
	r := v.Report
	var b strings.Builder

	fmt.Fprintf(&b, "📄 %s (%s)\n", r.Label, r.Category)
	if r.Target == "" {
		fmt.Fprintf(&b, "Target: none\n")
	} else {
		fmt.Fprintf(&b, "Target: %s\n", r.Target)
	}
	fmt.Fprintf(&b, "Confidence: %.2f\n", r.Confidence)

	keys := make([]string, 0, len(r.Data))
	for k := range r.Data {
		if k != "line_items" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if len(keys) > 0 {
		b.WriteString("\nFields:\n")
		tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		for _, k := range keys {
			fmt.Fprintf(tw, "  %s\t%s\n", k, fieldText(r.Data[k]))
		}
		tw.Flush()
	}

	if len(r.LineItems) > 0 {
		b.WriteString("\n📋 Line Items:\n")
		tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  #\tDescription\tQty\tUnit\tUnit Price\tTotal")
		for i, item := range r.LineItems {
			fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\t%s\t%s\n",
				i+1, item.Description, item.Quantity, item.Unit, item.UnitPrice, item.TotalPrice)
		}
		tw.Flush()
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n⚠️  Warnings:\n")
		for _, warning := range r.Warnings {
			fmt.Fprintf(&b, "  - %s\n", warning)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Table lists the normalized line items
func (v NormalizationView) Table() Table {
	t := Table{Header: []string{
		"description", "specification", "material_spec", "quantity",
		"unit", "unit_price", "total_price", "required_delivery_date",
	}}
	for _, item := range v.Report.LineItems {
		t.Rows = append(t.Rows, []string{
			item.Description,
			item.Specification,
			item.MaterialSpec,
			item.Quantity.String(),
			item.Unit,
			item.UnitPrice.String(),
			item.TotalPrice.String(),
			item.RequiredDeliveryDate,
		})
	}
	return t
}

func fieldText(v any) string {
	switch value := v.(type) {
	case string:
		if value == "" {
			return "-"
		}
		return strings.ReplaceAll(value, "\n", "; ")
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}

// TransitionsView prints the legal next statuses of one status
type TransitionsView struct {
	Options dto.StatusOptions
}

func (v TransitionsView) Value() any { return v.Options }

func (v TransitionsView) WriteText(w io.Writer) error {
	o := v.Options
	switch {
	case o.Terminal:
		_, err := fmt.Fprintf(w, "%s: %s is terminal\n", o.EntityType, o.Current)
		return err
	case len(o.Allowed) == 0:
		_, err := fmt.Fprintf(w, "%s: no transitions from %s\n", o.EntityType, o.Current)
		return err
	default:
		_, err := fmt.Fprintf(w, "%s: %s → %s\n", o.EntityType, o.Current, joinStatuses(o.Allowed, ", "))
		return err
	}
}

func (v TransitionsView) Table() Table {
	t := Table{Header: []string{"entity_type", "current", "next"}}
	for _, s := range v.Options.Allowed {
		t.Rows = append(t.Rows, []string{string(v.Options.EntityType), string(v.Options.Current), string(s)})
	}
	return t
}

// CheckView prints the answer to a legality query
type CheckView struct {
	Check dto.TransitionCheck
}

func (v CheckView) Value() any { return v.Check }

func (v CheckView) WriteText(w io.Writer) error {
	c := v.Check
	mark, verdict := "✅", "legal"
	if !c.Legal {
		mark, verdict = "❌", "not legal"
	}
	_, err := fmt.Fprintf(w, "%s %s: %s → %s is %s\n", mark, c.EntityType, c.From, c.To, verdict)
	return err
}

func (v CheckView) Table() Table {
	c := v.Check
	return Table{
		Header: []string{"entity_type", "from", "to", "legal"},
		Rows:   [][]string{{string(c.EntityType), string(c.From), string(c.To), strconv.FormatBool(c.Legal)}},
	}
}

// CatalogView prints the ordered lifecycle of an entity type
type CatalogView struct {
	Catalog dto.StatusCatalog
}

func (v CatalogView) Value() any { return v.Catalog }

func (v CatalogView) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 %s statuses\n", v.Catalog.EntityType)

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Status\tNext")
	for _, entry := range v.Catalog.Statuses {
		next := joinStatuses(entry.Next, ", ")
		if entry.Terminal {
			next = "(terminal)"
		}
		fmt.Fprintf(tw, "  %s\t%s\n", entry.Status, next)
	}
	tw.Flush()

	_, err := io.WriteString(w, b.String())
	return err
}

func (v CatalogView) Table() Table {
	t := Table{Header: []string{"entity_type", "status", "next", "terminal"}}
	for _, entry := range v.Catalog.Statuses {
		t.Rows = append(t.Rows, []string{
			string(v.Catalog.EntityType),
			string(entry.Status),
			joinStatuses(entry.Next, ";"),
			strconv.FormatBool(entry.Terminal),
		})
	}
	return t
}

func joinStatuses(statuses []entities.Status, sep string) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, sep)
}

// IntakeView prints an entity created from a document and its activity
type IntakeView struct {
	Report dto.IntakeReport
}

func (v IntakeView) Value() any { return v.Report }

func (v IntakeView) WriteText(w io.Writer) error {
	r := v.Report
	var b strings.Builder

	fmt.Fprintf(&b, "✅ Created %s %s (%s)\n", r.EntityType, r.Reference, r.Status)
	fmt.Fprintf(&b, "ID: %s\n", r.EntityID)
	fmt.Fprintf(&b, "Source: %s\n", r.Normalization.Label)

	if len(r.Activity) > 0 {
		b.WriteString("\n🕒 Activity:\n")
		tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		for _, entry := range r.Activity {
			fmt.Fprintf(tw, "  %d\t%s\t%s\n", entry.Version, entry.Type, entry.Timestamp.Format(time.RFC3339))
		}
		tw.Flush()
	}

	if len(r.Normalization.Warnings) > 0 {
		b.WriteString("\n⚠️  Warnings:\n")
		for _, warning := range r.Normalization.Warnings {
			fmt.Fprintf(&b, "  - %s\n", warning)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Table lists the recorded activity
func (v IntakeView) Table() Table {
	t := Table{Header: []string{"stream", "version", "type", "timestamp"}}
	for _, entry := range v.Report.Activity {
		t.Rows = append(t.Rows, []string{
			entry.Stream,
			strconv.Itoa(entry.Version),
			entry.Type,
			entry.Timestamp.Format(time.RFC3339),
		})
	}
	return t
}
