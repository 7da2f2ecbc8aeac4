package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vsinha/tradeops/pkg/application/dto"
	"github.com/vsinha/tradeops/pkg/domain/entities"
	"github.com/vsinha/tradeops/pkg/domain/services/normalizer"
	fixtures "github.com/vsinha/tradeops/pkg/infrastructure/testing"
)

func rfqReport() dto.NormalizationReport {
	doc := entities.ExtractedDocument{
		Category:   entities.CategoryRFQ,
		Fields:     fixtures.RFQFields,
		Confidence: 0.9,
	}
	return dto.NewNormalizationReport(doc, normalizer.New().NormalizeDocument(doc))
}

func TestRender_Normalization(t *testing.T) {
	view := NormalizationView{Report: rfqReport()}

	t.Run("Should print fields, line items and no warnings as text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, FormatText, view))
		out := buf.String()
		assert.Contains(t, out, "Request for Quote (rfq)")
		assert.Contains(t, out, "Target: deal")
		assert.Contains(t, out, "Confidence: 0.90")
		assert.Contains(t, out, "RFQ-2026-001")
		assert.Contains(t, out, "Steel Coil")
		assert.NotContains(t, out, "Warnings")
	})

	t.Run("Should encode data and warnings as JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, FormatJSON, view))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "rfq", decoded["category"])
		assert.Equal(t, "deal", decoded["target"])
		assert.Equal(t, []any{}, decoded["warnings"])
		data, ok := decoded["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "USD", data["currency"])
		assert.Equal(t, 2950.0, data["total_value"])
		items, ok := data["line_items"].([]any)
		require.True(t, ok)
		require.Len(t, items, 2)
		first, ok := items[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 5.5, first["unit_price"])
	})

	t.Run("Should encode decimals as strings in YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, FormatYAML, view))

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		data, ok := decoded["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "2950", data["total_value"])
		items, ok := data["line_items"].([]any)
		require.True(t, ok)
		first, ok := items[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Steel Coil", first["description"])
		assert.Equal(t, "5.5", first["unit_price"])
	})

	t.Run("Should write one CSV row per line item", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, FormatCSV, view))

		rows, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "description", rows[0][0])
		assert.Equal(t, []string{"Steel Coil", "Hot rolled, 2mm"}, rows[1][:2])
		assert.Equal(t, "550", rows[1][6])
	})
}

func TestRender_UnknownCategory(t *testing.T) {
	doc := entities.ExtractedDocument{RawCategory: "UNKNOWN", Fields: []byte(`{}`)}
	view := NormalizationView{Report: dto.NewNormalizationReport(doc, normalizer.New().NormalizeDocument(doc))}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, view))
	assert.Contains(t, buf.String(), "Target: none")
	assert.Contains(t, buf.String(), "Unknown category: UNKNOWN")
}

func TestRender_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		options dto.StatusOptions
		want    string
	}{
		{
			name: "Should list next statuses",
			options: dto.StatusOptions{
				EntityType: entities.EntityQuote,
				Current:    entities.QuoteStatusDraft,
				Allowed:    []entities.Status{entities.QuoteSent, entities.QuoteExpired},
			},
			want: "quote: draft → sent, expired\n",
		},
		{
			name: "Should mark terminal statuses",
			options: dto.StatusOptions{
				EntityType: entities.EntityDeal,
				Current:    entities.DealClosed,
				Allowed:    []entities.Status{},
				Terminal:   true,
			},
			want: "deal: closed is terminal\n",
		},
		{
			name: "Should report unknown statuses",
			options: dto.StatusOptions{
				EntityType: entities.EntityDeal,
				Current:    "bogus",
				Allowed:    []entities.Status{},
			},
			want: "deal: no transitions from bogus\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, FormatText, TransitionsView{Options: tt.options}))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRender_Check(t *testing.T) {
	check := dto.TransitionCheck{
		EntityType: entities.EntityDeal,
		From:       entities.DealPaid,
		To:         entities.DealCancelled,
	}

	var text bytes.Buffer
	require.NoError(t, Render(&text, FormatText, CheckView{Check: check}))
	assert.Equal(t, "❌ deal: paid → cancelled is not legal\n", text.String())

	var out bytes.Buffer
	require.NoError(t, Render(&out, FormatCSV, CheckView{Check: check}))
	assert.Equal(t, "entity_type,from,to,legal\ndeal,paid,cancelled,false\n", out.String())
}

func TestRender_Catalog(t *testing.T) {
	view := CatalogView{Catalog: dto.NewStatusCatalog(entities.EntityVendorProposal)}

	var text bytes.Buffer
	require.NoError(t, Render(&text, FormatText, view))
	lines := strings.Split(strings.TrimSpace(text.String()), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[2], "requested")
	assert.Contains(t, lines[2], "received, rejected")
	assert.Contains(t, lines[5], "(terminal)")

	var out bytes.Buffer
	require.NoError(t, Render(&out, FormatCSV, view))
	rows, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"vendor_proposal", "received", "selected;rejected", "false"}, rows[2])
}

func TestRender_UnsupportedFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, "html", CheckView{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format: html")
}
