package dto

import (
	"github.com/vsinha/tradeops/pkg/domain/entities"
	"github.com/vsinha/tradeops/pkg/domain/services/normalizer"
)

// NormalizationReport is the printable outcome of normalizing one document
type NormalizationReport struct {
	Category   string              `json:"category" yaml:"category"`
	Label      string              `json:"label" yaml:"label"`
	Target     entities.EntityType `json:"target,omitempty" yaml:"target,omitempty"`
	Confidence float64             `json:"confidence" yaml:"confidence"`
	Data       map[string]any      `json:"data" yaml:"data"`
	LineItems  []entities.LineItem `json:"-" yaml:"-"`
	Warnings   []string            `json:"warnings" yaml:"warnings"`
}

// NewNormalizationReport builds a report from a document and its result
func NewNormalizationReport(doc entities.ExtractedDocument, res normalizer.Result) NormalizationReport {
	report := NormalizationReport{
		Category:   doc.CategoryName(),
		Label:      res.Category.Label(),
		Confidence: doc.Confidence,
		Data:       res.Fields(),
		Warnings:   res.Warnings,
	}
	if report.Warnings == nil {
		report.Warnings = []string{}
	}
	if res.Data != nil {
		report.Target = res.Data.Target()
	}
	if items, ok := report.Data["line_items"].([]entities.LineItem); ok {
		report.LineItems = items
	}
	return report
}
