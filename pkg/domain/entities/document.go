package entities

import (
	"encoding/json"
	"strings"
)

// DocumentCategory is the document-type tag assigned by the upstream extractor.
// It selects which normalization rule applies.
type DocumentCategory string

const (
	CategoryRFQ                 DocumentCategory = "rfq"
	CategoryVendorProposal      DocumentCategory = "vendor_proposal"
	CategoryCertificate         DocumentCategory = "certificate"
	CategoryMaterialCertificate DocumentCategory = "material_certificate"
	CategorySpecSheet           DocumentCategory = "spec_sheet"
	CategoryInvoice             DocumentCategory = "invoice"
	CategoryPackingList         DocumentCategory = "packing_list"
	CategoryTestReport          DocumentCategory = "test_report"
	CategoryCompanyPolicy       DocumentCategory = "company_policy"
	CategoryTemplate            DocumentCategory = "template"
	CategoryOther               DocumentCategory = "other"
)

var categoryLabels = map[DocumentCategory]string{
	CategoryRFQ:                 "Request for Quote",
	CategoryVendorProposal:      "Vendor Proposal",
	CategoryCertificate:         "Certificate",
	CategoryMaterialCertificate: "Material Certificate",
	CategorySpecSheet:           "Specification Sheet",
	CategoryInvoice:             "Invoice",
	CategoryPackingList:         "Packing List",
	CategoryTestReport:          "Test Report",
	CategoryCompanyPolicy:       "Company Policy",
	CategoryTemplate:            "Template",
	CategoryOther:               "Other",
}

// String method for DocumentCategory
func (c DocumentCategory) String() string {
	return string(c)
}

// Label returns the display name of the category, or the raw value when unknown.
func (c DocumentCategory) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// ParseDocumentCategory accepts both the enumerated value ("vendor_proposal")
// and the constant name ("VENDOR_PROPOSAL") in any case.
func ParseDocumentCategory(s string) (DocumentCategory, bool) {
	c := DocumentCategory(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := categoryLabels[c]; ok {
		return c, true
	}
	return "", false
}

// ExtractedDocument is the loosely-typed output of the upstream extraction
// service. Fields holds a JSON object of unspecified shape.
type ExtractedDocument struct {
	Category    DocumentCategory `json:"category"`
	RawCategory string           `json:"raw_category,omitempty"`
	Fields      json.RawMessage  `json:"fields"`
	Confidence  float64          `json:"confidence,omitempty"`
}

// CategoryName returns the category as received, falling back to the parsed value.
func (d ExtractedDocument) CategoryName() string {
	if d.RawCategory != "" {
		return d.RawCategory
	}
	return string(d.Category)
}
