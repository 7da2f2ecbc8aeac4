package services

import (
	"encoding/json"
	"testing"

	"github.com/vsinha/tradeops/pkg/domain/entities"
	"github.com/vsinha/tradeops/pkg/domain/services/normalizer"
	"github.com/vsinha/tradeops/pkg/infrastructure/events"
	"github.com/vsinha/tradeops/pkg/logger"
	fixtures "github.com/vsinha/tradeops/pkg/infrastructure/testing"
)

type harness struct {
	scenario    *fixtures.Scenario
	store       *events.InMemoryEventStore
	status      *StatusService
	documents   *DocumentService
	procurement *ProcurementService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	s := fixtures.BuildTradingScenario()
	store := events.NewInMemoryEventStore(logger.NewLogger(logger.TestConfig()))
	status := NewStatusService(s.Deals, s.Quotes, s.POs, s.Proposals, store)
	return &harness{
		scenario:    s,
		store:       store,
		status:      status,
		documents:   NewDocumentService(normalizer.New(), s.Deals, s.Quotes, s.POs, status, store),
		procurement: NewProcurementService(s.Deals, s.Proposals, status),
	}
}

func document(category string, fields []byte) entities.ExtractedDocument {
	parsed, _ := entities.ParseDocumentCategory(category)
	return entities.ExtractedDocument{
		Category:    parsed,
		RawCategory: category,
		Fields:      json.RawMessage(fields),
		Confidence:  0.9,
	}
}
