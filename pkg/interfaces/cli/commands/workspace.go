package commands

import (
	"fmt"

	"github.com/vsinha/tradeops/pkg/application/services"
	"github.com/vsinha/tradeops/pkg/domain/services/normalizer"
	"github.com/vsinha/tradeops/pkg/infrastructure/events"
	"github.com/vsinha/tradeops/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/tradeops/pkg/logger"
)

// workspace is an in-memory set of repositories, activity log and services
// living for one command invocation
type workspace struct {
	store     *events.InMemoryEventStore
	listener  events.EventHandler
	documents *services.DocumentService
	activity  *services.ActivityService
}

func newWorkspace(n *normalizer.Normalizer, log logger.Logger) (*workspace, error) {
	deals := memory.NewDealRepository(1)
	quotes := memory.NewQuoteRepository(1)
	pos := memory.NewCustomerPORepository(1)
	proposals := memory.NewVendorProposalRepository(1)

	store := events.NewInMemoryEventStore(log)
	listener := events.NewActivityLogger(log)
	if err := store.Subscribe(events.ActivityTypes, listener); err != nil {
		return nil, fmt.Errorf("failed to subscribe activity logger: %w", err)
	}

	status := services.NewStatusService(deals, quotes, pos, proposals, store)
	return &workspace{
		store:     store,
		listener:  listener,
		documents: services.NewDocumentService(n, deals, quotes, pos, status, store),
		activity:  services.NewActivityService(store),
	}, nil
}

// Close waits for pending activity handlers and detaches the logger
func (w *workspace) Close() error {
	w.store.Wait()
	return w.store.Unsubscribe(w.listener)
}
