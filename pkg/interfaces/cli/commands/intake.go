package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vsinha/tradeops/pkg/application/dto"
	"github.com/vsinha/tradeops/pkg/application/services"
	"github.com/vsinha/tradeops/pkg/config"
	"github.com/vsinha/tradeops/pkg/domain/entities"
	"github.com/vsinha/tradeops/pkg/domain/services/normalizer"
	"github.com/vsinha/tradeops/pkg/interfaces/cli/output"
	"github.com/vsinha/tradeops/pkg/logger"
)

// defaultReferences number the first entity of each kind
var defaultReferences = map[entities.EntityType]string{
	entities.EntityDeal:       "DL-0001",
	entities.EntityQuote:      "QT-0001",
	entities.EntityCustomerPO: "CPO-0001",
}

// NewIntakeCommand creates the intake command
func NewIntakeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intake",
		Short: "Create the entity an extracted document prefills",
		Long: `Normalize an extraction payload and create the entity it targets in a
fresh in-memory workspace: rfq → deal, vendor_proposal → quote,
invoice → customer PO. Prints the created entity with the activity its
creation recorded. Nothing is persisted between runs.`,
		Example: `  tradeops intake -c rfq -f rfq.json --ref DL-0042
  tradeops intake -c invoice -f invoice.json -o json`,
		Args: cobra.NoArgs,
		RunE: runIntake,
	}

	cmd.Flags().StringP("category", "c", "", "Document category; when empty the payload's own category field is used")
	cmd.Flags().StringP("file", "f", "", "Extraction payload file, - for stdin")
	cmd.Flags().String("ref", "", "Deal number, quote number or internal PO reference")
	addFormatFlag(cmd)
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runIntake(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := logger.FromContext(ctx)
	cfg := config.FromContext(ctx)

	category, err := cmd.Flags().GetString("category")
	if err != nil {
		return fmt.Errorf("failed to get category flag: %w", err)
	}
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}
	ref, err := cmd.Flags().GetString("ref")
	if err != nil {
		return fmt.Errorf("failed to get ref flag: %w", err)
	}
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	doc, err := readDocument(cmd.InOrStdin(), file, category)
	if err != nil {
		return err
	}
	target, ok := normalizer.TargetFor(doc.Category)
	if !ok {
		return fmt.Errorf("%w: %q documents do not create an entity", services.ErrCategoryMismatch, doc.CategoryName())
	}
	if strings.TrimSpace(ref) == "" {
		ref = defaultReferences[target]
	}

	ws, err := newWorkspace(normalizer.New(normalizer.WithDefaultCurrency(cfg.Normalizer.DefaultCurrency)), log)
	if err != nil {
		return err
	}
	defer func() {
		if err := ws.Close(); err != nil {
			log.Warn("Failed to close workspace", "error", err)
		}
	}()

	var (
		id     uuid.UUID
		status entities.Status
		res    normalizer.Result
	)
	switch target {
	case entities.EntityDeal:
		deal, r, err := ws.documents.CreateDealFromRFQ(ctx, doc, ref)
		if err != nil {
			return err
		}
		id, status, res = deal.ID, deal.Status, r
	case entities.EntityQuote:
		quote, r, err := ws.documents.CreateQuoteFromProposal(ctx, doc, ref, nil)
		if err != nil {
			return err
		}
		id, status, res = quote.ID, quote.Status, r
	case entities.EntityCustomerPO:
		po, r, err := ws.documents.CreateCustomerPOFromInvoice(ctx, doc, ref, time.Now().UTC().Truncate(24*time.Hour), nil)
		if err != nil {
			return err
		}
		id, status, res = po.ID, po.Status, r
	}

	activity, err := ws.activity.History(ctx, target, id)
	if err != nil {
		return err
	}
	log.Info("Entity created from document", "entity", target, "reference", ref, "activity", len(activity))

	view := output.IntakeView{Report: dto.IntakeReport{
		EntityType:    target,
		EntityID:      id,
		Reference:     ref,
		Status:        status,
		Normalization: dto.NewNormalizationReport(doc, res),
		Activity:      activity,
	}}
	return output.Render(cmd.OutOrStdout(), format, view)
}
