package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vsinha/tradeops/pkg/application/dto"
	"github.com/vsinha/tradeops/pkg/config"
	"github.com/vsinha/tradeops/pkg/domain/entities"
	"github.com/vsinha/tradeops/pkg/domain/services/normalizer"
	"github.com/vsinha/tradeops/pkg/infrastructure/extraction"
	"github.com/vsinha/tradeops/pkg/interfaces/cli/output"
	"github.com/vsinha/tradeops/pkg/logger"
)

// NewNormalizeCommand creates the normalize command
func NewNormalizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Normalize an extracted document into entity form fields",
		Long: `Read an extraction payload and map its fields onto the form of the entity
the document category prefills: rfq → deal, vendor_proposal → quote,
invoice → customer PO. Missing or ambiguous values become defaults plus
warnings; the command only fails when the payload cannot be read.`,
		Example: `  tradeops normalize --category rfq --file rfq.json
  cat proposal.json | tradeops normalize -c vendor_proposal -f - -o yaml`,
		Args: cobra.NoArgs,
		RunE: runNormalize,
	}

	cmd.Flags().StringP("category", "c", "", "Document category; when empty the payload's own category field is used")
	cmd.Flags().StringP("file", "f", "", "Extraction payload file, - for stdin")
	addFormatFlag(cmd)
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runNormalize(cmd *cobra.Command, _ []string) error {
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
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	doc, err := readDocument(cmd.InOrStdin(), file, category)
	if err != nil {
		return err
	}

	n := normalizer.New(normalizer.WithDefaultCurrency(cfg.Normalizer.DefaultCurrency))
	res := n.NormalizeDocument(doc)
	for _, warning := range res.Warnings {
		log.Debug("Normalization warning", "category", doc.CategoryName(), "warning", warning)
	}
	report := dto.NewNormalizationReport(doc, res)
	log.Info("Document normalized",
		"category", report.Category,
		"target", report.Target,
		"warnings", len(report.Warnings),
	)

	return output.Render(cmd.OutOrStdout(), format, output.NormalizationView{Report: report})
}

func readDocument(stdin io.Reader, file, category string) (entities.ExtractedDocument, error) {
	if strings.TrimSpace(file) != "-" {
		return extraction.LoadFile(file, category)
	}
	payload, err := io.ReadAll(stdin)
	if err != nil {
		return entities.ExtractedDocument{}, fmt.Errorf("failed to read payload from stdin: %w", err)
	}
	return extraction.Decode(payload, category)
}
