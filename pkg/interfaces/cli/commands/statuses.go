package commands

import (
	"github.com/spf13/cobra"

	"github.com/vsinha/tradeops/pkg/application/dto"
	"github.com/vsinha/tradeops/pkg/interfaces/cli/output"
)

// NewStatusesCommand creates the statuses command
func NewStatusesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "statuses <entity>",
		Short:   "Show the full status lifecycle of an entity",
		Example: `  tradeops statuses vendor_proposal -o csv`,
		Args:    cobra.ExactArgs(1),
		RunE:    runStatuses,
	}
	addFormatFlag(cmd)
	return cmd
}

func runStatuses(cmd *cobra.Command, args []string) error {
	entityType, err := parseEntity(args[0])
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	view := output.CatalogView{Catalog: dto.NewStatusCatalog(entityType)}
	return output.Render(cmd.OutOrStdout(), format, view)
}
