package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vsinha/tradeops/pkg/application/dto"
	"github.com/vsinha/tradeops/pkg/domain/entities"
	"github.com/vsinha/tradeops/pkg/domain/services/transitions"
	"github.com/vsinha/tradeops/pkg/interfaces/cli/output"
)

// NewTransitionsCommand creates the transitions command and its check subcommand
func NewTransitionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transitions <entity> <status>",
		Short: "List the statuses reachable from a status",
		Long: `List the statuses an entity may move to in one step. Entities are
deal, quote, customer_po and vendor_proposal; terminal or unknown statuses
have no transitions.`,
		Example: `  tradeops transitions deal quoted
  tradeops transitions customer_po acknowledged -o json`,
		Args: cobra.ExactArgs(2),
		RunE: runTransitions,
	}
	addFormatFlag(cmd)

	cmd.AddCommand(NewTransitionsCheckCommand())
	return cmd
}

// NewTransitionsCheckCommand creates the transitions check subcommand
func NewTransitionsCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check <entity> <from> <to>",
		Short:   "Report whether a single status change is legal",
		Example: `  tradeops transitions check deal paid closed`,
		Args:    cobra.ExactArgs(3),
		RunE:    runTransitionsCheck,
	}
	addFormatFlag(cmd)
	return cmd
}

func runTransitions(cmd *cobra.Command, args []string) error {
	entityType, err := parseEntity(args[0])
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	current := entities.NormalizeStatus(args[1])
	options := dto.StatusOptions{
		EntityType: entityType,
		Current:    current,
		Allowed:    transitions.AllowedNext(entityType, current),
		Terminal:   transitions.IsTerminal(entityType, current),
	}
	return output.Render(cmd.OutOrStdout(), format, output.TransitionsView{Options: options})
}

func runTransitionsCheck(cmd *cobra.Command, args []string) error {
	entityType, err := parseEntity(args[0])
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	from, to := entities.NormalizeStatus(args[1]), entities.NormalizeStatus(args[2])
	check := dto.TransitionCheck{
		EntityType: entityType,
		From:       from,
		To:         to,
		Legal:      transitions.IsLegal(entityType, from, to),
	}
	return output.Render(cmd.OutOrStdout(), format, output.CheckView{Check: check})
}

func parseEntity(name string) (entities.EntityType, error) {
	entityType, ok := entities.ParseEntityType(name)
	if !ok {
		return "", fmt.Errorf("unknown entity type: %s (expected one of %v)", name, transitions.EntityTypes())
	}
	return entityType, nil
}
