package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type CapacitiesCmd struct {
	target  TargetOptions
	factory ExplorerFactory
}

func NewCapacitiesCmd(factory ExplorerFactory) *cobra.Command {
	cc := &CapacitiesCmd{factory: factory}
	cmd := &cobra.Command{
		Use:   "capacities",
		Short: "List tenant capacities",
		RunE:  cc.run,
	}

	addTargetFlags(cmd, &cc.target)
	return cmd
}

func (cc *CapacitiesCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	explorer, err := cc.factory(ctx, cc.target)
	if err != nil {
		return err
	}

	snapshot, err := explorer.Discover(ctx)
	if err != nil {
		return fmt.Errorf("capacity listing failed: %w", err)
	}

	for _, c := range snapshot.Capacities {
		region := c.Region
		if region == "" {
			region = "-"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-38s %-8s %-12s %s\n", c.ID, c.SKU, region, c.Name)
	}
	return nil
}

type WorkspacesCmd struct {
	target  TargetOptions
	factory ExplorerFactory
}

func NewWorkspacesCmd(factory ExplorerFactory) *cobra.Command {
	wc := &WorkspacesCmd{factory: factory}
	cmd := &cobra.Command{
		Use:   "workspaces",
		Short: "List tenant workspaces and their capacity assignment",
		RunE:  wc.run,
	}

	addTargetFlags(cmd, &wc.target)
	return cmd
}

func (wc *WorkspacesCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	explorer, err := wc.factory(ctx, wc.target)
	if err != nil {
		return err
	}

	snapshot, err := explorer.Discover(ctx)
	if err != nil {
		return fmt.Errorf("workspace listing failed: %w", err)
	}

	for _, ws := range snapshot.Workspaces {
		fmt.Fprintf(cmd.OutOrStdout(), "%-38s %-10s %-38s %s\n", ws.ID, ws.State, ws.EffectiveCapacityID(), ws.Name)
	}
	return nil
}
