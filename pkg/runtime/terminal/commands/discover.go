package commands

import (
	"fmt"
	"os"
	"os/user"

	"github.com/de-tools/fabric-migration-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/fabric-migration-atlas/pkg/services/readiness"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type DiscoverCmd struct {
	target   TargetOptions
	factory  ExplorerFactory
	reporter *export.Reporter
}

func NewDiscoverCmd(factory ExplorerFactory, reporter *export.Reporter) *cobra.Command {
	dc := &DiscoverCmd{factory: factory, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Run a full tenant discovery and print the readiness assessment",
		RunE:  dc.run,
	}

	addTargetFlags(cmd, &dc.target)
	return cmd
}

func (dc *DiscoverCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	explorer, err := dc.factory(ctx, dc.target)
	if err != nil {
		return err
	}

	snapshot, err := explorer.Discover(ctx)
	if err != nil {
		return fmt.Errorf("discovery run failed: %w", err)
	}

	assessment := readiness.Classify(snapshot)
	return dc.reporter.Handle(export.Report{
		Assessment:        assessment,
		SkippedDatasets:   snapshot.SkippedDatasets,
		SkippedWorkspaces: snapshot.SkippedWorkspaces,
	})
}

func addTargetFlags(cmd *cobra.Command, target *TargetOptions) {
	defaultProfiles := ".fabricmigrc"
	if usr, err := user.Current(); err == nil {
		defaultProfiles = usr.HomeDir + "/.fabricmigrc"
	}

	cmd.Flags().StringVar(&target.ProfilesPath, "profiles", defaultProfiles, "Path to the tenant profiles file")
	cmd.Flags().StringVar(&target.Profile, "profile", "", "Tenant profile to use")
	cmd.Flags().StringVar(&target.SettingsPath, "settings", "", "Optional discovery settings file")

	_ = cmd.MarkFlagRequired("profile")
}
