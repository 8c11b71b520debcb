package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/fabric-migration-atlas/pkg/services/auth"
	"github.com/de-tools/fabric-migration-atlas/pkg/services/config"
	"github.com/de-tools/fabric-migration-atlas/pkg/services/discovery"
	"github.com/de-tools/fabric-migration-atlas/pkg/store/admin"
)

// TargetOptions identifies the tenant a command runs against.
type TargetOptions struct {
	ProfilesPath string
	Profile      string
	SettingsPath string // optional, defaults apply when empty
}

// ExplorerFactory builds the discovery explorer for a target. Injected so
// command tests can substitute a stub.
type ExplorerFactory func(ctx context.Context, target TargetOptions) (discovery.Explorer, error)

// DefaultExplorerFactory wires profile credentials into an authenticated
// admin client and a discovery explorer on top of it.
func DefaultExplorerFactory(ctx context.Context, target TargetOptions) (discovery.Explorer, error) {
	registry, err := config.NewRegistry(target.ProfilesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles from %s: %w", target.ProfilesPath, err)
	}

	creds, err := registry.GetCredentials(ctx, target.Profile)
	if err != nil {
		return nil, err
	}

	httpClient, err := auth.NewHTTPClient(creds)
	if err != nil {
		return nil, err
	}

	settings := config.DefaultSettings()
	if target.SettingsPath != "" {
		settings, err = config.LoadSettings(target.SettingsPath)
		if err != nil {
			return nil, err
		}
	}

	adminSettings := admin.DefaultSettings(registry.GetAPIHost(ctx, target.Profile))
	adminSettings.RetryMax = settings.RetryMax
	adminSettings.RetryWaitMin = settings.RetryWait()
	adminSettings.HTTPClient = httpClient

	client, err := admin.NewClient(adminSettings)
	if err != nil {
		return nil, err
	}

	return discovery.NewExplorer(client, discovery.Settings{Concurrency: settings.Concurrency}), nil
}
