package main

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"time"

	"github.com/de-tools/fabric-migration-atlas/pkg/server"
	"github.com/de-tools/fabric-migration-atlas/pkg/services/auth"
	"github.com/de-tools/fabric-migration-atlas/pkg/services/config"
	"github.com/de-tools/fabric-migration-atlas/pkg/services/discovery"
	"github.com/de-tools/fabric-migration-atlas/pkg/store/admin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	profilesPath string
	profile      string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the tenant readiness API",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.fabricmigrc", usr.HomeDir)

	rootCmd.Flags().StringVarP(&profilesPath, "profiles", "c", defaultPath,
		"Path to the tenant profiles file (default is $HOME/.fabricmigrc)")
	rootCmd.Flags().StringVarP(&profile, "profile", "p", "default",
		"Tenant profile to serve")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry, err := config.NewRegistry(profilesPath)
	if err != nil {
		return fmt.Errorf("failed to create profile registry: %w", err)
	}

	creds, err := registry.GetCredentials(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to load profile %q: %w", profile, err)
	}

	httpClient, err := auth.NewHTTPClient(creds)
	if err != nil {
		return fmt.Errorf("failed to build authenticated client: %w", err)
	}

	adminSettings := admin.DefaultSettings(registry.GetAPIHost(ctx, profile))
	adminSettings.HTTPClient = httpClient
	client, err := admin.NewClient(adminSettings)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}

	explorer := discovery.NewExplorer(client, discovery.DefaultSettings())
	logger.Info().Msgf("Profiles found at `%s` successfully loaded.", profilesPath)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Explorer: explorer,
		},
	})

	return api.Start()
}
