package config

import (
	"context"
	"fmt"

	"github.com/de-tools/fabric-migration-atlas/pkg/services/auth"
	"gopkg.in/ini.v1"
)

// Registry reads tenant profiles from an ini file (~/.fabricmigrc by
// convention): one section per tenant with tenant_id, client_id,
// client_secret and an optional api_host.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetCredentials(ctx context.Context, profile string) (auth.Credentials, error)
	GetAPIHost(ctx context.Context, profile string) string
}

const defaultAPIHost = "https://api.powerbi.com/v1.0/myorg"

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetCredentials(_ context.Context, profile string) (auth.Credentials, error) {
	section := cr.cfg.Section(profile)
	if section == nil {
		return auth.Credentials{}, fmt.Errorf("profile %s not found", profile)
	}

	creds := auth.Credentials{
		TenantID:     section.Key("tenant_id").String(),
		ClientID:     section.Key("client_id").String(),
		ClientSecret: section.Key("client_secret").String(),
	}
	if creds.TenantID == "" || creds.ClientID == "" {
		return auth.Credentials{}, fmt.Errorf("profile %s is missing tenant_id or client_id", profile)
	}
	return creds, nil
}

func (cr *cfgRegistry) GetAPIHost(_ context.Context, profile string) string {
	host := cr.cfg.Section(profile).Key("api_host").String()
	if host == "" {
		return defaultAPIHost
	}
	return host
}
