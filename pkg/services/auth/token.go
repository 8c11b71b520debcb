// Package auth builds the authenticated HTTP capability handed to the admin
// client. The discovery core never sees credentials, only an *http.Client
// whose transport injects bearer tokens.
package auth

import (
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// DefaultScope is the delegated scope of the tenant admin API.
const DefaultScope = "https://analysis.windows.net/powerbi/api/.default"

type Credentials struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	// Scope defaults to DefaultScope when empty.
	Scope string
}

type tokenTransport struct {
	credential azcore.TokenCredential
	scope      string
	base       http.RoundTripper
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.credential.GetToken(req.Context(), policy.TokenRequestOptions{Scopes: []string{t.scope}})
	if err != nil {
		return nil, fmt.Errorf("failed to acquire admin API token: %w", err)
	}

	// Per-request clone keeps the shared request untouched.
	authed := req.Clone(req.Context())
	authed.Header.Set("Authorization", "Bearer "+token.Token)
	return t.base.RoundTrip(authed)
}

// NewHTTPClient returns an http.Client that authenticates every request with
// a client-credential token for the given tenant.
func NewHTTPClient(creds Credentials) (*http.Client, error) {
	credential, err := azidentity.NewClientSecretCredential(creds.TenantID, creds.ClientID, creds.ClientSecret, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tenant credential: %w", err)
	}

	scope := creds.Scope
	if scope == "" {
		scope = DefaultScope
	}

	return &http.Client{
		Transport: &tokenTransport{
			credential: credential,
			scope:      scope,
			base:       http.DefaultTransport,
		},
	}, nil
}
