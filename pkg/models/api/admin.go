// Package api holds the wire types of the tenant admin REST API. Responses
// carry arbitrary optional fields; everything optional is a pointer or has a
// documented zero default, and validation happens at the client boundary
// rather than downstream.
package api

import "encoding/json"

// ListEnvelope is the common list response shape: a value array plus an
// optional continuation token for the next page.
type ListEnvelope struct {
	Value             []json.RawMessage `json:"value"`
	ContinuationToken *string           `json:"continuationToken,omitempty"`
}

type Capacity struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	SKU         string   `json:"sku"`
	State       string   `json:"state"`
	Region      *string  `json:"region,omitempty"`
	Admins      []string `json:"admins,omitempty"`
}

// Workspace is a "group" in admin API terms.
type Workspace struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	State                 string  `json:"state"`
	Type                  string  `json:"type"`
	CapacityID            *string `json:"capacityId,omitempty"`
	IsReadOnly            bool    `json:"isReadOnly"`
	IsOnDedicatedCapacity bool    `json:"isOnDedicatedCapacity"`
}

type Dataset struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	IsRefreshable bool   `json:"isRefreshable"`
}

type Report struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	ReportType string  `json:"reportType"` // "PowerBIReport" or "PaginatedReport"
	DatasetID  *string `json:"datasetId,omitempty"`
}

type Dashboard struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

type Dataflow struct {
	ObjectID string `json:"objectId"`
	Name     string `json:"name"`
}

// DatasetDetail is the extended per-dataset response behind the admin
// dataset endpoint.
type DatasetDetail struct {
	ID                               string  `json:"id"`
	Name                             string  `json:"name"`
	ConfiguredBy                     string  `json:"configuredBy"`
	IsRefreshable                    bool    `json:"isRefreshable"`
	IsEffectiveIdentityRequired      bool    `json:"isEffectiveIdentityRequired"`
	IsEffectiveIdentityRolesRequired bool    `json:"isEffectiveIdentityRolesRequired"`
	IsOnPremGatewayRequired          bool    `json:"isOnPremGatewayRequired"`
	TargetStorageMode                string  `json:"targetStorageMode"` // "Abf", "PremiumFiles", ...
	CreatedDate                      *string `json:"createdDate,omitempty"`
}

// ErrorBody is the admin API error shape, used by the client to tell
// entity-not-found domain codes from transient failures.
type ErrorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
