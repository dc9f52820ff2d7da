// Package authorization is a client for Azure role-based access control
// (Microsoft.Authorization, api-version 2022-04-01).
//
// Most operations take a scope: the resource ID of a subscription, resource
// group or resource, e.g. "/subscriptions/{id}/resourceGroups/{rg}". Scopes
// are inserted into the URL as paths, without escaping.
package authorization

import (
	"github.com/yaroslav/azrest/sdk"
)

// DefaultAPIVersion is the API version this package is written against.
const DefaultAPIVersion = "2022-04-01"

const (
	provider            = "/providers/Microsoft.Authorization"
	roleAssignmentsPath = "/{+scope}" + provider + "/roleAssignments"
	roleDefinitionsPath = "/{+scope}" + provider + "/roleDefinitions"
	denyAssignmentsPath = "/{+scope}" + provider + "/denyAssignments"
)

// Client is the entry point for authorization operations.
type Client struct {
	pipeline       *sdk.Client
	subscriptionID string
}

// NewClient creates a client. subscriptionID is only used by the
// subscription and resource group level operations.
func NewClient(subscriptionID string, config sdk.ClientConfig) (*Client, error) {
	if config.Endpoint == "" {
		config.Endpoint = sdk.DefaultEndpoint
	}
	if config.APIVersion == "" {
		config.APIVersion = DefaultAPIVersion
	}

	pipeline, err := sdk.NewClient(config)
	if err != nil {
		return nil, err
	}

	return &Client{pipeline: pipeline, subscriptionID: subscriptionID}, nil
}

// RoleAssignments returns the role assignments client.
func (c *Client) RoleAssignments() *RoleAssignmentsClient { return &RoleAssignmentsClient{c} }

// RoleDefinitions returns the role definitions client.
func (c *Client) RoleDefinitions() *RoleDefinitionsClient { return &RoleDefinitionsClient{c} }

// Permissions returns the permissions client.
func (c *Client) Permissions() *PermissionsClient { return &PermissionsClient{c} }

// ProviderOperationsMetadata returns the provider operations metadata client.
func (c *Client) ProviderOperationsMetadata() *ProviderOperationsMetadataClient {
	return &ProviderOperationsMetadataClient{c}
}

// DenyAssignments returns the deny assignments client.
func (c *Client) DenyAssignments() *DenyAssignmentsClient { return &DenyAssignmentsClient{c} }

func (c *Client) newRequest(method, template string, params ...string) (*sdk.Request, error) {
	path, err := sdk.FormatPath(template, params...)
	if err != nil {
		return nil, err
	}
	return c.pipeline.NewRequest(method, path), nil
}
