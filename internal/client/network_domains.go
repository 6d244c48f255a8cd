package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tintoy/cloudcontrol-client-core/pkg/cloudcontrol"
)

// Static errors for err113 compliance.
var (
	ErrDeployResponseMissingID = errors.New("deploy response is missing the networkDomainId info field")
)

// deleteResourceRequest is the body for delete operations, which the API
// models as POSTs naming the target resource.
type deleteResourceRequest struct {
	ID string `json:"id"`
}

// NetworkDomainsClient implements cloudcontrol.NetworkDomainsClient.
type NetworkDomainsClient struct {
	client *Client
}

// NewNetworkDomainsClient creates a new network domains client.
func NewNetworkDomainsClient(client *Client) *NetworkDomainsClient {
	return &NetworkDomainsClient{
		client: client,
	}
}

// Get implements cloudcontrol.NetworkDomainsClient.Get.
//
// RESOURCE_NOT_FOUND is a negative lookup result, not an error: it returns
// (nil, nil) so callers can distinguish "no such domain" from a rejected
// request without inspecting HTTP status codes.
func (c *NetworkDomainsClient) Get(ctx context.Context, networkDomainID string) (*cloudcontrol.NetworkDomain, error) {
	err := c.client.checkClosed()
	if err != nil {
		return nil, err
	}

	orgID, err := c.client.organizationID(ctx)
	if err != nil {
		return nil, err
	}

	path := c.client.versionedPath("{organizationId}/network/networkDomain/{networkDomainId}")

	resp, err := c.client.transport.Get(ctx, path, map[string]string{
		"organizationId":  orgID,
		"networkDomainId": networkDomainID,
	}, nil)
	if err != nil {
		if cloudcontrol.IsNotFound(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting network domain: %w", err)
	}

	var domain cloudcontrol.NetworkDomain

	err = json.Unmarshal(resp.Body, &domain)
	if err != nil {
		return nil, fmt.Errorf("parsing network domain: %w", err)
	}

	return &domain, nil
}

// List implements cloudcontrol.NetworkDomainsClient.List.
//
// There is no not-found special case here: an empty or unknown scope is an
// empty page from the server, and every non-success status is an error.
func (c *NetworkDomainsClient) List(ctx context.Context, datacenterID string, paging *cloudcontrol.Paging) (*cloudcontrol.NetworkDomainPage, error) {
	err := c.client.checkClosed()
	if err != nil {
		return nil, err
	}

	orgID, err := c.client.organizationID(ctx)
	if err != nil {
		return nil, err
	}

	query := paging.ToValues()
	query.Set("datacenterId", datacenterID)

	path := c.client.versionedPath("{organizationId}/network/networkDomain")

	resp, err := c.client.transport.Get(ctx, path, map[string]string{"organizationId": orgID}, query)
	if err != nil {
		return nil, fmt.Errorf("listing network domains: %w", err)
	}

	var page cloudcontrol.NetworkDomainPage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing network domain list: %w", err)
	}

	return &page, nil
}

// Deploy implements cloudcontrol.NetworkDomainsClient.Deploy.
func (c *NetworkDomainsClient) Deploy(ctx context.Context, request *cloudcontrol.DeployNetworkDomain) (string, error) {
	err := c.client.checkClosed()
	if err != nil {
		return "", err
	}

	orgID, err := c.client.organizationID(ctx)
	if err != nil {
		return "", err
	}

	path := c.client.versionedPath("{organizationId}/network/deployNetworkDomain")

	resp, err := c.client.transport.Post(ctx, path, map[string]string{"organizationId": orgID}, request)
	if err != nil {
		return "", fmt.Errorf("deploying network domain: %w", err)
	}

	envelope, err := cloudcontrol.ParseAPIResponse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing deploy response: %w", err)
	}

	networkDomainID := envelope.InfoValue("networkDomainId")
	if networkDomainID == "" {
		return "", ErrDeployResponseMissingID
	}

	return networkDomainID, nil
}

// Delete implements cloudcontrol.NetworkDomainsClient.Delete.
func (c *NetworkDomainsClient) Delete(ctx context.Context, networkDomainID string) error {
	err := c.client.checkClosed()
	if err != nil {
		return err
	}

	orgID, err := c.client.organizationID(ctx)
	if err != nil {
		return err
	}

	path := c.client.versionedPath("{organizationId}/network/deleteNetworkDomain")

	_, err = c.client.transport.Post(ctx, path, map[string]string{"organizationId": orgID},
		&deleteResourceRequest{ID: networkDomainID})
	if err != nil {
		return fmt.Errorf("deleting network domain: %w", err)
	}

	return nil
}
