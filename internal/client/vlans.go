package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tintoy/cloudcontrol-client-core/pkg/cloudcontrol"
)

// VlansClient implements cloudcontrol.VlansClient.
type VlansClient struct {
	client *Client
}

// NewVlansClient creates a new VLANs client.
func NewVlansClient(client *Client) *VlansClient {
	return &VlansClient{
		client: client,
	}
}

// Get implements cloudcontrol.VlansClient.Get. Like network-domain lookup,
// RESOURCE_NOT_FOUND yields (nil, nil).
func (c *VlansClient) Get(ctx context.Context, vlanID string) (*cloudcontrol.Vlan, error) {
	err := c.client.checkClosed()
	if err != nil {
		return nil, err
	}

	orgID, err := c.client.organizationID(ctx)
	if err != nil {
		return nil, err
	}

	path := c.client.versionedPath("{organizationId}/network/vlan/{vlanId}")

	resp, err := c.client.transport.Get(ctx, path, map[string]string{
		"organizationId": orgID,
		"vlanId":         vlanID,
	}, nil)
	if err != nil {
		if cloudcontrol.IsNotFound(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting VLAN: %w", err)
	}

	var vlan cloudcontrol.Vlan

	err = json.Unmarshal(resp.Body, &vlan)
	if err != nil {
		return nil, fmt.Errorf("parsing VLAN: %w", err)
	}

	return &vlan, nil
}

// List implements cloudcontrol.VlansClient.List.
func (c *VlansClient) List(ctx context.Context, networkDomainID string, paging *cloudcontrol.Paging) (*cloudcontrol.VlanPage, error) {
	err := c.client.checkClosed()
	if err != nil {
		return nil, err
	}

	orgID, err := c.client.organizationID(ctx)
	if err != nil {
		return nil, err
	}

	query := paging.ToValues()
	query.Set("networkDomainId", networkDomainID)

	path := c.client.versionedPath("{organizationId}/network/vlan")

	resp, err := c.client.transport.Get(ctx, path, map[string]string{"organizationId": orgID}, query)
	if err != nil {
		return nil, fmt.Errorf("listing VLANs: %w", err)
	}

	var page cloudcontrol.VlanPage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing VLAN list: %w", err)
	}

	return &page, nil
}
