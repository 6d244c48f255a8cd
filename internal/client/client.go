// Package client implements cloudcontrol.Client on top of the transport
// layer.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync/atomic"

	"github.com/tintoy/cloudcontrol-client-core/internal/constants"
	"github.com/tintoy/cloudcontrol-client-core/internal/transport"
	"github.com/tintoy/cloudcontrol-client-core/pkg/cloudcontrol"
)

// Transport is the subset of the transport layer the client depends on.
type Transport interface {
	Get(ctx context.Context, path string, pathParams map[string]string, query url.Values) (*transport.Response, error)
	Post(ctx context.Context, path string, pathParams map[string]string, body interface{}) (*transport.Response, error)
	Close() error
}

// Client implements the cloudcontrol.Client interface.
//
// The only mutable state is the closed flag and the single-slot account
// cache. Concurrent account refreshes race benignly (accounts are
// interchangeable snapshots, last write wins); the closed flag uses an
// atomic exchange so the transport is torn down exactly once.
type Client struct {
	transport  Transport
	apiVersion string

	closed  atomic.Bool
	account atomic.Pointer[cloudcontrol.Account]

	networkDomains cloudcontrol.NetworkDomainsClient
	vlans          cloudcontrol.VlansClient
}

// New creates a client over the given transport. An empty apiVersion selects
// the default versioned API prefix.
func New(tx Transport, apiVersion string) *Client {
	if apiVersion == "" {
		apiVersion = constants.DefaultAPIVersion
	}

	client := &Client{
		transport:  tx,
		apiVersion: apiVersion,
	}

	client.networkDomains = NewNetworkDomainsClient(client)
	client.vlans = NewVlansClient(client)

	return client
}

// NetworkDomains implements cloudcontrol.Client.NetworkDomains.
func (c *Client) NetworkDomains() cloudcontrol.NetworkDomainsClient {
	return c.networkDomains
}

// Vlans implements cloudcontrol.Client.Vlans.
func (c *Client) Vlans() cloudcontrol.VlansClient {
	return c.vlans
}

// Close implements cloudcontrol.Client.Close. The first caller tears down
// the transport; every later call returns cloudcontrol.ErrClientClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return cloudcontrol.ErrClientClosed
	}

	return c.transport.Close()
}

// Reset implements cloudcontrol.Client.Reset.
func (c *Client) Reset() error {
	err := c.checkClosed()
	if err != nil {
		return err
	}

	c.account.Store(nil)

	return nil
}

// GetAccount implements cloudcontrol.AccountClient.GetAccount.
func (c *Client) GetAccount(ctx context.Context) (*cloudcontrol.Account, error) {
	err := c.checkClosed()
	if err != nil {
		return nil, err
	}

	if account := c.account.Load(); account != nil {
		return account, nil
	}

	return c.fetchAccount(ctx)
}

// RefreshAccount implements cloudcontrol.AccountClient.RefreshAccount.
func (c *Client) RefreshAccount(ctx context.Context) (*cloudcontrol.Account, error) {
	err := c.checkClosed()
	if err != nil {
		return nil, err
	}

	return c.fetchAccount(ctx)
}

// fetchAccount fetches the authenticated account and overwrites the cache.
// The cache is only written once the response body has been fully decoded,
// so cancelled or failed calls leave it untouched.
func (c *Client) fetchAccount(ctx context.Context) (*cloudcontrol.Account, error) {
	resp, err := c.transport.Get(ctx, c.versionedPath("user/myUser"), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	var account cloudcontrol.Account

	err = json.Unmarshal(resp.Body, &account)
	if err != nil {
		return nil, fmt.Errorf("parsing account response: %w", err)
	}

	c.account.Store(&account)

	return &account, nil
}

// organizationID resolves the caller's organization id via the cached
// account. Callers never supply the organization id themselves.
func (c *Client) organizationID(ctx context.Context) (string, error) {
	account, err := c.GetAccount(ctx)
	if err != nil {
		return "", err
	}

	return account.OrganizationID.String(), nil
}

// versionedPath prefixes suffix with the versioned API root.
func (c *Client) versionedPath(suffix string) string {
	return "caas/" + c.apiVersion + "/" + suffix
}

func (c *Client) checkClosed() error {
	if c.closed.Load() {
		return cloudcontrol.ErrClientClosed
	}

	return nil
}
