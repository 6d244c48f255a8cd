package cloudcontrol

import (
	"context"
	"time"
)

// AccountClient provides access to the authenticated account.
type AccountClient interface {
	// GetAccount returns the cached account, fetching it once if the cache
	// is empty.
	GetAccount(ctx context.Context) (*Account, error)

	// RefreshAccount always fetches the account, overwriting the cache.
	RefreshAccount(ctx context.Context) (*Account, error)
}

// NetworkDomainsClient provides access to network domain resources.
type NetworkDomainsClient interface {
	// Get looks up a network domain by id. Returns (nil, nil) when the API
	// reports RESOURCE_NOT_FOUND.
	Get(ctx context.Context, networkDomainID string) (*NetworkDomain, error)

	// List returns one page of the network domains in a datacenter. A nil
	// paging uses the server's default page size.
	List(ctx context.Context, datacenterID string, paging *Paging) (*NetworkDomainPage, error)

	// Deploy starts deployment of a new network domain and returns its id.
	Deploy(ctx context.Context, request *DeployNetworkDomain) (string, error)

	// Delete starts deletion of a network domain.
	Delete(ctx context.Context, networkDomainID string) error
}

// VlansClient provides access to VLAN resources.
type VlansClient interface {
	// Get looks up a VLAN by id. Returns (nil, nil) when the API reports
	// RESOURCE_NOT_FOUND.
	Get(ctx context.Context, vlanID string) (*Vlan, error)

	// List returns one page of the VLANs in a network domain. A nil paging
	// uses the server's default page size.
	List(ctx context.Context, networkDomainID string, paging *Paging) (*VlanPage, error)
}

// Client is a session-scoped CloudControl API client. It is safe for
// concurrent use and intended to be reused across many calls.
type Client interface {
	AccountClient

	NetworkDomains() NetworkDomainsClient
	Vlans() VlansClient

	// Reset clears the cached account, forcing the next organization-scoped
	// call to fetch it again.
	Reset() error

	// Close releases the underlying transport. The first call wins; every
	// later call, and any other method called after Close, returns
	// ErrClientClosed.
	Close() error
}

// Logger is the optional structured logger used by the transport's debug
// request/response logging. The client itself never logs.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a cloudcontrol.Client.
type Config struct {
	// BaseAddress is the base URL of the CloudControl API
	// (e.g. "https://api.example.com"). ccclient.New trims a trailing slash
	// and adds "https://" if no scheme is present.
	BaseAddress string

	// Username and Password authenticate every request via HTTP basic auth.
	// The authorization header is attached eagerly, not challenge-driven.
	Username string
	Password string

	// APIVersion selects the versioned API prefix. Defaults to "2.4".
	APIVersion string

	// HTTPTimeout is an optional whole-request timeout. Per-request
	// deadlines are normally controlled via context.
	HTTPTimeout time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables HTTP request/response logging when a Logger is set.
	Debug bool

	// Logger receives debug HTTP logs. Nil disables them.
	Logger Logger
}
