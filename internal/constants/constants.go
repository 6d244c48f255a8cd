// Package constants holds shared defaults for the CloudControl client.
package constants

import "time"

// API defaults.
const (
	// DefaultAPIVersion is the versioned API prefix used when the caller
	// does not select one.
	DefaultAPIVersion = "2.4"

	// DefaultUserAgent is sent when the caller does not override it.
	DefaultUserAgent = "cloudcontrol-client-go"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Paging defaults.
const (
	// StandardPageSize is the page size the CLI requests by default.
	StandardPageSize = 50

	// MaxPageSize is the largest page size the API accepts.
	MaxPageSize = 250
)
