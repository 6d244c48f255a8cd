// Package ccclient provides the main entry point for creating CloudControl API clients
package ccclient

import (
	"strings"

	"github.com/tintoy/cloudcontrol-client-core/internal/client"
	"github.com/tintoy/cloudcontrol-client-core/internal/transport"
	"github.com/tintoy/cloudcontrol-client-core/pkg/cloudcontrol"
)

// New creates a new CloudControl API client.
//
// The base address and credentials are validated before any network access:
// a nil config, empty base address, or missing credentials fail with the
// corresponding static error from pkg/cloudcontrol.
func New(config *cloudcontrol.Config) (cloudcontrol.Client, error) {
	if config == nil {
		return nil, cloudcontrol.ErrConfigRequired
	}

	if config.BaseAddress == "" {
		return nil, cloudcontrol.ErrBaseAddressRequired
	}

	if config.Username == "" || config.Password == "" {
		return nil, cloudcontrol.ErrCredentialsRequired
	}

	// Normalize the base address
	baseAddress := strings.TrimSuffix(config.BaseAddress, "/")
	if !strings.HasPrefix(baseAddress, "http://") && !strings.HasPrefix(baseAddress, "https://") {
		baseAddress = "https://" + baseAddress
	}

	opts := createTransportOptions(config)

	tx := transport.NewClient(baseAddress, config.Username, config.Password, opts...)

	return client.New(tx, config.APIVersion), nil
}

// NewWithPassword creates a new client from a base address and credentials.
func NewWithPassword(baseAddress, username, password string) (cloudcontrol.Client, error) {
	return New(&cloudcontrol.Config{
		BaseAddress: baseAddress,
		Username:    username,
		Password:    password,
	})
}

// createTransportOptions builds transport options from config.
func createTransportOptions(config *cloudcontrol.Config) []transport.Option {
	var opts []transport.Option

	if config.Logger != nil {
		opts = append(opts, transport.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, transport.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, transport.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, transport.WithTimeout(config.HTTPTimeout))
	}

	return opts
}
