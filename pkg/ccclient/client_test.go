package ccclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tintoy/cloudcontrol-client-core/pkg/ccclient"
	"github.com/tintoy/cloudcontrol-client-core/pkg/cloudcontrol"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *cloudcontrol.Config
		wantErr error
	}{
		{
			name:    "nil config",
			config:  nil,
			wantErr: cloudcontrol.ErrConfigRequired,
		},
		{
			name:    "missing base address",
			config:  &cloudcontrol.Config{Username: "user", Password: "password"},
			wantErr: cloudcontrol.ErrBaseAddressRequired,
		},
		{
			name:    "missing user name",
			config:  &cloudcontrol.Config{BaseAddress: "https://api.example.com", Password: "password"},
			wantErr: cloudcontrol.ErrCredentialsRequired,
		},
		{
			name:    "missing password",
			config:  &cloudcontrol.Config{BaseAddress: "https://api.example.com", Username: "user"},
			wantErr: cloudcontrol.ErrCredentialsRequired,
		},
	}

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cli, err := ccclient.New(testCase.config)
			require.ErrorIs(t, err, testCase.wantErr)
			assert.Nil(t, cli)
		})
	}
}

func TestNewWithPassword(t *testing.T) {
	t.Parallel()

	_, err := ccclient.NewWithPassword("", "user", "password")
	require.ErrorIs(t, err, cloudcontrol.ErrBaseAddressRequired)

	cli, err := ccclient.NewWithPassword("https://api.example.com", "user", "password")
	require.NoError(t, err)
	require.NotNil(t, cli)
	require.NoError(t, cli.Close())
}

func TestNew_NormalizesBaseAddress(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/caas/2.4/user/myUser", request.URL.Path)
		_ = json.NewEncoder(writer).Encode(map[string]string{
			"userName":       "user",
			"organizationId": "d5bf1b27-c5d6-4b2b-b0e0-2f6e7b6a2f9b",
		})
	}))
	defer server.Close()

	// Trailing slash must not produce a double slash in request paths.
	cli, err := ccclient.New(&cloudcontrol.Config{
		BaseAddress: server.URL + "/",
		Username:    "user",
		Password:    "password",
	})
	require.NoError(t, err)

	defer func() { _ = cli.Close() }()

	account, err := cli.GetAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user", account.UserName)
}
