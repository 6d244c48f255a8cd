package client_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tintoy/cloudcontrol-client-core/internal/client"
	"github.com/tintoy/cloudcontrol-client-core/internal/transport"
	"github.com/tintoy/cloudcontrol-client-core/pkg/cloudcontrol"
)

// countingTransport counts teardown calls on the wrapped transport.
type countingTransport struct {
	client.Transport

	closes atomic.Int32
}

func (t *countingTransport) Close() error {
	t.closes.Add(1)

	return t.Transport.Close()
}

func TestClient_GetAccount(t *testing.T) {
	t.Parallel()
	t.Run("caches after first fetch", func(t *testing.T) {
		t.Parallel()

		cli, _, accountRequests := newTestClient(t, nil)

		first, err := cli.GetAccount(context.Background())
		require.NoError(t, err)
		assert.Equal(t, testUser, first.UserName)
		assert.Equal(t, testOrgID, first.OrganizationID.String())

		second, err := cli.GetAccount(context.Background())
		require.NoError(t, err)
		assert.Same(t, first, second)

		assert.Equal(t, int32(1), accountRequests.Load(), "second call must not hit the network")
	})

	t.Run("refresh always fetches", func(t *testing.T) {
		t.Parallel()

		cli, _, accountRequests := newTestClient(t, nil)

		_, err := cli.GetAccount(context.Background())
		require.NoError(t, err)

		_, err = cli.RefreshAccount(context.Background())
		require.NoError(t, err)

		assert.Equal(t, int32(2), accountRequests.Load())
	})

	t.Run("reset clears the cache", func(t *testing.T) {
		t.Parallel()

		cli, _, accountRequests := newTestClient(t, nil)

		_, err := cli.GetAccount(context.Background())
		require.NoError(t, err)

		require.NoError(t, cli.Reset())

		_, err = cli.GetAccount(context.Background())
		require.NoError(t, err)

		assert.Equal(t, int32(2), accountRequests.Load())
	})

	t.Run("cancelled fetch leaves the cache unchanged", func(t *testing.T) {
		t.Parallel()

		cli, _, accountRequests := newTestClient(t, nil)

		cached, err := cli.GetAccount(context.Background())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = cli.RefreshAccount(ctx)
		require.Error(t, err)
		require.ErrorIs(t, err, context.Canceled)

		// The failed refresh must not have evicted or replaced the account.
		account, err := cli.GetAccount(context.Background())
		require.NoError(t, err)
		assert.Same(t, cached, account)
		assert.Equal(t, int32(1), accountRequests.Load())
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Close(t *testing.T) {
	t.Parallel()
	t.Run("second close fails", func(t *testing.T) {
		t.Parallel()

		cli, _, _ := newTestClient(t, nil)

		require.NoError(t, cli.Close())
		require.ErrorIs(t, cli.Close(), cloudcontrol.ErrClientClosed)
	})

	t.Run("methods fail after close without network I/O", func(t *testing.T) {
		t.Parallel()

		cli, _, accountRequests := newTestClient(t, nil)
		require.NoError(t, cli.Close())

		ctx := context.Background()

		_, err := cli.GetAccount(ctx)
		require.ErrorIs(t, err, cloudcontrol.ErrClientClosed)

		_, err = cli.RefreshAccount(ctx)
		require.ErrorIs(t, err, cloudcontrol.ErrClientClosed)

		require.ErrorIs(t, cli.Reset(), cloudcontrol.ErrClientClosed)

		_, err = cli.NetworkDomains().Get(ctx, "domain-id")
		require.ErrorIs(t, err, cloudcontrol.ErrClientClosed)

		_, err = cli.NetworkDomains().List(ctx, "NA9", nil)
		require.ErrorIs(t, err, cloudcontrol.ErrClientClosed)

		_, err = cli.NetworkDomains().Deploy(ctx, &cloudcontrol.DeployNetworkDomain{})
		require.ErrorIs(t, err, cloudcontrol.ErrClientClosed)

		require.ErrorIs(t, cli.NetworkDomains().Delete(ctx, "domain-id"), cloudcontrol.ErrClientClosed)

		_, err = cli.Vlans().Get(ctx, "vlan-id")
		require.ErrorIs(t, err, cloudcontrol.ErrClientClosed)

		_, err = cli.Vlans().List(ctx, "domain-id", nil)
		require.ErrorIs(t, err, cloudcontrol.ErrClientClosed)

		assert.Equal(t, int32(0), accountRequests.Load())
	})

	t.Run("concurrent close tears down the transport exactly once", func(t *testing.T) {
		t.Parallel()

		tx := &countingTransport{
			Transport: transport.NewClient("https://api.example.com", "user", "password"),
		}
		cli := client.New(tx, "")

		const closers = 32

		var (
			waitGroup sync.WaitGroup
			succeeded atomic.Int32
		)

		for closer := 0; closer < closers; closer++ {
			waitGroup.Add(1)

			go func() {
				defer waitGroup.Done()

				if cli.Close() == nil {
					succeeded.Add(1)
				}
			}()
		}

		waitGroup.Wait()

		assert.Equal(t, int32(1), succeeded.Load(), "exactly one Close call may win")
		assert.Equal(t, int32(1), tx.closes.Load(), "transport must be torn down exactly once")
	})
}
