package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/tintoy/cloudcontrol-client-core/internal/client"
	"github.com/tintoy/cloudcontrol-client-core/internal/transport"
	"github.com/tintoy/cloudcontrol-client-core/pkg/cloudcontrol"
)

const (
	testOrgID    = "d5bf1b27-c5d6-4b2b-b0e0-2f6e7b6a2f9b"
	accountPath  = "/caas/2.4/user/myUser"
	testUser     = "test-user"
	testPassword = "test-password"
)

// newTestClient builds a client against an httptest server. The handler
// receives every request that is not the account lookup; account lookups are
// served automatically and counted.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*client.Client, *httptest.Server, *atomic.Int32) {
	t.Helper()

	accountRequests := &atomic.Int32{}

	mux := http.NewServeMux()
	mux.HandleFunc(accountPath, func(writer http.ResponseWriter, request *http.Request) {
		accountRequests.Add(1)
		writeTestAccount(writer)
	})

	if handler != nil {
		mux.HandleFunc("/", handler)
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	tx := transport.NewClient(server.URL, testUser, testPassword)

	return client.New(tx, ""), server, accountRequests
}

func writeTestAccount(writer http.ResponseWriter) {
	_ = json.NewEncoder(writer).Encode(map[string]string{
		"userName":       testUser,
		"fullName":       "Test User",
		"organizationId": testOrgID,
	})
}

func writeEnvelope(writer http.ResponseWriter, status int, envelope cloudcontrol.APIResponse) {
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(envelope)
}
