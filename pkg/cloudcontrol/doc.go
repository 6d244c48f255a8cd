// Package cloudcontrol defines the public surface of the CloudControl API
// client: the Client interface, its resource sub-client interfaces, the data
// types exchanged with the API, and the error model.
//
// Create clients with github.com/tintoy/cloudcontrol-client-core/pkg/ccclient:
//
//	client, err := ccclient.NewWithPassword("https://api.example.com", "user", "password")
//	if err != nil {
//	    // handle argument error
//	}
//	defer client.Close()
//
//	account, err := client.GetAccount(ctx)
//
// Organization scoping is implicit: the first organization-scoped call fetches
// the authenticated account once and caches it on the client; every later call
// reuses the cached organization id until Reset or RefreshAccount.
//
// Single-resource lookups treat the API's RESOURCE_NOT_FOUND response code as
// a negative result rather than an error:
//
//	domain, err := client.NetworkDomains().Get(ctx, id)
//	if err != nil {
//	    // the server rejected the request
//	}
//	if domain == nil {
//	    // no such network domain
//	}
//
// Every other non-success response surfaces as *APIError carrying the
// API-level response code, message, and HTTP status.
package cloudcontrol
