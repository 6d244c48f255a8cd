// Package ccclient provides the primary entry point for constructing a
// CloudControl API client that implements the cloudcontrol.Client interface.
//
// It layers configuration and the HTTP transport on top of the resource
// interfaces and types defined in the cloudcontrol package. Most applications
// should import ccclient to build a client, then use the returned
// cloudcontrol.Client to access resource-specific clients, for example
// NetworkDomains() and Vlans().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/tintoy/cloudcontrol-client-core/pkg/ccclient"
//	  "github.com/tintoy/cloudcontrol-client-core/pkg/cloudcontrol"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := ccclient.New(&cloudcontrol.Config{
//	    BaseAddress: "https://api.example.com",
//	    Username:    "user",
//	    Password:    "pass",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  domains, err := cli.NetworkDomains().List(ctx, "NA9", nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = domains
//	}
//
// The client validates its arguments synchronously: a missing base address or
// missing credentials fail before any network access. Credentials are sent
// preemptively with every request (the API does not use challenge-driven
// authentication).
//
// NewWithPassword wraps New for the common base-address-plus-credentials case.
package ccclient
