// Package xqclient provides the primary entry point for constructing a typed
// Xueqiu client that implements the xueqiu.Client interface.
//
// It layers configuration normalization and the HTTP transport (cookie
// policy, retries, envelope checking) on top of the endpoint interfaces and
// types defined in the xueqiu package. Most applications should import
// xqclient to build a client, then use the returned xueqiu.Client to access
// the endpoint families, for example Realtime(), Finance(), F10().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/liqiongyu/xueqiu-api/pkg/xqclient"
//	  "github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: no cookie. Only Realtime().Quotec works without one.
//	  cli, err := xqclient.New(&xueqiu.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a browser cookie for the full API surface:
//	  cli, err = xqclient.New(&xueqiu.Config{
//	    Cookie: "xq_a_token=...; u=...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.Realtime().Quotec(ctx, "SH600519")
//	  if err != nil { log.Fatal(err) }
//	  _ = resp
//	}
//
// # Environment
//
// NewFromEnv reads the cookie and client settings from XUEQIU_TOKEN /
// XUEQIU_COOKIE, XUEQIU_BASE_URL, XUEQIU_TIMEOUT, XUEQIU_MAX_RETRIES,
// XUEQIU_USER_AGENT, and XUEQIU_DEBUG.
package xqclient
