// Package xueqiu provides types, interfaces, and helpers for working with the
// Xueqiu (雪球) financial-data web API and the auxiliary data providers
// reachable through the same client (CSIndex, Danjuan, Eastmoney).
//
// # Overview
//
// The xueqiu package defines the response envelope, the error taxonomy, the
// payload types for every endpoint family (realtime quotes, financial
// statements, research reports, capital flows, F10 company data, portfolios,
// cubes, symbol suggestion, and the external fund/index providers), and the
// interfaces for the endpoint sub-clients. A concrete implementation of these
// clients is provided by the xqclient package, which wires configuration,
// transport, retries, and credential policy. Most consumers should import
// xqclient to construct a client and then interact with the interfaces
// exposed here.
//
// Getting a client
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
//	  cli, err := xqclient.New(&xueqiu.Config{Cookie: "xq_a_token=..."})
//	  if err != nil { log.Fatal(err) }
//
//	  quotes, err := cli.Realtime().Quotec(ctx, []string{"SH600000"})
//	  if err != nil { log.Fatal(err) }
//	  _ = quotes
//	}
//
// # Envelopes
//
// Xueqiu endpoints disagree about their response envelope. Some wrap payloads
// as {"data": ..., "error_code": 0, "error_description": ...}, some as
// {"code": 0, "message": ..., "success": true, "data": ...}, and some return
// bare JSON with no envelope at all. Response[T] normalizes all three into a
// single shape; see NormalizeEnvelope for the exact rules.
//
// # Errors
//
// All failures surface as distinct, errors.As-friendly categories: AuthError,
// HTTPError, DecodeError, APIError, and SchemaError. Transport-level failures
// (connection, timeout) are returned wrapped so the original cause remains
// reachable. Retries happen inside the transport and are never observable to
// callers except as latency.
package xueqiu
