// Package http implements an HTTP-based transport layer for RPC communication
// with the overlay array server.
//
// Requests are sent as POST /{shardId} with the serialized message as body; the
// response body holds the serialized response message. When metrics are enabled
// the server additionally exposes GET /metrics in the prometheus text format.
//
// Key Components:
//
//   - httpClientTransport: Implements IRPCClientTransport with round-robin
//     selection across server endpoints and a simple retry loop. Endpoints may be
//     given with or without the http:// scheme.
//
//   - httpServerTransport: Implements IRPCServerTransport on top of net/http,
//     routing requests to the registered handler based on the shard ID in the URL.
//     In debug mode every request is logged with its status and duration.
//
// The client transport is safe for concurrent use once Connect returned.
package http
