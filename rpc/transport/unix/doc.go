// Package unix implements a transport layer for the RPC system using Unix domain
// sockets, for clients running on the same machine as the server.
//
// This package extends the base transport layer with Unix socket-specific connectors
// while inheriting connection pooling, request routing and error handling from the
// base package. The server removes a stale socket file before listening and again
// when it is closed. The default buffer size is 64 KB.
package unix
