// Package base provides a foundation for the socket transport layers of the overlay
// array server, implementing core functionality for RPC communication independent of
// the specific network protocol (TCP, Unix sockets, etc.). It serves as a base layer
// that is extended with protocol-specific connectors.
//
// Key Components:
//
//   - IClientConnector/IServerConnector: Interfaces for protocol-specific operations
//     (dialing, listening, socket options).
//
//   - clientTransport: Manages multiple connections per endpoint with round-robin
//     selection. Requests are multiplexed over a connection using unique request IDs,
//     responses are matched to their waiting caller through a concurrent map.
//
//   - serverTransport: Accepts connections and routes requests to the registered
//     handler based on the shard ID of each frame. Every connection processes at most
//     WorkersPerConn requests concurrently.
//
// Frame Format:
//
//	8 bytes shard ID | 8 bytes request ID | 4 bytes payload length | payload
//
// All integers are big endian. Payloads larger than 64 MiB are rejected.
//
// Failed requests are retried with exponential backoff. A retried SetAll or SetOne
// may therefore be applied twice, which is harmless because both writes are idempotent.
package base
