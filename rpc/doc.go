// Package rpc provides remote access to overlay arrays. It acts as the
// communication layer between clients and a server hosting one or more arrays
// (shards).
//
// The package is organized into several subpackages:
//
//   - common: Core data structures and utilities used across the RPC system,
//     including the Message protocol, configuration structures, and logging.
//
//   - transport: Network communication abstractions with pluggable implementations
//     (TCP, Unix sockets, HTTP).
//
//   - serializer: Message serialization with multiple format options (Binary, JSON,
//     GOB, protobuf wire format) for converting between Message objects and bytes.
//
//   - client: RPC client implementing store.IStore, allowing applications to use a
//     remote array like a local one.
//
//   - server: RPC server that hosts the shards and dispatches incoming requests.
package rpc
