// Package common provides core data structures and utilities shared by the
// rpc server, client, serializers and transports.
//
// Key Components:
//
//   - Message: Core data structure for all RPC communication, used for requests
//     and responses alike. Responses carry the store.RetCode of a failure in Code,
//     so clients can rebuild a *store.Error (and errors.Is(err, array.ErrOutOfRange)
//     keeps working across the network).
//
//   - MessageType: Enumeration of all supported operations (setOne, setAll, get,
//     info) and control messages (success, error, custom).
//
//   - ServerConfig: shards served by a node (ID=ENGINE:LENGTH), transport, timeout,
//     logging and metrics settings. ParseShards converts the command line format.
//
//   - ClientConfig: connection parameters, timeouts, and retry behavior.
//
//   - Logger: a zap backed implementation of Dragonboat's logger.ILogger. All
//     packages obtain their logger with logger.GetLogger and InitLoggers installs
//     the factory and sets the level.
package common
