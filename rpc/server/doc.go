// Package server implements the RPC server hosting overlay arrays.
//
// Each configured shard owns one overlay array (engine and length taken from
// common.ServerShard) wrapped in a local store, so that concurrent requests are
// serialized by the store lock. Incoming frames are routed by shard ID, decoded
// with the configured serializer and dispatched to an IRPCServerAdapter.
//
// Key Components:
//
//   - IRPCServerAdapter: Translates a request Message into calls on a store.IStore.
//
//   - NewIStoreServerAdapter: Adapter for the SetOne, SetAll, Get and Info operations.
//     Info responses carry the json encoded array.ArrayInfo in the Meta field.
//
//   - NewRPCServer: Creates a server with the given transport and serializer.
//     Serve blocks until Close is called.
//
// Metrics:
//
// With MetricsEnabled the server counts requests and errors per shard and message
// type and records request latency histograms (VictoriaMetrics). The metrics are
// served on GET /metrics of the http transport and, if MetricsEndpoint is set, on a
// dedicated listener.
//
// Usage Example:
//
//	config := common.ServerConfig{
//	  Shards: []common.ServerShard{
//	    {ShardID: 100, Engine: array.ImplStamp, Length: 100},
//	    {ShardID: 200, Engine: array.ImplOverlay, Length: 100},
//	  },
//	  TimeoutSecond: 5,
//	  LogLevel:      "info",
//	  Transport:     common.ServerTransportConfig{Endpoint: "0.0.0.0:8080"},
//	}
//
//	s := server.NewRPCServer(config, tcp.NewTCPServerTransport(0, 1), serializer.NewBinarySerializer())
//	if err := s.Serve(); err != nil {
//	  log.Fatalf("Server error: %v", err)
//	}
package server
