// Package client implements the RPC client for the overlay array server.
// It provides an implementation of the store.IStore interface that forwards
// every operation to a shard on a remote server.
//
// Errors reported by the server keep their return code: a Get or SetOne with an
// invalid index fails with a *store.Error that matches array.ErrOutOfRange.
//
// Usage Example:
//
//	// Configure the client
//	config := common.ClientConfig{
//	  TimeoutSecond: 5,
//	  Transport: common.ClientTransportConfig{
//	    Endpoints:              []string{"localhost:8080"},
//	    RetryCount:             3,
//	    ConnectionsPerEndpoint: 1,
//	  },
//	}
//
//	// Create store client for shard 100
//	arr, _ := client.NewRPCStore(100, config, tcp.NewTCPClientTransport(), serializer.NewBinarySerializer())
//
//	// Use the array
//	arr.SetAll(10)
//	arr.SetOne(3, 99)
//	value, _ := arr.Get(3)
//
// Thread Safety:
//
//	The client is safe for concurrent use. Concurrent writes to the same shard are
//	ordered by the server in the order they arrive.
package client
