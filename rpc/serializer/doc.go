// Package serializer provides message serialization for the rpc system.
// It defines a common interface and multiple implementations for serializing
// and deserializing common.Message values between client and server.
//
// Key Components:
//
//   - IRPCSerializer: Core interface that all serializer implementations must satisfy.
//
//   - binarySerializerImpl: Custom binary format optimized for speed and space.
//     A flags byte marks which optional fields follow, so zero fields cost nothing.
//     A SetOne request is at most 11 bytes.
//
//   - protoWireSerializerImpl: protocol buffers wire format built with protowire,
//     readable by any protobuf implementation. Unknown fields are skipped, so the
//     format can be extended without breaking older peers.
//
//   - gobSerializerImpl: Go's built-in gob encoding, with larger payloads.
//
//   - jsonSerializerImpl: JSON encoding, useful for debugging or for clients
//     talking to the http transport with curl.
//
// Thread Safety:
//
//	All serializer implementations are stateless and safe for concurrent use
//	across multiple goroutines without additional synchronization.
//
// Usage:
//
//	s := serializer.NewBinarySerializer()
//	data, err := s.Serialize(*common.NewSetOneRequest(3, 99))
//	// ... send data ...
//	var resp common.Message
//	err = s.Deserialize(receivedData, &resp)
package serializer
