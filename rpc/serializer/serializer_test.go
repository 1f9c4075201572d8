package serializer

import (
	"reflect"
	"testing"

	"github.com/ValentinKolb/oarr/rpc/common"
	"google.golang.org/protobuf/encoding/protowire"
)

// testSerializers is a map of serializer name to factory function
var testSerializers = map[string]func() IRPCSerializer{
	"JSON":      NewJSONSerializer,
	"GOB":       NewGOBSerializer,
	"Binary":    NewBinarySerializer,
	"ProtoWire": NewProtoWireSerializer,
}

// testMessages creates a set of test messages with different fields filled
func testMessages() []common.Message {
	return []common.Message{
		// Basic message with just a type
		{MsgType: common.MsgTSuccess},

		// SetOne request
		{
			MsgType: common.MsgTArrSetOne,
			Index:   3,
			Value:   99,
		},

		// Get response with the maximal value
		{
			MsgType: common.MsgTArrGet,
			Value:   255,
		},

		// Get request with a negative index (rejected by the server, but must survive the wire)
		{
			MsgType: common.MsgTArrGet,
			Index:   -1,
		},

		// Error response with code
		{
			MsgType: common.MsgTArrGet,
			Code:    4,
			Err:     "index 100 out of range [0, 100)",
		},

		// Message with all fields filled
		{
			MsgType: common.MsgTCustom,
			Index:   1 << 40,
			Value:   7,
			Code:    1,
			Err:     "test error message",
			Meta:    []byte("test-meta-data"),
		},
	}
}

// TestSerializerRoundTrip tests that messages can be serialized and deserialized correctly
func TestSerializerRoundTrip(t *testing.T) {
	messages := testMessages()

	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			serializer := factory()

			for i, msg := range messages {
				// Serialize
				data, err := serializer.Serialize(msg)
				if err != nil {
					t.Errorf("Failed to serialize message %d: %v", i, err)
					continue
				}

				// Deserialize
				var result common.Message
				err = serializer.Deserialize(data, &result)
				if err != nil {
					t.Errorf("Failed to deserialize message %d: %v", i, err)
					continue
				}

				// Compare
				if !reflect.DeepEqual(msg, result) {
					t.Errorf("Message %d doesn't match after round trip:\nOriginal: %+v\nResult: %+v",
						i, msg, result)
				}
			}
		})
	}
}

// TestMessageTypes tests each message type with each serializer
func TestMessageTypes(t *testing.T) {
	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			serializer := factory()

			for msgType := common.MsgTSuccess; msgType <= common.MsgTCustom; msgType++ {
				msg := common.Message{MsgType: msgType}

				// Serialize
				data, err := serializer.Serialize(msg)
				if err != nil {
					t.Errorf("Failed to serialize message type %s: %v", msgType.String(), err)
					continue
				}

				// Deserialize
				var result common.Message
				err = serializer.Deserialize(data, &result)
				if err != nil {
					t.Errorf("Failed to deserialize message type %s: %v", msgType.String(), err)
					continue
				}

				// Check type
				if result.MsgType != msgType {
					t.Errorf("Message type doesn't match after round trip: Expected %s, got %s",
						msgType.String(), result.MsgType.String())
				}
			}
		})
	}
}

// TestEmptyMetaSlice checks that the byte oriented serializers keep empty but non-nil meta data
func TestEmptyMetaSlice(t *testing.T) {
	for _, name := range []string{"Binary", "ProtoWire"} {
		t.Run(name, func(t *testing.T) {
			serializer := testSerializers[name]()

			data, err := serializer.Serialize(common.Message{MsgType: common.MsgTCustom, Meta: []byte{}})
			if err != nil {
				t.Fatalf("Failed to serialize: %v", err)
			}

			var result common.Message
			if err := serializer.Deserialize(data, &result); err != nil {
				t.Fatalf("Failed to deserialize: %v", err)
			}
			if result.Meta == nil || len(result.Meta) != 0 {
				t.Errorf("Expected empty non-nil meta, got %#v", result.Meta)
			}
		})
	}
}

// TestInvalidBinaryData tests how the binary serializer handles corrupt or invalid data
func TestInvalidBinaryData(t *testing.T) {
	serializer := NewBinarySerializer()

	testCases := []struct {
		name        string
		data        []byte
		expectError bool
	}{
		{
			name:        "Empty data",
			data:        []byte{},
			expectError: true,
		},
		{
			name:        "Too short header",
			data:        []byte{1}, // Only message type, no flags
			expectError: true,
		},
		{
			name:        "Valid header only",
			data:        []byte{1, 0}, // Message type 1, no flags
			expectError: false,
		},
		{
			name:        "Truncated index",
			data:        []byte{1, hasIndex, 0, 0, 0}, // Claims an index but only 3 bytes provided
			expectError: true,
		},
		{
			name:        "Missing value",
			data:        []byte{1, hasValue},
			expectError: true,
		},
		{
			name:        "Invalid length for error",
			data:        []byte{1, hasErr, 0, 0, 0, 10}, // Claims error length 10 but no bytes provided
			expectError: true,
		},
		{
			name:        "Trailing bytes",
			data:        []byte{1, 0, 42},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var msg common.Message
			err := serializer.Deserialize(tc.data, &msg)

			if tc.expectError && err == nil {
				t.Errorf("Expected error but got none")
			} else if !tc.expectError && err != nil {
				t.Errorf("Did not expect error but got: %v", err)
			}
		})
	}
}

// TestInvalidProtoWireData tests how the protowire serializer handles corrupt or unknown data
func TestInvalidProtoWireData(t *testing.T) {
	serializer := NewProtoWireSerializer()

	// unknown fields are skipped
	data := protowire.AppendTag(nil, 42, protowire.BytesType)
	data = protowire.AppendString(data, "future field")
	data = protowire.AppendTag(data, fieldMsgType, protowire.VarintType)
	data = protowire.AppendVarint(data, uint64(common.MsgTArrGet))

	var msg common.Message
	if err := serializer.Deserialize(data, &msg); err != nil {
		t.Fatalf("Did not expect error but got: %v", err)
	}
	if msg.MsgType != common.MsgTArrGet {
		t.Errorf("Expected msg type get, got %s", msg.MsgType)
	}

	// value out of range
	data = protowire.AppendTag(nil, fieldValue, protowire.VarintType)
	data = protowire.AppendVarint(data, 256)
	if err := serializer.Deserialize(data, &msg); err == nil {
		t.Errorf("Expected error for value 256")
	}

	// truncated bytes field
	data = protowire.AppendTag(nil, fieldErr, protowire.BytesType)
	data = append(data, 10, 'a')
	if err := serializer.Deserialize(data, &msg); err == nil {
		t.Errorf("Expected error for truncated string")
	}

	// truncated tag
	if err := serializer.Deserialize([]byte{0x80}, &msg); err == nil {
		t.Errorf("Expected error for truncated tag")
	}
}

// TestInvalidJSONData tests that the json serializer decodes strictly
func TestInvalidJSONData(t *testing.T) {
	serializer := NewJSONSerializer()

	testCases := []struct {
		name string
		data string
	}{
		{"Unknown field", `{"msg_type":"get","index":1,"shard":3}`},
		{"Trailing data", `{"msg_type":"get","index":1} {"msg_type":"get"}`},
		{"Unknown type", `{"msg_type":"set"}`},
		{"Not an object", `[1,2]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var msg common.Message
			if err := serializer.Deserialize([]byte(tc.data), &msg); err == nil {
				t.Errorf("Expected error for %s", tc.data)
			}
		})
	}
}

// TestGOBBuffersAreIndependent tests that pooled buffers never leak into returned payloads
func TestGOBBuffersAreIndependent(t *testing.T) {
	serializer := NewGOBSerializer()

	first, err := serializer.Serialize(*common.NewGetRequest(1))
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	snapshot := append([]byte(nil), first...)

	if _, err := serializer.Serialize(*common.NewSetAllRequest(200)); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !reflect.DeepEqual(first, snapshot) {
		t.Fatalf("First payload changed after a second Serialize call")
	}

	var msg common.Message
	if err := serializer.Deserialize(first, &msg); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if msg.MsgType != common.MsgTArrGet || msg.Index != 1 {
		t.Errorf("Unexpected message %+v", msg)
	}
}
