package serializer

import (
	"fmt"

	"github.com/ValentinKolb/oarr/rpc/common"
	"google.golang.org/protobuf/encoding/protowire"
)

// NewProtoWireSerializer creates a new serializer using the protocol buffers wire format.
// The encoding is equivalent to the following message definition:
//
//	message Message {
//	  uint32 msg_type = 1;
//	  sint64 index    = 2;
//	  uint32 value    = 3;
//	  uint32 code     = 4;
//	  string err      = 5;
//	  bytes  meta     = 6;
//	}
func NewProtoWireSerializer() IRPCSerializer {
	return &protoWireSerializerImpl{}
}

// protoWireSerializerImpl implements IRPCSerializer using protowire
type protoWireSerializerImpl struct {
}

// Field numbers of the wire format
const (
	fieldMsgType protowire.Number = 1
	fieldIndex   protowire.Number = 2
	fieldValue   protowire.Number = 3
	fieldCode    protowire.Number = 4
	fieldErr     protowire.Number = 5
	fieldMeta    protowire.Number = 6
)

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.IRPCSerializer)
// --------------------------------------------------------------------------

func (p protoWireSerializerImpl) Serialize(msg common.Message) ([]byte, error) {
	b := make([]byte, 0, 16+len(msg.Err)+len(msg.Meta))

	// proto3 semantics: zero values are omitted
	if msg.MsgType != 0 {
		b = protowire.AppendTag(b, fieldMsgType, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(msg.MsgType))
	}
	if msg.Index != 0 {
		b = protowire.AppendTag(b, fieldIndex, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeZigZag(msg.Index))
	}
	if msg.Value != 0 {
		b = protowire.AppendTag(b, fieldValue, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(msg.Value))
	}
	if msg.Code != 0 {
		b = protowire.AppendTag(b, fieldCode, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(msg.Code))
	}
	if msg.Err != "" {
		b = protowire.AppendTag(b, fieldErr, protowire.BytesType)
		b = protowire.AppendString(b, msg.Err)
	}
	if msg.Meta != nil {
		b = protowire.AppendTag(b, fieldMeta, protowire.BytesType)
		b = protowire.AppendBytes(b, msg.Meta)
	}

	return b, nil
}

func (p protoWireSerializerImpl) Deserialize(data []byte, msg *common.Message) error {
	*msg = common.Message{}

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("invalid tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == fieldMsgType && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return fmt.Errorf("invalid msg_type: %w", protowire.ParseError(n))
			}
			msg.MsgType = common.MessageType(v)
			data = data[n:]

		case num == fieldIndex && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return fmt.Errorf("invalid index: %w", protowire.ParseError(n))
			}
			msg.Index = protowire.DecodeZigZag(v)
			data = data[n:]

		case num == fieldValue && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return fmt.Errorf("invalid value: %w", protowire.ParseError(n))
			}
			if v > 0xff {
				return fmt.Errorf("value %d does not fit into a byte", v)
			}
			msg.Value = uint8(v)
			data = data[n:]

		case num == fieldCode && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return fmt.Errorf("invalid code: %w", protowire.ParseError(n))
			}
			msg.Code = uint8(v)
			data = data[n:]

		case num == fieldErr && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return fmt.Errorf("invalid err: %w", protowire.ParseError(n))
			}
			msg.Err = string(v)
			data = data[n:]

		case num == fieldMeta && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return fmt.Errorf("invalid meta: %w", protowire.ParseError(n))
			}
			msg.Meta = append(make([]byte, 0, len(v)), v...)
			data = data[n:]

		default:
			// skip unknown fields
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("invalid field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}

	return nil
}
