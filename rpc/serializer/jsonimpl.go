package serializer

import (
	"bytes"
	"encoding/json"

	"github.com/ValentinKolb/oarr/rpc/common"
	"github.com/pkg/errors"
)

// NewJSONSerializer creates a serializer that writes messages as json objects.
// Decoding is strict: unknown fields and trailing data are rejected.
func NewJSONSerializer() IRPCSerializer {
	return &jsonSerializerImpl{}
}

type jsonSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.IRPCSerializer)
// --------------------------------------------------------------------------

func (j jsonSerializerImpl) Serialize(msg common.Message) ([]byte, error) {
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Wrapf(err, "json: encode %s message", msg.MsgType)
	}
	return b, nil
}

func (j jsonSerializerImpl) Deserialize(b []byte, msg *common.Message) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()

	if err := dec.Decode(msg); err != nil {
		return errors.Wrap(err, "json: decode message")
	}
	if dec.More() {
		return errors.New("json: trailing data after message")
	}
	return nil
}
