package serializer

import (
	"bytes"
	"encoding/gob"
	"sync"

	"github.com/ValentinKolb/oarr/rpc/common"
	"github.com/pkg/errors"
)

// NewGOBSerializer creates a serializer using Go's gob format.
// Every payload is a self-contained gob stream carrying its own type information.
func NewGOBSerializer() IRPCSerializer {
	return &gobSerializerImpl{
		buffers: sync.Pool{
			New: func() interface{} { return new(bytes.Buffer) },
		},
	}
}

type gobSerializerImpl struct {
	buffers sync.Pool
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.IRPCSerializer)
// --------------------------------------------------------------------------

func (g *gobSerializerImpl) Serialize(msg common.Message) ([]byte, error) {
	buf := g.buffers.Get().(*bytes.Buffer)
	buf.Reset()
	defer g.buffers.Put(buf)

	if err := gob.NewEncoder(buf).Encode(msg); err != nil {
		return nil, errors.Wrapf(err, "gob: encode %s message", msg.MsgType)
	}

	// the pooled buffer is reused, the caller gets its own copy
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

func (g *gobSerializerImpl) Deserialize(b []byte, msg *common.Message) error {
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(msg); err != nil {
		return errors.Wrap(err, "gob: decode message")
	}
	return nil
}
