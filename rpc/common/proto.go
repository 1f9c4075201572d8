package common

import (
	"encoding/json"
	"fmt"

	"github.com/ValentinKolb/oarr/lib/store"
)

// --------------------------------------------------------------------------
// Message Structure
// --------------------------------------------------------------------------

// Message represents a single message used for both requests and responses.
// Which fields are used depends on the type of message.
type Message struct {
	// Type of message
	MsgType MessageType `json:"msg_type"`

	// General fields
	Index int64 `json:"index,omitempty"` // Used for: SetOne, Get
	Value uint8 `json:"value,omitempty"` // Used for: SetOne, SetAll (request), Get (response)

	// Response only fields
	Code uint8  `json:"code,omitempty"` // store.RetCode of a failed request, 0 on success
	Err  string `json:"err,omitempty"`  // Empty if no error, otherwise contains the error message

	// Meta information
	Meta []byte `json:"meta,omitempty"` // Used for: Info (response, json encoded array.ArrayInfo), Custom
}

// setErr stores err in the message, keeping the return code of *store.Error values
func (m *Message) setErr(err error) {
	if err == nil {
		return
	}
	m.Err = err.Error()
	if storeErr, ok := err.(*store.Error); ok {
		m.Code = uint8(storeErr.Code)
	} else {
		m.Code = uint8(store.RetCInternalError)
	}
}

// ResponseErr returns the error carried by a response as *store.Error, or nil
func (m *Message) ResponseErr() error {
	if m.MsgType != MsgTError && m.Err == "" {
		return nil
	}
	code := store.RetCode(m.Code)
	if code == store.RetCSuccess {
		code = store.RetCInternalError
	}
	return store.NewError(code, m.Err)
}

// --------------------------------------------------------------------------
// Message Factory Functions
// --------------------------------------------------------------------------

// NewSetOneRequest creates a new SetOne request
func NewSetOneRequest(index int, value byte) *Message {
	return &Message{
		MsgType: MsgTArrSetOne,
		Index:   int64(index),
		Value:   value,
	}
}

// NewSetOneResponse creates a new SetOne response
func NewSetOneResponse(err error) *Message {
	msg := &Message{
		MsgType: MsgTArrSetOne,
	}
	msg.setErr(err)
	return msg
}

// NewSetAllRequest creates a new SetAll request
func NewSetAllRequest(value byte) *Message {
	return &Message{
		MsgType: MsgTArrSetAll,
		Value:   value,
	}
}

// NewSetAllResponse creates a new SetAll response
func NewSetAllResponse(err error) *Message {
	msg := &Message{
		MsgType: MsgTArrSetAll,
	}
	msg.setErr(err)
	return msg
}

// NewGetRequest creates a new Get request
func NewGetRequest(index int) *Message {
	return &Message{
		MsgType: MsgTArrGet,
		Index:   int64(index),
	}
}

// NewGetResponse creates a new Get response
func NewGetResponse(value byte, err error) *Message {
	msg := &Message{
		MsgType: MsgTArrGet,
		Value:   value,
	}
	msg.setErr(err)
	return msg
}

// NewInfoRequest creates a new Info request
func NewInfoRequest() *Message {
	return &Message{
		MsgType: MsgTArrInfo,
	}
}

// NewInfoResponse creates a new Info response, info is the json encoded array.ArrayInfo
func NewInfoResponse(info []byte, err error) *Message {
	msg := &Message{
		MsgType: MsgTArrInfo,
		Meta:    info,
	}
	msg.setErr(err)
	return msg
}

// NewCustomRequest creates a new Custom request
func NewCustomRequest(meta []byte) *Message {
	return &Message{
		MsgType: MsgTCustom,
		Meta:    meta,
	}
}

// NewCustomResponse creates a new Custom response
func NewCustomResponse(meta []byte, err error) *Message {
	msg := &Message{
		MsgType: MsgTCustom,
		Meta:    meta,
	}
	msg.setErr(err)
	return msg
}

// NewErrorResponse creates a new Error response
func NewErrorResponse(code store.RetCode, err string) *Message {
	return &Message{
		MsgType: MsgTError,
		Code:    uint8(code),
		Err:     err,
	}
}

// --------------------------------------------------------------------------
// Message Type Definition
// --------------------------------------------------------------------------

// MessageType defines the type of message used in RPC communication.
type MessageType uint8

// String returns the string representation of a MessageType.
func (t MessageType) String() string {
	switch t {
	case MsgTArrSetOne:
		return "setOne"
	case MsgTArrSetAll:
		return "setAll"
	case MsgTArrGet:
		return "get"
	case MsgTArrInfo:
		return "info"
	case MsgTCustom:
		return "custom"
	case MsgTError:
		return "error"
	case MsgTSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// MarshalJSON implements the json.Marshaller interface for MessageType.
// This allows MessageType to be serialized as a string in JSON.
func (t MessageType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for MessageType.
// This allows MessageType to be deserialized from a string in JSON.
func (t *MessageType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	// Convert string back to MessageType
	switch s {
	case "setOne":
		*t = MsgTArrSetOne
	case "setAll":
		*t = MsgTArrSetAll
	case "get":
		*t = MsgTArrGet
	case "info":
		*t = MsgTArrInfo
	case "custom":
		*t = MsgTCustom
	case "error":
		*t = MsgTError
	case "success":
		*t = MsgTSuccess
	case "unknown":
		*t = MsgTUnknown
	default:
		return fmt.Errorf("unknown message type: %s", s)
	}

	return nil
}

// --------------------------------------------------------------------------
// Message Type Constants
// --------------------------------------------------------------------------

const (
	// General message types

	MsgTUnknown MessageType = iota
	MsgTSuccess             // Indicates a successful operation
	MsgTError               // Indicates an error occurred

	// IStore operations

	MsgTArrSetOne // Set a single index
	MsgTArrSetAll // Set every index
	MsgTArrGet    // Get the value at an index
	MsgTArrInfo   // Get metadata about the array

	// Custom operations

	MsgTCustom // Custom operation type
)
