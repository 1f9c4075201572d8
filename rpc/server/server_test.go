package server

import (
	"net"
	"testing"

	"github.com/ValentinKolb/oarr/lib/array"
	"github.com/ValentinKolb/oarr/lib/store"
	"github.com/ValentinKolb/oarr/rpc/common"
	"github.com/ValentinKolb/oarr/rpc/serializer"
	"github.com/ValentinKolb/oarr/rpc/transport"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loopbackTransport hands requests directly to the registered handler
type loopbackTransport struct {
	handler transport.ServerHandleFunc
}

func (l *loopbackTransport) RegisterHandler(handler transport.ServerHandleFunc) {
	l.handler = handler
}
func (l *loopbackTransport) Listen(common.ServerConfig) error { return nil }
func (l *loopbackTransport) Addr() net.Addr                  { return nil }
func (l *loopbackTransport) Close() error                    { return nil }

func newTestServer(t *testing.T, s serializer.IRPCSerializer) *loopbackTransport {
	t.Helper()
	lt := &loopbackTransport{}
	srv := NewRPCServer(common.ServerConfig{
		Shards: []common.ServerShard{
			{ShardID: 100, Engine: array.ImplStamp, Length: 100},
			{ShardID: 200, Engine: array.ImplOverlay, Length: 100},
		},
		LogLevel:       "error",
		MetricsEnabled: true,
	}, lt, s)
	require.NoError(t, srv.Serve())
	require.NotNil(t, lt.handler)
	return lt
}

func roundTrip(t *testing.T, lt *loopbackTransport, s serializer.IRPCSerializer, shardId uint64, req *common.Message) *common.Message {
	t.Helper()
	reqBytes, err := s.Serialize(*req)
	require.NoError(t, err)
	var resp common.Message
	require.NoError(t, s.Deserialize(lt.handler(shardId, reqBytes), &resp))
	return &resp
}

func TestServerHandle(t *testing.T) {
	s := serializer.NewBinarySerializer()
	lt := newTestServer(t, s)

	for _, shardId := range []uint64{100, 200} {
		resp := roundTrip(t, lt, s, shardId, common.NewSetOneRequest(0, 9))
		require.NoError(t, resp.ResponseErr())

		resp = roundTrip(t, lt, s, shardId, common.NewSetAllRequest(10))
		require.NoError(t, resp.ResponseErr())

		resp = roundTrip(t, lt, s, shardId, common.NewSetOneRequest(3, 99))
		require.NoError(t, resp.ResponseErr())

		resp = roundTrip(t, lt, s, shardId, common.NewGetRequest(0))
		require.NoError(t, resp.ResponseErr())
		assert.Equal(t, uint8(10), resp.Value)

		resp = roundTrip(t, lt, s, shardId, common.NewGetRequest(3))
		require.NoError(t, resp.ResponseErr())
		assert.Equal(t, uint8(99), resp.Value)

		resp = roundTrip(t, lt, s, shardId, common.NewGetRequest(100))
		assert.True(t, errors.Is(resp.ResponseErr(), array.ErrOutOfRange))
	}
}

func TestTwoServersInOneProcess(t *testing.T) {
	s := serializer.NewJSONSerializer()
	first := newTestServer(t, s)
	second := newTestServer(t, s)

	resp := roundTrip(t, first, s, 100, common.NewSetAllRequest(7))
	require.NoError(t, resp.ResponseErr())

	resp = roundTrip(t, second, s, 100, common.NewGetRequest(5))
	require.NoError(t, resp.ResponseErr())
	assert.Equal(t, uint8(0), resp.Value)

	resp = roundTrip(t, first, s, 100, common.NewGetRequest(5))
	require.NoError(t, resp.ResponseErr())
	assert.Equal(t, uint8(7), resp.Value)
}

func TestServerShardsAreIndependent(t *testing.T) {
	s := serializer.NewJSONSerializer()
	lt := newTestServer(t, s)

	require.NoError(t, roundTrip(t, lt, s, 100, common.NewSetAllRequest(7)).ResponseErr())

	resp := roundTrip(t, lt, s, 200, common.NewGetRequest(5))
	require.NoError(t, resp.ResponseErr())
	assert.Equal(t, uint8(0), resp.Value)
}

func TestServerUnknownShard(t *testing.T) {
	s := serializer.NewBinarySerializer()
	lt := newTestServer(t, s)

	resp := roundTrip(t, lt, s, 999, common.NewGetRequest(0))
	assert.Equal(t, common.MsgTError, resp.MsgType)
	assert.True(t, errors.Is(resp.ResponseErr(), store.NewError(store.RetCInvalidOperation, "")))
}

func TestServerInvalidRequest(t *testing.T) {
	s := serializer.NewJSONSerializer()
	lt := newTestServer(t, s)

	var resp common.Message
	require.NoError(t, s.Deserialize(lt.handler(100, []byte("{not json")), &resp))
	assert.Equal(t, common.MsgTError, resp.MsgType)
	assert.Error(t, resp.ResponseErr())
}

func TestServerRejectsInvalidConfig(t *testing.T) {
	srv := NewRPCServer(common.ServerConfig{
		Shards:   []common.ServerShard{{ShardID: 1, Engine: "btree", Length: 10}},
		LogLevel: "error",
	}, &loopbackTransport{}, serializer.NewBinarySerializer())
	assert.Error(t, srv.Serve())

	srv = NewRPCServer(common.ServerConfig{LogLevel: "error"}, &loopbackTransport{}, serializer.NewBinarySerializer())
	assert.Error(t, srv.Serve())

	srv = NewRPCServer(common.ServerConfig{
		Shards:   []common.ServerShard{{ShardID: 1, Engine: array.ImplStamp, Length: 10}},
		LogLevel: "verbose",
	}, &loopbackTransport{}, serializer.NewBinarySerializer())
	assert.Error(t, srv.Serve())
}
