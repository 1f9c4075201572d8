package client

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ValentinKolb/oarr/lib/array"
	"github.com/ValentinKolb/oarr/lib/store"
	"github.com/ValentinKolb/oarr/rpc/common"
	"github.com/ValentinKolb/oarr/rpc/serializer"
	"github.com/ValentinKolb/oarr/rpc/server"
	"github.com/ValentinKolb/oarr/rpc/transport"
	"github.com/ValentinKolb/oarr/rpc/transport/http"
	"github.com/ValentinKolb/oarr/rpc/transport/tcp"
	"github.com/ValentinKolb/oarr/rpc/transport/unix"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transportPair struct {
	name     string
	endpoint func(t *testing.T) string
	server   func() transport.IRPCServerTransport
	client   func() transport.IRPCClientTransport
}

var transports = []transportPair{
	{
		name:     "tcp",
		endpoint: func(t *testing.T) string { return "127.0.0.1:0" },
		server:   func() transport.IRPCServerTransport { return tcp.NewTCPServerTransport(0, 4) },
		client:   tcp.NewTCPClientTransport,
	},
	{
		name: "unix",
		endpoint: func(t *testing.T) string {
			dir, err := os.MkdirTemp("", "oarr")
			require.NoError(t, err)
			t.Cleanup(func() { _ = os.RemoveAll(dir) })
			return filepath.Join(dir, "oarr.sock")
		},
		server: func() transport.IRPCServerTransport { return unix.NewUnixServerTransport(0, 4) },
		client: unix.NewUnixClientTransport,
	},
	{
		name:     "http",
		endpoint: func(t *testing.T) string { return "127.0.0.1:0" },
		server:   http.NewHttpServerTransport,
		client:   http.NewHttpClientTransport,
	},
}

var serializers = map[string]func() serializer.IRPCSerializer{
	"binary":    serializer.NewBinarySerializer,
	"json":      serializer.NewJSONSerializer,
	"gob":       serializer.NewGOBSerializer,
	"protowire": serializer.NewProtoWireSerializer,
}

// startServer starts a server with a stamp shard (100) and an overlay shard (200)
// and returns the address clients should connect to
func startServer(t *testing.T, tp transportPair, s serializer.IRPCSerializer) string {
	t.Helper()

	srvTransport := tp.server()
	srv := server.NewRPCServer(common.ServerConfig{
		Shards: []common.ServerShard{
			{ShardID: 100, Engine: array.ImplStamp, Length: 100},
			{ShardID: 200, Engine: array.ImplOverlay, Length: 100},
		},
		TimeoutSecond: 5,
		LogLevel:      "error",
		Transport:     common.ServerTransportConfig{Endpoint: tp.endpoint(t), WorkersPerConn: 4},
	}, srvTransport, s)

	done := make(chan error, 1)
	go func() { done <- srv.Serve() }()

	require.Eventually(t, func() bool { return srv.Addr() != nil }, 5*time.Second, 10*time.Millisecond)

	t.Cleanup(func() {
		assert.NoError(t, srv.Close())
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("server did not stop")
		}
	})

	return srv.Addr().String()
}

func newClient(t *testing.T, tp transportPair, s serializer.IRPCSerializer, addr string, shardId uint64) store.IStore {
	t.Helper()
	clientTransport := tp.client()
	arr, err := NewRPCStore(shardId, common.ClientConfig{
		TimeoutSecond: 5,
		Transport: common.ClientTransportConfig{
			Endpoints:              []string{addr},
			RetryCount:             2,
			ConnectionsPerEndpoint: 2,
		},
	}, clientTransport, s)
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientTransport.Close() })
	return arr
}

func expectGet(t *testing.T, arr store.IStore, index int, want byte) {
	t.Helper()
	got, err := arr.Get(index)
	require.NoError(t, err)
	assert.Equal(t, want, got, "index %d", index)
}

func TestRPCStore(t *testing.T) {
	for _, tp := range transports {
		for sName, newSerializer := range serializers {
			tp, newSerializer := tp, newSerializer
			t.Run(tp.name+"/"+sName, func(t *testing.T) {
				s := newSerializer()
				addr := startServer(t, tp, s)

				for _, shardId := range []uint64{100, 200} {
					arr := newClient(t, tp, s, addr, shardId)

					// A[0]=9, A[2]=10
					require.NoError(t, arr.SetOne(0, 9))
					require.NoError(t, arr.SetOne(2, 10))
					expectGet(t, arr, 0, 9)
					expectGet(t, arr, 8, 0)

					// setAll(10), then A[3]=99
					require.NoError(t, arr.SetAll(10))
					expectGet(t, arr, 0, 10)
					expectGet(t, arr, 2, 10)
					require.NoError(t, arr.SetOne(3, 99))
					expectGet(t, arr, 3, 99)
					expectGet(t, arr, 99, 10)

					// Out of range errors keep their code across the wire
					_, err := arr.Get(100)
					require.Error(t, err)
					assert.True(t, errors.Is(err, array.ErrOutOfRange))
					assert.True(t, errors.Is(arr.SetOne(-1, 1), array.ErrOutOfRange))

					info, err := arr.GetInfo()
					require.NoError(t, err)
					assert.Equal(t, 100, info.Length)
					assert.Contains(t, info.SupportedFeatures, array.FeatureSetAll)
				}
			})
		}
	}
}

func TestRPCStoreUnknownShard(t *testing.T) {
	tp := transports[0]
	s := serializer.NewBinarySerializer()
	addr := startServer(t, tp, s)

	arr := newClient(t, tp, s, addr, 999)
	_, err := arr.Get(0)
	require.Error(t, err)

	var storeErr *store.Error
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, store.RetCInvalidOperation, storeErr.Code)
}

func TestRPCStoreConcurrent(t *testing.T) {
	tp := transports[0]
	s := serializer.NewBinarySerializer()
	addr := startServer(t, tp, s)
	arr := newClient(t, tp, s, addr, 200)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				index := (w*50 + i) % 100
				assert.NoError(t, arr.SetOne(index, byte(w+1)))
				_, err := arr.Get(index)
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	require.NoError(t, arr.SetAll(42))
	for i := 0; i < 100; i++ {
		expectGet(t, arr, i, 42)
	}
}

func TestRPCStoreConnectFails(t *testing.T) {
	_, err := NewRPCStore(1, common.ClientConfig{
		TimeoutSecond: 1,
		Transport:     common.ClientTransportConfig{Endpoints: []string{"127.0.0.1:1"}},
	}, tcp.NewTCPClientTransport(), serializer.NewBinarySerializer())
	assert.Error(t, err)

	_, err = NewRPCStore(1, common.ClientConfig{}, tcp.NewTCPClientTransport(), serializer.NewBinarySerializer())
	assert.Error(t, err)
}
