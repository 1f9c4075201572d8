package server

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/ValentinKolb/oarr/lib/array/engines"
	"github.com/ValentinKolb/oarr/lib/store"
	"github.com/ValentinKolb/oarr/lib/store/lstore"
	"github.com/ValentinKolb/oarr/rpc/common"
	"github.com/ValentinKolb/oarr/rpc/serializer"
	"github.com/ValentinKolb/oarr/rpc/transport"
	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
	pkgerrors "github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/multierr"
)

var Logger = logger.GetLogger("rpc")

// serverShard is a struct that represents a shard in the RPC server
// It contains the store it encapsulates and the adapter
// that handles requests for the store
type serverShard struct {
	Config  common.ServerShard
	Store   store.IStore
	Adapter IRPCServerAdapter
}

// RPCServer hosts a set of overlay arrays (shards) behind a transport layer
type RPCServer struct {
	config     common.ServerConfig
	transport  transport.IRPCServerTransport
	serializer serializer.IRPCSerializer
	shards     *xsync.MapOf[uint64, serverShard]

	mu            sync.Mutex
	metricsServer *http.Server
}

// NewRPCServer creates a new RPC server
// It takes a config, transport and serializer as parameters
//
// Usage:
//
//	s := server.NewRPCServer(
//		config,
//		http.NewHttpServerTransport(),
//		serializer.NewJSONSerializer(),
//	)
//
//	if err := s.Serve(); err != nil {
//		panic(err)
//	 }
func NewRPCServer(
	config common.ServerConfig,
	transport transport.IRPCServerTransport,
	serializer serializer.IRPCSerializer,
) *RPCServer {
	// https://github.com/golang/go/issues/17393
	if runtime.GOOS == "darwin" {
		signal.Ignore(syscall.Signal(0xd))
	}

	// Create the RPC server
	return &RPCServer{
		config:     config,
		transport:  transport,
		serializer: serializer,
		shards:     xsync.NewMapOf[uint64, serverShard](),
	}
}

// Serve initializes the shards and starts the transport layer.
// It blocks until Close is called or the transport fails.
func (s *RPCServer) Serve() error {
	if err := s.init(); err != nil {
		return err
	}

	if s.config.MetricsEnabled && s.config.MetricsEndpoint != "" {
		if err := s.serveMetrics(); err != nil {
			return err
		}
	}

	return s.transport.Listen(s.config)
}

// Addr returns the address of the transport layer, nil if it is not listening yet
func (s *RPCServer) Addr() net.Addr {
	return s.transport.Addr()
}

// Close stops the transport layer and the metrics endpoint
func (s *RPCServer) Close() error {
	err := s.transport.Close()

	s.mu.Lock()
	if s.metricsServer != nil {
		err = multierr.Append(err, s.metricsServer.Close())
		s.metricsServer = nil
	}
	s.mu.Unlock()

	return err
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

func (s *RPCServer) init() error {

	// Init logger
	if err := common.InitLoggers(s.config.LogLevel); err != nil {
		return err
	}

	Logger.Infof("Created RPC Server")
	Logger.Infof(s.config.String())

	if len(s.config.Shards) == 0 {
		return fmt.Errorf("no shards configured")
	}

	// Every shard is a local store wrapping its own overlay array
	for _, shardConfig := range s.config.Shards {
		factory, err := engines.Factory(shardConfig.Engine, shardConfig.Length)
		if err != nil {
			return pkgerrors.WithMessagef(err, "shard %d", shardConfig.ShardID)
		}

		shard := serverShard{
			Config:  shardConfig,
			Store:   lstore.NewLocalStore(factory),
			Adapter: NewIStoreServerAdapter(),
		}
		if _, loaded := s.shards.LoadOrStore(shardConfig.ShardID, shard); loaded {
			return fmt.Errorf("duplicate shard ID %d", shardConfig.ShardID)
		}
		Logger.Infof("created %s array of length %d for shard %d", shardConfig.Engine, shardConfig.Length, shardConfig.ShardID)
	}

	Logger.Infof("oarr setup completed successfully")

	// Configure the transport layer
	s.transport.RegisterHandler(s.handle)

	return nil
}

// handle is the transport handler, it decodes the request and dispatches it to the shard
func (s *RPCServer) handle(shardId uint64, req []byte) []byte {
	start := time.Now()

	var respMsg *common.Message
	var msg common.Message

	// Get appropriate shard
	shard, ok := s.shards.Load(shardId)

	if !ok {
		// Case shard does not exist -> error
		respMsg = common.NewErrorResponse(store.RetCInvalidOperation, fmt.Sprintf("shard %d not found", shardId))
	} else if err := s.serializer.Deserialize(req, &msg); err != nil {
		// Case request could not be decoded -> error
		respMsg = common.NewErrorResponse(store.RetCInvalidOperation, fmt.Sprintf("failed to deserialize request: %s", err))
	} else {
		// Let the adapter handle the request
		respMsg = shard.Adapter.Handle(&msg, shard.Store)
	}

	if s.config.MetricsEnabled {
		observeRequest(shardId, msg.MsgType, respMsg, start)
	}

	// Return result
	val, err := s.serializer.Serialize(*respMsg)
	if err != nil {
		Logger.Errorf("failed to serialize response for shard %d: %v", shardId, err)
		val, _ = s.serializer.Serialize(*common.NewErrorResponse(
			store.RetCInternalError,
			fmt.Sprintf("failed to serialize response: %s", err),
		))
	}
	return val
}

// serveMetrics starts a dedicated HTTP listener exposing GET /metrics
func (s *RPCServer) serveMetrics() error {
	listener, err := net.Listen("tcp", s.config.MetricsEndpoint)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to start metrics endpoint")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /metrics", func(w http.ResponseWriter, r *http.Request) {
		metrics.WritePrometheus(w, true)
	})
	srv := &http.Server{Handler: mux}

	s.mu.Lock()
	s.metricsServer = srv
	s.mu.Unlock()

	Logger.Infof("Serving metrics on http://%s/metrics", listener.Addr())
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			Logger.Errorf("metrics endpoint failed: %v", err)
		}
	}()
	return nil
}
