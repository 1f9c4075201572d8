package common

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ValentinKolb/oarr/lib/array"
	"github.com/ValentinKolb/oarr/lib/array/engines"
	"github.com/pkg/errors"
)

// --------------------------------------------------------------------------
// Transport configuration structs (shared by server and client)
// --------------------------------------------------------------------------

// SocketConf holds the socket buffer sizes (in bytes, 0 = OS default)
type SocketConf struct {
	WriteBufferSize int
	ReadBufferSize  int
}

// TCPConf holds TCP specific socket options
type TCPConf struct {
	TCPNoDelay      bool
	TCPKeepAliveSec int // 0 = keep-alive disabled
	TCPLingerSec    int // 0 = OS default
}

// ServerTransportConfig configures the server side transport layer
type ServerTransportConfig struct {
	Endpoint       string // Address to listen on (host:port or socket path)
	WorkersPerConn int    // Concurrent requests handled per connection (socket transports)
	BufferSize     int    // Size of pooled read buffers in bytes (socket transports)
	SocketConf
	TCPConf
}

// ClientTransportConfig configures the client side transport layer
type ClientTransportConfig struct {
	Endpoints              []string
	RetryCount             int
	ConnectionsPerEndpoint int
	SocketConf
	TCPConf
}

// --------------------------------------------------------------------------
// RPC server configuration struct
// --------------------------------------------------------------------------

// ServerShard describes one overlay array hosted by the server
type ServerShard struct {
	ShardID uint64
	Engine  array.Implementation
	Length  int
}

func (s ServerShard) String() string {
	return fmt.Sprintf("%d=%s:%d", s.ShardID, s.Engine, s.Length)
}

// ServerConfig holds all configuration parameters of the RPC server.
type ServerConfig struct {
	// arrays served by this node
	Shards []ServerShard

	// request timeout
	TimeoutSecond int64

	// Logging configuration
	LogLevel string

	// Metrics (VictoriaMetrics, prometheus text format)
	MetricsEnabled  bool
	MetricsEndpoint string // Extra HTTP listener for /metrics, "" = only on the http transport

	Transport ServerTransportConfig
}

// ParseShards parses a comma-separated list of shards in the format ID=ENGINE:LENGTH
func ParseShards(list string) ([]ServerShard, error) {
	var shards []ServerShard
	seen := make(map[uint64]bool)

	for _, shardConfig := range strings.Split(list, ",") {
		shardConfig = strings.TrimSpace(shardConfig)
		if shardConfig == "" {
			continue
		}

		parts := strings.Split(shardConfig, "=")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid shard format: %s (expected ID=ENGINE:LENGTH)", shardConfig)
		}

		// Parse shard ID
		shardID, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid shard ID %s", parts[0])
		}
		if seen[shardID] {
			return nil, fmt.Errorf("duplicate shard ID %d", shardID)
		}
		seen[shardID] = true

		// Parse engine and length
		engineAndLength := strings.Split(parts[1], ":")
		if len(engineAndLength) != 2 {
			return nil, fmt.Errorf("invalid shard format: %s (expected ID=ENGINE:LENGTH)", shardConfig)
		}
		impl, err := engines.ParseImplementation(engineAndLength[0])
		if err != nil {
			return nil, errors.WithMessagef(err, "shard %d", shardID)
		}
		length, err := strconv.Atoi(strings.TrimSpace(engineAndLength[1]))
		if err != nil || length < 0 {
			return nil, fmt.Errorf("invalid length %q for shard %d", engineAndLength[1], shardID)
		}

		shards = append(shards, ServerShard{
			ShardID: shardID,
			Engine:  impl,
			Length:  length,
		})
	}

	if len(shards) == 0 {
		return nil, fmt.Errorf("no shards configured")
	}
	return shards, nil
}

// String returns a formatted string representation of the configuration
func (c *ServerConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	// RPC settings
	addSection("RPC Server")
	addField("Endpoint", c.Transport.Endpoint)
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))
	addField("Workers Per Conn", strconv.Itoa(c.Transport.WorkersPerConn))

	// Logging configuration
	addSection("Logging")
	addField("Log Level", c.LogLevel)

	// Metrics
	addSection("Metrics")
	addField("Enabled", strconv.FormatBool(c.MetricsEnabled))
	if c.MetricsEndpoint != "" {
		addField("Endpoint", c.MetricsEndpoint)
	}

	// Shards
	addSection("Shards")
	for _, shard := range c.Shards {
		addField(strconv.FormatUint(shard.ShardID, 10), fmt.Sprintf("%s (length %d)", shard.Engine, shard.Length))
	}

	return sb.String()
}

// --------------------------------------------------------------------------
// RPC client configuration struct
// --------------------------------------------------------------------------

type ClientConfig struct {
	TimeoutSecond int
	Transport     ClientTransportConfig
}

// String returns a formatted string representation of the client configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	connsPerEndpoint := c.Transport.ConnectionsPerEndpoint
	if connsPerEndpoint < 1 {
		connsPerEndpoint = 1
	}

	// General Client Settings
	addSection("Client Configuration")
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))
	addField("Retry Count", strconv.Itoa(c.Transport.RetryCount))
	addField("Connections Per Endpoint", strconv.Itoa(connsPerEndpoint))

	// Endpoints
	addSection("Endpoints")
	for i, endpoint := range c.Transport.Endpoints {
		addField(strconv.Itoa(i), endpoint)
	}

	return sb.String()
}
