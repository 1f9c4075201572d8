package serve

import (
	"os"
	"os/signal"
	"syscall"

	cmdUtil "github.com/ValentinKolb/oarr/cmd/util"
	"github.com/ValentinKolb/oarr/rpc/common"
	"github.com/ValentinKolb/oarr/rpc/server"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	serveCmdConfig = &common.ServerConfig{}
	ServeCmd       = &cobra.Command{
		Use:     "serve",
		Short:   "Start the oarr server",
		Long:    `Start the oarr server with the specified configuration. The configuration can be set via command line flags or environment variables. The format of the environment variables is OARR_<flag> (e.g. OARR_TIMEOUT=15)`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(cmdUtil.InitConfig)

	// add flags
	key := "shards"
	ServeCmd.PersistentFlags().String(key, "100=stamp:100,200=overlay:100", cmdUtil.WrapString("Comma-separated list of arrays to serve. Format: ID=ENGINE:LENGTH where ENGINE is one of: stamp, overlay"))

	key = "timeout"
	ServeCmd.PersistentFlags().Int64(key, 5, cmdUtil.WrapString("Timeout in seconds for reading and writing responses"))

	key = "endpoint"
	ServeCmd.PersistentFlags().String(key, "0.0.0.0:8080", cmdUtil.WrapString("The address on which the API will listen (e.g. localhost:8080, /tmp/oarr.sock, ...)"))

	key = "log-level"
	ServeCmd.PersistentFlags().String(key, "info", cmdUtil.WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))

	key = "workers-per-conn"
	ServeCmd.PersistentFlags().Int(key, 16, cmdUtil.WrapString("Number of requests processed concurrently per connection (ignored for http)"))

	key = "buffer-size"
	ServeCmd.PersistentFlags().Int(key, 64, cmdUtil.WrapString("Size of the pooled read buffers in KB (ignored for http)"))

	key = "socket-write-buffer"
	ServeCmd.PersistentFlags().Int(key, 0, cmdUtil.WrapString("The size of the socket write buffer in KB, 0 keeps the OS default (ignored for http)"))

	key = "socket-read-buffer"
	ServeCmd.PersistentFlags().Int(key, 0, cmdUtil.WrapString("The size of the socket read buffer in KB, 0 keeps the OS default (ignored for http)"))

	key = "tcp-nodelay"
	ServeCmd.PersistentFlags().Bool(key, true, cmdUtil.WrapString("Whether to enable TCP_NODELAY (only for tcp)"))

	key = "tcp-keepalive"
	ServeCmd.PersistentFlags().Int(key, 0, cmdUtil.WrapString("The keepalive interval in seconds, 0 disables keepalive (only for tcp)"))

	key = "tcp-linger"
	ServeCmd.PersistentFlags().Int(key, 0, cmdUtil.WrapString("The linger time in seconds, 0 keeps the OS default (only for tcp)"))

	key = "metrics"
	ServeCmd.PersistentFlags().Bool(key, false, cmdUtil.WrapString("Collect request metrics. They are exposed on GET /metrics of the http transport"))

	key = "metrics-endpoint"
	ServeCmd.PersistentFlags().String(key, "", cmdUtil.WrapString("Optional extra address serving GET /metrics (e.g. localhost:9090), required to read metrics with the tcp and unix transports"))
}

// processConfig reads the configuration from the command line flags and environment variables and converts them to the server configuration
func processConfig(cmd *cobra.Command, _ []string) error {
	// bind the flags to viper
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// parse shards
	shards, err := common.ParseShards(viper.GetString("shards"))
	if err != nil {
		return err
	}

	// validate the log level early so the user sees a config error
	if _, err := common.ParseLogLevel(viper.GetString("log-level")); err != nil {
		return err
	}

	// read the configuration from the command line flags and environment variables
	serveCmdConfig.Shards = shards
	serveCmdConfig.TimeoutSecond = viper.GetInt64("timeout")
	serveCmdConfig.LogLevel = viper.GetString("log-level")
	serveCmdConfig.MetricsEnabled = viper.GetBool("metrics") || viper.GetString("metrics-endpoint") != ""
	serveCmdConfig.MetricsEndpoint = viper.GetString("metrics-endpoint")
	serveCmdConfig.Transport = common.ServerTransportConfig{
		Endpoint:       viper.GetString("endpoint"),
		WorkersPerConn: viper.GetInt("workers-per-conn"),
		BufferSize:     viper.GetInt("buffer-size") * 1024,
		SocketConf: common.SocketConf{
			WriteBufferSize: viper.GetInt("socket-write-buffer") * 1024,
			ReadBufferSize:  viper.GetInt("socket-read-buffer") * 1024,
		},
		TCPConf: common.TCPConf{
			TCPNoDelay:      viper.GetBool("tcp-nodelay"),
			TCPKeepAliveSec: viper.GetInt("tcp-keepalive"),
			TCPLingerSec:    viper.GetInt("tcp-linger"),
		},
	}

	return nil
}

// run starts the oarr server and stops it on SIGINT or SIGTERM
func run(_ *cobra.Command, _ []string) error {

	// parse the serializer
	s, err := cmdUtil.GetSerializer()
	if err != nil {
		return err
	}

	// Parse the transport
	t, err := cmdUtil.GetServerTransport(serveCmdConfig.Transport.BufferSize, serveCmdConfig.Transport.WorkersPerConn)
	if err != nil {
		return err
	}

	serv := server.NewRPCServer(
		*serveCmdConfig,
		t,
		s,
	)

	// Shut down gracefully on interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; ok {
			server.Logger.Infof("Shutting down")
			if err := serv.Close(); err != nil {
				server.Logger.Errorf("Error during shutdown: %v", err)
			}
		}
	}()

	return errors.Wrap(serv.Serve(), "server stopped")
}
