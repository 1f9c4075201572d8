package util

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapString(t *testing.T) {
	text := strings.Repeat("word ", 30)
	for _, line := range strings.Split(WrapString(text), "\n") {
		assert.LessOrEqual(t, len(line), Wrap)
	}
	assert.Equal(t, "short text", WrapString("  short   text "))
}

func TestGetSerializerAndTransport(t *testing.T) {
	defer viper.Reset()

	for _, name := range []string{"json", "gob", "binary", "protowire"} {
		viper.Set("serializer", name)
		s, err := GetSerializer()
		require.NoError(t, err, name)
		assert.NotNil(t, s)
	}
	viper.Set("serializer", "xml")
	_, err := GetSerializer()
	assert.Error(t, err)

	for _, name := range []string{"http", "tcp", "unix"} {
		viper.Set("transport", name)
		c, err := GetTransport()
		require.NoError(t, err, name)
		assert.NotNil(t, c)
		s, err := GetServerTransport(0, 1)
		require.NoError(t, err, name)
		assert.NotNil(t, s)
	}
	viper.Set("transport", "carrier-pigeon")
	_, err = GetTransport()
	assert.Error(t, err)
	_, err = GetServerTransport(0, 1)
	assert.Error(t, err)
}

func TestGetClientConfig(t *testing.T) {
	defer viper.Reset()

	cmd := &cobra.Command{Use: "test"}
	SetupRPCClientFlags(cmd)
	require.NoError(t, cmd.PersistentFlags().Set("transport-endpoints", "a:1, b:2,"))
	require.NoError(t, cmd.PersistentFlags().Set("transport-write-buffer", "4"))
	require.NoError(t, viper.BindPFlags(cmd.PersistentFlags()))

	conf := GetClientConfig()
	assert.Equal(t, []string{"a:1", "b:2"}, conf.Transport.Endpoints)
	assert.Equal(t, 4*1024, conf.Transport.SocketConf.WriteBufferSize)
	assert.Equal(t, 3, conf.Transport.RetryCount)
	assert.Equal(t, 10, conf.TimeoutSecond)
	assert.True(t, conf.Transport.TCPNoDelay)
}

func TestInitConfigReadsEnvironment(t *testing.T) {
	defer viper.Reset()
	t.Setenv("OARR_TRANSPORT_RETRIES", "7")

	InitConfig()
	assert.Equal(t, 7, viper.GetInt("transport-retries"))
}
