package common

import (
	"testing"

	"github.com/ValentinKolb/oarr/lib/array"
	"github.com/ValentinKolb/oarr/lib/store"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShards(t *testing.T) {
	shards, err := ParseShards("100=stamp:100, 200=Overlay:4096")
	require.NoError(t, err)
	assert.Equal(t, []ServerShard{
		{ShardID: 100, Engine: array.ImplStamp, Length: 100},
		{ShardID: 200, Engine: array.ImplOverlay, Length: 4096},
	}, shards)
	assert.Equal(t, "100=stamp:100", shards[0].String())

	invalid := []string{
		"",
		"100",
		"x=stamp:10",
		"100=stamp",
		"100=maple:10",
		"100=stamp:-1",
		"100=stamp:ten",
		"100=stamp:1,100=overlay:1",
	}
	for _, list := range invalid {
		_, err := ParseShards(list)
		assert.Error(t, err, "shards %q", list)
	}
}

func TestMessageErrorCode(t *testing.T) {
	resp := NewGetResponse(0, store.NewError(store.RetCOutOfRange, "index 100 out of range [0, 100)"))
	assert.Equal(t, uint8(store.RetCOutOfRange), resp.Code)

	err := resp.ResponseErr()
	require.Error(t, err)
	assert.True(t, errors.Is(err, array.ErrOutOfRange))

	// plain errors are reported as internal errors
	resp = NewSetAllResponse(errors.New("boom"))
	assert.Equal(t, uint8(store.RetCInternalError), resp.Code)

	assert.NoError(t, NewSetOneResponse(nil).ResponseErr())

	// error responses without code are internal errors
	err = (&Message{MsgType: MsgTError, Err: "shard not found"}).ResponseErr()
	var storeErr *store.Error
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, store.RetCInternalError, storeErr.Code)
}

func TestMessageTypeJSON(t *testing.T) {
	for _, mt := range []MessageType{MsgTUnknown, MsgTSuccess, MsgTError, MsgTArrSetOne, MsgTArrSetAll, MsgTArrGet, MsgTArrInfo, MsgTCustom} {
		b, err := mt.MarshalJSON()
		require.NoError(t, err)

		var decoded MessageType
		require.NoError(t, decoded.UnmarshalJSON(b))
		assert.Equal(t, mt, decoded)
	}

	var decoded MessageType
	assert.Error(t, decoded.UnmarshalJSON([]byte(`"set"`)))
}

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, logger.WARNING, lvl)

	_, err = ParseLogLevel("verbose")
	assert.Error(t, err)

	assert.Error(t, InitLoggers("verbose"))
	assert.NoError(t, InitLoggers("debug"))
}

func TestInitLoggersRepeated(t *testing.T) {
	assert.NotPanics(t, func() {
		require.NoError(t, InitLoggers("info"))
		require.NoError(t, InitLoggers("error"))
		require.NoError(t, InitLoggers("debug"))
	})
	assert.NotNil(t, logger.GetLogger("store"))
}

func TestConfigString(t *testing.T) {
	conf := ServerConfig{
		Shards:    []ServerShard{{ShardID: 1, Engine: array.ImplOverlay, Length: 10}},
		LogLevel:  "info",
		Transport: ServerTransportConfig{Endpoint: "localhost:8080"},
	}
	s := conf.String()
	assert.Contains(t, s, "localhost:8080")
	assert.Contains(t, s, "overlay (length 10)")

	client := ClientConfig{Transport: ClientTransportConfig{Endpoints: []string{"a", "b"}}}
	assert.Contains(t, client.String(), "Connections Per Endpoint: 1")
}
