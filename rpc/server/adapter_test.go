package server

import (
	"encoding/json"
	"testing"

	"github.com/ValentinKolb/oarr/lib/array"
	"github.com/ValentinKolb/oarr/lib/store"
	"github.com/ValentinKolb/oarr/rpc/common"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIStoreAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := store.NewMockIStore(ctrl)
	adapter := NewIStoreServerAdapter()

	t.Run("SetOne", func(t *testing.T) {
		mock.EXPECT().SetOne(3, byte(99)).Return(nil)
		resp := adapter.Handle(common.NewSetOneRequest(3, 99), mock)
		assert.Equal(t, common.MsgTArrSetOne, resp.MsgType)
		assert.NoError(t, resp.ResponseErr())
	})

	t.Run("SetAll", func(t *testing.T) {
		mock.EXPECT().SetAll(byte(10)).Return(nil)
		resp := adapter.Handle(common.NewSetAllRequest(10), mock)
		assert.Equal(t, common.MsgTArrSetAll, resp.MsgType)
		assert.NoError(t, resp.ResponseErr())
	})

	t.Run("Get", func(t *testing.T) {
		mock.EXPECT().Get(0).Return(byte(9), nil)
		resp := adapter.Handle(common.NewGetRequest(0), mock)
		assert.Equal(t, common.MsgTArrGet, resp.MsgType)
		assert.Equal(t, uint8(9), resp.Value)
		assert.NoError(t, resp.ResponseErr())
	})

	t.Run("GetOutOfRange", func(t *testing.T) {
		mock.EXPECT().Get(100).Return(byte(0), store.NewError(store.RetCOutOfRange, "index 100 out of range [0, 100)"))
		resp := adapter.Handle(common.NewGetRequest(100), mock)
		assert.Equal(t, uint8(store.RetCOutOfRange), resp.Code)
		err := resp.ResponseErr()
		require.Error(t, err)
		assert.True(t, errors.Is(err, array.ErrOutOfRange))
	})

	t.Run("Info", func(t *testing.T) {
		mock.EXPECT().GetInfo().Return(array.ArrayInfo{
			Engine: array.ImplOverlay,
			Length: 100,
		}, nil)
		resp := adapter.Handle(common.NewInfoRequest(), mock)
		require.NoError(t, resp.ResponseErr())

		var info array.ArrayInfo
		require.NoError(t, json.Unmarshal(resp.Meta, &info))
		assert.Equal(t, array.ImplOverlay, info.Engine)
		assert.Equal(t, 100, info.Length)
	})

	t.Run("Unsupported", func(t *testing.T) {
		resp := adapter.Handle(common.NewCustomRequest([]byte("x")), mock)
		assert.Equal(t, common.MsgTError, resp.MsgType)
		assert.True(t, errors.Is(resp.ResponseErr(), store.NewError(store.RetCUnsupportedOperation, "")))
	})

	t.Run("NilStore", func(t *testing.T) {
		resp := adapter.Handle(common.NewGetRequest(0), nil)
		assert.Equal(t, common.MsgTError, resp.MsgType)
		assert.Error(t, resp.ResponseErr())
	})
}
