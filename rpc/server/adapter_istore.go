package server

import (
	"encoding/json"
	"fmt"

	"github.com/ValentinKolb/oarr/lib/store"
	"github.com/ValentinKolb/oarr/rpc/common"
)

func NewIStoreServerAdapter() IRPCServerAdapter {
	return &iStoreServerAdapterImpl{}
}

type iStoreServerAdapterImpl struct{}

func (adapter *iStoreServerAdapterImpl) Handle(req *common.Message, s store.IStore) *common.Message {
	// Check for nil store
	if s == nil {
		return common.NewErrorResponse(store.RetCInternalError, "handler: store is nil")
	}

	// Handle different message types
	switch req.MsgType {
	case common.MsgTArrSetOne:
		err := s.SetOne(int(req.Index), req.Value)
		return common.NewSetOneResponse(err)
	case common.MsgTArrSetAll:
		err := s.SetAll(req.Value)
		return common.NewSetAllResponse(err)
	case common.MsgTArrGet:
		val, err := s.Get(int(req.Index))
		return common.NewGetResponse(val, err)
	case common.MsgTArrInfo:
		info, err := s.GetInfo()
		if err != nil {
			return common.NewInfoResponse(nil, err)
		}
		data, err := json.Marshal(info)
		if err != nil {
			return common.NewErrorResponse(store.RetCInternalError, fmt.Sprintf("failed to encode array info: %v", err))
		}
		return common.NewInfoResponse(data, nil)
	default:
		return common.NewErrorResponse(
			store.RetCUnsupportedOperation,
			fmt.Sprintf("RPC IStoreAdapter - Unsupported message type: %s", req.MsgType),
		)
	}
}
