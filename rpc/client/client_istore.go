package client

import (
	"encoding/json"

	"github.com/ValentinKolb/oarr/lib/array"
	"github.com/ValentinKolb/oarr/lib/store"
	"github.com/ValentinKolb/oarr/rpc/common"
	"github.com/ValentinKolb/oarr/rpc/serializer"
	"github.com/ValentinKolb/oarr/rpc/transport"
	"github.com/pkg/errors"
)

// NewRPCStore creates a new RPC store
// The function takes a shard ID, a config, a transport and a serializer as parameters
// It returns a store.IStore and an error
func NewRPCStore(
	shardId uint64,
	config common.ClientConfig,
	transport transport.IRPCClientTransport,
	serializer serializer.IRPCSerializer,
) (store.IStore, error) {

	// Connect the transport
	if err := transport.Connect(config); err != nil {
		return nil, err
	}

	// Create a new RPC store
	s := rpcStore{
		rpcClientAdapter{
			shardId:    shardId,
			config:     config,
			transport:  transport,
			serializer: serializer,
		},
	}

	// Return the RPC store
	return &s, nil
}

type rpcStore struct {
	rpcClientAdapter
}

// --------------------------------------------------------------------------
// Interface Methods (docu see the store package in interface.go)
// --------------------------------------------------------------------------

func (i *rpcStore) SetOne(index int, value byte) (err error) {
	req := common.NewSetOneRequest(index, value)
	_, err = invokeRPCRequest(i.shardId, req, i.transport, i.serializer)
	return err
}

func (i *rpcStore) SetAll(value byte) (err error) {
	req := common.NewSetAllRequest(value)
	_, err = invokeRPCRequest(i.shardId, req, i.transport, i.serializer)
	return err
}

func (i *rpcStore) Get(index int) (value byte, err error) {
	req := common.NewGetRequest(index)
	resp, err := invokeRPCRequest(i.shardId, req, i.transport, i.serializer)
	if err != nil {
		return 0, err
	}
	return resp.Value, nil
}

// GetInfo returns the info reported by the server. Engine specific metadata
// is decoded into a generic map.
func (i *rpcStore) GetInfo() (info array.ArrayInfo, err error) {
	req := common.NewInfoRequest()
	resp, err := invokeRPCRequest(i.shardId, req, i.transport, i.serializer)
	if err != nil {
		return array.ArrayInfo{}, err
	}
	if err := json.Unmarshal(resp.Meta, &info); err != nil {
		return array.ArrayInfo{}, errors.Wrap(err, "failed to decode array info")
	}
	return info, nil
}
