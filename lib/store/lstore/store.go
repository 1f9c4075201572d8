package lstore

import (
	"sync"

	"github.com/ValentinKolb/oarr/lib/array"
	"github.com/ValentinKolb/oarr/lib/store"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/pkg/errors"
)

var plog = logger.GetLogger("store")

type storeImpl struct {
	mu  sync.Mutex
	arr array.OverlayArray
}

// NewLocalStore creates a new local store instance.
// This store implementation is not distributed and only works on a single node.
// Every operation holds one exclusive lock, since array engines are not safe for concurrent use.
func NewLocalStore(factory store.ArrayFactory) store.IStore {
	arr := factory()
	plog.Debugf("created local store (engine=%s, length=%d)", arr.GetInfo().Engine, arr.Len())
	return &storeImpl{
		arr: arr,
	}
}

// toStoreError converts an engine error into a *store.Error
func toStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, array.ErrOutOfRange) {
		return store.NewError(store.RetCOutOfRange, err.Error())
	}
	return store.NewError(store.RetCInternalError, err.Error())
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) SetOne(index int, value byte) error {
	if !s.arr.SupportsFeature(array.FeatureSetOne) {
		return store.NewError(store.RetCUnsupportedOperation, "SetOne operation is not supported")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return toStoreError(s.arr.SetOne(index, value))
}

func (s *storeImpl) SetAll(value byte) error {
	if !s.arr.SupportsFeature(array.FeatureSetAll) {
		return store.NewError(store.RetCUnsupportedOperation, "SetAll operation is not supported")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.arr.SetAll(value)
	return nil
}

func (s *storeImpl) Get(index int) (byte, error) {
	if !s.arr.SupportsFeature(array.FeatureGet) {
		return 0, store.NewError(store.RetCUnsupportedOperation, "Get operation is not supported")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, err := s.arr.Get(index)
	return v, toStoreError(err)
}

func (s *storeImpl) GetInfo() (array.ArrayInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arr.GetInfo(), nil
}
