package store

import (
	"fmt"
	"testing"

	"github.com/ValentinKolb/oarr/lib/array"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIs(t *testing.T) {
	err := NewError(RetCOutOfRange, "index 100 out of range [0, 100)")

	assert.True(t, errors.Is(err, array.ErrOutOfRange))
	assert.True(t, errors.Is(errors.Wrap(err, "get"), array.ErrOutOfRange))
	assert.True(t, errors.Is(err, NewError(RetCOutOfRange, "")))
	assert.False(t, errors.Is(err, NewError(RetCInternalError, "")))
	assert.False(t, errors.Is(NewError(RetCInternalError, "x"), array.ErrOutOfRange))
}

func TestErrorString(t *testing.T) {
	err := NewError(RetCUnsupportedOperation, "nope")
	assert.Equal(t, "StoreError (code UnsupportedOperation): nope", err.Error())
	assert.Equal(t, "Unknown", RetCode(99).String())
}

// sumRange is a small consumer of IStore used to exercise the mock
func sumRange(s IStore, from, to int) (int, error) {
	total := 0
	for i := from; i < to; i++ {
		v, err := s.Get(i)
		if err != nil {
			return 0, fmt.Errorf("sum: %w", err)
		}
		total += int(v)
	}
	return total, nil
}

func TestMockIStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := NewMockIStore(ctrl)
	gomock.InOrder(
		mock.EXPECT().Get(0).Return(byte(1), nil),
		mock.EXPECT().Get(1).Return(byte(2), nil),
		mock.EXPECT().Get(2).Return(byte(0), NewError(RetCOutOfRange, "index 2 out of range [0, 2)")),
	)

	_, err := sumRange(mock, 0, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, array.ErrOutOfRange))
}
