package array

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckIndex(t *testing.T) {
	assert.NoError(t, CheckIndex(0, 1))
	assert.NoError(t, CheckIndex(99, 100))

	for _, idx := range []int{-1, 100, 101} {
		err := CheckIndex(idx, 100)
		assert.ErrorIs(t, err, ErrOutOfRange)
		assert.EqualError(t, err, fmt.Sprintf("index %d out of range [0, 100)", idx))
	}

	assert.ErrorIs(t, CheckIndex(0, 0), ErrOutOfRange)
}

func TestIndexErrorWrapped(t *testing.T) {
	err := fmt.Errorf("shard 1: %w", CheckIndex(5, 5))
	assert.True(t, errors.Is(err, ErrOutOfRange))

	var idxErr *IndexError
	assert.True(t, errors.As(err, &idxErr))
	assert.Equal(t, 5, idxErr.Index)
}

func TestSupportedFeatures(t *testing.T) {
	assert.Equal(t, []Feature{FeatureSetOne, FeatureGet}, SupportedFeatures(FeatureGet|FeatureSetOne))
	assert.Equal(t, AllFeatures, SupportedFeatures(FeatureSetOne|FeatureSetAll|FeatureGet|FeatureConstantSetAll))
	assert.Empty(t, SupportedFeatures(0))
}

func TestFeatureString(t *testing.T) {
	assert.Equal(t, "SetAll", FeatureSetAll.String())
	assert.Equal(t, "ConstantSetAll", FeatureConstantSetAll.String())
	assert.Equal(t, "Unknown", Feature(1<<20).String())
}
