package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookupFindsBuiltinMergeGrouper(t *testing.T) {
	g, err := Lookup(TargetCategorical, "merge")
	require.NoError(t, err)
	assert.NotNil(t, g)
}

func TestRegistryLookupUnknownKeyErrors(t *testing.T) {
	_, err := Lookup(TargetContinuous, "does-not-exist")
	assert.ErrorIs(t, err, ErrGrouperNotFound)
}

func TestRegistryRegisterRejectsDuplicateKey(t *testing.T) {
	name := "test-duplicate-grouper"
	err := Register(TargetCategorical, name, func(GrouperArgs) ([]int, interface{}, error) { return nil, nil, nil })
	require.NoError(t, err)
	err = Register(TargetCategorical, name, func(GrouperArgs) ([]int, interface{}, error) { return nil, nil, nil })
	assert.ErrorIs(t, err, ErrGrouperAlreadyRegistered)
}

func TestRegistryFreezeIsIdempotent(t *testing.T) {
	Freeze()
	assert.True(t, Frozen())
	Freeze()
	assert.True(t, Frozen())
}
