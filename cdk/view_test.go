package cdk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/wevm-cdk/cdk"
)

func TestBinaryFrom(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	ptr, n := cdk.BinaryPtr(src)
	require.Equal(t, uint32(4), n)

	view := cdk.BinaryFrom(ptr, n)
	assert.Equal(t, src, []byte(view))

	// a view aliases the caller's memory
	src[0] = 9
	assert.Equal(t, byte(9), view[0])

	// exact length is honoured
	assert.Len(t, cdk.BinaryFrom(ptr, 2), 2)

	empty := cdk.BinaryFrom(nil, 0)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestStringFrom(t *testing.T) {
	ptr, n := cdk.StringPtr("héllo")
	assert.Equal(t, "héllo", cdk.StringFrom(ptr, n))
	assert.Equal(t, "", cdk.StringFrom(nil, 0))

	// no validation under the trusting decode
	bad := []byte{0xff, 0xfe, 'a'}
	bp, bn := cdk.BinaryPtr(bad)
	assert.Equal(t, string(bad), cdk.StringFrom(bp, bn))
}

func TestValidStringFrom(t *testing.T) {
	ptr, n := cdk.StringPtr("ok")
	s, err := cdk.ValidStringFrom(ptr, n)
	require.NoError(t, err)
	assert.Equal(t, "ok", s)

	bad := []byte{'a', 0xc3}
	bp, bn := cdk.BinaryPtr(bad)
	_, err = cdk.ValidStringFrom(bp, bn)
	require.Error(t, err)
	assert.Equal(t, int32(300), cdk.StatusOf(err))
}
