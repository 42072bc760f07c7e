package cdk_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/wevm-cdk/cdk"
	"github.com/wippyai/wevm-cdk/cdk/wevmtest"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int32
	}{
		{"nil", nil, 0},
		{"status", cdk.Status(301), 301},
		{"ok status as error", cdk.StatusOK, 0},
		{"failure", &cdk.Failure{Status: 302, Message: "x"}, 302},
		{"wrapped status", fmt.Errorf("ctx: %w", cdk.Status(305)), 305},
		{"foreign error", errors.New("boom"), 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cdk.StatusOf(tt.err))
		})
	}
}

func TestStatusErr(t *testing.T) {
	assert.NoError(t, cdk.StatusOK.Err())
	err := cdk.Status(42).Err()
	require.Error(t, err)
	assert.Equal(t, "status 42", err.Error())
}

func TestRequire(t *testing.T) {
	assert.NoError(t, cdk.Require(true, "never"))

	err := cdk.Require(false, "amount", "must be positive")
	require.Error(t, err)
	assert.Equal(t, int32(300), cdk.StatusOf(err))
	assert.Equal(t, "status 300: amount must be positive", err.Error())

	assert.Equal(t, "status 300", cdk.Require(false).Error())
}

func TestFinishReportsMessage(t *testing.T) {
	h := wevmtest.New("c").Install()

	assert.Equal(t, int32(0), cdk.Finish(nil))
	assert.Empty(t, h.Failures)

	assert.Equal(t, int32(300), cdk.Finish(cdk.Require(false, "nope")))
	require.Len(t, h.Failures, 1)
	assert.Equal(t, int32(300), h.Failures[0].Status)
	assert.Contains(t, h.Failures[0].Message, "nope")

	// host statuses pass through unchanged
	assert.Equal(t, int32(317), cdk.Finish(cdk.Status(317)))
}

func TestCurrentHostPanicsWhenUnset(t *testing.T) {
	cdk.SetHost(cdk.Host{})
	assert.Panics(t, func() { cdk.CurrentHost() })
	assert.Equal(t, int32(300), cdk.Finish(errors.New("x")), "Finish works without a host")
}
