package lexactivator

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		raw  int32
		want Code
	}{
		{0, StatusOK},
		{1, StatusFail},
		{20, StatusExpired},
		{21, StatusSuspended},
		{22, StatusGracePeriodOver},
		{26, StatusLocalTrialExpired},
		{32, StatusReleaseUpdateAvailableNotAllowed},
		{40, ErrFilePath},
		{51, ErrBufferSize},
		{59, ErrActivationNotFound},
		{93, ErrAccountID},
		{100, ErrLoginTemporarilyLocked},
		{109, ErrEntitlementSetNotLinked},
		// gaps and out-of-range values fall back
		{2, ErrClient},
		{23, ErrClient},
		{33, ErrClient},
		{39, ErrClient},
		{94, ErrClient},
		{110, ErrClient},
		{9999, ErrClient},
		{-1, ErrClient},
		{math.MinInt32, ErrClient},
		{math.MaxInt32, ErrClient},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.raw), func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.raw))
		})
	}
}

func TestClassify_Total(t *testing.T) {
	assertTotal := func(raw int32) {
		code := Classify(raw)
		require.NotNil(t, code)
		if known(raw) {
			assert.Equal(t, raw, code.Value())
		} else {
			assert.Equal(t, ErrClient, code)
		}
	}
	for raw := int32(-4096); raw <= 4096; raw++ {
		assertTotal(raw)
	}
	for _, raw := range []int32{math.MinInt32, math.MinInt32 + 1, math.MaxInt32 - 1, math.MaxInt32} {
		assertTotal(raw)
	}
}

func TestCatalogs_Disjoint(t *testing.T) {
	for _, s := range Statuses() {
		_, isError := errorText[ErrorCode(s)]
		assert.False(t, isError, "code %d is both a status and an error", s)
	}
	for _, e := range ErrorCodes() {
		_, isStatus := statusText[Status(e)]
		assert.False(t, isStatus, "code %d is both an error and a status", e)
	}
}

func TestCatalogs_Complete(t *testing.T) {
	assert.Equal(t,
		[]Status{0, 1, 20, 21, 22, 25, 26, 30, 31, 32},
		Statuses())

	var want []ErrorCode
	for c := ErrorCode(40); c <= 93; c++ {
		want = append(want, c)
	}
	for c := ErrorCode(100); c <= 109; c++ {
		want = append(want, c)
	}
	assert.Equal(t, want, ErrorCodes())

	for _, s := range Statuses() {
		assert.NotEmpty(t, s.Description(), "status %d", s)
	}
	for _, e := range ErrorCodes() {
		assert.NotEmpty(t, e.Description(), "error %d", e)
	}
}

func TestCode_String(t *testing.T) {
	assert.Equal(t, "21 The license has been suspended.", StatusSuspended.String())
	assert.Equal(t, "59 The license activation was deleted on the server.", ErrActivationNotFound.String())
	assert.Equal(t, "lexactivator: 92 Client error.", ErrClient.Error())
}

func TestErrorCode_IsSentinel(t *testing.T) {
	err := fmt.Errorf("activate: %w", Classify(59).(ErrorCode))
	assert.ErrorIs(t, err, ErrActivationNotFound)
	assert.NotErrorIs(t, err, ErrActivationLimit)

	var code ErrorCode
	require.True(t, errors.As(err, &code))
	assert.Equal(t, int32(59), code.Value())
}

func TestIsRetriable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{ErrInet, true},
		{ErrServer, true},
		{ErrRateLimit, true},
		{ErrBufferSize, false},
		{fmt.Errorf("wrapped: %w", ErrInet), true},
		{ErrLicenseKey, false},
		{ErrRevoked, false},
		{&StatusError{Function: "IsLicenseGenuine", Status: StatusExpired}, false},
		{nil, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsRetriable(tt.err), "%v", tt.err)
	}
}
