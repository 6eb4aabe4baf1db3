package lexactivator

import (
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CloudNativeWorks/cnw-lexactivator-sdk/lexactivator/lexactivatortest"
)

func TestEntitlements(t *testing.T) {
	e := NewEntitlements([]FeatureEntitlement{
		{FeatureName: "export", Value: "true"},
		{FeatureName: "beta", Value: "no"},
		{FeatureName: "seats", Value: " 25 "},
		{FeatureName: "tier", Value: "gold"},
	})

	assert.True(t, e.Enabled("export"))
	assert.False(t, e.Enabled("beta"))
	assert.False(t, e.Enabled("missing"))

	seats, ok, err := e.Limit("seats")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(25), seats)

	_, ok, err = e.Limit("missing")
	assert.NoError(t, err)
	assert.False(t, ok)

	_, _, err = e.Limit("tier")
	assert.ErrorContains(t, err, "entitlement tier")
}

func TestCheckCPULimit(t *testing.T) {
	cpus := runtime.NumCPU()
	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{"within limit", strconv.Itoa(cpus), nil},
		{"unlimited", "0", nil},
		{"exceeded", strconv.Itoa(cpus - 1), ErrCPULimitExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr != nil && cpus < 2 {
				t.Skip("needs at least 2 CPUs")
			}
			e := Entitlements{"max_cpus": tt.value}
			err := CheckCPULimit(e, "max_cpus")
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	assert.NoError(t, CheckCPULimit(Entitlements{}, "max_cpus"))
}

func TestClient_Entitlements(t *testing.T) {
	c, eng := newTestClient(t)
	eng.Respond("GetFeatureEntitlementsInternal", lexactivatortest.Response{Texts: []string{
		`[{"featureName":"export","value":"1"},{"featureName":"seats","value":"10"}]`,
	}})

	e, err := c.Entitlements()
	require.NoError(t, err)
	assert.Equal(t, Entitlements{"export": "1", "seats": "10"}, e)

	eng.RespondCode("GetFeatureEntitlementsInternal", 109)
	_, err = c.Entitlements()
	assert.Equal(t, ErrEntitlementSetNotLinked, err)
}
