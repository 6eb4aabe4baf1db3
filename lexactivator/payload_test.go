package lexactivator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CloudNativeWorks/cnw-lexactivator-sdk/lexactivator/lexactivatortest"
)

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []FeatureEntitlement
	}{
		{"empty", "", []FeatureEntitlement{}},
		{"whitespace", "  \n", []FeatureEntitlement{}},
		{"null", "null", []FeatureEntitlement{}},
		{"empty array", "[]", []FeatureEntitlement{}},
		{"entries", `[{"featureName":"export","value":"true"},{"featureName":"seats","value":"10"}]`, []FeatureEntitlement{
			{FeatureName: "export", Value: "true"},
			{FeatureName: "seats", Value: "10"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeList[FeatureEntitlement]("GetFeatureEntitlementsInternal", tt.payload)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeList_Malformed(t *testing.T) {
	_, err := decodeList[UserLicense]("GetUserLicensesInternal", `[{"key":`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPayloadMalformed)
	assert.ErrorIs(t, err, ErrClient)
	assert.NotErrorIs(t, err, ErrPayloadMissing)

	var pe *PayloadError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "GetUserLicensesInternal", pe.Function)

	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestDecodeRecord(t *testing.T) {
	got, err := decodeRecord[OrganizationAddress]("GetLicenseOrganizationAddressInternal",
		`{"addressLine1":"1 Main St","addressLine2":"","city":"Springfield","state":"IL","country":"US","postalCode":"62701"}`)
	require.NoError(t, err)
	assert.Equal(t, OrganizationAddress{
		AddressLine1: "1 Main St",
		City:         "Springfield",
		State:        "IL",
		Country:      "US",
		PostalCode:   "62701",
	}, got)
}

func TestDecodeRecord_Missing(t *testing.T) {
	_, err := decodeRecord[FeatureEntitlement]("GetFeatureEntitlementInternal", " ")
	assert.ErrorIs(t, err, ErrPayloadMissing)
	assert.ErrorIs(t, err, ErrClient)
	assert.EqualError(t, err, "lexactivator: GetFeatureEntitlementInternal: payload missing")
}

func TestDecodeRecord_Malformed(t *testing.T) {
	_, err := decodeRecord[FeatureEntitlement]("GetFeatureEntitlementInternal", `{"featureName": 7}`)
	assert.ErrorIs(t, err, ErrPayloadMalformed)
}

func TestUserLicenses(t *testing.T) {
	c, eng := newTestClient(t)

	empty, err := c.UserLicenses()
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)

	eng.Respond("GetUserLicensesInternal", lexactivatortest.Response{Texts: []string{
		`[{"allowedActivations":5,"allowedDeactivations":-1,"key":"ABCD-1234","type":"node-locked","metadata":[{"key":"tier","value":"gold"}]}]`,
	}})
	licenses, err := c.UserLicenses()
	require.NoError(t, err)
	assert.Equal(t, []UserLicense{{
		AllowedActivations:   5,
		AllowedDeactivations: -1,
		Key:                  "ABCD-1234",
		Type:                 "node-locked",
		Metadata:             []Metadata{{Key: "tier", Value: "gold"}},
	}}, licenses)
}

func TestFeatureEntitlement(t *testing.T) {
	c, eng := newTestClient(t)
	eng.Respond("GetFeatureEntitlementInternal", lexactivatortest.Response{Texts: []string{`{"featureName":"seats","value":"10"}`}})

	got, err := c.FeatureEntitlement("seats")
	require.NoError(t, err)
	assert.Equal(t, FeatureEntitlement{FeatureName: "seats", Value: "10"}, got)
	assert.Equal(t, []string{"seats"}, eng.CallsTo("GetFeatureEntitlementInternal")[0].Args)

	eng.RespondCode("GetFeatureEntitlementInternal", 108)
	_, err = c.FeatureEntitlement("missing")
	assert.Equal(t, ErrFeatureEntitlementNotFound, err)
}

func TestLicenseOrganizationAddress_Absent(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.LicenseOrganizationAddress()
	assert.ErrorIs(t, err, ErrPayloadMissing)
}
