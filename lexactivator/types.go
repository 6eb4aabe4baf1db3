package lexactivator

import (
	"fmt"
	"strings"
)

// PermissionFlag selects where the engine stores activation data.
type PermissionFlag uint32

const (
	// PermissionUser stores activation data per user; no elevated rights needed.
	PermissionUser PermissionFlag = 1
	// PermissionSystem stores activation data system-wide and requires
	// admin or root rights.
	PermissionSystem PermissionFlag = 2
	// PermissionAllUsers is the Windows flag for system-wide activations.
	PermissionAllUsers PermissionFlag = 3
	// PermissionInMemory keeps activation data in memory only. Intended for
	// floating licenses; the application must re-activate on every start.
	PermissionInMemory PermissionFlag = 4
)

var permissionNames = map[PermissionFlag]string{
	PermissionUser:     "user",
	PermissionSystem:   "system",
	PermissionAllUsers: "all-users",
	PermissionInMemory: "in-memory",
}

// String returns the name ParsePermissionFlag accepts.
func (p PermissionFlag) String() string {
	if name, ok := permissionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PermissionFlag(%d)", uint32(p))
}

// ParsePermissionFlag parses one of "user", "system", "all-users" or
// "in-memory".
func ParsePermissionFlag(s string) (PermissionFlag, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for flag, name := range permissionNames {
		if name == s {
			return flag, nil
		}
	}
	return 0, fmt.Errorf("unknown permission flag %q", s)
}

// Decode implements envconfig.Decoder.
func (p *PermissionFlag) Decode(value string) error {
	flag, err := ParsePermissionFlag(value)
	if err != nil {
		return err
	}
	*p = flag
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PermissionFlag) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return p.Decode(s)
}

// Metadata is a key/value pair attached to a license.
type Metadata struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// UserLicense is one license linked to the authenticated user.
type UserLicense struct {
	AllowedActivations   int64      `json:"allowedActivations"`
	AllowedDeactivations int64      `json:"allowedDeactivations"`
	Key                  string     `json:"key"`
	Type                 string     `json:"type"`
	Metadata             []Metadata `json:"metadata"`
}

// FeatureEntitlement is a feature granted by the license's entitlement set.
type FeatureEntitlement struct {
	FeatureName string `json:"featureName"`
	Value       string `json:"value"`
}

// OrganizationAddress is the postal address of the licensee organization.
type OrganizationAddress struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	PostalCode   string `json:"postalCode"`
}

// LicenseMeterAttribute describes usage of a metered attribute across all
// activations of the license.
type LicenseMeterAttribute struct {
	Name        string
	AllowedUses int64
	TotalUses   uint64
	GrossUses   uint64
}

// ProductVersionFeatureFlag is a feature flag of the product version linked
// to the license.
type ProductVersionFeatureFlag struct {
	Name    string
	Enabled bool
	Data    string
}

// ActivationMode reports how the activation was created and how it is
// currently being kept alive ("online" or "offline").
type ActivationMode struct {
	Initial string
	Current string
}
