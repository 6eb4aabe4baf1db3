package lexactivator

import (
	"time"

	"github.com/CloudNativeWorks/cnw-lexactivator-sdk/lexactivator/wire"
)

// ProductMetadata returns the product metadata stored under key.
func (c *Client) ProductMetadata(key string) (string, error) {
	return c.getKeyed("GetProductMetadata", c.lib.GetProductMetadata, key, wire.ShortCapacity)
}

// ProductVersionName returns the name of the product version linked to the
// license.
func (c *Client) ProductVersionName() (string, error) {
	return c.getText("GetProductVersionName", c.lib.GetProductVersionName, wire.ShortCapacity)
}

// ProductVersionDisplayName returns the display name of the product version.
func (c *Client) ProductVersionDisplayName() (string, error) {
	return c.getText("GetProductVersionDisplayName", c.lib.GetProductVersionDisplayName, wire.ShortCapacity)
}

// ProductVersionFeatureFlag returns the named feature flag of the product
// version linked to the license.
func (c *Client) ProductVersionFeatureFlag(name string) (ProductVersionFeatureFlag, error) {
	const function = "GetProductVersionFeatureFlag"
	fn := c.lib.GetProductVersionFeatureFlag
	if fn == nil {
		return ProductVersionFeatureFlag{}, unavailable(function)
	}
	arg := wire.Encode(name)
	buf := c.buffer(wire.ShortCapacity)
	var enabled uint32
	code := c.invoke(function, func() int32 { return fn(arg.Ptr(), &enabled, buf.Ptr(), buf.Cap()) })
	if err := check(function, code); err != nil {
		return ProductVersionFeatureFlag{}, err
	}
	return ProductVersionFeatureFlag{Name: name, Enabled: enabled > 0, Data: buf.String()}, nil
}

// LicenseMetadata returns the license metadata stored under key.
func (c *Client) LicenseMetadata(key string) (string, error) {
	return c.getKeyed("GetLicenseMetadata", c.lib.GetLicenseMetadata, key, wire.ShortCapacity)
}

// LicenseMeterAttribute returns the usage of the named meter attribute.
func (c *Client) LicenseMeterAttribute(name string) (LicenseMeterAttribute, error) {
	const function = "GetLicenseMeterAttribute"
	fn := c.lib.GetLicenseMeterAttribute
	if fn == nil {
		return LicenseMeterAttribute{}, unavailable(function)
	}
	arg := wire.Encode(name)
	attr := LicenseMeterAttribute{Name: name}
	code := c.invoke(function, func() int32 {
		return fn(arg.Ptr(), &attr.AllowedUses, &attr.TotalUses, &attr.GrossUses)
	})
	if err := check(function, code); err != nil {
		return LicenseMeterAttribute{}, err
	}
	return attr, nil
}

// LicenseKey returns the license key in use.
func (c *Client) LicenseKey() (string, error) {
	return c.getText("GetLicenseKey", c.lib.GetLicenseKey, wire.ShortCapacity)
}

// LicenseAllowedActivations returns the activation limit; -1 means unlimited.
func (c *Client) LicenseAllowedActivations() (int64, error) {
	return c.getInt64("GetLicenseAllowedActivations", c.lib.GetLicenseAllowedActivations)
}

// LicenseTotalActivations returns how many activations the license has used.
func (c *Client) LicenseTotalActivations() (uint32, error) {
	return c.getUint32("GetLicenseTotalActivations", c.lib.GetLicenseTotalActivations)
}

// LicenseAllowedDeactivations returns the deactivation limit; -1 means
// unlimited.
func (c *Client) LicenseAllowedDeactivations() (int64, error) {
	return c.getInt64("GetLicenseAllowedDeactivations", c.lib.GetLicenseAllowedDeactivations)
}

// LicenseTotalDeactivations returns how many deactivations the license has used.
func (c *Client) LicenseTotalDeactivations() (uint32, error) {
	return c.getUint32("GetLicenseTotalDeactivations", c.lib.GetLicenseTotalDeactivations)
}

// LicenseCreationDate returns when the license was created.
func (c *Client) LicenseCreationDate() (time.Time, error) {
	return c.getDate("GetLicenseCreationDate", c.lib.GetLicenseCreationDate)
}

// LicenseActivationDate returns when this device was activated.
func (c *Client) LicenseActivationDate() (time.Time, error) {
	return c.getDate("GetLicenseActivationDate", c.lib.GetLicenseActivationDate)
}

// ActivationLastSyncedDate returns when the activation last synced with the
// server.
func (c *Client) ActivationLastSyncedDate() (time.Time, error) {
	return c.getDate("GetActivationLastSyncedDate", c.lib.GetActivationLastSyncedDate)
}

// LicenseExpiryDate returns the zero time for a license that never expires.
func (c *Client) LicenseExpiryDate() (time.Time, error) {
	return c.getDate("GetLicenseExpiryDate", c.lib.GetLicenseExpiryDate)
}

// LicenseMaintenanceExpiryDate returns when maintenance ends.
func (c *Client) LicenseMaintenanceExpiryDate() (time.Time, error) {
	return c.getDate("GetLicenseMaintenanceExpiryDate", c.lib.GetLicenseMaintenanceExpiryDate)
}

// LicenseMaxAllowedReleaseVersion returns the newest release the license
// permits.
func (c *Client) LicenseMaxAllowedReleaseVersion() (string, error) {
	return c.getText("GetLicenseMaxAllowedReleaseVersion", c.lib.GetLicenseMaxAllowedReleaseVersion, wire.ShortCapacity)
}

// LicenseUserEmail returns the email of the license user.
func (c *Client) LicenseUserEmail() (string, error) {
	return c.getText("GetLicenseUserEmail", c.lib.GetLicenseUserEmail, wire.ShortCapacity)
}

// LicenseUserName returns the name of the license user.
func (c *Client) LicenseUserName() (string, error) {
	return c.getText("GetLicenseUserName", c.lib.GetLicenseUserName, wire.ShortCapacity)
}

// LicenseUserCompany returns the company of the license user.
func (c *Client) LicenseUserCompany() (string, error) {
	return c.getText("GetLicenseUserCompany", c.lib.GetLicenseUserCompany, wire.ShortCapacity)
}

// LicenseUserMetadata returns the license user's metadata stored under key.
func (c *Client) LicenseUserMetadata(key string) (string, error) {
	return c.getKeyed("GetLicenseUserMetadata", c.lib.GetLicenseUserMetadata, key, wire.ShortCapacity)
}

// LicenseOrganizationName returns the name of the owning organization.
func (c *Client) LicenseOrganizationName() (string, error) {
	return c.getText("GetLicenseOrganizationName", c.lib.GetLicenseOrganizationName, wire.ShortCapacity)
}

// LicenseOrganizationAddress returns the licensee's address. A license
// without one yields an error matching ErrPayloadMissing.
func (c *Client) LicenseOrganizationAddress() (OrganizationAddress, error) {
	const function = "GetLicenseOrganizationAddressInternal"
	payload, err := c.getText(function, c.lib.GetLicenseOrganizationAddressInternal, wire.MediumCapacity)
	if err != nil {
		return OrganizationAddress{}, err
	}
	return decodeRecord[OrganizationAddress](function, payload)
}

// UserLicenses lists the licenses linked to the user signed in with
// AuthenticateUser. The engine fetches them from the server.
func (c *Client) UserLicenses() ([]UserLicense, error) {
	const function = "GetUserLicensesInternal"
	payload, err := c.getText(function, c.lib.GetUserLicensesInternal, wire.MediumCapacity)
	if err != nil {
		return nil, err
	}
	return decodeList[UserLicense](function, payload)
}

// LicenseEntitlementSetName returns the name of the linked entitlement set.
func (c *Client) LicenseEntitlementSetName() (string, error) {
	return c.getText("GetLicenseEntitlementSetName", c.lib.GetLicenseEntitlementSetName, wire.ShortCapacity)
}

// LicenseEntitlementSetDisplayName returns the display name of the linked
// entitlement set.
func (c *Client) LicenseEntitlementSetDisplayName() (string, error) {
	return c.getText("GetLicenseEntitlementSetDisplayName", c.lib.GetLicenseEntitlementSetDisplayName, wire.ShortCapacity)
}

// FeatureEntitlements lists the features granted by the license's
// entitlement set.
func (c *Client) FeatureEntitlements() ([]FeatureEntitlement, error) {
	const function = "GetFeatureEntitlementsInternal"
	payload, err := c.getText(function, c.lib.GetFeatureEntitlementsInternal, wire.LargeCapacity)
	if err != nil {
		return nil, err
	}
	return decodeList[FeatureEntitlement](function, payload)
}

// FeatureEntitlement returns one feature of the license's entitlement set.
func (c *Client) FeatureEntitlement(featureName string) (FeatureEntitlement, error) {
	const function = "GetFeatureEntitlementInternal"
	payload, err := c.getKeyed(function, c.lib.GetFeatureEntitlementInternal, featureName, wire.MediumCapacity)
	if err != nil {
		return FeatureEntitlement{}, err
	}
	return decodeRecord[FeatureEntitlement](function, payload)
}

// LicenseType returns "node-locked" or "hosted-floating".
func (c *Client) LicenseType() (string, error) {
	return c.getText("GetLicenseType", c.lib.GetLicenseType, wire.ShortCapacity)
}

// ActivationID returns the id of this device's activation.
func (c *Client) ActivationID() (string, error) {
	return c.getText("GetActivationId", c.lib.GetActivationID, wire.ShortCapacity)
}

// ActivationMetadata returns the activation metadata stored under key.
func (c *Client) ActivationMetadata(key string) (string, error) {
	return c.getKeyed("GetActivationMetadata", c.lib.GetActivationMetadata, key, wire.ShortCapacity)
}

// ActivationMode reports the initial and current activation modes.
func (c *Client) ActivationMode() (ActivationMode, error) {
	const function = "GetActivationMode"
	fn := c.lib.GetActivationMode
	if fn == nil {
		return ActivationMode{}, unavailable(function)
	}
	initial, current := c.buffer(wire.ShortCapacity), c.buffer(wire.ShortCapacity)
	code := c.invoke(function, func() int32 {
		return fn(initial.Ptr(), initial.Cap(), current.Ptr(), current.Cap())
	})
	if err := check(function, code); err != nil {
		return ActivationMode{}, err
	}
	return ActivationMode{Initial: initial.String(), Current: current.String()}, nil
}

// ActivationMeterAttributeUses returns how often this activation used the
// named meter attribute.
func (c *Client) ActivationMeterAttributeUses(name string) (uint32, error) {
	const function = "GetActivationMeterAttributeUses"
	fn := c.lib.GetActivationMeterAttributeUses
	if fn == nil {
		return 0, unavailable(function)
	}
	arg := wire.Encode(name)
	var uses uint32
	if err := check(function, c.invoke(function, func() int32 { return fn(arg.Ptr(), &uses) })); err != nil {
		return 0, err
	}
	return uses, nil
}

// ServerSyncGracePeriodExpiryDate returns when the license stops working
// without a server sync.
func (c *Client) ServerSyncGracePeriodExpiryDate() (time.Time, error) {
	return c.getDate("GetServerSyncGracePeriodExpiryDate", c.lib.GetServerSyncGracePeriodExpiryDate)
}

// TrialActivationMetadata returns the trial metadata stored under key.
func (c *Client) TrialActivationMetadata(key string) (string, error) {
	return c.getKeyed("GetTrialActivationMetadata", c.lib.GetTrialActivationMetadata, key, wire.ShortCapacity)
}

// TrialExpiryDate returns when the verified trial ends.
func (c *Client) TrialExpiryDate() (time.Time, error) {
	return c.getDate("GetTrialExpiryDate", c.lib.GetTrialExpiryDate)
}

// TrialID returns the id of the verified trial activation.
func (c *Client) TrialID() (string, error) {
	return c.getText("GetTrialId", c.lib.GetTrialID, wire.ShortCapacity)
}

// LocalTrialExpiryDate returns when the local trial ends.
func (c *Client) LocalTrialExpiryDate() (time.Time, error) {
	return c.getDate("GetLocalTrialExpiryDate", c.lib.GetLocalTrialExpiryDate)
}

// LibraryVersion returns the version of the loaded engine library.
func (c *Client) LibraryVersion() (string, error) {
	return c.getText("GetLibraryVersion", c.lib.GetLibraryVersion, wire.ShortCapacity)
}
