package lexactivator

import (
	"fmt"
	"math"
	"time"

	"github.com/CloudNativeWorks/cnw-lexactivator-sdk/lexactivator/wire"
)

// SetProductData embeds the content of the Product.dat file. It must be the
// first call on every start; nothing else works until it succeeds.
func (c *Client) SetProductData(productData string) error {
	return c.setText("SetProductData", c.lib.SetProductData, productData)
}

// SetProductID sets the product id and where activation data is stored.
// It must follow SetProductData.
func (c *Client) SetProductID(productID string, flag PermissionFlag) error {
	const function = "SetProductId"
	fn := c.lib.SetProductID
	if fn == nil {
		return unavailable(function)
	}
	arg := wire.Encode(productID)
	return check(function, c.invoke(function, func() int32 { return fn(arg.Ptr(), uint32(flag)) }))
}

// SetDataDirectory changes the directory the engine keeps its data in.
func (c *Client) SetDataDirectory(dir string) error {
	return c.setText("SetDataDirectory", c.lib.SetDataDirectory, dir)
}

// SetDebugMode turns the engine's own network diagnostics on or off.
func (c *Client) SetDebugMode(enable bool) error {
	return c.setFlag("SetDebugMode", c.lib.SetDebugMode, enable)
}

// SetCacheMode enables or disables the engine's in-memory cache. Disable it
// when several processes share one license and need its state in real time.
func (c *Client) SetCacheMode(enable bool) error {
	return c.setFlag("SetCacheMode", c.lib.SetCacheMode, enable)
}

func (c *Client) setFlag(function string, fn func(uint32) int32, enable bool) error {
	if fn == nil {
		return unavailable(function)
	}
	var v uint32
	if enable {
		v = 1
	}
	return check(function, c.invoke(function, func() int32 { return fn(v) }))
}

// SetCustomDeviceFingerprint replaces the engine's fingerprinting with a
// caller-provided id of 64 to 256 characters. See GenerateFingerprint.
func (c *Client) SetCustomDeviceFingerprint(fingerprint string) error {
	return c.setText("SetCustomDeviceFingerprint", c.lib.SetCustomDeviceFingerprint, fingerprint)
}

// SetLicenseKey sets the key used by ActivateLicense.
func (c *Client) SetLicenseKey(key string) error {
	return c.setText("SetLicenseKey", c.lib.SetLicenseKey, key)
}

// SetLicenseUserCredential sets the credentials of a password-protected
// license.
//
// Deprecated: use AuthenticateUser.
func (c *Client) SetLicenseUserCredential(email, password string) error {
	return c.setPair("SetLicenseUserCredential", c.lib.SetLicenseUserCredential, email, password)
}

// SetActivationLeaseDuration overrides the lease duration of a floating
// activation. The engine works in whole seconds.
func (c *Client) SetActivationLeaseDuration(d time.Duration) error {
	const function = "SetActivationLeaseDuration"
	fn := c.lib.SetActivationLeaseDuration
	if fn == nil {
		return unavailable(function)
	}
	secs := int64(d / time.Second)
	return check(function, c.invoke(function, func() int32 { return fn(secs) }))
}

// SetActivationMetadata attaches metadata sent with the next ActivateLicense.
func (c *Client) SetActivationMetadata(key, value string) error {
	return c.setPair("SetActivationMetadata", c.lib.SetActivationMetadata, key, value)
}

// SetTrialActivationMetadata attaches metadata sent with the next ActivateTrial.
func (c *Client) SetTrialActivationMetadata(key, value string) error {
	return c.setPair("SetTrialActivationMetadata", c.lib.SetTrialActivationMetadata, key, value)
}

// SetReleaseVersion sets the running release version (x.x, x.x.x or x.x.x.x).
func (c *Client) SetReleaseVersion(version string) error {
	return c.setText("SetReleaseVersion", c.lib.SetReleaseVersion, version)
}

// SetReleasePublishedDate sets when the running release was published.
func (c *Client) SetReleasePublishedDate(published time.Time) error {
	const function = "SetReleasePublishedDate"
	fn := c.lib.SetReleasePublishedDate
	if fn == nil {
		return unavailable(function)
	}
	secs := published.Unix()
	if secs < 0 || secs > math.MaxUint32 {
		return fmt.Errorf("lexactivator: %s: %s: %w", function, published.UTC().Format(time.RFC3339), ErrArgumentRange)
	}
	return check(function, c.invoke(function, func() int32 { return fn(uint32(secs)) }))
}

// SetReleasePlatform sets the platform of the running release, e.g. "linux".
func (c *Client) SetReleasePlatform(platform string) error {
	return c.setText("SetReleasePlatform", c.lib.SetReleasePlatform, platform)
}

// SetReleaseChannel sets the release channel, e.g. "stable".
func (c *Client) SetReleaseChannel(channel string) error {
	return c.setText("SetReleaseChannel", c.lib.SetReleaseChannel, channel)
}

// SetNetworkProxy routes engine traffic through proxy, in the form
// [protocol://][username:password@]machine[:port].
func (c *Client) SetNetworkProxy(proxy string) error {
	return c.setText("SetNetworkProxy", c.lib.SetNetworkProxy, proxy)
}

// SetCryptlexHost points the engine at a self-hosted server.
func (c *Client) SetCryptlexHost(host string) error {
	return c.setText("SetCryptlexHost", c.lib.SetCryptlexHost, host)
}

// SetTwoFactorAuthenticationCode sets the code used by the next
// AuthenticateUser.
func (c *Client) SetTwoFactorAuthenticationCode(code string) error {
	return c.setText("SetTwoFactorAuthenticationCode", c.lib.SetTwoFactorAuthenticationCode, code)
}
