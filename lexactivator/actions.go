package lexactivator

import (
	"fmt"
	"math"
	"time"

	"github.com/CloudNativeWorks/cnw-lexactivator-sdk/lexactivator/wire"
)

// AuthenticateUser signs the user in so UserLicenses can be fetched.
func (c *Client) AuthenticateUser(email, password string) error {
	return c.setPair("AuthenticateUser", c.lib.AuthenticateUser, email, password)
}

// AuthenticateUserWithIDToken signs the user in with an OIDC id token.
func (c *Client) AuthenticateUserWithIDToken(idToken string) error {
	return c.setText("AuthenticateUserWithIdToken", c.lib.AuthenticateUserWithIDToken, idToken)
}

// ActivateLicense activates the key set with SetLicenseKey against the
// server. StatusExpired, StatusSuspended and StatusFail are returned with a
// nil error; only engine errors are errors.
func (c *Client) ActivateLicense() (Status, error) {
	return c.status("ActivateLicense", c.lib.ActivateLicense)
}

// DeactivateLicense frees this machine's activation seat.
func (c *Client) DeactivateLicense() (Status, error) {
	return c.status("DeactivateLicense", c.lib.DeactivateLicense)
}

// IsLicenseGenuine verifies the activation locally and schedules a
// background server sync, whose result arrives at the license listener.
func (c *Client) IsLicenseGenuine() (Status, error) {
	return c.status("IsLicenseGenuine", c.lib.IsLicenseGenuine)
}

// IsLicenseValid verifies the activation locally without a server sync.
func (c *Client) IsLicenseValid() (Status, error) {
	return c.status("IsLicenseValid", c.lib.IsLicenseValid)
}

// ActivateTrial starts the verified trial for this device.
func (c *Client) ActivateTrial() (Status, error) {
	return c.status("ActivateTrial", c.lib.ActivateTrial)
}

// IsTrialGenuine checks the verified trial. It does not contact the server.
func (c *Client) IsTrialGenuine() (Status, error) {
	return c.status("IsTrialGenuine", c.lib.IsTrialGenuine)
}

// ActivateLocalTrial starts a trial that never contacts the server. The
// engine counts the length in whole days.
func (c *Client) ActivateLocalTrial(length time.Duration) (Status, error) {
	return c.days("ActivateLocalTrial", c.lib.ActivateLocalTrial, length)
}

// IsLocalTrialGenuine checks the unverified local trial.
func (c *Client) IsLocalTrialGenuine() (Status, error) {
	return c.status("IsLocalTrialGenuine", c.lib.IsLocalTrialGenuine)
}

// ExtendLocalTrial adds length, in whole days, to the local trial.
func (c *Client) ExtendLocalTrial(length time.Duration) (Status, error) {
	return c.days("ExtendLocalTrial", c.lib.ExtendLocalTrial, length)
}

func (c *Client) days(function string, fn func(uint32) int32, length time.Duration) (Status, error) {
	if fn == nil {
		return StatusFail, unavailable(function)
	}
	days := length / (24 * time.Hour)
	if length < 0 || days > math.MaxUint32 {
		return StatusFail, fmt.Errorf("lexactivator: %s: %v: %w", function, length, ErrArgumentRange)
	}
	n := uint32(days)
	return statusOf(c.invoke(function, func() int32 { return fn(n) }))
}

// IncrementActivationMeterAttributeUses records increment further uses of
// the named meter attribute.
func (c *Client) IncrementActivationMeterAttributeUses(name string, increment uint32) error {
	return c.meter("IncrementActivationMeterAttributeUses", c.lib.IncrementActivationMeterAttributeUses, name, increment)
}

// DecrementActivationMeterAttributeUses takes back decrement uses of the
// named meter attribute.
func (c *Client) DecrementActivationMeterAttributeUses(name string, decrement uint32) error {
	return c.meter("DecrementActivationMeterAttributeUses", c.lib.DecrementActivationMeterAttributeUses, name, decrement)
}

// ResetActivationMeterAttributeUses sets the uses of the named meter
// attribute back to zero.
func (c *Client) ResetActivationMeterAttributeUses(name string) error {
	return c.setText("ResetActivationMeterAttributeUses", c.lib.ResetActivationMeterAttributeUses, name)
}

func (c *Client) meter(function string, fn func(*wire.Unit, uint32) int32, name string, uses uint32) error {
	if fn == nil {
		return unavailable(function)
	}
	arg := wire.Encode(name)
	return check(function, c.invoke(function, func() int32 { return fn(arg.Ptr(), uses) }))
}

// Reset wipes the engine's local activation and trial data. Meant for
// tests; it does not release any seat on the server.
func (c *Client) Reset() error {
	return c.do("Reset", c.lib.Reset)
}
