package lexactivator

import (
	"github.com/CloudNativeWorks/cnw-lexactivator-sdk/lexactivator/wire"
)

// Offline activation moves request and response files between an
// air-gapped machine and the licensing dashboard by hand. Every path is
// handed to the engine as is; the engine reads and writes the files.

// GenerateOfflineActivationRequest writes an activation request for the key
// set with SetLicenseKey to path.
func (c *Client) GenerateOfflineActivationRequest(path string) error {
	return c.setText("GenerateOfflineActivationRequest", c.lib.GenerateOfflineActivationRequest, path)
}

// ActivateLicenseOffline activates from the response file at path.
func (c *Client) ActivateLicenseOffline(path string) (Status, error) {
	return c.statusWithText("ActivateLicenseOffline", c.lib.ActivateLicenseOffline, path)
}

// GenerateOfflineDeactivationRequest deactivates locally and writes the
// request that releases the seat on the server to path.
func (c *Client) GenerateOfflineDeactivationRequest(path string) (Status, error) {
	return c.statusWithText("GenerateOfflineDeactivationRequest", c.lib.GenerateOfflineDeactivationRequest, path)
}

// GenerateOfflineTrialActivationRequest writes a trial activation request
// to path.
func (c *Client) GenerateOfflineTrialActivationRequest(path string) error {
	return c.setText("GenerateOfflineTrialActivationRequest", c.lib.GenerateOfflineTrialActivationRequest, path)
}

// ActivateTrialOffline activates a trial from the response file at path.
func (c *Client) ActivateTrialOffline(path string) (Status, error) {
	return c.statusWithText("ActivateTrialOffline", c.lib.ActivateTrialOffline, path)
}

// SetOfflineActivationRequestMeterAttributeUses records meter attribute
// usage to embed in the next offline activation request.
func (c *Client) SetOfflineActivationRequestMeterAttributeUses(name string, uses uint32) error {
	return c.meter("SetOfflineActivationRequestMeterAttributeUses", c.lib.SetOfflineActivationRequestMeterAttributeUses, name, uses)
}

func (c *Client) statusWithText(function string, fn func(*wire.Unit) int32, value string) (Status, error) {
	if fn == nil {
		return StatusFail, unavailable(function)
	}
	arg := wire.Encode(value)
	return statusOf(c.invoke(function, func() int32 { return fn(arg.Ptr()) }))
}
