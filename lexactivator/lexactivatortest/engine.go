// Package lexactivatortest provides a scripted in-memory engine for testing
// code built on package lexactivator without the native library.
//
//	eng := lexactivatortest.New()
//	eng.Respond("GetLicenseKey", lexactivatortest.Response{Texts: []string{"ABCD-1234"}})
//	client, _ := lexactivator.New(lexactivator.WithLibrary(eng.Library()))
package lexactivatortest

import (
	"sync"
	"unsafe"

	"github.com/CloudNativeWorks/cnw-lexactivator-sdk/lexactivator/abi"
	"github.com/CloudNativeWorks/cnw-lexactivator-sdk/lexactivator/wire"
)

// codeBufferSize is the engine's "buffer too small" error code.
const codeBufferSize = 51

// maxTextUnits bounds how far a text argument is scanned for its terminator.
const maxTextUnits = 1 << 20

// Response scripts what one entry point answers.
type Response struct {
	// Code is returned from the call. Zero is success.
	Code int32
	// Texts fill the call's output buffers, in parameter order.
	Texts []string
	// Values fill the call's scalar out-parameters, in parameter order.
	// GetProductVersionFeatureFlag reads Values[0] as enabled (non-zero).
	Values []int64
}

// Call records one invocation.
type Call struct {
	Function string
	// Args holds the decoded text arguments.
	Args []string
	// Ints holds the integer arguments.
	Ints []int64
}

// Engine implements every entry point of abi.Library in memory. Unscripted
// calls succeed with empty output. It is safe for concurrent use.
type Engine struct {
	mu        sync.Mutex
	responses map[string]Response
	calls     []Call
	callback  abi.Callback
	lib       *abi.Library
}

// New returns an engine with nothing scripted.
func New() *Engine {
	e := &Engine{responses: make(map[string]Response)}
	e.lib = e.bind()
	return e
}

// Library returns the engine's entry points. Set a field to nil to mimic an
// older library that lacks the symbol.
func (e *Engine) Library() *abi.Library {
	return e.lib
}

// Respond scripts function, named by its C symbol, to answer r from now on.
func (e *Engine) Respond(function string, r Response) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.responses[function] = r
}

// RespondCode scripts function to return code with no output.
func (e *Engine) RespondCode(function string, code int32) {
	e.Respond(function, Response{Code: code})
}

// Calls returns every recorded call in order.
func (e *Engine) Calls() []Call {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Call(nil), e.calls...)
}

// CallsTo returns the recorded calls of function.
func (e *Engine) CallsTo(function string) []Call {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []Call
	for _, c := range e.calls {
		if c.Function == function {
			out = append(out, c)
		}
	}
	return out
}

// Fire raises a license event with the raw code, the way the engine's sync
// thread does. It reports whether a callback was registered.
func (e *Engine) Fire(code int32) bool {
	e.mu.Lock()
	cb := e.callback
	e.mu.Unlock()
	if cb == nil {
		return false
	}
	cb(code)
	return true
}

func (e *Engine) record(function string, args []string, ints ...int64) Response {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, Call{Function: function, Args: args, Ints: ints})
	return e.responses[function]
}

func (r Response) text(i int) string {
	if i < len(r.Texts) {
		return r.Texts[i]
	}
	return ""
}

func (r Response) value(i int) int64 {
	if i < len(r.Values) {
		return r.Values[i]
	}
	return 0
}

// readText decodes a null-terminated argument.
func readText(p *wire.Unit) string {
	if p == nil {
		return ""
	}
	n := 0
	for n < maxTextUnits && *(*wire.Unit)(unsafe.Add(unsafe.Pointer(p), uintptr(n)*unsafe.Sizeof(*p))) != 0 {
		n++
	}
	return wire.Decode(unsafe.Slice(p, n))
}

// fill writes s into the caller's buffer. It reports false when s and its
// terminator do not fit.
func fill(p *wire.Unit, capacity uint32, s string) bool {
	encoded := wire.Encode(s)
	if p == nil || uint32(len(encoded)) > capacity {
		return false
	}
	copy(unsafe.Slice(p, capacity), encoded)
	return true
}

// Shapes of the catalog's entry points.

func (e *Engine) void(name string) func() int32 {
	return func() int32 { return e.record(name, nil).Code }
}

func (e *Engine) text(name string) func(*wire.Unit) int32 {
	return func(a *wire.Unit) int32 {
		return e.record(name, []string{readText(a)}).Code
	}
}

func (e *Engine) textPair(name string) func(a, b *wire.Unit) int32 {
	return func(a, b *wire.Unit) int32 {
		return e.record(name, []string{readText(a), readText(b)}).Code
	}
}

func (e *Engine) textUint(name string) func(*wire.Unit, uint32) int32 {
	return func(a *wire.Unit, n uint32) int32 {
		return e.record(name, []string{readText(a)}, int64(n)).Code
	}
}

func (e *Engine) uintArg(name string) func(uint32) int32 {
	return func(n uint32) int32 { return e.record(name, nil, int64(n)).Code }
}

func (e *Engine) int64Arg(name string) func(int64) int32 {
	return func(n int64) int32 { return e.record(name, nil, n).Code }
}

func (e *Engine) out(name string) func(*wire.Unit, uint32) int32 {
	return func(buf *wire.Unit, length uint32) int32 {
		r := e.record(name, nil)
		if r.Code != 0 {
			return r.Code
		}
		if !fill(buf, length, r.text(0)) {
			return codeBufferSize
		}
		return 0
	}
}

func (e *Engine) keyed(name string) func(key, value *wire.Unit, length uint32) int32 {
	return func(key, value *wire.Unit, length uint32) int32 {
		r := e.record(name, []string{readText(key)})
		if r.Code != 0 {
			return r.Code
		}
		if !fill(value, length, r.text(0)) {
			return codeBufferSize
		}
		return 0
	}
}

func (e *Engine) outUint32(name string) func(*uint32) int32 {
	return func(v *uint32) int32 {
		r := e.record(name, nil)
		if r.Code == 0 {
			*v = uint32(r.value(0))
		}
		return r.Code
	}
}

func (e *Engine) outInt64(name string) func(*int64) int32 {
	return func(v *int64) int32 {
		r := e.record(name, nil)
		if r.Code == 0 {
			*v = r.value(0)
		}
		return r.Code
	}
}

func (e *Engine) featureFlag(name *wire.Unit, enabled *uint32, data *wire.Unit, length uint32) int32 {
	r := e.record("GetProductVersionFeatureFlag", []string{readText(name)})
	if r.Code != 0 {
		return r.Code
	}
	if r.value(0) != 0 {
		*enabled = 1
	}
	if !fill(data, length, r.text(0)) {
		return codeBufferSize
	}
	return 0
}

func (e *Engine) meterAttribute(name *wire.Unit, allowed *int64, total, gross *uint64) int32 {
	r := e.record("GetLicenseMeterAttribute", []string{readText(name)})
	if r.Code != 0 {
		return r.Code
	}
	*allowed = r.value(0)
	*total = uint64(r.value(1))
	*gross = uint64(r.value(2))
	return 0
}

func (e *Engine) meterUses(name *wire.Unit, uses *uint32) int32 {
	r := e.record("GetActivationMeterAttributeUses", []string{readText(name)})
	if r.Code == 0 {
		*uses = uint32(r.value(0))
	}
	return r.Code
}

func (e *Engine) activationMode(initial *wire.Unit, initialLength uint32, current *wire.Unit, currentLength uint32) int32 {
	r := e.record("GetActivationMode", nil)
	if r.Code != 0 {
		return r.Code
	}
	if !fill(initial, initialLength, r.text(0)) || !fill(current, currentLength, r.text(1)) {
		return codeBufferSize
	}
	return 0
}

func (e *Engine) setLicenseCallback(cb abi.Callback) int32 {
	r := e.record("SetLicenseCallback", nil)
	if r.Code == 0 {
		e.mu.Lock()
		e.callback = cb
		e.mu.Unlock()
	}
	return r.Code
}

func (e *Engine) bind() *abi.Library {
	return &abi.Library{
		SetProductData:                                e.text("SetProductData"),
		SetProductID:                                  e.textUint("SetProductId"),
		SetDataDirectory:                              e.text("SetDataDirectory"),
		SetDebugMode:                                  e.uintArg("SetDebugMode"),
		SetCacheMode:                                  e.uintArg("SetCacheMode"),
		SetCustomDeviceFingerprint:                    e.text("SetCustomDeviceFingerprint"),
		SetLicenseKey:                                 e.text("SetLicenseKey"),
		SetLicenseUserCredential:                      e.textPair("SetLicenseUserCredential"),
		SetLicenseCallback:                            e.setLicenseCallback,
		SetActivationLeaseDuration:                    e.int64Arg("SetActivationLeaseDuration"),
		SetActivationMetadata:                         e.textPair("SetActivationMetadata"),
		SetTrialActivationMetadata:                    e.textPair("SetTrialActivationMetadata"),
		SetReleaseVersion:                             e.text("SetReleaseVersion"),
		SetReleasePublishedDate:                       e.uintArg("SetReleasePublishedDate"),
		SetReleasePlatform:                            e.text("SetReleasePlatform"),
		SetReleaseChannel:                             e.text("SetReleaseChannel"),
		SetOfflineActivationRequestMeterAttributeUses: e.textUint("SetOfflineActivationRequestMeterAttributeUses"),
		SetNetworkProxy:                               e.text("SetNetworkProxy"),
		SetCryptlexHost:                               e.text("SetCryptlexHost"),
		SetTwoFactorAuthenticationCode:                e.text("SetTwoFactorAuthenticationCode"),

		GetProductMetadata:                    e.keyed("GetProductMetadata"),
		GetProductVersionName:                 e.out("GetProductVersionName"),
		GetProductVersionDisplayName:          e.out("GetProductVersionDisplayName"),
		GetProductVersionFeatureFlag:          e.featureFlag,
		GetLicenseMetadata:                    e.keyed("GetLicenseMetadata"),
		GetLicenseMeterAttribute:              e.meterAttribute,
		GetLicenseKey:                         e.out("GetLicenseKey"),
		GetLicenseAllowedActivations:          e.outInt64("GetLicenseAllowedActivations"),
		GetLicenseAllowedDeactivations:        e.outInt64("GetLicenseAllowedDeactivations"),
		GetLicenseTotalActivations:            e.outUint32("GetLicenseTotalActivations"),
		GetLicenseTotalDeactivations:          e.outUint32("GetLicenseTotalDeactivations"),
		GetLicenseCreationDate:                e.outUint32("GetLicenseCreationDate"),
		GetLicenseActivationDate:              e.outUint32("GetLicenseActivationDate"),
		GetActivationLastSyncedDate:           e.outUint32("GetActivationLastSyncedDate"),
		GetLicenseExpiryDate:                  e.outUint32("GetLicenseExpiryDate"),
		GetLicenseMaintenanceExpiryDate:       e.outUint32("GetLicenseMaintenanceExpiryDate"),
		GetLicenseMaxAllowedReleaseVersion:    e.out("GetLicenseMaxAllowedReleaseVersion"),
		GetLicenseUserEmail:                   e.out("GetLicenseUserEmail"),
		GetLicenseUserName:                    e.out("GetLicenseUserName"),
		GetLicenseUserCompany:                 e.out("GetLicenseUserCompany"),
		GetLicenseUserMetadata:                e.keyed("GetLicenseUserMetadata"),
		GetLicenseOrganizationName:            e.out("GetLicenseOrganizationName"),
		GetLicenseOrganizationAddressInternal: e.out("GetLicenseOrganizationAddressInternal"),
		GetLicenseEntitlementSetName:          e.out("GetLicenseEntitlementSetName"),
		GetLicenseEntitlementSetDisplayName:   e.out("GetLicenseEntitlementSetDisplayName"),
		GetFeatureEntitlementsInternal:        e.out("GetFeatureEntitlementsInternal"),
		GetFeatureEntitlementInternal:         e.keyed("GetFeatureEntitlementInternal"),
		GetUserLicensesInternal:               e.out("GetUserLicensesInternal"),
		GetLicenseType:                        e.out("GetLicenseType"),
		GetActivationID:                       e.out("GetActivationId"),
		GetActivationMetadata:                 e.keyed("GetActivationMetadata"),
		GetActivationMode:                     e.activationMode,
		GetActivationMeterAttributeUses:       e.meterUses,
		GetServerSyncGracePeriodExpiryDate:    e.outUint32("GetServerSyncGracePeriodExpiryDate"),
		GetTrialActivationMetadata:            e.keyed("GetTrialActivationMetadata"),
		GetTrialExpiryDate:                    e.outUint32("GetTrialExpiryDate"),
		GetTrialID:                            e.out("GetTrialId"),
		GetLocalTrialExpiryDate:               e.outUint32("GetLocalTrialExpiryDate"),
		GetLibraryVersion:                     e.out("GetLibraryVersion"),

		AuthenticateUser:                      e.textPair("AuthenticateUser"),
		AuthenticateUserWithIDToken:           e.text("AuthenticateUserWithIdToken"),
		ActivateLicense:                       e.void("ActivateLicense"),
		ActivateLicenseOffline:                e.text("ActivateLicenseOffline"),
		GenerateOfflineActivationRequest:      e.text("GenerateOfflineActivationRequest"),
		DeactivateLicense:                     e.void("DeactivateLicense"),
		GenerateOfflineDeactivationRequest:    e.text("GenerateOfflineDeactivationRequest"),
		IsLicenseGenuine:                      e.void("IsLicenseGenuine"),
		IsLicenseValid:                        e.void("IsLicenseValid"),
		ActivateTrial:                         e.void("ActivateTrial"),
		ActivateTrialOffline:                  e.text("ActivateTrialOffline"),
		GenerateOfflineTrialActivationRequest: e.text("GenerateOfflineTrialActivationRequest"),
		IsTrialGenuine:                        e.void("IsTrialGenuine"),
		ActivateLocalTrial:                    e.uintArg("ActivateLocalTrial"),
		IsLocalTrialGenuine:                   e.void("IsLocalTrialGenuine"),
		ExtendLocalTrial:                      e.uintArg("ExtendLocalTrial"),
		IncrementActivationMeterAttributeUses: e.textUint("IncrementActivationMeterAttributeUses"),
		DecrementActivationMeterAttributeUses: e.textUint("DecrementActivationMeterAttributeUses"),
		ResetActivationMeterAttributeUses:     e.text("ResetActivationMeterAttributeUses"),
		Reset:                                 e.void("Reset"),
	}
}
