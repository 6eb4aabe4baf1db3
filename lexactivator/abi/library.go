package abi

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/CloudNativeWorks/cnw-lexactivator-sdk/lexactivator/wire"
)

// Callback receives the raw code of an engine-initiated license event.
// The engine calls it from its own background thread.
type Callback func(code int32)

// U is shorthand for the platform string code unit.
type U = wire.Unit

// Library is the engine's C-ABI surface. Field names follow the exported C
// symbols; a nil field means the loaded library does not export it.
type Library struct {
	// Setters.
	SetProductData                                func(productData *U) int32
	SetProductID                                  func(productID *U, flags uint32) int32
	SetDataDirectory                              func(dataDir *U) int32
	SetDebugMode                                  func(enable uint32) int32
	SetCacheMode                                  func(mode uint32) int32
	SetCustomDeviceFingerprint                    func(fingerprint *U) int32
	SetLicenseKey                                 func(licenseKey *U) int32
	SetLicenseUserCredential                      func(email, password *U) int32
	SetLicenseCallback                            func(callback Callback) int32
	SetActivationLeaseDuration                    func(leaseDuration int64) int32
	SetActivationMetadata                         func(key, value *U) int32
	SetTrialActivationMetadata                    func(key, value *U) int32
	SetReleaseVersion                             func(version *U) int32
	SetReleasePublishedDate                       func(date uint32) int32
	SetReleasePlatform                            func(platform *U) int32
	SetReleaseChannel                             func(channel *U) int32
	SetOfflineActivationRequestMeterAttributeUses func(name *U, uses uint32) int32
	SetNetworkProxy                               func(proxy *U) int32
	SetCryptlexHost                               func(host *U) int32
	SetTwoFactorAuthenticationCode                func(code *U) int32

	// Getters. Text results take (buffer, capacity).
	GetProductMetadata                    func(key, value *U, length uint32) int32
	GetProductVersionName                 func(name *U, length uint32) int32
	GetProductVersionDisplayName          func(name *U, length uint32) int32
	GetProductVersionFeatureFlag          func(name *U, enabled *uint32, data *U, length uint32) int32
	GetLicenseMetadata                    func(key, value *U, length uint32) int32
	GetLicenseMeterAttribute              func(name *U, allowedUses *int64, totalUses, grossUses *uint64) int32
	GetLicenseKey                         func(licenseKey *U, length uint32) int32
	GetLicenseAllowedActivations          func(allowed *int64) int32
	GetLicenseAllowedDeactivations        func(allowed *int64) int32
	GetLicenseTotalActivations            func(total *uint32) int32
	GetLicenseTotalDeactivations          func(total *uint32) int32
	GetLicenseCreationDate                func(date *uint32) int32
	GetLicenseActivationDate              func(date *uint32) int32
	GetActivationLastSyncedDate           func(date *uint32) int32
	GetLicenseExpiryDate                  func(date *uint32) int32
	GetLicenseMaintenanceExpiryDate       func(date *uint32) int32
	GetLicenseMaxAllowedReleaseVersion    func(version *U, length uint32) int32
	GetLicenseUserEmail                   func(email *U, length uint32) int32
	GetLicenseUserName                    func(name *U, length uint32) int32
	GetLicenseUserCompany                 func(company *U, length uint32) int32
	GetLicenseUserMetadata                func(key, value *U, length uint32) int32
	GetLicenseOrganizationName            func(name *U, length uint32) int32
	GetLicenseOrganizationAddressInternal func(addressJSON *U, length uint32) int32
	GetLicenseEntitlementSetName          func(name *U, length uint32) int32
	GetLicenseEntitlementSetDisplayName   func(displayName *U, length uint32) int32
	GetFeatureEntitlementsInternal        func(entitlementsJSON *U, length uint32) int32
	GetFeatureEntitlementInternal         func(featureName, entitlementJSON *U, length uint32) int32
	GetUserLicensesInternal               func(licensesJSON *U, length uint32) int32
	GetLicenseType                        func(licenseType *U, length uint32) int32
	GetActivationID                       func(id *U, length uint32) int32
	GetActivationMetadata                 func(key, value *U, length uint32) int32
	GetActivationMode                     func(initialMode *U, initialLength uint32, currentMode *U, currentLength uint32) int32
	GetActivationMeterAttributeUses       func(name *U, uses *uint32) int32
	GetServerSyncGracePeriodExpiryDate    func(date *uint32) int32
	GetTrialActivationMetadata            func(key, value *U, length uint32) int32
	GetTrialExpiryDate                    func(date *uint32) int32
	GetTrialID                            func(id *U, length uint32) int32
	GetLocalTrialExpiryDate               func(date *uint32) int32
	GetLibraryVersion                     func(version *U, length uint32) int32

	// Actions.
	AuthenticateUser                      func(email, password *U) int32
	AuthenticateUserWithIDToken           func(idToken *U) int32
	ActivateLicense                       func() int32
	ActivateLicenseOffline                func(filePath *U) int32
	GenerateOfflineActivationRequest      func(filePath *U) int32
	DeactivateLicense                     func() int32
	GenerateOfflineDeactivationRequest    func(filePath *U) int32
	IsLicenseGenuine                      func() int32
	IsLicenseValid                        func() int32
	ActivateTrial                         func() int32
	ActivateTrialOffline                  func(filePath *U) int32
	GenerateOfflineTrialActivationRequest func(filePath *U) int32
	IsTrialGenuine                        func() int32
	ActivateLocalTrial                    func(trialLength uint32) int32
	IsLocalTrialGenuine                   func() int32
	ExtendLocalTrial                      func(extensionLength uint32) int32
	IncrementActivationMeterAttributeUses func(name *U, increment uint32) int32
	DecrementActivationMeterAttributeUses func(name *U, decrement uint32) int32
	ResetActivationMeterAttributeUses     func(name *U) int32
	Reset                                 func() int32

	path    string
	missing []string

	setLicenseCallback func(callback uintptr) int32
	forward            atomic.Pointer[Callback]
	trampolineOnce     sync.Once
	trampoline         uintptr
}

// symbol pairs an exported C name with the field it binds to.
type symbol struct {
	name string
	fptr any
}

func (l *Library) symbols() []symbol {
	return []symbol{
		{"SetProductData", &l.SetProductData},
		{"SetProductId", &l.SetProductID},
		{"SetDataDirectory", &l.SetDataDirectory},
		{"SetDebugMode", &l.SetDebugMode},
		{"SetCacheMode", &l.SetCacheMode},
		{"SetCustomDeviceFingerprint", &l.SetCustomDeviceFingerprint},
		{"SetLicenseKey", &l.SetLicenseKey},
		{"SetLicenseUserCredential", &l.SetLicenseUserCredential},
		{"SetLicenseCallback", &l.setLicenseCallback},
		{"SetActivationLeaseDuration", &l.SetActivationLeaseDuration},
		{"SetActivationMetadata", &l.SetActivationMetadata},
		{"SetTrialActivationMetadata", &l.SetTrialActivationMetadata},
		{"SetReleaseVersion", &l.SetReleaseVersion},
		{"SetReleasePublishedDate", &l.SetReleasePublishedDate},
		{"SetReleasePlatform", &l.SetReleasePlatform},
		{"SetReleaseChannel", &l.SetReleaseChannel},
		{"SetOfflineActivationRequestMeterAttributeUses", &l.SetOfflineActivationRequestMeterAttributeUses},
		{"SetNetworkProxy", &l.SetNetworkProxy},
		{"SetCryptlexHost", &l.SetCryptlexHost},
		{"SetTwoFactorAuthenticationCode", &l.SetTwoFactorAuthenticationCode},

		{"GetProductMetadata", &l.GetProductMetadata},
		{"GetProductVersionName", &l.GetProductVersionName},
		{"GetProductVersionDisplayName", &l.GetProductVersionDisplayName},
		{"GetProductVersionFeatureFlag", &l.GetProductVersionFeatureFlag},
		{"GetLicenseMetadata", &l.GetLicenseMetadata},
		{"GetLicenseMeterAttribute", &l.GetLicenseMeterAttribute},
		{"GetLicenseKey", &l.GetLicenseKey},
		{"GetLicenseAllowedActivations", &l.GetLicenseAllowedActivations},
		{"GetLicenseAllowedDeactivations", &l.GetLicenseAllowedDeactivations},
		{"GetLicenseTotalActivations", &l.GetLicenseTotalActivations},
		{"GetLicenseTotalDeactivations", &l.GetLicenseTotalDeactivations},
		{"GetLicenseCreationDate", &l.GetLicenseCreationDate},
		{"GetLicenseActivationDate", &l.GetLicenseActivationDate},
		{"GetActivationLastSyncedDate", &l.GetActivationLastSyncedDate},
		{"GetLicenseExpiryDate", &l.GetLicenseExpiryDate},
		{"GetLicenseMaintenanceExpiryDate", &l.GetLicenseMaintenanceExpiryDate},
		{"GetLicenseMaxAllowedReleaseVersion", &l.GetLicenseMaxAllowedReleaseVersion},
		{"GetLicenseUserEmail", &l.GetLicenseUserEmail},
		{"GetLicenseUserName", &l.GetLicenseUserName},
		{"GetLicenseUserCompany", &l.GetLicenseUserCompany},
		{"GetLicenseUserMetadata", &l.GetLicenseUserMetadata},
		{"GetLicenseOrganizationName", &l.GetLicenseOrganizationName},
		{"GetLicenseOrganizationAddressInternal", &l.GetLicenseOrganizationAddressInternal},
		{"GetLicenseEntitlementSetName", &l.GetLicenseEntitlementSetName},
		{"GetLicenseEntitlementSetDisplayName", &l.GetLicenseEntitlementSetDisplayName},
		{"GetFeatureEntitlementsInternal", &l.GetFeatureEntitlementsInternal},
		{"GetFeatureEntitlementInternal", &l.GetFeatureEntitlementInternal},
		{"GetUserLicensesInternal", &l.GetUserLicensesInternal},
		{"GetLicenseType", &l.GetLicenseType},
		{"GetActivationId", &l.GetActivationID},
		{"GetActivationMetadata", &l.GetActivationMetadata},
		{"GetActivationMode", &l.GetActivationMode},
		{"GetActivationMeterAttributeUses", &l.GetActivationMeterAttributeUses},
		{"GetServerSyncGracePeriodExpiryDate", &l.GetServerSyncGracePeriodExpiryDate},
		{"GetTrialActivationMetadata", &l.GetTrialActivationMetadata},
		{"GetTrialExpiryDate", &l.GetTrialExpiryDate},
		{"GetTrialId", &l.GetTrialID},
		{"GetLocalTrialExpiryDate", &l.GetLocalTrialExpiryDate},
		{"GetLibraryVersion", &l.GetLibraryVersion},

		{"AuthenticateUser", &l.AuthenticateUser},
		{"AuthenticateUserWithIdToken", &l.AuthenticateUserWithIDToken},
		{"ActivateLicense", &l.ActivateLicense},
		{"ActivateLicenseOffline", &l.ActivateLicenseOffline},
		{"GenerateOfflineActivationRequest", &l.GenerateOfflineActivationRequest},
		{"DeactivateLicense", &l.DeactivateLicense},
		{"GenerateOfflineDeactivationRequest", &l.GenerateOfflineDeactivationRequest},
		{"IsLicenseGenuine", &l.IsLicenseGenuine},
		{"IsLicenseValid", &l.IsLicenseValid},
		{"ActivateTrial", &l.ActivateTrial},
		{"ActivateTrialOffline", &l.ActivateTrialOffline},
		{"GenerateOfflineTrialActivationRequest", &l.GenerateOfflineTrialActivationRequest},
		{"IsTrialGenuine", &l.IsTrialGenuine},
		{"ActivateLocalTrial", &l.ActivateLocalTrial},
		{"IsLocalTrialGenuine", &l.IsLocalTrialGenuine},
		{"ExtendLocalTrial", &l.ExtendLocalTrial},
		{"IncrementActivationMeterAttributeUses", &l.IncrementActivationMeterAttributeUses},
		{"DecrementActivationMeterAttributeUses", &l.DecrementActivationMeterAttributeUses},
		{"ResetActivationMeterAttributeUses", &l.ResetActivationMeterAttributeUses},
		{"Reset", &l.Reset},
	}
}

// Path returns the file the library was loaded from, or "" for an in-memory
// library.
func (l *Library) Path() string { return l.path }

// Missing lists the C symbols the loaded library does not export.
func (l *Library) Missing() []string {
	return append([]string(nil), l.missing...)
}

// DefaultLibraryName returns the platform file name of the engine library.
func DefaultLibraryName() string {
	switch runtime.GOOS {
	case "windows":
		return "LexActivator.dll"
	case "darwin":
		return "libLexActivator.dylib"
	default:
		return "libLexActivator.so"
	}
}

// bindCallback installs the SetLicenseCallback adapter. The engine only ever
// sees one C function pointer per library; which Go Callback it forwards to
// can be replaced at any time.
func (l *Library) bindCallback() {
	if l.setLicenseCallback == nil {
		return
	}
	l.SetLicenseCallback = func(cb Callback) int32 {
		l.forward.Store(&cb)
		l.trampolineOnce.Do(func() {
			l.trampoline = newCallback(l.forwardEvent)
		})
		return l.setLicenseCallback(l.trampoline)
	}
}

func (l *Library) forwardEvent(code int32) uintptr {
	if cb := l.forward.Load(); cb != nil && *cb != nil {
		(*cb)(code)
	}
	return 0
}
