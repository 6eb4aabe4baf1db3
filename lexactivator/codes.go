package lexactivator

import (
	"maps"
	"slices"
	"strconv"
)

// Code is a classified engine return code: either a Status or an ErrorCode.
type Code interface {
	// Value returns the raw integer the engine returned.
	Value() int32
	String() string

	isCode()
}

// Status is a non-fatal outcome. Statuses other than StatusOK are routine
// results the application is expected to branch on.
type Status int32

const (
	StatusOK                               Status = 0
	StatusFail                             Status = 1
	StatusExpired                          Status = 20
	StatusSuspended                        Status = 21
	StatusGracePeriodOver                  Status = 22
	StatusTrialExpired                     Status = 25
	StatusLocalTrialExpired                Status = 26
	StatusReleaseUpdateAvailable           Status = 30
	StatusReleaseUpdateNotAvailable        Status = 31
	StatusReleaseUpdateAvailableNotAllowed Status = 32
)

var statusText = map[Status]string{
	StatusOK:                               "Success code.",
	StatusFail:                             "Failure code.",
	StatusExpired:                          "The license has expired or system time has been tampered with. Ensure your date and time settings are correct.",
	StatusSuspended:                        "The license has been suspended.",
	StatusGracePeriodOver:                  "The grace period for server sync is over.",
	StatusTrialExpired:                     "The trial has expired or system time has been tampered with. Ensure your date and time settings are correct.",
	StatusLocalTrialExpired:                "The local trial has expired or system time has been tampered with. Ensure your date and time settings are correct.",
	StatusReleaseUpdateAvailable:           "A new update is available for the product. This means a new release has been published for the product.",
	StatusReleaseUpdateNotAvailable:        "No new update is available for the product. The current version is latest.",
	StatusReleaseUpdateAvailableNotAllowed: "The update available is not allowed for this license.",
}

// Value returns the raw engine code.
func (s Status) Value() int32 { return int32(s) }

// Description returns the advisory text for s.
func (s Status) Description() string { return statusText[s] }

// String formats s as "<code> <description>".
func (s Status) String() string {
	return strconv.Itoa(int(s)) + " " + s.Description()
}

func (Status) isCode() {}

// ErrorCode is a fatal outcome of an engine call. Each constant is a
// sentinel usable with errors.Is.
type ErrorCode int32

const (
	ErrFilePath                           ErrorCode = 40
	ErrProductFile                        ErrorCode = 41
	ErrProductData                        ErrorCode = 42
	ErrProductID                          ErrorCode = 43
	ErrSystemPermission                   ErrorCode = 44
	ErrFilePermission                     ErrorCode = 45
	ErrWMIC                               ErrorCode = 46
	ErrTime                               ErrorCode = 47
	ErrInet                               ErrorCode = 48
	ErrNetProxy                           ErrorCode = 49
	ErrHostURL                            ErrorCode = 50
	ErrBufferSize                         ErrorCode = 51
	ErrAppVersionLength                   ErrorCode = 52
	ErrRevoked                            ErrorCode = 53
	ErrLicenseKey                         ErrorCode = 54
	ErrLicenseType                        ErrorCode = 55
	ErrOfflineResponseFile                ErrorCode = 56
	ErrOfflineResponseFileExpired         ErrorCode = 57
	ErrActivationLimit                    ErrorCode = 58
	ErrActivationNotFound                 ErrorCode = 59
	ErrDeactivationLimit                  ErrorCode = 60
	ErrTrialNotAllowed                    ErrorCode = 61
	ErrTrialActivationLimit               ErrorCode = 62
	ErrMachineFingerprint                 ErrorCode = 63
	ErrMetadataKeyLength                  ErrorCode = 64
	ErrMetadataValueLength                ErrorCode = 65
	ErrActivationMetadataLimit            ErrorCode = 66
	ErrTrialActivationMetadataLimit       ErrorCode = 67
	ErrMetadataKeyNotFound                ErrorCode = 68
	ErrTimeModified                       ErrorCode = 69
	ErrReleaseVersionFormat               ErrorCode = 70
	ErrAuthenticationFailed               ErrorCode = 71
	ErrMeterAttributeNotFound             ErrorCode = 72
	ErrMeterAttributeUsesLimitReached     ErrorCode = 73
	ErrCustomFingerprintLength            ErrorCode = 74
	ErrProductVersionNotLinked            ErrorCode = 75
	ErrFeatureFlagNotFound                ErrorCode = 76
	ErrReleaseVersionNotAllowed           ErrorCode = 77
	ErrReleasePlatformLength              ErrorCode = 78
	ErrReleaseChannelLength               ErrorCode = 79
	ErrVM                                 ErrorCode = 80
	ErrCountry                            ErrorCode = 81
	ErrIP                                 ErrorCode = 82
	ErrContainer                          ErrorCode = 83
	ErrReleaseVersion                     ErrorCode = 84
	ErrReleasePlatform                    ErrorCode = 85
	ErrReleaseChannel                     ErrorCode = 86
	ErrUserNotAuthenticated               ErrorCode = 87
	ErrTwoFactorAuthenticationCodeMissing ErrorCode = 88
	ErrTwoFactorAuthenticationCodeInvalid ErrorCode = 89
	ErrRateLimit                          ErrorCode = 90
	ErrServer                             ErrorCode = 91
	ErrClient                             ErrorCode = 92
	ErrAccountID                          ErrorCode = 93
	ErrLoginTemporarilyLocked             ErrorCode = 100
	ErrAuthenticationIDTokenInvalid       ErrorCode = 101
	ErrOIDCSSONotEnabled                  ErrorCode = 102
	ErrUsersLimitReached                  ErrorCode = 103
	ErrOSUser                             ErrorCode = 104
	ErrInvalidPermissionFlag              ErrorCode = 105
	ErrFreePlanActivationLimitReached     ErrorCode = 106
	ErrFeatureEntitlementsInvalid         ErrorCode = 107
	ErrFeatureEntitlementNotFound         ErrorCode = 108
	ErrEntitlementSetNotLinked            ErrorCode = 109
)

var errorText = map[ErrorCode]string{
	ErrFilePath:                           "Invalid file path.",
	ErrProductFile:                        "Invalid or corrupted product file.",
	ErrProductData:                        "Invalid product data.",
	ErrProductID:                          "The product id is incorrect.",
	ErrSystemPermission:                   "Insufficient system permissions.",
	ErrFilePermission:                     "No permission to write to file.",
	ErrWMIC:                               "Fingerprint couldn't be generated because Windows Management Instrumentation (WMI) service has been disabled.",
	ErrTime:                               "The difference between the network time and the system time is more than allowed clock offset.",
	ErrInet:                               "Failed to connect to the server due to network error.",
	ErrNetProxy:                           "Invalid network proxy.",
	ErrHostURL:                            "Invalid Cryptlex host url.",
	ErrBufferSize:                         "The buffer size was smaller than required.",
	ErrAppVersionLength:                   "App version length is more than 256 characters.",
	ErrRevoked:                            "The license has been revoked.",
	ErrLicenseKey:                         "Invalid license key.",
	ErrLicenseType:                        "Invalid license type. Make sure floating license is not being used.",
	ErrOfflineResponseFile:                "Invalid offline activation response file.",
	ErrOfflineResponseFileExpired:         "The offline activation response has expired.",
	ErrActivationLimit:                    "The license has reached it's allowed activations limit.",
	ErrActivationNotFound:                 "The license activation was deleted on the server.",
	ErrDeactivationLimit:                  "The license has reached it's allowed deactivations limit.",
	ErrTrialNotAllowed:                    "Trial not allowed for the product.",
	ErrTrialActivationLimit:               "Your account has reached it's trial activations limit.",
	ErrMachineFingerprint:                 "Machine fingerprint has changed since activation.",
	ErrMetadataKeyLength:                  "Metadata key length is more than 256 characters.",
	ErrMetadataValueLength:                "Metadata value length is more than 4096 characters.",
	ErrActivationMetadataLimit:            "The license has reached it's metadata fields limit.",
	ErrTrialActivationMetadataLimit:       "The trial has reached it's metadata fields limit.",
	ErrMetadataKeyNotFound:                "The metadata key does not exist.",
	ErrTimeModified:                       "The system time has been tampered (backdated).",
	ErrReleaseVersionFormat:               "Invalid version format.",
	ErrAuthenticationFailed:               "Incorrect email or password.",
	ErrMeterAttributeNotFound:             "The meter attribute does not exist.",
	ErrMeterAttributeUsesLimitReached:     "The meter attribute has reached it's usage limit.",
	ErrCustomFingerprintLength:            "Custom device fingerprint length is less than 64 characters or more than 256 characters.",
	ErrProductVersionNotLinked:            "No product version is linked with the license.",
	ErrFeatureFlagNotFound:                "The product version feature flag does not exist.",
	ErrReleaseVersionNotAllowed:           "The release version is not allowed.",
	ErrReleasePlatformLength:              "Release platform length is more than 256 characters.",
	ErrReleaseChannelLength:               "Release channel length is more than 256 characters.",
	ErrVM:                                 "Application is being run inside a virtual machine / hypervisor, and activation has been disallowed in the VM.",
	ErrCountry:                            "Country is not allowed.",
	ErrIP:                                 "IP address is not allowed.",
	ErrContainer:                          "Application is being run inside a container and activation has been disallowed in the container.",
	ErrReleaseVersion:                     "Invalid release version. Make sure the release version uses the following formats: x.x, x.x.x, x.x.x.x (where x is a number).",
	ErrReleasePlatform:                    "Release platform not set.",
	ErrReleaseChannel:                     "Release channel not set.",
	ErrUserNotAuthenticated:               "The user is not authenticated.",
	ErrTwoFactorAuthenticationCodeMissing: "The two-factor authentication code for the user authentication is missing.",
	ErrTwoFactorAuthenticationCodeInvalid: "The two-factor authentication code provided by the user is invalid.",
	ErrRateLimit:                          "Rate limit for API has reached, try again later.",
	ErrServer:                             "Server error.",
	ErrClient:                             "Client error.",
	ErrAccountID:                          "Invalid account ID.",
	ErrLoginTemporarilyLocked:             "The user account has been temporarily locked for 5 mins due to 5 failed attempts.",
	ErrAuthenticationIDTokenInvalid:       "Invalid authentication ID token.",
	ErrOIDCSSONotEnabled:                  "OIDC SSO is not enabled.",
	ErrUsersLimitReached:                  "The allowed users for this account has reached its limit.",
	ErrOSUser:                             "OS user has changed since activation and the license is user-locked.",
	ErrInvalidPermissionFlag:              "Invalid permission flag.",
	ErrFreePlanActivationLimitReached:     "The free plan has reached its activation limit.",
	ErrFeatureEntitlementsInvalid:         "The feature entitlements are invalid.",
	ErrFeatureEntitlementNotFound:         "The feature entitlement does not exist.",
	ErrEntitlementSetNotLinked:            "No entitlement set is linked to the license.",
}

// Value returns the raw engine code.
func (e ErrorCode) Value() int32 { return int32(e) }

// Description returns the advisory text for e.
func (e ErrorCode) Description() string { return errorText[e] }

// String formats e as "<code> <description>".
func (e ErrorCode) String() string {
	return strconv.Itoa(int(e)) + " " + e.Description()
}

func (e ErrorCode) Error() string { return "lexactivator: " + e.String() }

func (ErrorCode) isCode() {}

// Classify resolves a raw engine code. Codes outside both catalogs resolve
// to ErrClient.
func Classify(code int32) Code {
	if s := Status(code); statusText[s] != "" {
		return s
	}
	if e := ErrorCode(code); errorText[e] != "" {
		return e
	}
	return ErrClient
}

// known reports whether code is in either catalog.
func known(code int32) bool {
	return statusText[Status(code)] != "" || errorText[ErrorCode(code)] != ""
}

// Statuses returns every defined Status in ascending order.
func Statuses() []Status {
	return slices.Sorted(maps.Keys(statusText))
}

// ErrorCodes returns every defined ErrorCode in ascending order.
func ErrorCodes() []ErrorCode {
	return slices.Sorted(maps.Keys(errorText))
}
