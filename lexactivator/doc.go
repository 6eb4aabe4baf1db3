// Package lexactivator is a Go binding for the native LexActivator licensing
// engine.
//
// Install with:
//
//	go get github.com/CloudNativeWorks/cnw-lexactivator-sdk/lexactivator
//
// The engine ships as a shared library (libLexActivator.so,
// libLexActivator.dylib or LexActivator.dll) and is loaded at run time
// without cgo. Every engine capability is a method on Client.
//
// # Results
//
// The engine answers every call with an integer code, classified into one of
// two kinds:
//
//   - Status: a routine outcome such as StatusExpired or StatusSuspended.
//     Calls like IsLicenseGenuine return it with a nil error.
//   - ErrorCode: a failure such as ErrActivationNotFound. It is returned as
//     the error and works with errors.Is.
//
// Codes this package does not know are reported as ErrClient.
//
// # Quick Start
//
//	client, err := lexactivator.New()
//	if err != nil {
//	    return err
//	}
//	if err := client.SetProductData(productData); err != nil {
//	    return err
//	}
//	if err := client.SetProductID(productID, lexactivator.PermissionUser); err != nil {
//	    return err
//	}
//	status, err := client.IsLicenseGenuine()
//	switch {
//	case err != nil:
//	    return err
//	case status == lexactivator.StatusOK:
//	    // licensed
//	case status == lexactivator.StatusExpired:
//	    // renew
//	}
//
// # License events
//
// The engine re-validates activations on a background thread and reports
// the outcome through a single process-wide listener:
//
//	err := client.SetLicenseCallback(func(code lexactivator.Code) {
//	    if code == lexactivator.StatusSuspended {
//	        disableFeatures()
//	    }
//	})
//
// # Configuration
//
// LoadConfig reads LEXACTIVATOR_* environment variables and LoadConfigFile a
// YAML file; Client.Apply then makes the setter calls in the required order.
package lexactivator
