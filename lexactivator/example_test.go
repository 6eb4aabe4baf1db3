package lexactivator_test

import (
	"errors"
	"fmt"

	"github.com/CloudNativeWorks/cnw-lexactivator-sdk/lexactivator"
	"github.com/CloudNativeWorks/cnw-lexactivator-sdk/lexactivator/lexactivatortest"
)

func ExampleClient_IsLicenseGenuine() {
	eng := lexactivatortest.New()
	eng.RespondCode("IsLicenseGenuine", 20)

	client, err := lexactivator.New(lexactivator.WithLibrary(eng.Library()))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	status, err := client.IsLicenseGenuine()
	switch {
	case err != nil:
		fmt.Printf("Error: %v\n", err)
	case status == lexactivator.StatusOK:
		fmt.Println("licensed")
	default:
		fmt.Printf("not licensed: %s\n", status)
	}
	// Output: not licensed: 20 The license has expired or system time has been tampered with. Ensure your date and time settings are correct.
}

func ExampleClient_ActivateLicense() {
	eng := lexactivatortest.New()
	eng.RespondCode("ActivateLicense", 58)

	client, err := lexactivator.New(lexactivator.WithLibrary(eng.Library()))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	_, err = client.ActivateLicense()
	if errors.Is(err, lexactivator.ErrActivationLimit) {
		fmt.Println("no seats left")
	}
	// Output: no seats left
}

func ExampleClient_SetLicenseCallback() {
	eng := lexactivatortest.New()
	client, err := lexactivator.New(lexactivator.WithLibrary(eng.Library()))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer client.UnsetLicenseCallback()

	err = client.SetLicenseCallback(func(code lexactivator.Code) {
		fmt.Printf("license event: %d\n", code.Value())
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// The engine's sync thread reports a suspension.
	eng.Fire(21)
	// Output: license event: 21
}

func ExampleClassify() {
	for _, raw := range []int32{0, 21, 59, 9999} {
		fmt.Println(lexactivator.Classify(raw).String())
	}
	// Output:
	// 0 Success code.
	// 21 The license has been suspended.
	// 59 The license activation was deleted on the server.
	// 92 Client error.
}

func ExampleClient_FeatureEntitlements() {
	eng := lexactivatortest.New()
	eng.Respond("GetFeatureEntitlementsInternal", lexactivatortest.Response{
		Texts: []string{`[{"featureName":"seats","value":"10"}]`},
	})
	client, err := lexactivator.New(lexactivator.WithLibrary(eng.Library()))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	entitlements, err := client.FeatureEntitlements()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	for _, e := range entitlements {
		fmt.Printf("%s=%s\n", e.FeatureName, e.Value)
	}
	// Output: seats=10
}
