package lexactivator

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net"
	"os"
	"runtime"
	"slices"
	"strings"
	"unicode/utf8"
)

// FingerprintEnv overrides GenerateFingerprint when set.
const FingerprintEnv = "LEXACTIVATOR_FINGERPRINT"

// Length bounds the engine accepts for SetCustomDeviceFingerprint.
const (
	MinFingerprintLength = 64
	MaxFingerprintLength = 256
)

// GenerateFingerprint returns a stable machine id for
// SetCustomDeviceFingerprint: the SHA-256 hex digest of the OS machine id,
// hostname, hardware addresses, OS and architecture.
//
// Containers often get fresh MAC addresses and hostnames on restart. Pin
// the id there with LEXACTIVATOR_FINGERPRINT, which must be 64 to 256
// characters long.
func GenerateFingerprint() (string, error) {
	if fp := os.Getenv(FingerprintEnv); fp != "" {
		if err := validateFingerprint(fp); err != nil {
			return "", fmt.Errorf("%s: %w", FingerprintEnv, err)
		}
		return fp, nil
	}

	hostname, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("get hostname: %w", err)
	}

	parts := []string{machineID(), hostname}
	parts = append(parts, hardwareAddrs()...)
	parts = append(parts, runtime.GOOS, runtime.GOARCH)

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:]), nil
}

func validateFingerprint(fp string) error {
	if n := utf8.RuneCountInString(fp); n < MinFingerprintLength || n > MaxFingerprintLength {
		return fmt.Errorf("%w (got %d)", ErrCustomFingerprintLength, n)
	}
	return nil
}

// hardwareAddrs returns the sorted MAC addresses of non-loopback
// interfaces. Failures yield nil; the other parts still identify the host.
func hardwareAddrs() []string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil
	}
	var addrs []string
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || len(iface.HardwareAddr) == 0 {
			continue
		}
		addrs = append(addrs, iface.HardwareAddr.String())
	}
	slices.Sort(addrs)
	return slices.Compact(addrs)
}
