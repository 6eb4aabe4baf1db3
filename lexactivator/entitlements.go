package lexactivator

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// ErrCPULimitExceeded is returned by CheckCPULimit.
var ErrCPULimitExceeded = errors.New("CPU limit exceeded")

// Entitlements indexes feature entitlements by feature name.
type Entitlements map[string]string

// NewEntitlements indexes list. Later entries win on duplicate names.
func NewEntitlements(list []FeatureEntitlement) Entitlements {
	e := make(Entitlements, len(list))
	for _, fe := range list {
		e[fe.FeatureName] = fe.Value
	}
	return e
}

// Entitlements fetches and indexes the license's feature entitlements.
func (c *Client) Entitlements() (Entitlements, error) {
	list, err := c.FeatureEntitlements()
	if err != nil {
		return nil, err
	}
	return NewEntitlements(list), nil
}

// Enabled reports whether feature is granted with a truthy value
// ("true", "1", "yes" or "on").
func (e Entitlements) Enabled(feature string) bool {
	switch strings.ToLower(strings.TrimSpace(e[feature])) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

// Limit returns the integer value of feature. A missing feature reports
// ok == false; a value that is not an integer is an error.
func (e Entitlements) Limit(feature string) (limit int64, ok bool, err error) {
	v, ok := e[feature]
	if !ok {
		return 0, false, nil
	}
	limit, err = strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, true, fmt.Errorf("entitlement %s: %w", feature, err)
	}
	return limit, true, nil
}

// CheckCPULimit fails when this machine has more CPUs than the integer
// entitlement feature allows. A missing feature or a limit of 0 means
// unlimited.
func CheckCPULimit(e Entitlements, feature string) error {
	limit, ok, err := e.Limit(feature)
	if err != nil || !ok || limit <= 0 {
		return err
	}
	if n := runtime.NumCPU(); int64(n) > limit {
		return fmt.Errorf("%w: machine has %d CPUs, limit is %d", ErrCPULimitExceeded, n, limit)
	}
	return nil
}
