package lexactivator

import (
	"encoding/json"
	"strings"
)

// decodeList decodes a JSON array returned by a collection call. An empty
// payload is an empty collection.
func decodeList[T any](function, payload string) ([]T, error) {
	if strings.TrimSpace(payload) == "" {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return nil, &PayloadError{Function: function, Kind: ErrPayloadMalformed, Cause: err}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// decodeRecord decodes a JSON object returned by a single-record call. An
// empty payload means the record is absent.
func decodeRecord[T any](function, payload string) (T, error) {
	var out T
	if strings.TrimSpace(payload) == "" {
		return out, &PayloadError{Function: function, Kind: ErrPayloadMissing}
	}
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return out, &PayloadError{Function: function, Kind: ErrPayloadMalformed, Cause: err}
	}
	return out, nil
}
