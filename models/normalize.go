package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// The backend services answer with two generations of field shapes:
// numeric IDs arrive as numbers or quoted strings, prices as numbers or
// strings, and a handful of attributes changed names between generations
// (approval/approvalStatus, image/imageUrl, duration/durationDays).
// Each entity normalizes to one canonical form in its UnmarshalJSON;
// nothing above the service-client boundary sees the raw shapes.

// flexID decodes a numeric ID that may arrive quoted.
type flexID int64

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*f = flexID(v)
	return nil
}

// flexFloat decodes an amount that may arrive as a number or a string.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// firstID returns the first non-zero ID.
func firstID(values ...flexID) int64 {
	for _, v := range values {
		if v != 0 {
			return int64(v)
		}
	}
	return 0
}

// parseDurationDays extracts the day count from either a bare number or a
// legacy "5 Days" style string.
func parseDurationDays(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	n, _ = strconv.Atoi(fields[0])
	return n
}

// splitServices accepts either a JSON array or the legacy comma-joined string.
func splitServices(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
