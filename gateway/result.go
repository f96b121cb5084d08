package gateway

import (
	"encoding/json"
	"errors"
)

// Result is the uniform envelope every gateway call resolves to.
// Callers branch on Success; no call ever surfaces a transport error
// directly.
type Result struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
	Status  int             `json:"status,omitempty"`
}

// Failure builds a failed result with a user-facing message.
func Failure(message string, status int) Result {
	return Result{Success: false, Error: message, Status: status}
}

// Decode unmarshals the payload into out. Some services double-wrap
// their replies in an outer {"data": ...} envelope; the inner payload
// wins when present.
func (r Result) Decode(out interface{}) error {
	if !r.Success {
		return errors.New(r.Error)
	}
	if len(r.Data) == 0 {
		return errors.New("empty response payload")
	}
	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(r.Data, &wrapped); err == nil && len(wrapped.Data) > 0 {
		if err := json.Unmarshal(wrapped.Data, out); err == nil {
			return nil
		}
	}
	return json.Unmarshal(r.Data, out)
}
