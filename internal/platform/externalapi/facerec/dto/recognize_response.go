// Package dto defines data transfer objects for the face recognition service responses.
package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// UserID normalizes the polymorphic identifier returned by the recognition
// service. The service is not contractually bound to a single numeric encoding,
// so the field may arrive as a JSON integer, a wide integer, or a numeric
// string. Anything else fails to unmarshal.
type UserID uint

// UnmarshalJSON accepts integer, 64-bit integer, and numeric-string encodings.
func (u *UserID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*u = UserID(v)
	return nil
}

// RecognizeResponse represents the JSON response from the /recognize endpoint.
// UID is a pointer so an omitted field can be told apart from a zero value;
// a missing UID means no match.
type RecognizeResponse struct {
	UID *UserID `json:"uid"`
}

// Compile-time check that UserID implements json.Unmarshaler.
var _ json.Unmarshaler = (*UserID)(nil)
