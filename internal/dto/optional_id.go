package dto

import (
	"bytes"
	"strconv"
)

// OptionalID is an id field that tolerates malformed input. Clients
// send ids as JSON numbers or numeric strings; anything else is
// recorded as present-but-invalid instead of failing the request, so
// callers can treat it as an omitted reference.
type OptionalID struct {
	Present bool
	Valid   bool
	Int64   int64
}

func (id *OptionalID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = OptionalID{}
		return nil
	}

	*id = OptionalID{Present: true}

	raw := string(data)
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}

	id.Valid = true
	id.Int64 = n
	return nil
}

// Value returns the id when it parsed, nil otherwise.
func (id OptionalID) Value() *int64 {
	if !id.Valid {
		return nil
	}
	v := id.Int64
	return &v
}
