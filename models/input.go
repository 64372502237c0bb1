package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Input is a request value kept as text whatever JSON type the client sent,
// so that a wrong type fails validation instead of binding. JSON null binds
// to the empty string.
type Input string

// InputID renders id the way a client would send it.
func InputID(id uint) Input {
	return Input(strconv.FormatUint(uint64(id), 10))
}

func (i *Input) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*i = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*i = Input(s)
	default:
		*i = Input(b)
	}
	return nil
}

// Uint parses the value as a positive row id that fits a bigint column.
func (i Input) Uint() (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(string(i)), 10, 63)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
