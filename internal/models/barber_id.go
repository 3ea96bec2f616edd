package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// BarberID identifies one of the shop's barbers. Clients send it either as
// a number or as a numeric string; both decode to the same value.
type BarberID int

func ParseBarberID(raw string) (BarberID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid barber id %q", raw)
	}
	return BarberID(n), nil
}

func (id *BarberID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseBarberID(s)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid barber id %s", data)
	}
	*id = BarberID(n)
	return nil
}

func (id BarberID) String() string {
	return strconv.Itoa(int(id))
}
