package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CarrierStatus код статуса перевозчика. GHTK присылает его то числом, то строкой.
type CarrierStatus string

func (c *CarrierStatus) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*c = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = CarrierStatus(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("carrier status must be a number or a string: %w", err)
	}
	*c = CarrierStatus(n.String())
	return nil
}

func (c CarrierStatus) String() string {
	return string(c)
}
