package polymarket

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// APIEvent represents an event as returned by the Gamma API. Outcomes and
// OutcomePrices arrive as JSON-encoded strings inside the payload (e.g.
// "[\"Yes\",\"No\"]") and must be decoded separately.
type APIEvent struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Outcomes      string    `json:"outcomes"`
	OutcomePrices string    `json:"outcomePrices"`
	Volume        flexFloat `json:"volume"`
	Liquidity     flexFloat `json:"liquidity"`
	EndDate       string    `json:"endDate"`
	Active        flexBool  `json:"active"`
	Closed        bool      `json:"closed"`
	Image         string    `json:"image"`
}

// DecodeStringArray decodes one of the nested JSON-encoded array fields. A
// malformed field yields an empty slice, never an error: the event is still
// usable without its outcomes.
func DecodeStringArray(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return []string{}
	}
	return out
}

// flexBool decodes a JSON field that the API may send as a bool or as the
// strings "true"/"false".
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	v, err := strconv.ParseBool(string(data))
	if err != nil {
		*b = false
		return nil
	}
	*b = flexBool(v)
	return nil
}

// flexFloat decodes a JSON field that the API may send as a number or as a
// numeric string. Unparseable values decode as zero.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}
