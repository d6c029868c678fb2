package api

import (
	"fmt"
	"strings"
	"time"
)

// wireTimeLayout is the naive (zone-less) datetime format the backend emits
// and accepts for scheduling fields.
const wireTimeLayout = "2006-01-02T15:04:05"

// wireTime tolerates the backend's datetime variants: RFC 3339, naive
// seconds, and naive minutes.
type wireTime struct {
	time.Time
}

var wireTimeLayouts = []string{
	time.RFC3339,
	wireTimeLayout,
	"2006-01-02T15:04",
}

func (t *wireTime) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range wireTimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized datetime %q", raw)
}

func (t wireTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(wireTimeLayout) + `"`), nil
}
