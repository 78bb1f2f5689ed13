package utils

import (
	"encoding/json"

	"github.com/tailscale/hujson"
)

// UnmarshalJsonc decodes JSON with comments and trailing commas into v.
func UnmarshalJsonc(data []byte, v any) error {
	std, err := hujson.Standardize(data) // strips comments & trailing commas
	if err != nil {
		return err
	}
	return json.Unmarshal(std, v)
}
