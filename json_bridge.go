package lineskema

import (
	gojson "github.com/goccy/go-json"
)

// ToJSON renders a produced value tree as JSON using goccy/go-json: leaves
// become numbers/strings/bools, sequences become arrays, records become
// objects. Record field order follows the map projection, not declaration
// order.
func ToJSON(v Value) ([]byte, error) {
	return gojson.Marshal(v.AsAny())
}

// MarshalJSON implements json.Marshaler over the AsAny projection.
func (v Value) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(v.AsAny())
}
