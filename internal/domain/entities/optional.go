package entities

import "github.com/volatiletech/null/v8"

// OptionalString is a request field that remembers whether its key was sent.
// An explicit JSON null decodes as Set with an invalid Value.
type OptionalString struct {
	Set   bool
	Value null.String
}

// OptionalStringFrom returns a field that was sent with value s
func OptionalStringFrom(s string) OptionalString {
	return OptionalString{Set: true, Value: null.StringFrom(s)}
}

// UnmarshalJSON is only reached for keys present in the body
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	return o.Value.UnmarshalJSON(data)
}

// Change reports the field as a present or absent value. An explicit null
// becomes a present empty string, which clears optional columns.
func (o OptionalString) Change() null.String {
	switch {
	case !o.Set:
		return null.String{}
	case !o.Value.Valid:
		return null.StringFrom("")
	default:
		return o.Value
	}
}
