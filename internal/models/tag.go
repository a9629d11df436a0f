package models

import "strings"

// TagCustom is the sentinel preset offered when the user wants a one-off tag
// instead of one of their saved presets.
const TagCustom = "Custom tag"

// Tag is a name/value pair attached to a photo. AllowMultiple marks whether
// a photo may hold several values under the same name.
type Tag struct {
	Name          string `json:"name"`
	Value         string `json:"value"`
	AllowMultiple bool   `json:"allow_multiple"`
}

func NewTag(name, value string, allowMultiple bool) Tag {
	return Tag{Name: name, Value: value, AllowMultiple: allowMultiple}
}

// MatchesName reports whether both tags share the same name, regardless of
// value.
func (t Tag) MatchesName(other Tag) bool {
	return t.Name == other.Name
}

// EqualsValue reports whether both tags have the same name and the same
// value.
func (t Tag) EqualsValue(other Tag) bool {
	return t.Name == other.Name && t.Value == other.Value
}

// TagFromString parses a "name=value" pair, splitting on the first '='. The
// second return value is false when the input has no '='. Rejecting '='
// inside the name or value is the caller's job.
func TagFromString(s string) (Tag, bool) {
	name, value, found := strings.Cut(s, "=")
	if !found {
		return Tag{}, false
	}
	return Tag{Name: name, Value: value}, true
}

func (t Tag) String() string {
	return t.Name + "=" + t.Value
}
