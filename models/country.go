package models

import "strings"

// Country is a single entry of the upstream country list.
type Country struct {
	// Name is the display name ("common" upstream). Empty means missing.
	Name string `json:"common,omitempty"`
	// Flag is the flag image URL ("png" upstream). Empty means missing.
	Flag string `json:"png,omitempty"`
	// Position is the index of the record in the loaded list.
	Position int `json:"position"`
}

// HasName reports whether the record carries a display name.
func (c *Country) HasName() bool {
	return c.Name != ""
}

// NameContains reports whether the lower-cased display name contains needle.
// needle must already be lower-cased.
func (c *Country) NameContains(needle string) bool {
	if !c.HasName() {
		return false
	}
	return strings.Contains(strings.ToLower(c.Name), needle)
}
