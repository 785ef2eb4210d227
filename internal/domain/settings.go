package domain

import "encoding/json"

// SettingsID is the fixed identifier of the singleton settings document.
// There is exactly one settings record per deployment.
const SettingsID = "default_settings"

// Settings is the singleton browser configuration record. It is never
// deleted, only updated or lazily (re)created from defaults.
type Settings struct {
	ID                  string `json:"id"`
	Homepage            string `json:"homepage"`
	DefaultSearchEngine string `json:"default_search_engine"`
	Theme               string `json:"theme"`
}

// DefaultSettings returns the built-in settings record used when the
// store holds no settings document yet.
func DefaultSettings() Settings {
	return Settings{
		ID:                  SettingsID,
		Homepage:            "https://www.google.com",
		DefaultSearchEngine: "google",
		Theme:               "light",
	}
}

// Optional is a tri-state update field: absent from the payload, present
// with a value, or present as an explicit null (which applies the zero
// value). encoding/json only invokes UnmarshalJSON for fields present in
// the input, which is what makes absence observable.
type Optional[T any] struct {
	Set   bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// SettingsUpdate is a partial settings payload. Fields left out of the
// request body are not touched by Apply; fields present with an explicit
// null or empty value ARE applied.
type SettingsUpdate struct {
	Homepage            Optional[string] `json:"homepage"`
	DefaultSearchEngine Optional[string] `json:"default_search_engine"`
	Theme               Optional[string] `json:"theme"`
}

// Apply merges the update into s field by field. This is a merge, not a
// replace: absent fields keep their current value.
func (u SettingsUpdate) Apply(s *Settings) {
	if u.Homepage.Set {
		s.Homepage = u.Homepage.Value
	}
	if u.DefaultSearchEngine.Set {
		s.DefaultSearchEngine = u.DefaultSearchEngine.Value
	}
	if u.Theme.Set {
		s.Theme = u.Theme.Value
	}
}
