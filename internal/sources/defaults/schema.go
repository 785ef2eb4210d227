package defaults

// File is the on-disk shape of the optional settings-defaults override.
// Every field is optional; omitted fields keep the built-in default.
type File struct {
	Homepage            string `yaml:"homepage,omitempty"`
	DefaultSearchEngine string `yaml:"default_search_engine,omitempty"`
	Theme               string `yaml:"theme,omitempty"`
}

// knownThemes are the values the frontend can render.
var knownThemes = map[string]bool{
	"light": true,
	"dark":  true,
}
