package defaults

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/voyage/internal/domain"
)

// Loader handles loading and validating the settings-defaults file.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for the given file path. An empty path
// means no override file is configured.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load returns the settings defaults used for the lazy first-read
// creation of the singleton: the built-in defaults, overridden field by
// field from the YAML file when one is configured. A missing or
// unparsable file when a path IS configured is a startup error, not a
// silent fallback.
func (l *Loader) Load() (domain.Settings, error) {
	settings := domain.DefaultSettings()
	if l.filePath == "" {
		return settings, nil
	}

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to read settings defaults file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, fmt.Errorf("failed to parse settings defaults yaml: %w", err)
	}

	if file.Homepage != "" {
		settings.Homepage = file.Homepage
	}
	if file.DefaultSearchEngine != "" {
		settings.DefaultSearchEngine = file.DefaultSearchEngine
	}
	if file.Theme != "" {
		if !knownThemes[file.Theme] {
			return domain.Settings{}, fmt.Errorf("unknown theme %q in settings defaults file", file.Theme)
		}
		settings.Theme = file.Theme
	}

	return settings, nil
}
