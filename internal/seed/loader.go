package seed

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var templateVar = regexp.MustCompile(`\{\{\s*([A-Z0-9_]+)\s*\}\}`)

// Loader reads seed content from a YAML file layered over the defaults.
type Loader struct {
	filePath string
	now      func() time.Time
}

// NewLoader creates a loader. An empty path yields the defaults only.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
		now:      time.Now,
	}
}

// Load returns the defaults with every section present in the file replaced
// by the file's version. Sections the file omits keep their defaults.
func (l *Loader) Load() (Data, error) {
	data := Defaults(l.now())
	if l.filePath == "" {
		return data, nil
	}

	raw, err := os.ReadFile(l.filePath)
	if err != nil {
		return Data{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	raw = expandTemplateVariables(raw)

	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	return data, nil
}

// expandTemplateVariables replaces {{CLUB_VAR}} with the environment value.
// Unset variables expand to an empty string.
func expandTemplateVariables(data []byte) []byte {
	return templateVar.ReplaceAllFunc(data, func(m []byte) []byte {
		name := strings.TrimSpace(string(templateVar.FindSubmatch(m)[1]))
		return []byte(os.Getenv(name))
	})
}
