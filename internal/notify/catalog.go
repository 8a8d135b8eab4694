package notify

import (
	"fmt"
	"strings"

	"github.com/markusressel/fps2go/internal/configuration"
	"github.com/markusressel/fps2go/internal/util"
	"github.com/valyala/fasttemplate"
)

// Params are the values substituted into {placeholder}s of a message template
type Params map[string]any

// Catalog maps (language, message key) to a message template
type Catalog struct {
	defaultLanguage string
	tables          map[string]configuration.MessageTable
}

// NewCatalog creates a catalog from the built-in messages, extended and
// overridden by the messages of the given configuration.
func NewCatalog(config configuration.NotificationConfig) *Catalog {
	tables := map[string]configuration.MessageTable{}
	for language, table := range builtinMessages {
		tables[language] = configuration.MessageTable{}
		for key, template := range table {
			tables[language][key] = template
		}
	}
	for language, table := range config.Messages {
		language = normalizeLanguage(language)
		if _, exists := tables[language]; !exists {
			tables[language] = configuration.MessageTable{}
		}
		for key, template := range table {
			tables[language][strings.ToLower(key)] = template
		}
	}

	defaultLanguage := normalizeLanguage(config.Language)
	if defaultLanguage == "" {
		defaultLanguage = configuration.DefaultLanguage
	}

	return &Catalog{
		defaultLanguage: defaultLanguage,
		tables:          tables,
	}
}

func (c *Catalog) DefaultLanguage() string {
	return c.defaultLanguage
}

// Languages returns all languages with at least one message, sorted
func (c *Catalog) Languages() []string {
	return util.SortedKeys(c.tables)
}

// Template returns the template for the given key. The lookup tries the given
// language ("de-AT" before "de"), then the default language, then english.
// The key itself is returned if no template exists.
func (c *Catalog) Template(language string, key string) string {
	for _, candidate := range c.candidates(language) {
		if template, ok := c.tables[candidate][key]; ok {
			return template
		}
	}
	return key
}

// Render returns the message for the given key with all params substituted
func (c *Catalog) Render(language string, key string, params Params) string {
	values := make(map[string]interface{}, len(params))
	for name, value := range params {
		values[name] = fmt.Sprint(value)
	}
	return fasttemplate.ExecuteStringStd(c.Template(language, key), "{", "}", values)
}

func (c *Catalog) candidates(language string) []string {
	language = normalizeLanguage(language)
	var result []string
	if language != "" {
		result = append(result, language)
		if base, _, found := strings.Cut(language, "-"); found {
			result = append(result, base)
		}
	}
	return append(result, c.defaultLanguage, configuration.DefaultLanguage)
}

func normalizeLanguage(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	return strings.ReplaceAll(language, "_", "-")
}
