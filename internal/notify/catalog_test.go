package notify

import (
	"testing"

	"github.com/markusressel/fps2go/internal/configuration"
	"github.com/stretchr/testify/assert"
)

func TestCatalog_RenderDefaultLanguage(t *testing.T) {
	// GIVEN
	catalog := NewCatalog(configuration.NotificationConfig{Language: "en"})

	// WHEN
	result := catalog.Render("", KeyLimitChanged, Params{"previous": 9, "value": 27, "load": 1})

	// THEN
	assert.Equal(t, "FPS limit changed from 9 to 27 (1 connected)", result)
}

func TestCatalog_RenderSessionLanguage(t *testing.T) {
	// GIVEN
	catalog := NewCatalog(configuration.NotificationConfig{Language: "en"})

	// WHEN
	result := catalog.Render("de", KeyLimiterDisabled, Params{"value": 60})

	// THEN
	assert.Equal(t, "Dynamisches FPS-Limit deaktiviert, Limit auf 60 zurückgesetzt", result)
}

func TestCatalog_RegionFallsBackToBaseLanguage(t *testing.T) {
	// GIVEN
	catalog := NewCatalog(configuration.NotificationConfig{Language: "en"})

	// WHEN
	result := catalog.Template("fr_CA", KeyPermissionDenied)

	// THEN
	assert.Equal(t, "Vous n'avez pas la permission de faire cela", result)
}

func TestCatalog_UnknownLanguageFallsBackToDefault(t *testing.T) {
	// GIVEN
	catalog := NewCatalog(configuration.NotificationConfig{Language: "es"})

	// WHEN
	result := catalog.Template("xx", KeyPermissionDenied)

	// THEN
	assert.Equal(t, "No tienes permiso para hacer eso", result)
}

func TestCatalog_MissingKeyInLanguageFallsBackToEnglish(t *testing.T) {
	// GIVEN
	catalog := NewCatalog(configuration.NotificationConfig{
		Language: "pl",
		Messages: map[string]configuration.MessageTable{
			"pl": {KeyPermissionDenied: "Brak uprawnień"},
		},
	})

	// WHEN
	denied := catalog.Template("pl", KeyPermissionDenied)
	enabled := catalog.Template("pl", KeyLimiterEnabled)

	// THEN
	assert.Equal(t, "Brak uprawnień", denied)
	assert.Equal(t, "Dynamic FPS limit enabled", enabled)
	assert.Contains(t, catalog.Languages(), "pl")
}

func TestCatalog_UnknownKey(t *testing.T) {
	// GIVEN
	catalog := NewCatalog(configuration.NotificationConfig{})

	// WHEN
	result := catalog.Render("en", "does.not.exist", nil)

	// THEN
	assert.Equal(t, "does.not.exist", result)
	assert.Equal(t, "en", catalog.DefaultLanguage())
}

func TestCatalog_OverrideKeepsUnknownPlaceholders(t *testing.T) {
	// GIVEN
	catalog := NewCatalog(configuration.NotificationConfig{
		Language: "en",
		Messages: map[string]configuration.MessageTable{
			"EN": {KeyLimitChanged: "{value} fps {unknown}"},
		},
	})

	// WHEN
	result := catalog.Render("en", KeyLimitChanged, Params{"value": 41})

	// THEN
	assert.Equal(t, "41 fps {unknown}", result)
}

func TestCatalog_Languages(t *testing.T) {
	// GIVEN
	catalog := NewCatalog(configuration.NotificationConfig{})

	// THEN
	assert.Equal(t, []string{"de", "en", "es", "fr"}, catalog.Languages())
}
