package notify

import "github.com/markusressel/fps2go/internal/configuration"

const (
	KeyLimitChanged     = "limit.changed"
	KeyLimiterEnabled   = "limiter.enabled"
	KeyLimiterDisabled  = "limiter.disabled"
	KeyLimiterStatus    = "limiter.status"
	KeyPermissionDenied = "permission.denied"
)

var builtinMessages = map[string]configuration.MessageTable{
	"en": {
		KeyLimitChanged:     "FPS limit changed from {previous} to {value} ({load} connected)",
		KeyLimiterEnabled:   "Dynamic FPS limit enabled",
		KeyLimiterDisabled:  "Dynamic FPS limit disabled, limit reset to {value}",
		KeyLimiterStatus:    "FPS limit: {value}, connected: {load}, enabled: {enabled}",
		KeyPermissionDenied: "You do not have permission to do that",
	},
	"de": {
		KeyLimitChanged:     "FPS-Limit von {previous} auf {value} geändert ({load} verbunden)",
		KeyLimiterEnabled:   "Dynamisches FPS-Limit aktiviert",
		KeyLimiterDisabled:  "Dynamisches FPS-Limit deaktiviert, Limit auf {value} zurückgesetzt",
		KeyLimiterStatus:    "FPS-Limit: {value}, verbunden: {load}, aktiv: {enabled}",
		KeyPermissionDenied: "Dafür fehlt dir die Berechtigung",
	},
	"es": {
		KeyLimitChanged:     "Límite de FPS cambiado de {previous} a {value} ({load} conectados)",
		KeyLimiterEnabled:   "Límite dinámico de FPS activado",
		KeyLimiterDisabled:  "Límite dinámico de FPS desactivado, límite restablecido a {value}",
		KeyLimiterStatus:    "Límite de FPS: {value}, conectados: {load}, activo: {enabled}",
		KeyPermissionDenied: "No tienes permiso para hacer eso",
	},
	"fr": {
		KeyLimitChanged:     "Limite de FPS modifiée de {previous} à {value} ({load} connectés)",
		KeyLimiterEnabled:   "Limite dynamique de FPS activée",
		KeyLimiterDisabled:  "Limite dynamique de FPS désactivée, limite réinitialisée à {value}",
		KeyLimiterStatus:    "Limite de FPS : {value}, connectés : {load}, active : {enabled}",
		KeyPermissionDenied: "Vous n'avez pas la permission de faire cela",
	},
}
