package config

import "log/slog"

const (
	LangEN = "en"
	LangES = "es"
)

// GetLocaleConfig devuelve lang si hay mensajes embebidos para ese idioma.
// Con un directorio de locales cualquier idioma es válido.
func GetLocaleConfig(lang, localesDir string) string {
	switch lang {
	case LangEN, LangES:
		return lang
	}
	if localesDir != "" {
		return lang
	}
	slog.Warn("idioma no soportado, usando inglés", "language", lang)
	return LangEN
}
