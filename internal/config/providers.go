package config

const (
	ProviderIntelliTLDR = "intellitldr"
	ProviderGemini      = "gemini"
)

const (
	ModelGemini15Flash = "gemini-1.5-flash"
	ModelGemini25Flash = "gemini-2.5-flash"
	ModelGemini25Pro   = "gemini-2.5-pro"
)

// SupportedSummaryProviders lista los proveedores que el registry sabe construir.
// Un proveedor vacío deshabilita los resúmenes.
func SupportedSummaryProviders() []string {
	return []string{
		ProviderIntelliTLDR,
		ProviderGemini,
	}
}

func IsSupportedSummaryProvider(provider string) bool {
	if provider == "" {
		return true
	}
	for _, p := range SupportedSummaryProviders() {
		if p == provider {
			return true
		}
	}
	return false
}

func ModelsForGemini() []string {
	return []string{
		ModelGemini15Flash,
		ModelGemini25Flash,
		ModelGemini25Pro,
	}
}

func DefaultGeminiModel() string {
	return ModelsForGemini()[0]
}
