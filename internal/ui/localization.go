package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Fallback language for missing keys
const defaultLanguage = "es"

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyHeaderTitle    = "header_title"
	KeyHeaderText     = "header_text"
	KeyHeaderSubtitle = "header_subtitle"
	KeyLoading        = "loading"
	KeyLoadFailed     = "load_failed"
	KeyLabelName      = "label_name"
	KeyLabelStatus    = "label_status"
	KeyLabelSpecies   = "label_species"
	KeyLabelGender    = "label_gender"
	KeyLabelID        = "label_id"
	KeyLabelURL       = "label_url"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: defaultLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; unknown codes are ignored
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts[defaultLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["es"] = map[string]string{
		KeyAppTitle:       "Personajes",
		KeyHeaderTitle:    "Api React Native",
		KeyHeaderText:     "Desde la Api publica de Rick and Morty, extraigo Nombre, State, Genero, Id, URL, Png",
		KeyHeaderSubtitle: "Estudiante: Juan David Escobar Corrales",
		KeyLoading:        "Cargando personajes...",
		KeyLoadFailed:     "No se pudieron cargar los personajes. Por favor, intenta más tarde.",
		KeyLabelName:      "Nombre del Personaje:",
		KeyLabelStatus:    "Estado actual:",
		KeyLabelSpecies:   "Especie:",
		KeyLabelGender:    "Género:",
		KeyLabelID:        "ID:",
		KeyLabelURL:       "URL:",
	}

	l.texts["en"] = map[string]string{
		KeyAppTitle:       "Characters",
		KeyHeaderTitle:    "Api React Native",
		KeyHeaderText:     "From the public Rick and Morty Api, I extract Name, State, Gender, Id, URL, Png",
		KeyHeaderSubtitle: "Student: Juan David Escobar Corrales",
		KeyLoading:        "Loading characters...",
		KeyLoadFailed:     "Characters could not be loaded. Please try again later.",
		KeyLabelName:      "Character name:",
		KeyLabelStatus:    "Current status:",
		KeyLabelSpecies:   "Species:",
		KeyLabelGender:    "Gender:",
		KeyLabelID:        "ID:",
		KeyLabelURL:       "URL:",
	}
}
