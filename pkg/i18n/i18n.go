package i18n

import (
	"strings"

	"github.com/cloudfoundry/jibber_jabber"
	"github.com/go-errors/errors"
	"github.com/imdario/mergo"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// ISO 639-1 supported language codes.
const (
	// English
	EN = "en"
	// Swedish
	SV = "sv"
)

func NewTranslationSetFromConfig(log *logrus.Entry, configLanguage string) (*TranslationSet, error) {
	if configLanguage == "auto" {
		language := detectLanguage(jibber_jabber.DetectLanguage)

		return NewTranslationSet(log, language), nil
	}

	if lo.Contains(getSupportedLanguages(), configLanguage) {
		return NewTranslationSet(log, configLanguage), nil
	}

	return NewTranslationSet(log, EN), errors.New("Language not found: " + configLanguage)
}

func NewTranslationSet(log *logrus.Entry, language string) *TranslationSet {
	log.Info("language: " + language)

	baseSet := englishSet()
	otherSet := getTranslationSet(language)

	_ = mergo.Merge(&baseSet, otherSet, mergo.WithOverride)

	return &baseSet
}

// GetTranslationSets gets all the translation sets, keyed by language code
func GetTranslationSets() map[string]TranslationSet {
	return map[string]TranslationSet{
		EN: englishSet(),
		SV: swedishSet(),
	}
}

// getTranslationSet returns the translation set that matches the given language.
//
// It returns an english translation set if not found.
func getTranslationSet(languageCode string) TranslationSet {
	switch languageCode {
	case EN:
		return englishSet()
	case SV:
		return swedishSet()
	}

	return englishSet()
}

// getSupportedLanguages returns all the supported languages.
func getSupportedLanguages() []string {
	return []string{
		EN,
		SV,
	}
}

// detectLanguage extracts user language from environment
func detectLanguage(langDetector func() (string, error)) string {
	if userLang, err := langDetector(); err == nil {
		return userLang
	}

	return "C"
}

// SystemLocale returns the user's full locale in the underscored form desktop
// entries use, e.g. sv_SE, or "" if the environment doesn't say.
func SystemLocale() string {
	locale, err := jibber_jabber.DetectIETF()
	if err != nil {
		return ""
	}

	return strings.ReplaceAll(locale, "-", "_")
}
