// Package i18n holds the translatable strings for the neonzip CLI.
package i18n

import (
	"os"
	"strings"
)

// Language represents supported languages
type Language string

const (
	English    Language = "en"
	Portuguese Language = "pt"
)

// AllMessages holds all translatable strings grouped by command
type AllMessages struct {
	App     AppMessages
	Common  CommonMessages
	List    ListMessages
	Extract ExtractMessages
	Dump    DumpMessages
	Info    InfoMessages
}

// CurrentLanguage holds the current language setting
var CurrentLanguage Language = English

// I18nMsg holds the current message set
var I18nMsg AllMessages

var EnglishAllMessages = AllMessages{
	App:     EnglishAppMessages,
	Common:  EnglishCommonMessages,
	List:    EnglishListMessages,
	Extract: EnglishExtractMessages,
	Dump:    EnglishDumpMessages,
	Info:    EnglishInfoMessages,
}

var PortugueseAllMessages = AllMessages{
	App:     PortugueseAppMessages,
	Common:  PortugueseCommonMessages,
	List:    PortugueseListMessages,
	Extract: PortugueseExtractMessages,
	Dump:    PortugueseDumpMessages,
	Info:    PortugueseInfoMessages,
}

// DetectLanguage detects the user's language preference based on environment variables
func DetectLanguage() Language {
	envVars := []string{"LANG", "LANGUAGE", "LC_ALL", "LC_MESSAGES"}

	for _, envVar := range envVars {
		if lang := os.Getenv(envVar); lang != "" {
			lang = strings.ToLower(lang)
			if strings.HasPrefix(lang, "pt") || strings.Contains(lang, "brazil") {
				return Portuguese
			}
		}
	}

	return English
}

// SetLanguage sets the current language and updates messages
func SetLanguage(lang Language) {
	CurrentLanguage = lang
	switch lang {
	case Portuguese:
		I18nMsg = PortugueseAllMessages
	default:
		I18nMsg = EnglishAllMessages
	}
}

// InitLanguage initializes the message set from the environment.
func InitLanguage() {
	SetLanguage(DetectLanguage())
}
