package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Parse parses a BCP-47 code such as "en-US".
func Parse(code string) (language.Tag, error) {
	return language.Parse(strings.TrimSpace(code))
}

// ToISO2 returns the base language of code, e.g. "en" for "en-US". Returns
// an empty string for unrecognized input.
func ToISO2(code string) string {
	tag, err := Parse(code)
	if err != nil {
		return ""
	}
	base, conf := tag.Base()
	if conf == language.No {
		return ""
	}
	return base.String()
}

// DisplayName returns an English name such as "English (United States)".
// Returns "Unknown" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "Unknown"
	}
	tag, err := Parse(trimmed)
	if err != nil {
		return strings.ToUpper(trimmed)
	}

	base, _ := tag.Base()
	name := display.English.Languages().Name(base)
	if name == "" {
		return strings.ToUpper(trimmed)
	}
	if region, conf := tag.Region(); conf == language.Exact {
		if regionName := display.English.Regions().Name(region); regionName != "" {
			name += " (" + regionName + ")"
		}
	}
	return name
}
