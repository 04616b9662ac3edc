// package language maps user-provided language codes onto the two
// analysis response languages.
package language

import "golang.org/x/text/language"

var supported = []language.Tag{language.English, language.Korean}

var matcher = language.NewMatcher(supported)

// Normalize maps a language code ("ko", "ko-KR", "en-US", ...) to the
// closest supported analysis language, "en" or "ko". Unparseable or
// unsupported input falls back to English.
func Normalize(code string) string {
	if code == "" {
		return "en"
	}

	tag, err := language.Parse(code)
	if err != nil {
		return "en"
	}

	_, idx, _ := matcher.Match(tag)
	if idx == 1 {
		return "ko"
	}
	return "en"
}
