package names

import (
	"strings"
	"unicode"

	locale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DetectLanguage returns the base language of the user's locale ("fr" for
// fr_FR.UTF-8), or DefaultLanguage when it cannot be determined.
func DetectLanguage() string {
	loc, err := locale.GetLocale()
	if err != nil {
		return DefaultLanguage
	}
	return BaseLanguage(loc)
}

// BaseLanguage reduces a locale string to its base language subtag. POSIX
// forms ("pt_BR.UTF-8") are accepted as well as BCP 47 ones.
func BaseLanguage(loc string) string {
	loc, _, _ = strings.Cut(loc, ".")
	loc, _, _ = strings.Cut(loc, "@")
	loc = strings.ReplaceAll(loc, "_", "-")
	if loc == "" || loc == "C" || loc == "POSIX" {
		return DefaultLanguage
	}
	tag, err := language.Parse(loc)
	if err != nil {
		return DefaultLanguage
	}
	base, conf := tag.Base()
	if conf == language.No {
		return DefaultLanguage
	}
	return base.String()
}

// Tag is lang as a language tag, for collation.
func Tag(lang string) language.Tag {
	t, err := language.Parse(lang)
	if err != nil {
		return language.Und
	}
	return t
}

// Fold strips diacritics ("États-Unis" becomes "Etats-Unis") for fonts that
// only cover ASCII.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
