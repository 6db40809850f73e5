package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DisplayName returns the native name of a locale ("Français (France)"),
// or the tag itself when x/text cannot name it.
func DisplayName(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return locale
}

// Entry describes a supported locale for locale switchers.
type Entry struct {
	Locale  string `json:"locale"`
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

// Entries returns the supported locales with display names, in order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.locales))
	for _, l := range r.locales {
		out = append(out, Entry{
			Locale:  l,
			Name:    DisplayName(l),
			Default: l == r.defaultLocale,
		})
	}
	return out
}
