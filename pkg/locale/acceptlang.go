package locale

import "strings"

// maxAcceptLanguageLength caps the header length we are willing to scan.
const maxAcceptLanguageLength = 4096

// PickFromAcceptLanguage maps an Accept-Language header to a supported locale.
//
// Entries are considered strictly left to right; quality weights are ignored.
// For each entry the primary language subtag is looked up in the language
// table and the first hit wins. Empty or malformed entries are skipped.
// The default locale is returned when nothing matches.
func (r *Registry) PickFromAcceptLanguage(header string) string {
	if header == "" {
		return r.defaultLocale
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	for part := range strings.SplitSeq(header, ",") {
		tag, _, _ := strings.Cut(part, ";")
		tag = strings.ToLower(strings.TrimSpace(tag))
		lang := primarySubtag(tag)
		if lang == "" {
			continue
		}
		if l, ok := r.languages[lang]; ok {
			return l
		}
	}

	return r.defaultLocale
}
