// Package i18n is the catalog of short UI strings the site needs in every
// locale: error messages, the untranslated-page notice and feed titles.
//
// Messages ship embedded (messages.yaml) and can be overridden per
// deployment with an i18n.yaml at the root of the content store:
//
//	cat, err := i18n.Load(ctx, store, reg.DefaultLocale())
//	msg := cat.T("fr-FR", "content.fallback_notice", "language", "français", "source", "English")
//
// Keys are dotted paths into the YAML tree. T falls back to the default
// locale and then to the key, so a missing message never renders empty.
package i18n
