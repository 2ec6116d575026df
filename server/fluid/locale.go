package fluid

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Translator translates a translation key, formatting args into the translation.
type Translator func(key string, args ...any) string

// LocalizedName returns the localised name of the fluid using the Translator passed. The name of the material is
// wrapped in the locale prefix of the fluid's state, if it has one.
func LocalizedName(r *Record, translate Translator) string {
	name := translate(r.UnlocalizedName())
	if prefix, ok := r.State().LocalePrefix(); ok {
		return translate(prefix, name)
	}
	return name
}

// DisplayName returns an English name for the fluid without consulting translations, such as "Distilled Water" or
// "Helium Plasma".
func DisplayName(r *Record) string {
	base := r.Name()
	if m, ok := r.Material(); ok {
		base = m.ID()
	}
	base = strings.NewReplacer("_", " ", ".", " ").Replace(base)
	name := cases.Title(language.English).String(base)
	if r.State() == StatePlasma {
		return name + " Plasma"
	}
	return name
}
