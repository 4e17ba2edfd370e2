package alignment

import (
	"slices"
	"strings"
)

// TraitSlugs are the trait tags that encode an alignment on a character.
var TraitSlugs = []string{"lg", "ln", "le", "ng", "ne", "cg", "cn", "ce", "nn"}

// IsTraitSlug reports whether t is one of TraitSlugs.
func IsTraitSlug(t string) bool {
	return slices.Contains(TraitSlugs, t)
}

// TraitFor returns the trait slug for v.
func TraitFor(v Value) string {
	return strings.ToLower(v.Abbreviation())
}

// ReplaceTrait drops every alignment slug from traits and appends slug.
// Other traits keep their order. The input slice is not modified.
func ReplaceTrait(traits []string, slug string) []string {
	out := make([]string, 0, len(traits)+1)
	for _, t := range traits {
		if !IsTraitSlug(t) {
			out = append(out, t)
		}
	}
	return append(out, slug)
}
