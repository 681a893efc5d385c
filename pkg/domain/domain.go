package domain

import "strings"

// Normalizer normalizes domains
type Normalizer struct{}

// NewNormalizer creates normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize trims, lowercases and strips a single trailing dot
func (n *Normalizer) Normalize(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	return strings.TrimSuffix(domain, ".")
}

// twoPartSuffixes is an intentionally small heuristic set, not the Public
// Suffix List. Downstream lists depend on its exact behavior, so it must
// not be extended.
var twoPartSuffixes = map[string]bool{
	"co.uk": true, "co.jp": true, "co.kr": true, "co.nz": true,
	"co.za": true, "co.il": true, "co.in": true,
	"com.au": true, "com.br": true, "com.cn": true, "com.mx": true,
	"com.ar": true, "com.tr": true,
	"org.uk": true, "org.au": true,
	"ac.uk": true, "gov.uk": true, "net.au": true,
}

// Resolver reduces domains to their registrable (apex) form
type Resolver struct {
	normalizer *Normalizer
}

// NewResolver creates resolver
func NewResolver() *Resolver {
	return &Resolver{normalizer: NewNormalizer()}
}

// Resolve returns the apex domain for raw. The boolean is false when raw
// is empty after normalization. Single-label input is passed through
// unchanged; otherwise the last two labels are kept, or the last three
// when the final two form a known two-part suffix.
func (r *Resolver) Resolve(raw string) (string, bool) {
	domain := r.normalizer.Normalize(raw)
	if domain == "" {
		return "", false
	}

	labels := strings.Split(domain, ".")
	if len(labels) <= 1 {
		return domain, true
	}

	if len(labels) >= 3 {
		suffix := labels[len(labels)-2] + "." + labels[len(labels)-1]
		if twoPartSuffixes[suffix] {
			return strings.Join(labels[len(labels)-3:], "."), true
		}
	}

	return strings.Join(labels[len(labels)-2:], "."), true
}
