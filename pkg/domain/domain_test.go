package domain

import "testing"

func TestNormalizerNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"uppercase", "EXAMPLE.COM", "example.com"},
		{"spaces", "  example.com  ", "example.com"},
		{"trailing_dot", "example.com.", "example.com"},
		{"single_trailing_dot_only", "example.com..", "example.com."},
		{"mixed", "  Example.COM.  ", "example.com"},
	}

	n := NewNormalizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := n.Normalize(tt.input); result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestResolverResolve(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single_label", "onelabel", "onelabel"},
		{"two_labels", "example.com", "example.com"},
		{"subdomain", "sub.example.com", "example.com"},
		{"deep_subdomain", "a.b.c.example.com", "example.com"},
		{"two_part_suffix", "www.example.co.uk", "example.co.uk"},
		{"two_part_suffix_deep", "a.b.example.com.au", "example.com.au"},
		{"bare_two_part_suffix", "co.uk", "co.uk"},
		{"uppercase", "WWW.Example.COM", "example.com"},
		{"trailing_dot", "example.com.", "example.com"},
		{"gov_uk", "www.service.gov.uk", "service.gov.uk"},
	}

	r := NewResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := r.Resolve(tt.input)
			if !ok {
				t.Fatalf("Resolve(%q) returned no apex", tt.input)
			}
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestResolverResolveEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"lone_dot", "."},
	}

	r := NewResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result, ok := r.Resolve(tt.input); ok {
				t.Errorf("Resolve(%q) = %q, want no apex", tt.input, result)
			}
		})
	}
}

func TestResolverResolveIdempotent(t *testing.T) {
	inputs := []string{
		"sub.example.com",
		"www.example.co.uk",
		"example.com",
		"onelabel",
		"a.b.c.d.e.net",
	}

	r := NewResolver()
	for _, input := range inputs {
		first, ok := r.Resolve(input)
		if !ok {
			t.Fatalf("Resolve(%q) returned no apex", input)
		}
		second, ok := r.Resolve(first)
		if !ok {
			t.Fatalf("Resolve(%q) returned no apex", first)
		}
		if first != second {
			t.Errorf("Resolve is not idempotent for %q: %q != %q", input, first, second)
		}
	}
}

func TestResolverTrailingDotInsensitive(t *testing.T) {
	r := NewResolver()

	withDot, _ := r.Resolve("example.com.")
	withoutDot, _ := r.Resolve("example.com")
	if withDot != withoutDot {
		t.Errorf("Resolve(%q) = %q, Resolve(%q) = %q; want equal",
			"example.com.", withDot, "example.com", withoutDot)
	}
}
