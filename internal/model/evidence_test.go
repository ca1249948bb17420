package model

import "testing"

func TestEvidenceItem_Domain(t *testing.T) {
	tests := []struct {
		name string
		item EvidenceItem
		want string
	}{
		{"url host", EvidenceItem{URL: "https://who.int/fact", Source: "WHO"}, "who.int"},
		{"www stripped", EvidenceItem{URL: "https://www.reuters.com/article"}, "reuters.com"},
		{"port stripped", EvidenceItem{URL: "https://example.com:8080/page"}, "example.com"},
		{"mixed case host", EvidenceItem{URL: "https://CDC.gov/page"}, "cdc.gov"},
		{"no url falls back to source", EvidenceItem{Source: "Local Paper"}, "local paper"},
		{"source trimmed", EvidenceItem{Source: "  CDC  "}, "cdc"},
		{"unparseable url falls back", EvidenceItem{URL: "://bad", Source: "Fallback"}, "fallback"},
		{"empty", EvidenceItem{}, ""},
	}

	for _, tt := range tests {
		if got := tt.item.Domain(); got != tt.want {
			t.Errorf("%s: Domain() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"WWW.Example.COM", "example.com"},
		{"example.com:443", "example.com"},
		{"www.example.com:80", "example.com"},
		{"sub.example.com", "sub.example.com"},
		{"example.com", "example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeDomain(tt.host); got != tt.want {
			t.Errorf("NormalizeDomain(%q) = %q, want %q", tt.host, got, tt.want)
		}
	}
}
