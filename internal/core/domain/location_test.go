package domain

import (
	"errors"
	"testing"
)

func TestResolveLocation(t *testing.T) {
	tests := []struct {
		location string
		city     string
		state    string
	}{
		{"Eko Convention Centre, Lagos", "Lagos", "Lagos"},
		{"Abuja International Conference Centre", "Abuja", "FCT"},
		{"Port Harcourt Pleasure Park", "Port Harcourt", "Rivers"},
		{"Jos", "Jos", "Plateau"},
	}
	for _, tt := range tests {
		city, state, err := ResolveLocation(tt.location)
		if err != nil {
			t.Fatalf("ResolveLocation(%q) error: %v", tt.location, err)
		}
		if city != tt.city || state != tt.state {
			t.Fatalf("ResolveLocation(%q) = %s/%s, want %s/%s",
				tt.location, city, state, tt.city, tt.state)
		}
	}
}

func TestResolveLocationUnrecognized(t *testing.T) {
	for _, loc := range []string{"", "Atlantis", "London, UK"} {
		_, _, err := ResolveLocation(loc)
		if !errors.Is(err, ErrUnrecognizedLocation) {
			t.Fatalf("ResolveLocation(%q) error = %v, want ErrUnrecognizedLocation", loc, err)
		}
	}
}
