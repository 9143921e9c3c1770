package main

import "testing"

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr     string
		expected string
	}{
		{":23234", "23234"},
		{"localhost:2222", "2222"},
		{"[::1]:22", "22"},
		{"nonsense", "nonsense"},
	}
	for _, tc := range tests {
		if got := portOf(tc.addr); got != tc.expected {
			t.Errorf("portOf(%q) = %q, expected %q", tc.addr, got, tc.expected)
		}
	}
}
