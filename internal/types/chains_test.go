package types

import "testing"

func TestChainID(t *testing.T) {
	cases := []struct {
		chain string
		want  string
	}{
		{"ethereum", "1"},
		{"bsc", "56"},
		{"polygon", "137"},
		{"base", "8453"},
		{"solana", "1"},
		{"", "1"},
	}
	for _, tc := range cases {
		if got := ChainID(tc.chain); got != tc.want {
			t.Errorf("ChainID(%q) = %q, want %q", tc.chain, got, tc.want)
		}
	}
}
