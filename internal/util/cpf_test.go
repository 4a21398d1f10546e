package util

import "testing"

func TestNormalizeCPF_ValidMasked(t *testing.T) {
	got, err := NormalizeCPF("529.982.247-25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "52998224725" {
		t.Fatalf("expected 52998224725, got %s", got)
	}
}

func TestNormalizeCPF_ValidUnmasked(t *testing.T) {
	got, err := NormalizeCPF("52998224725")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "52998224725" {
		t.Fatalf("expected 52998224725, got %s", got)
	}
}

func TestNormalizeCPF_Rejects(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"short", "1234567890"},
		{"long", "123456789012"},
		{"letters", "529a82247-25"},
		{"bad first digit", "529.982.247-35"},
		{"bad second digit", "529.982.247-24"},
		{"all same digits", "111.111.111-11"},
		{"all zeros", "000.000.000-00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NormalizeCPF(tc.in); err == nil {
				t.Fatalf("expected error for %q", tc.in)
			}
		})
	}
}

func TestMaskCPF(t *testing.T) {
	if got := MaskCPF("52998224725"); got != "529.982.247-25" {
		t.Fatalf("expected 529.982.247-25, got %s", got)
	}
	// unexpected length passes through untouched
	if got := MaskCPF("123"); got != "123" {
		t.Fatalf("expected passthrough, got %s", got)
	}
}
