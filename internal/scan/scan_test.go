package scan

import (
	"bytes"
	"testing"
)

func TestByteIndex(t *testing.T) {
	tests := []struct {
		name     string
		haystack []byte
		needle   byte
		want     int
	}{
		{"empty", []byte{}, '#', -1},
		{"first", []byte("#   "), '#', 0},
		{"middle", []byte("  # "), '#', 2},
		{"not_found", []byte("    "), '#', -1},
		{"long_row", []byte("          #          "), '#', 10},
		{"exact_eight", []byte("12345678"), '8', 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ByteIndex(tt.haystack, tt.needle)
			if got != tt.want {
				t.Errorf("ByteIndex(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
			if want := bytes.IndexByte(tt.haystack, tt.needle); got != want {
				t.Errorf("ByteIndex disagrees with bytes.IndexByte: got %d, want %d", got, want)
			}
		})
	}
}

func TestDigitIndex(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want int
	}{
		{"no_digit", "  #  G  ", -1},
		{"leading_digit", "0  #   ", 0},
		{"trailing_digit", "   #  3", 6},
		{"first_of_several", " 1 2 3 ", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DigitIndex([]byte(tt.row)); got != tt.want {
				t.Errorf("DigitIndex(%q) = %d, want %d", tt.row, got, tt.want)
			}
		})
	}
}

func TestDigitIndexAt(t *testing.T) {
	row := []byte("0  1  2")
	if got := DigitIndexAt(row, 1); got != 3 {
		t.Errorf("DigitIndexAt(row, 1) = %d, want 3", got)
	}
	if got := DigitIndexAt(row, 10); got != -1 {
		t.Errorf("DigitIndexAt out of range = %d, want -1", got)
	}
}

func TestIsASCII(t *testing.T) {
	if !IsASCII([]byte("   #0123G  ")) {
		t.Error("plain map row should be ASCII")
	}
	if IsASCII([]byte{0x80, 'a'}) {
		t.Error("byte 0x80 is not ASCII")
	}
	if !IsASCII(nil) {
		t.Error("empty input is vacuously ASCII")
	}
}
