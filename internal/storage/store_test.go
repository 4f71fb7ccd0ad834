package storage

import (
	"regexp"
	"testing"
)

func TestBuildEvidencePath(t *testing.T) {
	ruta := BuildEvidencePath("pago-5", "foto playa.jpg")
	pattern := regexp.MustCompile(`^evidence/pago-5-\d+-foto_playa\.jpg$`)
	if !pattern.MatchString(ruta) {
		t.Fatalf("path format mismatch: %s", ruta)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"foto.jpg", "foto.jpg"},
		{"  mi foto.jpg ", "mi_foto.jpg"},
		{"../../etc/passwd", "passwd"},
		{"a#b?c&d%e.png", "a_b_c_d_e.png"},
		{"", "foto.jpg"},
	}
	for _, tc := range cases {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Fatalf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
