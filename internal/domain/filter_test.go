package domain

import (
	"testing"

	"cobranza/internal/domain/models"
)

func TestMatchesFilterCaseInsensitive(t *testing.T) {
	rem := models.Remision{Folio: "1024", NotaVenta: "NV-88", Factura: "FAC-Alfa"}

	cases := []struct {
		q    string
		want bool
	}{
		{"", true},
		{"  ", true},
		{"102", true},
		{"nv-88", true},
		{"alfa", true},
		{"FAC", true},
		{"zzz", false},
	}
	for _, tc := range cases {
		if got := MatchesFilter(rem, tc.q); got != tc.want {
			t.Fatalf("MatchesFilter(%q) = %v, want %v", tc.q, got, tc.want)
		}
	}
}

func TestSortByFolioDesc(t *testing.T) {
	list := remisionesWithFolios("7", "100", "ABC", "42")
	SortByFolioDesc(list)

	got := []string{list[0].Folio, list[1].Folio, list[2].Folio, list[3].Folio}
	want := []string{"100", "42", "7", "ABC"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("orden incorrecto: got %v want %v", got, want)
		}
	}
}
