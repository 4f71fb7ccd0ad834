package domain

import (
	"reflect"
	"testing"

	"cobranza/internal/domain/models"
)

func remisionesWithFolios(folios ...string) []models.Remision {
	list := make([]models.Remision, 0, len(folios))
	for i, f := range folios {
		list = append(list, models.Remision{ID: int64(i + 1), Folio: f})
	}
	return list
}

func TestFindGapsDescendingMissing(t *testing.T) {
	gaps := FindGaps(remisionesWithFolios("10", "7"))
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	want := GapMarker{After: "10", Before: "7", Missing: []int64{9, 8}}
	if !reflect.DeepEqual(gaps[0], want) {
		t.Fatalf("gap mismatch: got %+v want %+v", gaps[0], want)
	}
}

func TestFindGapsConsecutiveFolios(t *testing.T) {
	if gaps := FindGaps(remisionesWithFolios("10", "9", "8")); len(gaps) != 0 {
		t.Fatalf("consecutive folios should yield no gaps, got %+v", gaps)
	}
}

func TestFindGapsNonNumericSkipped(t *testing.T) {
	if gaps := FindGaps(remisionesWithFolios("10", "x")); len(gaps) != 0 {
		t.Fatalf("non-numeric folio pair should be skipped, got %+v", gaps)
	}
	// The non-numeric folio breaks both pairs it participates in.
	if gaps := FindGaps(remisionesWithFolios("10", "x", "5")); len(gaps) != 0 {
		t.Fatalf("pairs around a non-numeric folio should be skipped, got %+v", gaps)
	}
}

func TestFindGapsMultipleMarkers(t *testing.T) {
	gaps := FindGaps(remisionesWithFolios("12", "10", "7"))
	if len(gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %d", len(gaps))
	}
	if !reflect.DeepEqual(gaps[0].Missing, []int64{11}) {
		t.Fatalf("first gap missing mismatch: %+v", gaps[0].Missing)
	}
	if !reflect.DeepEqual(gaps[1].Missing, []int64{9, 8}) {
		t.Fatalf("second gap missing mismatch: %+v", gaps[1].Missing)
	}
}

func TestFindGapsEmptyAndSingle(t *testing.T) {
	if gaps := FindGaps(nil); len(gaps) != 0 {
		t.Fatalf("nil input should yield no gaps")
	}
	if gaps := FindGaps(remisionesWithFolios("42")); len(gaps) != 0 {
		t.Fatalf("single remision should yield no gaps")
	}
}
