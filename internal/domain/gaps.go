package domain

import (
	"strconv"

	"cobranza/internal/domain/models"
)

// GapMarker flags folios missing between two consecutive remisiones.
// Display-only; never persisted.
type GapMarker struct {
	After   string  `json:"after"`
	Before  string  `json:"before"`
	Missing []int64 `json:"missing"`
}

// FindGaps walks remisiones already sorted descending by folio and emits a
// marker for every adjacent pair of numeric folios more than 1 apart,
// listing the missing numbers in descending order. Pairs where either folio
// is not an integer are skipped.
func FindGaps(remisiones []models.Remision) []GapMarker {
	markers := []GapMarker{}
	for i := 0; i+1 < len(remisiones); i++ {
		cur, errCur := strconv.ParseInt(remisiones[i].Folio, 10, 64)
		next, errNext := strconv.ParseInt(remisiones[i+1].Folio, 10, 64)
		if errCur != nil || errNext != nil {
			continue
		}
		if cur-next <= 1 {
			continue
		}
		missing := make([]int64, 0, cur-next-1)
		for n := cur - 1; n > next; n-- {
			missing = append(missing, n)
		}
		markers = append(markers, GapMarker{
			After:   remisiones[i].Folio,
			Before:  remisiones[i+1].Folio,
			Missing: missing,
		})
	}
	return markers
}
