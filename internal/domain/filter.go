package domain

import (
	"sort"
	"strconv"
	"strings"

	"cobranza/internal/domain/models"
	"cobranza/internal/utils"
)

// MatchesFilter reports whether the remision matches the search term:
// case-insensitive substring over folio, nota de venta and factura.
// An empty term matches everything.
func MatchesFilter(r models.Remision, q string) bool {
	q = strings.TrimSpace(q)
	if q == "" {
		return true
	}
	return utils.ContainsFold(r.Folio, q) ||
		utils.ContainsFold(r.NotaVenta, q) ||
		utils.ContainsFold(r.Factura, q)
}

// SortByFolioDesc orders remisiones by numeric folio, highest first.
// Non-numeric folios sink below the numeric ones; their relative order is
// not specified.
func SortByFolioDesc(remisiones []models.Remision) {
	sort.SliceStable(remisiones, func(i, j int) bool {
		a, errA := strconv.ParseInt(remisiones[i].Folio, 10, 64)
		b, errB := strconv.ParseInt(remisiones[j].Folio, 10, 64)
		switch {
		case errA == nil && errB == nil:
			return a > b
		case errA == nil:
			return true
		default:
			return false
		}
	})
}
