package domain

import (
	"cobranza/internal/domain/models"
	"cobranza/internal/utils"
)

// ComputeSaldo returns total minus the sum of the pagos' montos, formatted
// to two decimals. Values that fail to parse count as zero; that keeps a
// half-filled form from blowing up the running balance, at the cost of
// hiding typos.
func ComputeSaldo(total string, pagos []models.Pago) string {
	t := utils.ParseDecimal(total)
	var sum float64
	for _, p := range pagos {
		sum += utils.ParseDecimal(p.Monto)
	}
	return utils.FormatMoney(t - sum)
}
