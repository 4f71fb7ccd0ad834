package domain

import (
	"testing"

	"cobranza/internal/domain/models"
)

func TestComputeSaldo(t *testing.T) {
	pagos := []models.Pago{
		{Monto: "100"},
		{Monto: "50.5"},
	}
	if got := ComputeSaldo("500", pagos); got != "349.50" {
		t.Fatalf("saldo incorrecto: got %s want 349.50", got)
	}
}

func TestComputeSaldoUnparseableCountsAsZero(t *testing.T) {
	pagos := []models.Pago{
		{Monto: "abc"},
		{Monto: "100"},
	}
	if got := ComputeSaldo("300", pagos); got != "200.00" {
		t.Fatalf("monto no numérico debería contar como cero: got %s", got)
	}

	if got := ComputeSaldo("", pagos); got != "-100.00" {
		t.Fatalf("total vacío debería contar como cero: got %s", got)
	}
}

func TestComputeSaldoNoPagos(t *testing.T) {
	if got := ComputeSaldo("250", nil); got != "250.00" {
		t.Fatalf("sin pagos el saldo es el total: got %s", got)
	}
}

func TestComputeSaldoOverpaidGoesNegative(t *testing.T) {
	pagos := []models.Pago{{Monto: "400"}}
	if got := ComputeSaldo("300", pagos); got != "-100.00" {
		t.Fatalf("sobrepago debería dar saldo negativo: got %s", got)
	}
}
