package models

// Remision is a delivery note being collected against. Saldo is derived:
// total minus the sum of its pagos, kept current on every aggregate save.
type Remision struct {
	ID        int64  `json:"id"`
	Folio     string `json:"folio"`
	NotaVenta string `json:"nota_venta"`
	Factura   string `json:"factura"`
	Total     string `json:"total"`
	Saldo     string `json:"saldo"`

	// Pagos are loaded on the detail view only; the list payload leaves
	// them empty to keep the live feed small.
	Pagos []Pago `json:"pagos,omitempty"`
}

// Pago is one partial payment of a remision. ID zero means the record only
// exists client-side so far and will be INSERTed on the next aggregate save.
type Pago struct {
	ID         int64  `json:"id"`
	RemisionID int64  `json:"remision_id"`
	Monto      string `json:"monto"`
	Recibo     string `json:"recibo"`
	Reporte    string `json:"reporte"`
	MetodoPago string `json:"metodo_pago"`

	// Fecha is the display-formatted creation date, set once when the pago
	// is first saved and never recomputed.
	Fecha string `json:"fecha"`

	Evidencias []string `json:"evidencias,omitempty"`
}
