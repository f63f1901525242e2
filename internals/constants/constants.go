package constants

// Concepto por defecto de un pago cuando el cliente no envía ninguno.
const ConceptMonthlyFee = "mensualidad"

// Valores por defecto de la configuración del sistema.
const (
	DefaultBillingDay      = 5
	DefaultGraceDays       = 5
	DefaultSurchargeAmount = 50
)

// Tipos de recargo admitidos.
const (
	SurchargeKindFixed      = "fixed"
	SurchargeKindPercentage = "percentage"
)

// Estados de un recargo.
const (
	SurchargeStatusPending = "pending"
	SurchargeStatusPaid    = "paid"
	SurchargeStatusWaived  = "waived"
)
