package stock

import "github.com/shopspring/decimal"

// AvgDailySales calcula la velocidad de venta reciente (servicio de dominio).
// PromedioDiario = TotalVendidoEnVentana / DiasDeVentana
func AvgDailySales(totalSold, windowDays int64) decimal.Decimal {
	if windowDays <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(totalSold).Div(decimal.NewFromInt(windowDays))
}

// DaysUntilStockout proyecta los días restantes hasta agotar stock al ritmo
// de venta reciente: floor(cantidad / promedio_diario). Sin ventas en la
// ventana no hay proyección y devuelve nil, nunca divide por cero.
// floor(qty / (sold/window)) == floor(qty*window / sold), así que la
// proyección se resuelve en enteros sin redondeo intermedio.
func DaysUntilStockout(quantity, totalSold, windowDays int64) *int64 {
	if totalSold <= 0 || windowDays <= 0 {
		return nil
	}
	days := quantity * windowDays / totalSold
	return &days
}
