package routing

import (
	"math"
	"math/rand"

	"github.com/dustin/go-humanize"
	"github.com/yourorg/safiri/internal/models"
)

// Tarifas base en TZS por kilómetro
const (
	busRatePerKm   = 50.0
	trainRatePerKm = 40.0

	priceVariation = 0.1 // ±10%
	priceRounding  = 1000.0
	currencyCode   = "TZS"
)

// RandSource entrega valores uniformes en [0, 1).
// Es la única fuente de no-determinismo del motor.
type RandSource interface {
	Float64() float64
}

// RandFunc adapta una función a RandSource
type RandFunc func() float64

func (f RandFunc) Float64() float64 { return f() }

// El generador global de math/rand es seguro para uso concurrente
var defaultRand RandSource = RandFunc(rand.Float64)

func ratePerKm(mode models.Mode) float64 {
	if mode == models.ModeTrain {
		return trainRatePerKm
	}
	return busRatePerKm
}

// priceAmount calcula distancia*tarifa con variación aleatoria de ±10%,
// redondeado al múltiplo de 1000 más cercano
func priceAmount(distance float64, mode models.Mode, rnd RandSource) int64 {
	base := distance * ratePerKm(mode)
	variation := base * (rnd.Float64()*2*priceVariation - priceVariation)
	return int64(math.Round((base+variation)/priceRounding) * priceRounding)
}

// formatPrice genera "TZS 12,000"
func formatPrice(amount int64) string {
	return currencyCode + " " + humanize.Comma(amount)
}
