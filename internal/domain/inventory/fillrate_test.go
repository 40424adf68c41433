package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/inventory"
)

// TestFillRate_VectorConocido valida el vector de referencia:
// [{180,120},{50,80}] → 100*(120+50)/200 = 85. El primer producto aporta
// como máximo su propia demanda (120, no 180).
func TestFillRate_VectorConocido(t *testing.T) {
	products := []entity.Product{
		{ID: "P-1001", Stock: 180, Demand: 120},
		{ID: "P-1002", Stock: 50, Demand: 80},
	}

	rate := inventory.FillRate(products)
	assert.Equal(t, "85", rate.String(), "el sobre-stock de P-1001 no debe compensar el faltante de P-1002")
}

// TestFillRate_ConjuntoVacio: sin productos no hay demanda, la tasa es 0.
func TestFillRate_ConjuntoVacio(t *testing.T) {
	assert.True(t, inventory.FillRate(nil).IsZero())
	assert.True(t, inventory.FillRate([]entity.Product{}).IsZero())
}

// TestFillRate_DemandaCero: demanda agregada cero → 0, sin división por cero.
func TestFillRate_DemandaCero(t *testing.T) {
	products := []entity.Product{
		{ID: "P-1", Stock: 100, Demand: 0},
		{ID: "P-2", Stock: 50, Demand: 0},
	}
	assert.True(t, inventory.FillRate(products).IsZero())
}

// TestFillRate_CoberturaTotal: si todo producto tiene stock >= demanda la
// tasa es exactamente 100.
func TestFillRate_CoberturaTotal(t *testing.T) {
	products := []entity.Product{
		{ID: "P-1", Stock: 200, Demand: 150},
		{ID: "P-2", Stock: 80, Demand: 80},
		{ID: "P-3", Stock: 10, Demand: 1},
	}
	assert.Equal(t, "100", inventory.FillRate(products).String())
}

// TestFillRate_ResultadoFraccionario: la aritmética decimal conserva la
// fracción exacta (2/3 de cobertura).
func TestFillRate_ResultadoFraccionario(t *testing.T) {
	products := []entity.Product{
		{ID: "P-1", Stock: 20, Demand: 30},
	}
	rate := inventory.FillRate(products)
	assert.Equal(t, "66.67", rate.Round(2).String())
}
