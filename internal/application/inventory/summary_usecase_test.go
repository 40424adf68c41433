package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockboard-api/internal/application/dto"
	appinventory "github.com/jhoicas/stockboard-api/internal/application/inventory"
	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/infrastructure/memory"
)

func newSummaryUC(products []entity.Product) *appinventory.SummaryUseCase {
	query := appinventory.NewQueryUseCase(memory.NewProductRepository(products))
	return appinventory.NewSummaryUseCase(query)
}

// TestSummarize_VectorConocido: [{180,120},{50,80}] → totalStock 230,
// totalDemand 200, fillRate 100*(120+50)/200 = 85.0.
func TestSummarize_VectorConocido(t *testing.T) {
	uc := newSummaryUC([]entity.Product{
		{ID: "P-1001", Name: "12mm Hex Bolt", Warehouse: "BLR-A", Stock: 180, Demand: 120},
		{ID: "P-1002", Name: "Steel Washer", Warehouse: "BLR-A", Stock: 50, Demand: 80},
	})

	got, err := uc.Summarize(dto.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, 230, got.TotalStock)
	assert.Equal(t, 200, got.TotalDemand)
	assert.InDelta(t, 85.0, got.FillRate, 0.001)
}

// TestSummarize_AlmacenVacio: sin productos → {0, 0, 0}.
func TestSummarize_AlmacenVacio(t *testing.T) {
	uc := newSummaryUC(nil)

	got, err := uc.Summarize(dto.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalStock)
	assert.Equal(t, 0, got.TotalDemand)
	assert.Zero(t, got.FillRate)
}

// TestSummarize_SobreElConjuntoFiltrado: los agregados se calculan sobre el
// mismo subconjunto que devuelve el listado, no sobre el almacén completo.
func TestSummarize_SobreElConjuntoFiltrado(t *testing.T) {
	uc := newSummaryUC(memory.SeedProducts())

	// BLR-A: P-1001 (180/120), P-1002 (50/80), P-1005 (200/150), P-1008 (40/60)
	got, err := uc.Summarize(dto.ProductFilter{Warehouse: "BLR-A"})
	require.NoError(t, err)
	assert.Equal(t, 180+50+200+40, got.TotalStock)
	assert.Equal(t, 120+80+150+60, got.TotalDemand)
	// min por ítem: 120+50+150+40 = 360 sobre 410
	assert.InDelta(t, 100.0*360/410, got.FillRate, 0.01)
}

// TestSummarize_CoberturaTotal: todo producto con stock >= demanda → 100.
func TestSummarize_CoberturaTotal(t *testing.T) {
	uc := newSummaryUC(memory.SeedProducts())

	got, err := uc.Summarize(dto.ProductFilter{Status: "healthy"})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, got.FillRate, 0.001)
}
