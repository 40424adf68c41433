package graphql_test

import (
	"testing"

	gqllib "github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockboard-api/internal/application/analytics"
	appinventory "github.com/jhoicas/stockboard-api/internal/application/inventory"
	"github.com/jhoicas/stockboard-api/internal/infrastructure/memory"
	gql "github.com/jhoicas/stockboard-api/internal/interfaces/graphql"
	"github.com/jhoicas/stockboard-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: schema real sobre un almacén semilla, sin HTTP de por medio
// ──────────────────────────────────────────────────────────────────────────────

func buildSchema(t *testing.T) gqllib.Schema {
	t.Helper()

	productRepo := memory.NewProductRepository(memory.SeedProducts())
	warehouseRepo := memory.NewWarehouseRepository(memory.SeedWarehouses())
	kpiRepo := memory.NewKPIRepository(memory.GenerateKPISeries(30))

	queryUC := appinventory.NewQueryUseCase(productRepo)
	resolver := &gql.Resolver{
		Query:      queryUC,
		Summary:    appinventory.NewSummaryUseCase(queryUC),
		Mutation:   appinventory.NewMutationUseCase(productRepo, warehouseRepo),
		KPIs:       analytics.NewKPIUseCase(kpiRepo),
		Warehouses: warehouseRepo,
		Log:        logger.New(logger.Config{Env: "test", Level: "error"}),
	}

	schema, err := gql.NewSchema(resolver)
	require.NoError(t, err)
	return schema
}

func execute(t *testing.T, schema gqllib.Schema, query string) *gqllib.Result {
	t.Helper()
	return gqllib.Do(gqllib.Params{Schema: schema, RequestString: query})
}

func dataMap(t *testing.T, result *gqllib.Result) map[string]interface{} {
	t.Helper()
	require.Empty(t, result.Errors, "la operación no debe devolver errores: %v", result.Errors)
	data, ok := result.Data.(map[string]interface{})
	require.True(t, ok)
	return data
}

func errorCode(t *testing.T, err gqlerrors.FormattedError) string {
	t.Helper()
	require.NotNil(t, err.Extensions)
	code, _ := err.Extensions["code"].(string)
	return code
}

// ──────────────────────────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_SinFiltros(t *testing.T) {
	schema := buildSchema(t)

	result := execute(t, schema, `{ products { id name sku warehouse stock demand } }`)
	data := dataMap(t, result)

	products := data["products"].([]interface{})
	require.Len(t, products, 10)

	first := products[0].(map[string]interface{})
	assert.Equal(t, "P-1001", first["id"])
	assert.Equal(t, "12mm Hex Bolt", first["name"])
	assert.Equal(t, "HEX-12-100", first["sku"])
	assert.Equal(t, "BLR-A", first["warehouse"])
	assert.Equal(t, 180, first["stock"])
	assert.Equal(t, 120, first["demand"])
}

func TestProducts_FiltrosCombinados(t *testing.T) {
	schema := buildSchema(t)

	result := execute(t, schema,
		`{ products(search: "steel", warehouse: "BLR-A", status: "critical") { id } }`)
	data := dataMap(t, result)

	products := data["products"].([]interface{})
	require.Len(t, products, 1)
	assert.Equal(t, "P-1002", products[0].(map[string]interface{})["id"])
}

func TestProducts_SinCoincidenciasDevuelveListaVacia(t *testing.T) {
	schema := buildSchema(t)

	result := execute(t, schema, `{ products(search: "titanium") { id } }`)
	data := dataMap(t, result)
	assert.Empty(t, data["products"].([]interface{}))
}

func TestWarehouses(t *testing.T) {
	schema := buildSchema(t)

	result := execute(t, schema, `{ warehouses { code name city country } }`)
	data := dataMap(t, result)

	warehouses := data["warehouses"].([]interface{})
	require.Len(t, warehouses, 5)
	first := warehouses[0].(map[string]interface{})
	assert.Equal(t, "BLR-A", first["code"])
	assert.Equal(t, "Bangalore Central", first["name"])
	assert.Equal(t, "India", first["country"])
}

func TestKPIs_Ventana7d(t *testing.T) {
	schema := buildSchema(t)

	result := execute(t, schema, `{ kpis(range: "7d") { date stock demand } }`)
	data := dataMap(t, result)

	kpis := data["kpis"].([]interface{})
	require.Len(t, kpis, 7)
	first := kpis[0].(map[string]interface{})
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, first["date"], "fecha en forma ISO")
}

func TestKPIs_RangoDesconocidoCaeEn30d(t *testing.T) {
	schema := buildSchema(t)

	result := execute(t, schema, `{ kpis(range: "90d") { date } }`)
	data := dataMap(t, result)
	assert.Len(t, data["kpis"].([]interface{}), 30)
}

func TestSummary_AgregadosDelConjuntoFiltrado(t *testing.T) {
	schema := buildSchema(t)

	result := execute(t, schema,
		`{ summary(warehouse: "BLR-A") { totalStock totalDemand fillRate } }`)
	data := dataMap(t, result)

	summary := data["summary"].(map[string]interface{})
	assert.Equal(t, 470, summary["totalStock"])
	assert.Equal(t, 410, summary["totalDemand"])
	assert.InDelta(t, 87.8, summary["fillRate"], 0.01)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutations
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateDemand_Mutacion(t *testing.T) {
	schema := buildSchema(t)

	result := execute(t, schema,
		`mutation { updateDemand(id: "P-1001", demand: 200) { id demand stock warehouse } }`)
	data := dataMap(t, result)

	product := data["updateDemand"].(map[string]interface{})
	assert.Equal(t, 200, product["demand"])
	assert.Equal(t, 180, product["stock"])
	assert.Equal(t, "BLR-A", product["warehouse"])

	// La lectura siguiente observa la mutación completa
	result = execute(t, schema, `{ products(search: "P-1001") { demand } }`)
	data = dataMap(t, result)
	products := data["products"].([]interface{})
	require.Len(t, products, 1)
	assert.Equal(t, 200, products[0].(map[string]interface{})["demand"])
}

func TestUpdateDemand_Errores(t *testing.T) {
	schema := buildSchema(t)

	result := execute(t, schema,
		`mutation { updateDemand(id: "missing-id", demand: 5) { id } }`)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "NOT_FOUND", errorCode(t, result.Errors[0]))
	assert.Contains(t, result.Errors[0].Message, "missing-id")

	result = execute(t, schema,
		`mutation { updateDemand(id: "P-1001", demand: -1) { id } }`)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "INVALID_ARGUMENT", errorCode(t, result.Errors[0]))
}

func TestTransferStock_Mutacion(t *testing.T) {
	schema := buildSchema(t)

	result := execute(t, schema,
		`mutation { transferStock(id: "P-1002", from: "BLR-A", to: "PNQ-C", qty: 10) { id warehouse stock demand } }`)
	data := dataMap(t, result)

	product := data["transferStock"].(map[string]interface{})
	assert.Equal(t, "PNQ-C", product["warehouse"])
	assert.Equal(t, 40, product["stock"])
	assert.Equal(t, 80, product["demand"])
}

func TestTransferStock_ErroresConCodigo(t *testing.T) {
	schema := buildSchema(t)

	cases := []struct {
		name     string
		mutation string
		code     string
	}{
		{
			"producto inexistente",
			`mutation { transferStock(id: "missing-id", from: "BLR-A", to: "PNQ-C", qty: 1) { id } }`,
			"NOT_FOUND",
		},
		{
			"bodega origen incorrecta",
			`mutation { transferStock(id: "P-1003", from: "WRONG-WH", to: "PNQ-C", qty: 5) { id } }`,
			"PRECONDITION_FAILED",
		},
		{
			"cantidad no positiva",
			`mutation { transferStock(id: "P-1001", from: "BLR-A", to: "PNQ-C", qty: 0) { id } }`,
			"INVALID_ARGUMENT",
		},
		{
			"stock insuficiente",
			`mutation { transferStock(id: "P-1002", from: "BLR-A", to: "PNQ-C", qty: 999) { id } }`,
			"INSUFFICIENT_STOCK",
		},
		{
			"bodega destino inexistente",
			`mutation { transferStock(id: "P-1001", from: "BLR-A", to: "XXX-Z", qty: 1) { id } }`,
			"NOT_FOUND",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := execute(t, schema, tc.mutation)
			require.NotEmpty(t, result.Errors)
			assert.Equal(t, tc.code, errorCode(t, result.Errors[0]))
		})
	}
}

// TestMutacionFallidaNoDejaEscrituraParcial: tras un error el estado
// observable es idéntico al previo.
func TestMutacionFallidaNoDejaEscrituraParcial(t *testing.T) {
	schema := buildSchema(t)

	result := execute(t, schema,
		`mutation { transferStock(id: "P-1002", from: "BLR-A", to: "XXX-Z", qty: 10) { id } }`)
	require.NotEmpty(t, result.Errors)

	result = execute(t, schema, `{ products(search: "P-1002") { warehouse stock demand } }`)
	data := dataMap(t, result)
	products := data["products"].([]interface{})
	require.Len(t, products, 1)
	p := products[0].(map[string]interface{})
	assert.Equal(t, "BLR-A", p["warehouse"])
	assert.Equal(t, 50, p["stock"])
	assert.Equal(t, 80, p["demand"])
}
