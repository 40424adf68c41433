package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/jhoicas/stockboard-api/internal/application/analytics"
	"github.com/jhoicas/stockboard-api/internal/application/dto"
	appinventory "github.com/jhoicas/stockboard-api/internal/application/inventory"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
	"github.com/jhoicas/stockboard-api/pkg/logger"
)

// Resolver adaptador delgado entre el schema GraphQL y los casos de uso.
// Toda la lógica de negocio vive en los motores; aquí solo se parsean
// argumentos, se delega y se traduce el error.
type Resolver struct {
	Query      *appinventory.QueryUseCase
	Summary    *appinventory.SummaryUseCase
	Mutation   *appinventory.MutationUseCase
	KPIs       *analytics.KPIUseCase
	Warehouses repository.WarehouseRepository
	Log        *logger.Logger
}

func (r *Resolver) resolveProducts(p graphql.ResolveParams) (interface{}, error) {
	products, err := r.Query.List(productFilterFromArgs(p))
	if err != nil {
		return nil, wrapError(err)
	}
	return toProductList(products), nil
}

func (r *Resolver) resolveWarehouses(p graphql.ResolveParams) (interface{}, error) {
	warehouses, err := r.Warehouses.List()
	if err != nil {
		return nil, wrapError(err)
	}
	return toWarehouseList(warehouses), nil
}

func (r *Resolver) resolveKPIs(p graphql.ResolveParams) (interface{}, error) {
	series, err := r.KPIs.Window(stringArg(p, "range"))
	if err != nil {
		return nil, wrapError(err)
	}
	return toKPIList(series), nil
}

func (r *Resolver) resolveSummary(p graphql.ResolveParams) (interface{}, error) {
	summary, err := r.Summary.Summarize(productFilterFromArgs(p))
	if err != nil {
		return nil, wrapError(err)
	}
	return toSummaryOut(summary), nil
}

func (r *Resolver) resolveUpdateDemand(p graphql.ResolveParams) (interface{}, error) {
	id := stringArg(p, "id")
	demand := intArg(p, "demand")

	product, err := r.Mutation.UpdateDemand(id, demand)
	if err != nil {
		r.Log.Warn().Err(err).Str("id", id).Int("demand", demand).Msg("updateDemand rechazado")
		return nil, wrapError(err)
	}
	r.Log.Info().Str("id", id).Int("demand", demand).Msg("demanda actualizada")
	return toProductOut(*product), nil
}

func (r *Resolver) resolveTransferStock(p graphql.ResolveParams) (interface{}, error) {
	id := stringArg(p, "id")
	from := stringArg(p, "from")
	to := stringArg(p, "to")
	qty := intArg(p, "qty")

	product, err := r.Mutation.TransferStock(id, from, to, qty)
	if err != nil {
		r.Log.Warn().Err(err).Str("id", id).Str("from", from).Str("to", to).Int("qty", qty).
			Msg("transferStock rechazado")
		return nil, wrapError(err)
	}
	r.Log.Info().Str("id", id).Str("from", from).Str("to", to).Int("qty", qty).
		Msg("stock transferido")
	return toProductOut(*product), nil
}

func productFilterFromArgs(p graphql.ResolveParams) dto.ProductFilter {
	return dto.ProductFilter{
		Search:    stringArg(p, "search"),
		Warehouse: stringArg(p, "warehouse"),
		Status:    stringArg(p, "status"),
	}
}

func stringArg(p graphql.ResolveParams, name string) string {
	if v, ok := p.Args[name].(string); ok {
		return v
	}
	return ""
}

func intArg(p graphql.ResolveParams, name string) int {
	if v, ok := p.Args[name].(int); ok {
		return v
	}
	return 0
}
