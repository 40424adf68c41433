package graphql

import "github.com/graphql-go/graphql"

// NewSchema construye el schema GraphQL del dashboard. La superficie
// replica la del frontend de referencia:
//
//	Query:    products(search, status, warehouse), warehouses,
//	          kpis(range!), summary(search, status, warehouse)
//	Mutation: updateDemand(id!, demand!), transferStock(id!, from!, to!, qty!)
func NewSchema(r *Resolver) (graphql.Schema, error) {
	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"sku":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"warehouse": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"stock":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"demand":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	warehouseType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Warehouse",
		Fields: graphql.Fields{
			"code":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"city":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"country": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	kpiType := graphql.NewObject(graphql.ObjectConfig{
		Name: "KPI",
		Fields: graphql.Fields{
			"date":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"stock":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"demand": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	summaryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Summary",
		Fields: graphql.Fields{
			"totalStock":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"totalDemand": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"fillRate":    &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	// Argumentos compartidos por products y summary (mismo conjunto filtrado)
	filterArgs := graphql.FieldConfigArgument{
		"search":    &graphql.ArgumentConfig{Type: graphql.String},
		"status":    &graphql.ArgumentConfig{Type: graphql.String},
		"warehouse": &graphql.ArgumentConfig{Type: graphql.String},
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(productType))),
				Args:    filterArgs,
				Resolve: r.resolveProducts,
			},
			"warehouses": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(warehouseType))),
				Resolve: r.resolveWarehouses,
			},
			"kpis": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(kpiType))),
				Args: graphql.FieldConfigArgument{
					"range": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.resolveKPIs,
			},
			"summary": &graphql.Field{
				Type:    graphql.NewNonNull(summaryType),
				Args:    filterArgs,
				Resolve: r.resolveSummary,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"updateDemand": &graphql.Field{
				Type: graphql.NewNonNull(productType),
				Args: graphql.FieldConfigArgument{
					"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"demand": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.resolveUpdateDemand,
			},
			"transferStock": &graphql.Field{
				Type: graphql.NewNonNull(productType),
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"from": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"to":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"qty":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.resolveTransferStock,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
