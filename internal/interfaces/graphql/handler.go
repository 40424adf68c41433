package graphql

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// Mount registra el endpoint /graphql sobre la app Fiber. El handler de
// graphql-go es net/http, así que se adapta con el middleware adaptor.
// GraphiQL se habilita solo en desarrollo.
func Mount(app *fiber.App, schema graphql.Schema, graphiql bool) {
	h := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: graphiql,
	})
	app.All("/graphql", adaptor.HTTPHandler(h))
}
