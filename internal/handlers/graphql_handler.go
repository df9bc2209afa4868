package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

// GraphQLHandler serves the GraphQL endpoint over HTTP.
type GraphQLHandler struct {
	schema graphql.Schema
}

// NewGraphQLHandler creates a new GraphQLHandler.
func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{
		schema: schema,
	}
}

// RegisterRoutes registers the GraphQL route with the Fiber app.
func (h *GraphQLHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/graphql", h.HandleGraphQL)
}

// graphQLRequest is the standard GraphQL-over-HTTP request body.
type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// HandleGraphQL executes a GraphQL document against the schema.
// Execution errors travel inside the response body's "errors" array,
// per GraphQL convention; only an unparseable request is an HTTP error.
func (h *GraphQLHandler) HandleGraphQL(c *fiber.Ctx) error {
	var req graphQLRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing GraphQL request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.UserContext(),
	})

	return c.JSON(result)
}
