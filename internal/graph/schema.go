package graph

import (
	"shoestore/internal/models"
	"shoestore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/graphql-go/graphql"
)

// Resolver holds the shared handles every resolver invocation needs:
// the shoe service and the input validator. One Resolver is built at
// startup and captured by the field closures below.
type Resolver struct {
	service  *services.ShoeService
	validate *validator.Validate
}

// NewSchema builds the executable GraphQL schema for the shoe store.
func NewSchema(service *services.ShoeService) (graphql.Schema, error) {
	r := &Resolver{
		service:  service,
		validate: validator.New(),
	}

	shoeType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "Shoe",
		Description: "A single shoe product in the inventory.",
		Fields: graphql.Fields{
			"shoeId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"price": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
			},
			"isTrending": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
			},
			"isSoldOut": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
			},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getAllShoes": &graphql.Field{
				Type:        graphql.NewList(shoeType),
				Description: "Every shoe in the inventory, in storage order.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.service.GetAllShoes()
				},
			},
			"getShoeById": &graphql.Field{
				Type: graphql.NewNonNull(shoeType),
				Args: graphql.FieldConfigArgument{
					"shoeId": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.service.GetShoeByID(p.Args["shoeId"].(string))
				},
			},
			"getAllTrendingShoes": &graphql.Field{
				Type:        graphql.NewList(shoeType),
				Description: "Every shoe currently flagged as trending.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.service.GetTrendingShoes()
				},
			},
			"getAllSoldOutShoes": &graphql.Field{
				Type:        graphql.NewList(shoeType),
				Description: "Every shoe currently flagged as sold out.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.service.GetSoldOutShoes()
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createAShoe": &graphql.Field{
				Type: graphql.NewNonNull(shoeType),
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
					"price": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.Int),
					},
					"isTrending": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.Boolean),
					},
					"isSoldOut": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.Boolean),
					},
				},
				Resolve: r.resolveCreateAShoe,
			},
			"updateAShoe": &graphql.Field{
				Type: graphql.NewNonNull(shoeType),
				Args: graphql.FieldConfigArgument{
					"shoeId": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
					"name": &graphql.ArgumentConfig{
						Type: graphql.String,
					},
					"price": &graphql.ArgumentConfig{
						Type: graphql.Int,
					},
					"isTrending": &graphql.ArgumentConfig{
						Type: graphql.Boolean,
					},
					"isSoldOut": &graphql.ArgumentConfig{
						Type: graphql.Boolean,
					},
				},
				Resolve: r.resolveUpdateAShoe,
			},
			"markAShoeAsSoldOut": &graphql.Field{
				Type: graphql.NewNonNull(shoeType),
				Args: graphql.FieldConfigArgument{
					"shoeId": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.service.MarkShoeSoldOut(p.Args["shoeId"].(string))
				},
			},
			"deleteAShoe": &graphql.Field{
				Type: graphql.NewNonNull(shoeType),
				Args: graphql.FieldConfigArgument{
					"shoeId": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.service.DeleteShoe(p.Args["shoeId"].(string))
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func (r *Resolver) resolveCreateAShoe(p graphql.ResolveParams) (interface{}, error) {
	shoe := models.Shoe{
		Name:       p.Args["name"].(string),
		Price:      p.Args["price"].(int),
		IsTrending: p.Args["isTrending"].(bool),
		IsSoldOut:  p.Args["isSoldOut"].(bool),
	}
	if err := r.validate.Struct(shoe); err != nil {
		return nil, err
	}
	if err := r.service.CreateShoe(&shoe); err != nil {
		return nil, err
	}
	return &shoe, nil
}

func (r *Resolver) resolveUpdateAShoe(p graphql.ResolveParams) (interface{}, error) {
	var updates models.ShoeUpdates
	if v, ok := p.Args["name"]; ok && v != nil {
		name := v.(string)
		updates.Name = &name
	}
	if v, ok := p.Args["price"]; ok && v != nil {
		price := v.(int)
		updates.Price = &price
	}
	if v, ok := p.Args["isTrending"]; ok && v != nil {
		isTrending := v.(bool)
		updates.IsTrending = &isTrending
	}
	if v, ok := p.Args["isSoldOut"]; ok && v != nil {
		isSoldOut := v.(bool)
		updates.IsSoldOut = &isSoldOut
	}
	if err := r.validate.Struct(updates); err != nil {
		return nil, err
	}
	return r.service.UpdateShoe(p.Args["shoeId"].(string), updates)
}
