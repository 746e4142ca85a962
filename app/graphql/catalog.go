// Package graphql exposes the catalogue as a read-only GraphQL query:
//
//	{ products { id name description price image } }
package graphql

import (
	"context"
	"encoding/json"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/storefront/app/services"
	gql "github.com/shashiranjanraj/storefront/pkg/graphql"
)

// Catalog is the read side the resolvers use.
type Catalog interface {
	Products(ctx context.Context) ([]services.ProductView, error)
}

// Decimal serializes prices as JSON numbers with their exact stored digits.
var Decimal = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Decimal",
	Description: "Exact decimal number, serialized as a JSON number.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case decimal.Decimal:
			return json.Number(v.String())
		case *decimal.Decimal:
			if v == nil {
				return nil
			}
			return json.Number(v.String())
		}
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		switch v := value.(type) {
		case string:
			if d, err := decimal.NewFromString(v); err == nil {
				return d
			}
		case float64:
			return decimal.NewFromFloat(v)
		}
		return nil
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		switch v := valueAST.(type) {
		case *ast.StringValue, *ast.FloatValue, *ast.IntValue:
			if d, err := decimal.NewFromString(v.GetValue().(string)); err == nil {
				return d
			}
		}
		return nil
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"price":       &graphql.Field{Type: graphql.NewNonNull(Decimal)},
		"image":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

// NewSchema builds the catalogue schema backed by catalog.
func NewSchema(catalog Catalog) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(productType))),
				Description: "Every product in the catalogue, oldest first.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return catalog.Products(p.Context)
				},
			},
		},
	})
	return gql.NewSchema(query)
}
