// Package resource provides Laravel-style API Resource transformers.
//
// A transformer controls exactly what JSON shape one item takes; returning a
// struct (rather than a map) fixes the key order:
//
//	type ProductResource struct{}
//	func (ProductResource) ToArray(p Product) any {
//	    return struct {
//	        ID   uint   `json:"id"`
//	        Name string `json:"name"`
//	    }{p.ID, p.Name}
//	}
//
//	resource.CollectionOf[Product](ProductResource{}, products).As("products").Respond(w)
package resource

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// Transformer converts one item into its JSON representation.
type Transformer[M any] interface {
	ToArray(item M) any
}

// Collection wraps a slice of items with a transformer.
type Collection[M any] struct {
	transformer Transformer[M]
	items       []M
	key         string
}

// CollectionOf creates a Collection keyed under "data".
func CollectionOf[M any](t Transformer[M], items []M) *Collection[M] {
	return &Collection[M]{transformer: t, items: items, key: "data"}
}

// As changes the envelope key the items are written under.
func (c *Collection[M]) As(key string) *Collection[M] {
	c.key = key
	return c
}

// MarshalJSON renders {"<key>": [...]}. An empty collection is [] not null.
func (c *Collection[M]) MarshalJSON() ([]byte, error) {
	out := make([]any, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, c.transformer.ToArray(item))
	}
	return marshal(map[string]any{c.key: out})
}

// Respond writes the collection as JSON with status 200.
func (c *Collection[M]) Respond(w http.ResponseWriter) error {
	body, err := c.MarshalJSON()
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(body)
	return err
}

// marshal encodes v without escaping <, > and &, so URLs and descriptions
// come out verbatim.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
