package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/linkrank/pkg/webgraph"
)

// Document is the JSON shape written by [WriteJSON].
type Document struct {
	Pages []webgraph.Page `json:"pages"`
	Links []webgraph.Link `json:"links"`
}

// NewDocument captures the pages of g in the given order, plus all links.
func NewDocument(g *webgraph.Graph, order webgraph.Order) Document {
	return Document{Pages: g.Pages(order), Links: g.Links()}
}

// WriteJSON encodes g as indented JSON with pages in index order.
func WriteJSON(g *webgraph.Graph, w io.Writer) error {
	return WriteDocument(NewDocument(g, webgraph.ByIndex), w)
}

// WriteDocument encodes d as indented JSON.
func WriteDocument(d Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
