// Package recipeclip provides a CLI tool for clipping recipes from the web.
// Given a recipe page URL it extracts a structured recipe (title, ingredients,
// instructions) from embedded schema.org structured data, falling back to
// heuristic HTML scanning, and saves it to a local recipe box for browsing
// and natural language querying.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, jsonld/, sqlite/).
package recipeclip
