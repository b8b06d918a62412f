// Package store persists named diagrams for the HTTP service.
//
// Two backends are provided: an in-memory store for tests and single-process
// deployments, and a MongoDB-backed store for durable multi-instance
// deployments. Both implement the [Store] interface.
package store

import (
	"context"
	"time"
)

// Diagram is a stored diagram: the manifest that declares it plus the
// rendered Mermaid text.
type Diagram struct {
	// ID is the diagram identifier, a UUID string assigned on creation.
	ID string `bson:"_id" json:"id"`

	// Name is the human-readable diagram name from the manifest.
	Name string `bson:"name" json:"name,omitempty"`

	// Kind is the diagram kind: flowchart, class, or er.
	Kind string `bson:"kind" json:"kind"`

	// Manifest is the manifest text as submitted.
	Manifest string `bson:"manifest" json:"manifest"`

	// Format is the manifest format (toml or json).
	Format string `bson:"format" json:"format"`

	// Text is the rendered Mermaid text.
	Text string `bson:"text" json:"text"`

	// Hash is the content hash of the manifest.
	Hash string `bson:"hash" json:"hash"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Store persists diagrams.
type Store interface {
	// Put inserts or replaces a diagram by ID.
	Put(ctx context.Context, d *Diagram) error

	// Get retrieves a diagram by ID.
	Get(ctx context.Context, id string) (*Diagram, error)

	// List returns all stored diagrams, most recently updated first.
	List(ctx context.Context) ([]*Diagram, error)

	// Delete removes a diagram by ID.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
