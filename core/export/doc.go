// Package export implements the export pipeline: it queries the model
// store, applies population, offset, limit and sort options in that fixed
// order, and serializes the resulting record collection through the codec
// registry.
//
// Serialized output can be returned as bytes, written to a file through an
// afero filesystem, or uploaded to object storage.
package export
