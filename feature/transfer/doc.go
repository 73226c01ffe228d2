// Package transfer is the host surface for imports and exports.
//
// The Service parses raw content through the codec registry, publishes the
// record and batch events, runs the reconciliation pass, and drains the
// session errors into an ImportSummary. The export direction queries the
// store and serializes through the same registry.
//
// # HTTP Endpoints
//
//   - POST /transfer/:identity/import?format=csv : import raw body content.
//     Supports truncate, strict, updateMethod and throttle query params.
//   - GET  /transfer/:identity/export?format=json : export the collection.
//     Supports limit, skip and sort query params.
package transfer
