// Package codec maps format tags ("csv", "tsv", "json") to parse and export
// functions. Parsers turn raw content into ordered record sequences for the
// reconciliation engine; exporters serialize record collections back out.
//
// A Registry ships with the three built-in formats registered; additional
// formats can be registered at startup. Unknown tags fail with
// *UnsupportedFormatError on both directions.
package codec
