// Package pairkey encodes and decodes the "('Source', 'Target')" key
// format used to declare which edge types may connect a pair of entity
// types, and builds the pair-to-edge-types mapping table from such keys.
//
// The codec is a literal-syntax parser, not a general tuple parser: it
// recognizes exactly the "('" prefix, the "')" suffix and a "'," split.
// Names containing "'," cannot be represented, and escaped quotes or
// embedded commas are out of contract.
package pairkey
