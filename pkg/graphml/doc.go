// Package graphml writes and inspects the GraphML interchange files that
// carry exported knowledge graphs.
//
// # Writing
//
// [Marshal] and [Write] turn generic node and edge records into a directed
// GraphML document with a fixed set of typed attribute keys:
//
//	d0  node  label             string
//	d1  node  type              string
//	d2  node  community         string
//	d3  edge  weight            double
//	d4  edge  label             string
//	d5  node  description       string
//	d6  edge  full_description  string
//
// Nodes are renumbered "0".."n-1" in input order and edges reference that
// numbering. An edge whose start or end is not an exported node is dropped.
// Attribute values that are nil or not-a-number are left out instead of being
// written empty. Numbers are rendered the way Python's str() renders them, so
// community keys written by older tooling ("3.0") stay stable.
//
// # Reading
//
// [ReadStats] and [StatsFile] recover only the shape of a document: the number
// of node and edge elements under its first graph element. Element names are
// matched on their local part, so prefixed and unprefixed documents both
// work. Anything that does not parse is reported as unavailable rather than
// as an error.
package graphml
