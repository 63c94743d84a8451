// Package parser implements the heuristic grade sheet extractor.
//
// A row is split into an optional sequence number, a name span and the
// remaining cells (PartitionRow). The name is checked against header and
// footer markers (AcceptName), then the remaining cells are read according
// to the role (ExtractFields). Rows that carry neither a sequence
// number nor any field are treated as noise and dropped.
//
// All vocabulary is fixed: rating tokens, exclusion keywords and the ordered
// subject rules live in vocab.go.
package parser
