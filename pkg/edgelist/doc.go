// Package edgelist reads and writes whitespace-delimited directed edge lists.
//
// # Format
//
// One edge per line, source first:
//
//	# comment lines start with '#'
//	214328887 34428380
//	17116707 28465635
//
// Fields are separated by any run of spaces or tabs. The first two fields must
// be base-10 integers; further fields (edge data columns) are ignored. Blank
// lines and comment lines are skipped.
//
// # Compression
//
// [ReadFile] sniffs the gzip magic bytes, so both `edges.txt` and
// `edges.txt.gz` load without the caller choosing a decoder. [WriteFile]
// compresses when the path ends in ".gz".
//
// # Errors
//
// A malformed line yields a [*ParseError] carrying the 1-based line number,
// wrapped in an error with code PARSE_ERROR. A missing file yields
// FILE_NOT_FOUND.
package edgelist
