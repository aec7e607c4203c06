// Package cities reads city lists for tsp.State from delimited text.
//
// One record per line:
//
//	name<delim>x<delim>y
//
// e.g. "Atlanta,585.6,376.8". Blank lines and lines starting with '#' are
// skipped; surrounding spaces are trimmed. The delimiter defaults to ','
// (WithDelimiter('\t') for tab-separated files) and a header row can be
// skipped with WithHeader(true).
//
// Record order is preserved: it becomes the initial tour order.
package cities
