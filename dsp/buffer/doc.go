// Package buffer provides a fixed-capacity ring buffer for sample histories.
//
// A [Ring] owns exactly Capacity slots allocated at construction; pushing and
// popping never allocate. The overflow [Policy] selects between two
// disciplines: [Reject] refuses a push into a full buffer, while [Overwrite]
// evicts the oldest element so the buffer always holds the most recent
// Capacity samples (a sliding window).
package buffer
