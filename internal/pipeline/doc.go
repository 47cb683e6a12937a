// Package pipeline drives one sequential pass over a depth report:
// tokenizer → sequence boundary tracker → window accumulator → emit callback.
//
// The pass owns the aggregation state and the window buffer; nothing is
// shared and nothing runs concurrently.
package pipeline
