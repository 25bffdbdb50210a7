// Package metrics accumulates binary classification labels and computes
// precision, recall and F1 over them. The formulas are the standard
// ones with the zero-denominator-means-zero convention.
package metrics
