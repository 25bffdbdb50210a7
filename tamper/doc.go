// Package tamper simulates binary tampering by replacing a single
// randomly chosen byte of a byte sequence. The random source is an
// explicit parameter so runs can be made deterministic.
package tamper
