// Package digest computes SHA256 hex digests of byte slices and files.
// Two digests are equal iff their source byte sequences are
// bit-identical, which is what makes single-byte tampering detectable.
package digest
