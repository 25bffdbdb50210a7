// Package evaluate measures how well SHA256 digests detect single-byte
// tampering. Trial classifies one image under an optional tamper flag;
// Run batches trials over a directory of images and aggregates
// precision, recall and F1 over the collected labels.
package evaluate
