// Package report renders evaluation outcomes: a text summary produced
// by single-brace {VAR} template substitution, and a JSON report
// carrying the per-trial records alongside the aggregate metrics.
package report
