package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// Sum returns the SHA256 hex digest of data. The digest is
// always 64 lowercase hex characters, including for empty
// input.
func Sum(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// File reads the full content of the file at path. A missing
// file or read failure returns a wrapped error; callers are
// expected to log and skip rather than abort.
func File(path string) ([]byte, error) {
	const errCtx = "reading file"

	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided by design
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return data, nil
}

// FileSum computes the SHA256 hex digest of the file at path
// by streaming, without holding the content in memory.
func FileSum(path string) (result string, retErr error) {
	const errCtx = "digesting file"

	fi, err := os.Open(path) //nolint:gosec // path is caller-provided by design
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	ha := sha256.New()

	if _, err := io.Copy(ha, fi); err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return hex.EncodeToString(ha.Sum(nil)), nil
}
