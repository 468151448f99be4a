package reservations

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// fileHash computes the hex-encoded SHA-256 of the file at path. The digest
// identifies the exact export a dashboard session is rendering.
func fileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for hash: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
