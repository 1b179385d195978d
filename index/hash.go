package index

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// HashFile computes the lowercase hex SHA-256 digest of a file's content,
// streaming the file through the hasher rather than loading it into memory.
// Any read failure yields an empty digest: one unreadable file must never
// abort indexing.
func HashFile(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return ""
	}
	return hex.EncodeToString(h.Sum(nil))
}
