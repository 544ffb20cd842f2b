package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"mime"
	"path/filepath"
	"regexp"
	"time"
)

// identifierPattern is the charset contract for every entity identifier that
// enters the delivery engine.
var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// GenerateUniqueHash returns a hex-encoded identifier derived from the current
// time and 128 bits of randomness. Used for component IDs and per-writer
// scratch directory scoping.
func GenerateUniqueHash() string {
	randomBytes := make([]byte, 16)
	if _, err := rand.Read(randomBytes); err != nil {
		panic("random number generator failed")
	}

	hashInput := append([]byte(fmt.Sprintf("%d", time.Now().UnixNano())), randomBytes...)
	hash := sha256.Sum256(hashInput)
	return hex.EncodeToString(hash[:])
}

// IsValidIdentifier reports whether id satisfies the entity identifier
// charset: ASCII letters, digits, underscore, hyphen; at least one character.
func IsValidIdentifier(id string) bool {
	return identifierPattern.MatchString(id)
}

// InferMimeType resolves a MIME type from a file name's extension, falling
// back to application/octet-stream when the extension is unknown or absent.
func InferMimeType(name string) string {
	if mt := mime.TypeByExtension(filepath.Ext(name)); mt != "" {
		return mt
	}
	return "application/octet-stream"
}
