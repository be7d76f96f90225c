// Package normalize provides the deterministic text canonicalizer used by the analyzer
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFC normalization
// 3 Collapse runs of whitespace, keeping a newline when the run contains one
// 4 Trim leading and trailing whitespace
// Case is preserved so casing signals survive canonicalization
package normalize

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Canon returns the canonical form of s following the pipeline described above
func Canon(s string) string {
	if s == "" {
		return ""
	}

	// 1 repair UTF-8 drop invalid bytes
	s = strings.ToValidUTF8(s, "")

	// 2 NFC so visually identical text hashes identically
	s = norm.NFC.String(s)

	// 3-4 collapse whitespace and trim
	return collapseSpaces(s)
}

// ContentHash returns the lowercase hex SHA-256 of the canonical form of s.
// Two texts that canonicalize identically share a hash regardless of who
// posted them or where
func ContentHash(s string) string {
	sum := sha256.Sum256([]byte(Canon(s)))
	return hex.EncodeToString(sum[:])
}

// collapseSpaces rewrites each whitespace run as a single separator.
// A run containing a newline becomes "\n" so paragraph structure survives,
// any other run becomes a single space
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inRun := false
	runHasNL := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inRun = true
			if r == '\n' || r == '\r' {
				runHasNL = true
			}
			continue
		}
		if inRun {
			if b.Len() > 0 {
				if runHasNL {
					b.WriteByte('\n')
				} else {
					b.WriteByte(' ')
				}
			}
			inRun = false
			runHasNL = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
