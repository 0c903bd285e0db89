// Package checksum implements the SHA-1 content verification used by the
// remote manifests. Hashes are computed while bytes are written so a transfer
// never has to re-read its destination file.
package checksum

import (
	"crypto/sha1" //nolint:gosec // the upstream manifest format fixes SHA-1
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/glorpus-work/mcget/pkg/errors"
)

// HexLength is the length of a SHA-1 digest in hex characters.
const HexLength = 40

// Normalize lowercases and trims a hex digest for comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidateHex checks that s has the shape of a SHA-1 hex digest. A manifest
// entry carrying a malformed digest is a hard error for the caller.
func ValidateHex(s string) error {
	s = Normalize(s)
	if len(s) != HexLength {
		return fmt.Errorf("%w: expected %d hex characters, got %d", errors.ErrInvalidChecksum, HexLength, len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrInvalidChecksum, s)
	}
	return nil
}

// Writer hashes everything written through it while forwarding to an
// underlying writer. Use io.Discard as the underlying writer to hash only.
type Writer struct {
	w io.Writer
	h hash.Hash
}

// NewWriter returns a Writer forwarding to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, h: sha1.New()} //nolint:gosec
}

// Write implements io.Writer.
func (cw *Writer) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	if n > 0 {
		cw.h.Write(p[:n])
	}
	return n, err
}

// SumHex returns the hex digest of everything written so far.
func (cw *Writer) SumHex() string {
	return hex.EncodeToString(cw.h.Sum(nil))
}

// Verify compares the written content against an expected digest and returns
// ErrChecksumMismatch when they differ.
func (cw *Writer) Verify(want string) error {
	got := cw.SumHex()
	if got != Normalize(want) {
		return fmt.Errorf("%w: expected %s, got %s", errors.ErrChecksumMismatch, Normalize(want), got)
	}
	return nil
}

// SumBytes returns the hex SHA-1 digest of data.
func SumBytes(data []byte) string {
	sum := sha1.Sum(data) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

// SumFile returns the hex SHA-1 digest of the file at path.
func SumFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "open for checksum")
	}
	defer func() { _ = f.Close() }()

	h := sha1.New() //nolint:gosec
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrap(err, "hashing")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// VerifyFile compares the file at path against an expected digest.
func VerifyFile(path, want string) error {
	got, err := SumFile(path)
	if err != nil {
		return err
	}
	if got != Normalize(want) {
		return fmt.Errorf("%w: %s: expected %s, got %s", errors.ErrChecksumMismatch, path, Normalize(want), got)
	}
	return nil
}
