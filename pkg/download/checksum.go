package download

import (
	"crypto/md5" //nolint:gosec // the corpus catalog publishes MD5 digests
	"encoding/hex"
	"io"
	"os"

	"github.com/rattanarit/pythainlp/pkg/errors"
)

// checksumSkipSentinel in the expected digest disables verification, as does
// an empty string. This mirrors the catalog's md5 field convention.
const checksumSkipSentinel = "-"

// VerifyChecksum computes the MD5 digest of the file at path and compares it
// to expected, byte-exact. The comparison is case-sensitive on the hex
// encoding. Verification runs over the complete file; there is no streaming
// variant.
func VerifyChecksum(path, expected string) error {
	if expected == "" || expected == checksumSkipSentinel {
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "could not open %s for checksum", path)
	}
	defer func() { _ = file.Close() }()

	hasher := md5.New() //nolint:gosec
	if _, err := io.Copy(hasher, file); err != nil {
		return errors.Wrapf(err, "could not hash %s", path)
	}

	got := hex.EncodeToString(hasher.Sum(nil))
	if got != expected {
		return errors.Wrapf(errors.ErrChecksumMismatch, "expected %s, got %s", expected, got)
	}
	return nil
}
