package fileutil

import (
	"crypto/md5"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// MD5 digest of the file at path as lowercase hex. The digest is formatted as
// a number, so leading zero digits are dropped; the result is then left padded
// with zeros up to minLength. Pass 32 for the conventional fixed width form.
func MD5(path string, minLength int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "md5")
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrapf(err, "md5 %s", path)
	}
	hex := new(big.Int).SetBytes(h.Sum(nil)).Text(16)
	if len(hex) < minLength {
		hex = strings.Repeat("0", minLength-len(hex)) + hex
	}
	return hex, nil
}
