package fileutil

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Resolve a charset label such as "utf-8", "gbk" or "shift_jis" using the
// WHATWG names. An empty label means UTF-8, which needs no transcoding.
func charset(label string) (encoding.Encoding, error) {
	if label == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, errors.Wrapf(err, "charset %q", label)
	}
	return enc, nil
}

// Read the regular file at path as text in the given charset. Line endings are
// normalized to "\n", and a non-empty result always ends with one.
func ReadString(path, label string) (string, error) {
	enc, err := charset(label)
	if err != nil {
		return "", err
	}
	if !isFile(path) {
		return "", errors.Wrapf(ErrNotFile, "read %s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "read")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	if enc != nil {
		if data, err = enc.NewDecoder().Bytes(data); err != nil {
			return "", errors.Wrapf(err, "decode %s", path)
		}
	}

	text := strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(string(data))
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text, nil
}

// Write content to path in the given charset, replacing any existing file.
func WriteString(path, content, label string) error {
	enc, err := charset(label)
	if err != nil {
		return err
	}
	if enc != nil {
		if content, err = enc.NewEncoder().String(content); err != nil {
			return errors.Wrapf(err, "encode %s", path)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrap(err, "write")
	}
	return nil
}
