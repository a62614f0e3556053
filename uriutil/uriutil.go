// Package uriutil opens, describes and copies the content behind file and
// http(s) URIs.
package uriutil

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/support/fileutil"
	"github.com/osuushi/support/internal/logging"
)

var ErrUnsupportedScheme = errors.New("unsupported uri scheme")

// Client performs http(s) requests.
var Client = http.DefaultClient

// Info describes the content behind a URI.
type Info struct {
	// Display name: the file name, the Content-Disposition filename, or the
	// last path element.
	Name string
	// Size in bytes, -1 when unknown.
	Size int64
	// MIME type, empty when unknown.
	Type string
}

type kind int

const (
	local kind = iota
	remote
)

// target is a parsed URI. Local targets carry a file system path; remote
// ones the URL to request.
type target struct {
	kind kind
	path string
	url  *url.URL
}

// parse resolves uri. Anything without a scheme is a plain path taken as
// written, so '#', '?' and '%' stay part of the file name. Only file:// URIs
// are percent-decoded.
func parse(uri string) (target, error) {
	if filepath.VolumeName(uri) != "" {
		return target{kind: local, path: uri}, nil
	}
	u, err := url.Parse(uri)
	if err != nil {
		if strings.Contains(uri, "://") {
			return target{}, errors.Wrap(err, "parse uri")
		}
		return target{kind: local, path: uri}, nil
	}
	switch u.Scheme {
	case "":
		return target{kind: local, path: uri}, nil
	case "file":
		return target{kind: local, path: filepath.FromSlash(u.Path)}, nil
	case "http", "https":
		return target{kind: remote, url: u}, nil
	}
	return target{}, errors.Wrapf(ErrUnsupportedScheme, "%q", u.Scheme)
}

func Query(ctx context.Context, uri string) (Info, error) {
	t, err := parse(uri)
	if err != nil {
		return Info{}, err
	}
	if t.kind == local {
		p := t.path
		stat, err := os.Stat(p)
		if err != nil {
			return Info{}, errors.Wrap(err, "query")
		}
		if stat.IsDir() {
			return Info{}, errors.Wrapf(fileutil.ErrNotFile, "query %s", p)
		}
		return Info{
			Name: stat.Name(),
			Size: stat.Size(),
			Type: mime.TypeByExtension(filepath.Ext(p)),
		}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, t.url.String(), nil)
	if err != nil {
		return Info{}, errors.Wrap(err, "query")
	}
	resp, err := Client.Do(req)
	if err != nil {
		return Info{}, errors.Wrap(err, "query")
	}
	resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return Info{}, errors.Errorf("query %s: %s", t.url.Redacted(), resp.Status)
	}
	return remoteInfo(t.url, resp.Header), nil
}

func remoteInfo(u *url.URL, h http.Header) Info {
	info := Info{Name: path.Base(u.Path), Size: -1}
	if info.Name == "." || info.Name == "/" {
		info.Name = u.Hostname()
	}
	if _, params, err := mime.ParseMediaType(h.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		info.Name = params["filename"]
	}
	if n, err := strconv.ParseInt(h.Get("Content-Length"), 10, 64); err == nil && n >= 0 {
		info.Size = n
	}
	if mediaType, _, err := mime.ParseMediaType(h.Get("Content-Type")); err == nil {
		info.Type = mediaType
	}
	return info
}

// Open returns the content behind uri. The caller closes it.
func Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	t, err := parse(uri)
	if err != nil {
		return nil, err
	}
	if t.kind == local {
		f, err := os.Open(t.path)
		if err != nil {
			return nil, errors.Wrap(err, "open")
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.url.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	resp, err := Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	if resp.StatusCode/100 != 2 {
		resp.Body.Close()
		return nil, errors.Errorf("open %s: %s", t.url.Redacted(), resp.Status)
	}
	return resp.Body, nil
}

// CopyToFile writes the content behind uri to a new or truncated file at dst.
func CopyToFile(ctx context.Context, uri, dst string) error {
	r, err := Open(ctx, uri)
	if err != nil {
		return err
	}
	defer r.Close()
	if err := fileutil.CopyFrom(r, dst); err != nil {
		return err
	}
	logging.Logger().Debug("copied uri", "uri", uri, "dst", dst)
	return nil
}
