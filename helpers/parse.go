package helpers

import (
	"regexp"

	"github.com/pkg/errors"

	"ghfile/model"
)

// ErrMalformedURL is returned when the input does not look like
// https://github.com/owner/repo/blob/branch/path/to/file.ext
var ErrMalformedURL = errors.New("malformed GitHub blob URL")

// github.com/owner/repo/blob/ref/path, unanchored so the scheme is optional.
// The ref stops at the first slash, so refs like feature/x are not supported.
var blobRegex = regexp.MustCompile(`github\.com/([^/]+)/([^/]+)/blob/([^/]+)/(.+)`)

// ParseBlobURL extracts owner, repository, ref and file path from a blob URL.
func ParseBlobURL(urlStr string) (model.RepoFileRef, error) {
	match := blobRegex.FindStringSubmatch(urlStr)
	if len(match) != 5 {
		return model.RepoFileRef{}, errors.Wrapf(ErrMalformedURL, "parse %q", urlStr)
	}

	return model.RepoFileRef{
		Owner:      match[1],
		Repository: match[2],
		Ref:        match[3],
		Path:       match[4],
	}, nil
}
