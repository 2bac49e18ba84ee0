package gh

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"ghfile/model"
)

// FetchContents makes a single GET to the Contents API for ref and returns
// the decoded JSON body untouched. An empty token sends no Authorization header.
func (c *Client) FetchContents(ctx context.Context, ref model.RepoFileRef, token string) (any, error) {
	url := ContentsURL(c.baseURL, ref)
	log := c.log.With(zap.String("repo", ref.FullName()), zap.String("ref", ref.Ref))
	log.Debug("fetching contents", zap.String("url", url))

	req := c.rc.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)
	if token != "" {
		req.SetHeader("Authorization", "token "+token)
	}

	resp, err := req.Get(url)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	body := resp.RawBody()
	defer body.Close()

	log.Debug("response received",
		zap.Int("status", resp.StatusCode()),
		zap.Duration("elapsed", resp.Time()),
	)

	if !resp.IsSuccess() {
		return nil, &RequestFailedError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			URL:        url,
		}
	}

	var r io.Reader = body
	if c.progress != nil {
		var finish func()
		r, finish = progressReader(c.progress, resp.RawResponse.ContentLength, body)
		defer finish()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &TransportError{URL: url, Err: errors.Wrap(err, "reading response body")}
	}

	return decodeJSON(data)
}

// decodeJSON decodes exactly one JSON value. Numbers are kept as json.Number
// so they print back exactly as received.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, &DecodeError{Err: err}
	}

	return v, nil
}
