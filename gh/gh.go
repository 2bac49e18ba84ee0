package gh

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"ghfile/model"
)

const (
	DefaultBaseURL = "https://api.github.com"
	UserAgent      = "ghfile"
)

// Client talks to the GitHub REST API. It never retries and sets no timeout
// of its own.
type Client struct {
	baseURL  string
	rc       *resty.Client
	log      *zap.Logger
	progress io.Writer
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another API root, e.g. GitHub Enterprise.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithProgress shows a byte progress bar on w while the body is read.
func WithProgress(w io.Writer) Option {
	return func(c *Client) { c.progress = w }
}

// WithHTTPClient uses hc for the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.rc = resty.NewWithClient(hc) }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.rc == nil {
		c.rc = resty.New()
	}
	c.rc.
		SetRetryCount(0).
		SetLogger(c.log.Sugar()).
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("User-Agent", UserAgent)

	return c
}

// ContentsURL builds the Contents API URL for ref. The path is inserted as is,
// without escaping.
func ContentsURL(baseURL string, ref model.RepoFileRef) string {
	return fmt.Sprintf(
		"%s/repos/%s/%s/contents/%s?ref=%s",
		strings.TrimRight(baseURL, "/"),
		ref.Owner,
		ref.Repository,
		ref.Path,
		ref.Ref,
	)
}
