package download

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/glorpus-work/mcget/pkg/checksum"
	"github.com/glorpus-work/mcget/pkg/errors"
	"github.com/glorpus-work/mcget/pkg/fsutil"
)

// maxRedirects bounds redirect following for opted-in requests to avoid
// redirect loops.
const maxRedirects = 10

// Client performs single HTTP transfers.
type Client struct {
	noRedirect *http.Client
	redirect   *http.Client
	userAgent  string
}

// NewClient creates a transfer client with the given per-request timeout.
func NewClient(timeout time.Duration, userAgent string) *Client {
	if userAgent == "" {
		userAgent = "mcget/1.0"
	}
	return &Client{
		noRedirect: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		redirect: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		userAgent: userAgent,
	}
}

// Do performs exactly one GET for req, writing the body per the requested
// mode. The expected checksum, when present, is computed over exactly the
// bytes that were written, immediately after the body completes.
func (c *Client) Do(ctx context.Context, req Request) Result {
	res := Result{Request: req}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, http.NoBody)
	if err != nil {
		res.Err = errors.Wrapf(errors.ErrTransport, "invalid request for %s: %v", req.URL, err)
		return res
	}
	httpReq.Header.Set("User-Agent", c.userAgent)

	client := c.noRedirect
	if req.FollowRedirects {
		client = c.redirect
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		res.Err = errors.Wrapf(errors.ErrTransport, "%s: %v", req.URL, err)
		return res
	}
	defer func() { _ = resp.Body.Close() }()

	res.StatusCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		res.Err = errors.Wrapf(errors.ErrTransport, "%s: unexpected status code %d", req.URL, resp.StatusCode)
		return res
	}

	writer, buf, file, err := openDestination(req)
	if err != nil {
		res.Err = err
		return res
	}

	_, copyErr := io.Copy(writer, resp.Body)
	if file != nil {
		if closeErr := file.Close(); copyErr == nil && closeErr != nil {
			copyErr = closeErr
		}
	}
	if buf != nil {
		res.Body = buf.Bytes()
	}
	if copyErr != nil {
		res.Err = errors.Wrapf(errors.ErrTransport, "%s: %v", req.URL, copyErr)
		return res
	}

	if req.Checksum != "" {
		// The failed file is left in place so the caller can inspect it;
		// there is no automatic retry for integrity failures.
		if err := writer.Verify(req.Checksum); err != nil {
			res.Err = errors.Wrapf(err, "%s", req.URL)
			return res
		}
	}

	return res
}

// openDestination builds the write pipeline for the request's mode: an
// optional destination file, an optional capture buffer, and a hashing writer
// in front of both.
func openDestination(req Request) (*checksum.Writer, *bytes.Buffer, *os.File, error) {
	var sinks []io.Writer
	var buf *bytes.Buffer
	var file *os.File

	if req.Mode == ModeFile || req.Mode == ModeFileAndMemory {
		if req.Path == "" {
			return nil, nil, nil, errors.Wrapf(errors.ErrInvalidPath, "file-mode request for %s has no destination", req.URL)
		}
		if err := fsutil.EnsureFileDir(req.Path); err != nil {
			return nil, nil, nil, errors.Wrapf(errors.ErrFileOpen, "%s: %v", req.Path, err)
		}
		f, err := fsutil.CreateFilePerm(req.Path, fsutil.FileModeDefault)
		if err != nil {
			return nil, nil, nil, errors.Wrapf(errors.ErrFileOpen, "%s: %v", req.Path, err)
		}
		file = f
		sinks = append(sinks, f)
	}
	if req.Mode == ModeMemory || req.Mode == ModeFileAndMemory {
		buf = &bytes.Buffer{}
		sinks = append(sinks, buf)
	}

	var w io.Writer
	switch len(sinks) {
	case 1:
		w = sinks[0]
	default:
		w = io.MultiWriter(sinks...)
	}
	return checksum.NewWriter(w), buf, file, nil
}
