// Package download implements single HTTP transfers with checksum
// verification, a cached-fetch layer for synchronous document fetches, and a
// bounded-concurrency transfer group for bulk downloads.
package download

// Mode selects where a transfer writes the response body.
type Mode int

// The closed set of destination modes.
const (
	// ModeFile writes the body to Request.Path.
	ModeFile Mode = iota
	// ModeMemory captures the body in the Result only.
	ModeMemory
	// ModeFileAndMemory writes the body to Request.Path and captures it.
	ModeFileAndMemory
)

// Request is an immutable description of one fetch. It is created by a
// resolver stage and owned by the transfer that executes it.
type Request struct {
	// URL is the source to GET.
	URL string
	// Path is the destination file, used by ModeFile and ModeFileAndMemory.
	Path string
	// Mode selects the destination.
	Mode Mode
	// Checksum is the expected SHA-1 hex digest of the body. Empty skips
	// verification.
	Checksum string
	// FollowRedirects opts this request into bounded redirect following.
	FollowRedirects bool
	// Label names the request in logs and results (library name, asset name).
	Label string
}

// Result is the outcome of one Request.
type Result struct {
	// Request echoes the request this result belongs to.
	Request Request
	// StatusCode is the HTTP status of the final response, 0 on transport
	// failure before any response arrived.
	StatusCode int
	// Body holds the captured bytes for ModeMemory and ModeFileAndMemory.
	Body []byte
	// Err is nil on success. It wraps ErrTransport, ErrFileOpen or
	// ErrChecksumMismatch.
	Err error
}

// OK reports whether the transfer succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Failed filters results down to the failing ones.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.OK() {
			out = append(out, r)
		}
	}
	return out
}
