package download

import (
	"context"
	"os"

	"github.com/glorpus-work/mcget/pkg/errors"
	"github.com/glorpus-work/mcget/pkg/fsutil"
)

// FetchCached returns the bytes at path, downloading them from url only when
// the file does not exist yet. A file that exists is trusted as-is; cached
// content is never re-verified (corruption detection happens at download
// time only). With wantBody false the return is nil for a cache hit and the
// body is still written to path on a miss.
//
// This is the de-duplication point for single synchronous document fetches
// (manifest, version descriptor, asset index). It offers no protection
// against concurrent callers racing on the same path.
func FetchCached(ctx context.Context, client *Client, url, path string, wantBody bool, sum string) ([]byte, error) {
	if fsutil.FileExists(path) {
		if !wantBody {
			return nil, nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading cached file %s", path)
		}
		return data, nil
	}

	mode := ModeFile
	if wantBody {
		mode = ModeFileAndMemory
	}
	res := client.Do(ctx, Request{
		URL:      url,
		Path:     path,
		Mode:     mode,
		Checksum: sum,
	})
	if res.Err != nil {
		return nil, res.Err
	}
	return res.Body, nil
}
