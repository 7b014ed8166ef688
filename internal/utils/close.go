package utils

import (
	"io"
)

// maxDrain bounds how much of an unread response body is discarded so the
// connection can go back to the pool.
const maxDrain = 64 << 10

// DrainAndClose discards what is left of an HTTP response body, up to a
// limit, then closes it.
func DrainAndClose(rc io.ReadCloser) {
	_, _ = io.CopyN(io.Discard, rc, maxDrain)
	_ = rc.Close()
}
