package gh

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// progressReader wraps r with a byte counter drawn on w. total may be -1 when
// the server sent no Content-Length.
func progressReader(w io.Writer, total int64, r io.Reader) (io.Reader, func()) {
	bar := pb.New64(total).
		SetTemplate(pb.Full).
		SetWriter(w).
		Set(pb.Bytes, true).
		Start()

	return bar.NewProxyReader(r), func() { bar.Finish() }
}
