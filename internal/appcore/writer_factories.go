package appcore

import (
	"io"

	"orfscan-core/orf"
	"orfscan/internal/writers"
)

// HitWriterFactory builds the writer goroutine for plain orf.Hit outputs.
type HitWriterFactory struct {
	Format string
	Sort   bool
	Header bool
}

func NewHitWriterFactory(format string, sort, header bool) HitWriterFactory {
	return HitWriterFactory{Format: format, Sort: sort, Header: header}
}

func (w HitWriterFactory) Start(out io.Writer, bufSize int) (chan<- orf.Hit, <-chan error) {
	return writers.StartHitWriter(out, w.Format, w.Sort, w.Header, bufSize)
}
