package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// StreamReaderCtx parses FASTA from r and calls emit once per record.
// It is cancelable: ctx is checked between lines, so a huge file does not
// pin the goroutine after the caller gives up. Returning a non-nil error
// from emit (for example ctx.Err()) stops the scan early.
func StreamReaderCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id  string
		seq = make([]byte, 0, 1<<20)
	)

	flush := func() error {
		if id == "" && len(seq) == 0 {
			return nil
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if id != "" || len(seq) > 0 {
				if err := flush(); err != nil {
					return err
				}
				seq = seq[:0]
			}
			id = parseHeaderID(line[1:])
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// StreamCtx opens path ("-" for stdin, .gz transparently) and streams records.
func StreamCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamReaderCtx(ctx, rc, emit)
}

// Stream is the channel-based wrapper around StreamCtx. Open errors for
// non-stdin paths are reported immediately; scan-time errors are not
// propagated through the channel.
func Stream(ctx context.Context, path string) (<-chan Record, error) {
	if path != "-" {
		rc, err := openReader(path)
		if err != nil {
			return nil, err
		}
		_ = rc.Close()
	}

	out := make(chan Record, 8)
	go func() {
		defer close(out)
		_ = StreamCtx(ctx, path, func(r Record) error {
			select {
			case out <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	return out, nil
}

// ReadAll slurps every record from path. Convenient for whole-genome
// profiling where the record set is iterated more than once.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	var recs []Record
	err := StreamCtx(ctx, path, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}
