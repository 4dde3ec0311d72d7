package archive

import (
	"compress/gzip"
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"
)

func init() {
	Register(plainCodec{})
	Register(gzipCodec{})
	Register(bzip2Codec{})
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// plainCodec writes an uncompressed tar.
type plainCodec struct{}

func (plainCodec) Name() string         { return "tar" }
func (plainCodec) Extensions() []string { return []string{".tar"} }

func (plainCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

func (plainCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

// gzipCodec implements GZIP compression
type gzipCodec struct{}

func (gzipCodec) Name() string         { return "tar.gz" }
func (gzipCodec) Extensions() []string { return []string{".tar.gz", ".tgz"} }

func (gzipCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	gw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("creating gzip writer: %w", err)
	}
	return gw, nil
}

func (gzipCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("creating gzip reader: %w", err)
	}
	return gr, nil
}

// bzip2Codec implements BZIP2 compression
type bzip2Codec struct{}

func (bzip2Codec) Name() string         { return "tar.bz2" }
func (bzip2Codec) Extensions() []string { return []string{".tar.bz2", ".tbz2"} }

func (bzip2Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	bw, err := bzip2.NewWriter(w, &bzip2.WriterConfig{Level: 9})
	if err != nil {
		return nil, fmt.Errorf("creating bzip2 writer: %w", err)
	}
	return bw, nil
}

func (bzip2Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	br, err := bzip2.NewReader(r, &bzip2.ReaderConfig{})
	if err != nil {
		return nil, fmt.Errorf("creating bzip2 reader: %w", err)
	}
	return br, nil
}
