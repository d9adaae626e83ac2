package dataset

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	log "github.com/sirupsen/logrus"
	"github.com/ulikunitz/xz"
)

const (
	gzipExtension  = ".gz"
	bzip2Extension = ".bz2"
	xzExtension    = ".xz"
	zstdExtension  = ".zst"
)

// openFile opens filepath and wraps it with a decompression reader based on its extension.
// The returned function closes both the decompressor and the file.
func openFile(path string) (io.Reader, func() error, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	reader, closeReader, err := newDecompressionReader(file, filepath.Ext(path))
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("error opening %s: %w", path, err)
	}

	closeFn := func() error {
		if err := closeReader(); err != nil {
			log.Errorf("[component: dataset][method: openFile][status: ERROR] error closing decompressor of %s: %s", path, err.Error())
		}
		return file.Close()
	}
	return reader, closeFn, nil
}

func newDecompressionReader(reader io.Reader, extension string) (io.Reader, func() error, error) {
	switch strings.ToLower(extension) {
	case gzipExtension:
		gzReader, err := gzip.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gzReader, gzReader.Close, nil

	case bzip2Extension:
		return bzip2.NewReader(reader), noopClose, nil

	case xzExtension:
		xzReader, err := xz.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return xzReader, noopClose, nil

	case zstdExtension:
		decoder, err := zstd.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return decoder, func() error {
			decoder.Close()
			return nil
		}, nil

	default:
		return reader, noopClose, nil
	}
}

func noopClose() error {
	return nil
}
