package slicer

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/freakmaxi/kertish-slicer/basics/errors"
	"github.com/freakmaxi/kertish-slicer/slicer/part"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const bufferSize int64 = 1024 * 1024 // 1mb

const maxPartCount uint64 = math.MaxUint32 + 1

// Splitter interface is for slicing the source file into the part files
type Splitter interface {
	Split(sourcePath string, targetPath string, partSize uint64) (int, error)
}

type splitter struct {
	workers int
	logger  *zap.Logger
}

// NewSplitter creates the Splitter interface. workers defines how many parts can be written
// at the same time, 1 or less means sequential writing
func NewSplitter(workers int, logger *zap.Logger) Splitter {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &splitter{
		workers: workers,
		logger:  logger,
	}
}

// Split slices the source file into the part files of partSize payload in targetPath and
// returns the created part count. Empty source creates no parts
func (s *splitter) Split(sourcePath string, targetPath string, partSize uint64) (int, error) {
	if len(sourcePath) == 0 || len(targetPath) == 0 {
		return 0, fmt.Errorf("%w: source file and target folder are required", errors.ErrInvalidArgument)
	}
	if partSize == 0 {
		return 0, fmt.Errorf("%w: part size should be bigger than 0", errors.ErrInvalidArgument)
	}

	source, err := os.OpenFile(sourcePath, os.O_RDONLY, 0666)
	if err != nil {
		return 0, errors.NewPartError("open source", errors.NoIndex, sourcePath, err)
	}
	defer func() { _ = source.Close() }()

	info, err := source.Stat()
	if err != nil {
		return 0, errors.NewPartError("read source", errors.NoIndex, sourcePath, err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%w: %s is a folder", errors.ErrInvalidArgument, sourcePath)
	}

	totalSize := uint64(info.Size())
	partCount := totalSize / partSize
	if totalSize%partSize > 0 {
		partCount++
	}
	if partCount > maxPartCount {
		return 0, fmt.Errorf("%w: %d parts are required, increase the part size", errors.ErrTooManyParts, partCount)
	}

	if err := os.MkdirAll(targetPath, 0777); err != nil {
		return 0, errors.NewPartError("create target", errors.NoIndex, targetPath, err)
	}

	if partCount == 0 {
		s.logger.Warn("Source file is empty, no part is created", zap.String("source", sourcePath))
		return 0, nil
	}

	group, ctx := errgroup.WithContext(context.Background())
	group.SetLimit(s.workers)

	for i := uint64(0); i < partCount; i++ {
		if ctx.Err() != nil {
			break
		}

		index := uint32(i)
		begins := i * partSize
		size := partSize
		if totalSize-begins < size {
			size = totalSize - begins
		}

		group.Go(func() error {
			return s.writePart(source, targetPath, index, int64(begins), int64(size))
		})
	}

	if err := group.Wait(); err != nil {
		s.logger.Error("Slicing is failed", zap.String("source", sourcePath), zap.Error(err))
		return 0, err
	}

	s.logger.Info(
		"Source file is sliced",
		zap.String("source", sourcePath),
		zap.String("target", targetPath),
		zap.Uint64("size", totalSize),
		zap.Uint64("partSize", partSize),
		zap.Uint64("parts", partCount),
	)

	return int(partCount), nil
}

func (s *splitter) writePart(source io.ReaderAt, targetPath string, index uint32, begins int64, size int64) error {
	w, err := part.Create(targetPath, index)
	if err != nil {
		return errors.NewPartError("create", int64(index), filepath.Join(targetPath, part.Name(index)), err)
	}

	bufSize := bufferSize
	if size < bufSize {
		bufSize = size
	}

	written, err := io.CopyBuffer(w, io.NewSectionReader(source, begins, size), make([]byte, bufSize))
	if err == nil && written != size {
		err = io.ErrUnexpectedEOF
	}
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.NewPartError("write", int64(index), w.Path(), err)
	}

	s.logger.Debug("Part is created", zap.Uint32("index", index), zap.String("path", w.Path()), zap.Int64("size", size))

	return nil
}

var _ Splitter = &splitter{}
