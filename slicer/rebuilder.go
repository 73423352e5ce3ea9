package slicer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/freakmaxi/kertish-slicer/basics/errors"
	"github.com/freakmaxi/kertish-slicer/slicer/part"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Rebuilder interface is for collecting the part files and rebuilding the source file from them
type Rebuilder interface {
	Scan(partsPath string) (part.Parts, error)
	Rebuild(partsPath string, targetFile string) (uint64, error)
}

type rebuilder struct {
	workers int
	logger  *zap.Logger
}

// NewRebuilder creates the Rebuilder interface. workers defines how many part headers can be
// read at the same time, the payloads are always merged one by one in index order
func NewRebuilder(workers int, logger *zap.Logger) Rebuilder {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &rebuilder{
		workers: workers,
		logger:  logger,
	}
}

// Scan reads the headers of the part files in partsPath and returns them sorted by index.
// The set is validated to be complete, without duplicates and gaps
func (r *rebuilder) Scan(partsPath string) (part.Parts, error) {
	partPaths := make([]string, 0)
	if err := part.Traverse(partsPath, func(partPath string) error {
		partPaths = append(partPaths, partPath)
		return nil
	}); err != nil {
		return nil, errors.NewPartError("list", errors.NoIndex, partsPath, err)
	}

	if len(partPaths) == 0 {
		return nil, errors.NewPartError("scan", errors.NoIndex, partsPath, errors.ErrNoPartsFound)
	}

	parts := make(part.Parts, len(partPaths))

	group := &errgroup.Group{}
	group.SetLimit(r.workers)

	for i, partPath := range partPaths {
		i, partPath := i, partPath

		group.Go(func() error {
			p, err := part.ReadHeader(partPath)
			if err != nil {
				return errors.NewPartError("read header", errors.NoIndex, partPath, err)
			}
			parts[i] = p
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.Sort(parts)

	if err := parts.Validate(); err != nil {
		return nil, err
	}

	return parts, nil
}

// Rebuild merges the payloads of the part files in partsPath into targetFile and returns the
// written byte count. targetFile is replaced only when all the parts are merged successfully
func (r *rebuilder) Rebuild(partsPath string, targetFile string) (uint64, error) {
	if len(partsPath) == 0 || len(targetFile) == 0 {
		return 0, fmt.Errorf("%w: parts folder and target file are required", errors.ErrInvalidArgument)
	}
	if r.targetInParts(partsPath, targetFile) {
		return 0, fmt.Errorf("%w: target file %s would be taken as a part", errors.ErrInvalidArgument, targetFile)
	}

	parts, err := r.Scan(partsPath)
	if err != nil {
		r.logger.Error("Part scanning is failed", zap.String("parts", partsPath), zap.Error(err))
		return 0, err
	}

	targetFolder := filepath.Dir(targetFile)
	if err := os.MkdirAll(targetFolder, 0777); err != nil {
		return 0, errors.NewPartError("create target", errors.NoIndex, targetFolder, err)
	}

	tempPath := filepath.Join(targetFolder, fmt.Sprintf(".%s.tmp", uuid.New().String()))
	temp, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if err != nil {
		return 0, errors.NewPartError("create target", errors.NoIndex, tempPath, err)
	}

	written, err := r.merge(parts, temp)
	if err == nil {
		if err = temp.Sync(); err != nil {
			err = errors.NewPartError("sync target", errors.NoIndex, tempPath, err)
		}
	}
	if closeErr := temp.Close(); err == nil && closeErr != nil {
		err = errors.NewPartError("close target", errors.NoIndex, tempPath, closeErr)
	}
	if err == nil {
		if replaceErr := replace(tempPath, targetFile); replaceErr != nil {
			err = errors.NewPartError("replace target", errors.NoIndex, targetFile, replaceErr)
		}
	}
	if err != nil {
		_ = os.Remove(tempPath)
		r.logger.Error("Rebuilding is failed", zap.String("parts", partsPath), zap.String("target", targetFile), zap.Error(err))
		return 0, err
	}

	r.logger.Info(
		"Parts are rebuilt",
		zap.String("parts", partsPath),
		zap.String("target", targetFile),
		zap.Int("count", len(parts)),
		zap.Uint64("size", written),
	)

	return written, nil
}

func (r *rebuilder) merge(parts part.Parts, writer io.Writer) (uint64, error) {
	buffer := make([]byte, bufferSize)
	total := uint64(0)

	for _, p := range parts {
		copied, err := r.mergePart(p, writer, buffer)
		if err != nil {
			return 0, errors.NewPartError("merge", int64(p.Index), p.Path, err)
		}
		total += uint64(copied)

		r.logger.Debug("Part is merged", zap.Uint32("index", p.Index), zap.String("path", p.Path), zap.Int64("size", copied))
	}

	return total, nil
}

func (r *rebuilder) mergePart(p *part.Part, writer io.Writer, buffer []byte) (int64, error) {
	reader, err := part.Open(p.Path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = reader.Close() }()

	copied, err := io.CopyBuffer(writer, reader, buffer)
	if err != nil {
		return 0, err
	}
	if copied != p.PayloadSize() {
		return 0, fmt.Errorf("part size changed during rebuild, expected %d bytes but found %d", p.PayloadSize(), copied)
	}
	return copied, nil
}

func (r *rebuilder) targetInParts(partsPath string, targetFile string) bool {
	if !part.IsPartFile(targetFile) {
		return false
	}

	partsAbs, err := filepath.Abs(partsPath)
	if err != nil {
		return false
	}
	targetAbs, err := filepath.Abs(targetFile)
	if err != nil {
		return false
	}
	return strings.Compare(filepath.Dir(targetAbs), partsAbs) == 0
}

var _ Rebuilder = &rebuilder{}
