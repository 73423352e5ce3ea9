package slicer

import (
	"os"

	"github.com/freakmaxi/kertish-slicer/basics/errors"
	"github.com/freakmaxi/kertish-slicer/slicer/part"
	"go.uber.org/zap"
)

// Cleaner interface is for removing the consumed part files. It is never called by Rebuilder,
// the caller decides when the parts are not needed anymore
type Cleaner interface {
	RemoveParts(partsPath string) (int, error)
}

type cleaner struct {
	logger *zap.Logger
}

func NewCleaner(logger *zap.Logger) Cleaner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &cleaner{
		logger: logger,
	}
}

// RemoveParts removes every part file in partsPath and returns the removed file count.
// Failures do not stop the removal of the rest, they are collected in a BulkError
func (c *cleaner) RemoveParts(partsPath string) (int, error) {
	partPaths := make([]string, 0)
	if err := part.Traverse(partsPath, func(partPath string) error {
		partPaths = append(partPaths, partPath)
		return nil
	}); err != nil {
		return 0, errors.NewPartError("list", errors.NoIndex, partsPath, err)
	}

	var bulkErr *errors.BulkError
	removed := 0

	for _, partPath := range partPaths {
		if err := os.Remove(partPath); err != nil {
			if bulkErr == nil {
				bulkErr = errors.NewBulkError()
			}
			bulkErr.Add(errors.NewPartError("remove", errors.NoIndex, partPath, err))

			c.logger.Warn("Part can not be removed", zap.String("path", partPath), zap.Error(err))
			continue
		}
		removed++
	}

	c.logger.Info("Parts are removed", zap.String("parts", partsPath), zap.Int("count", removed))

	if bulkErr != nil {
		return removed, bulkErr
	}
	return removed, nil
}

var _ Cleaner = &cleaner{}
