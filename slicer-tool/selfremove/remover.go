package selfremove

import (
	"os"

	"go.uber.org/zap"
)

// Remover interface is for deleting the running executable after the work is done
type Remover interface {
	RemoveSelf() error
}

type remover struct {
	executable func() (string, error)
	logger     *zap.Logger
}

// NewRemover creates the Remover for the running executable of the platform
func NewRemover(logger *zap.Logger) Remover {
	return newRemover(os.Executable, logger)
}

func newRemover(executable func() (string, error), logger *zap.Logger) *remover {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &remover{
		executable: executable,
		logger:     logger,
	}
}

func (r *remover) RemoveSelf() error {
	executablePath, err := r.executable()
	if err != nil {
		return err
	}

	if err := r.remove(executablePath); err != nil {
		r.logger.Error("Executable can not be removed", zap.String("path", executablePath), zap.Error(err))
		return err
	}

	r.logger.Info("Executable removal is scheduled", zap.String("path", executablePath))
	return nil
}

var _ Remover = &remover{}
