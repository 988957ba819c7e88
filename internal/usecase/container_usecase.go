package usecase

import (
	"fmt"
	"os"
	"sync"

	"kamstim/internal/entity"
	"kamstim/pkg/logger"
	"kamstim/pkg/s3"
)

type ContainerUseCase interface {
	GetContainers() (*entity.FeatureCollection, error)
}

type containerUseCase struct {
	filePath string
	s3Key    string
	s3Client *s3.Client
	logger   *logger.Logger

	mu     sync.RWMutex
	cached *entity.FeatureCollection
}

func NewContainerUseCase(filePath, s3Key string, s3Client *s3.Client, logger *logger.Logger) ContainerUseCase {
	return &containerUseCase{
		filePath: filePath,
		s3Key:    s3Key,
		s3Client: s3Client,
		logger:   logger,
	}
}

// GetContainers returns the municipal container dataset. The dataset is
// static per process lifetime, so it is parsed once and held in memory.
func (uc *containerUseCase) GetContainers() (*entity.FeatureCollection, error) {
	uc.mu.RLock()
	if uc.cached != nil {
		defer uc.mu.RUnlock()
		return uc.cached, nil
	}
	uc.mu.RUnlock()

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.cached != nil {
		return uc.cached, nil
	}

	data, err := uc.readDataset()
	if err != nil {
		return nil, err
	}

	fc, err := entity.ParseFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse container dataset: %w", err)
	}

	uc.logger.Info("Loaded container dataset: %d features", len(fc.Features))
	uc.cached = fc
	return fc, nil
}

func (uc *containerUseCase) readDataset() ([]byte, error) {
	if uc.s3Key != "" && uc.s3Client != nil {
		data, err := uc.s3Client.GetObject(uc.s3Key)
		if err == nil {
			return data, nil
		}
		uc.logger.Warn("Failed to fetch container dataset from S3, falling back to local file: %v", err)
	}

	data, err := os.ReadFile(uc.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read container dataset: %w", err)
	}
	return data, nil
}
