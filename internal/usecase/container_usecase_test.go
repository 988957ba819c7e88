package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"kamstim/pkg/logger"

	"github.com/stretchr/testify/assert"
)

const testDataset = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [16.6068, 49.1951]},
			"properties": {"komodita_odpad_separovany": "Papír", "ulice": "Kobližná"}
		},
		{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [16.5934, 49.2102]},
			"properties": {"komodita_odpad_separovany": "Plast", "ulice": "Štefánikova"}
		}
	]
}`

func writeTestDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "containers.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGetContainers_LoadsLocalFile(t *testing.T) {
	path := writeTestDataset(t, testDataset)
	uc := NewContainerUseCase(path, "", nil, logger.New())

	fc, err := uc.GetContainers()

	assert.NoError(t, err)
	assert.Len(t, fc.Features, 2)
	assert.Equal(t, "Papír", fc.Features[0].WasteType())
}

func TestGetContainers_CachesAcrossCalls(t *testing.T) {
	path := writeTestDataset(t, testDataset)
	uc := NewContainerUseCase(path, "", nil, logger.New())

	first, err := uc.GetContainers()
	assert.NoError(t, err)

	// The file is read once; removing it must not affect later calls.
	assert.NoError(t, os.Remove(path))

	second, err := uc.GetContainers()
	assert.NoError(t, err)
	assert.Same(t, first, second)
}

func TestGetContainers_MissingFile(t *testing.T) {
	uc := NewContainerUseCase(filepath.Join(t.TempDir(), "nope.json"), "", nil, logger.New())

	_, err := uc.GetContainers()

	assert.Error(t, err)
}

func TestGetContainers_MalformedJSON(t *testing.T) {
	path := writeTestDataset(t, "{not json")
	uc := NewContainerUseCase(path, "", nil, logger.New())

	_, err := uc.GetContainers()

	assert.Error(t, err)
}
