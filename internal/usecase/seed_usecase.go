package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/horus-listing/internal/pkg/errors"
	"github.com/horus-listing/internal/usecase/dto"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// SeedArea - район в файле справочников
type SeedArea struct {
	Name   string  `yaml:"name"`
	NameEn *string `yaml:"name_en"`
}

// SeedCity - город с районами в файле справочников
type SeedCity struct {
	Name   string     `yaml:"name"`
	NameEn *string    `yaml:"name_en"`
	Areas  []SeedArea `yaml:"areas"`
}

// SeedFile - корень YAML файла
type SeedFile struct {
	Cities []SeedCity `yaml:"cities"`
}

// LoadSeedFile читает YAML со справочниками
func LoadSeedFile(path string) (*SeedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return ParseSeed(f)
}

// ParseSeed разбирает YAML и проверяет, что у всех записей есть имя
func ParseSeed(r io.Reader) (*SeedFile, error) {
	var seed SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	for i, c := range seed.Cities {
		if c.Name == "" {
			return nil, fmt.Errorf("parse seed file: city #%d has no name", i+1)
		}
		for j, a := range c.Areas {
			if a.Name == "" {
				return nil, fmt.Errorf("parse seed file: area #%d of %s has no name", j+1, c.Name)
			}
		}
	}
	return &seed, nil
}

// SeedUseCase загружает справочники, пропуская уже существующие имена
type SeedUseCase struct {
	cache  ReferenceCache
	logger *zap.Logger
}

func NewSeedUseCase(cache ReferenceCache, logger *zap.Logger) *SeedUseCase {
	return &SeedUseCase{cache: cache, logger: logger}
}

func (uc *SeedUseCase) Seed(ctx context.Context, seed *SeedFile) (*dto.SeedResult, error) {
	result := &dto.SeedResult{}

	for _, sc := range seed.Cities {
		city := uc.cache.GetCityByName(ctx, sc.Name)
		if city == nil {
			created, err := uc.cache.AddCity(ctx, sc.Name, sc.NameEn)
			if err != nil {
				return result, fmt.Errorf("seed city %s: %w", sc.Name, err)
			}
			city = created
			result.CitiesCreated++
		} else {
			result.Skipped++
		}

		for _, sa := range sc.Areas {
			if uc.cache.GetAreaByName(ctx, sa.Name, sc.Name) != nil {
				result.Skipped++
				continue
			}
			if _, err := uc.cache.AddArea(ctx, city.ID, sa.Name, sa.NameEn); err != nil {
				if stderrors.Is(err, errors.ErrNameConflict) {
					result.Skipped++
					continue
				}
				return result, fmt.Errorf("seed area %s/%s: %w", sc.Name, sa.Name, err)
			}
			result.AreasCreated++
		}
	}

	uc.logger.Info("Reference data seeded",
		zap.Int("cities_created", result.CitiesCreated),
		zap.Int("areas_created", result.AreasCreated),
		zap.Int("skipped", result.Skipped))

	return result, nil
}
