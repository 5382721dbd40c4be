package usecase

import (
	"context"

	"github.com/horus-listing/internal/domain"
	"github.com/horus-listing/internal/domain/repository"
	"github.com/horus-listing/internal/usecase/dto"
	"go.uber.org/zap"
)

// BackfillUseCase выдаёт коды объявлениям, созданным до их появления
type BackfillUseCase struct {
	propertyRepo repository.PropertyRepository
	logger       *zap.Logger
}

func NewBackfillUseCase(propertyRepo repository.PropertyRepository, logger *zap.Logger) *BackfillUseCase {
	return &BackfillUseCase{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// BackfillCodes обходит объявления от старых к новым. i-е объявление без
// кода получает Horus + i (номер по позиции, а не по счётчику выданных),
// объявления с кодом не трогаются. Ошибка записи логируется, обход
// продолжается.
func (uc *BackfillUseCase) BackfillCodes(ctx context.Context, dryRun bool) (*dto.BackfillResult, error) {
	uc.logger.Info("Fetching properties without codes...")

	refs, err := uc.propertyRepo.ListCodeRefs(ctx)
	if err != nil {
		uc.logger.Error("Error fetching properties", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Found properties", zap.Int("count", len(refs)))

	result := &dto.BackfillResult{
		Total:       len(refs),
		DryRun:      dryRun,
		Assignments: []dto.CodeAssignment{},
	}

	for i, ref := range refs {
		if !domain.IsBlankCode(ref.PropertyCode) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		code := domain.FormatPropertyCode(i + 1)
		if dryRun {
			uc.logger.Info("Would update property", zap.String("id", ref.ID), zap.String("code", code))
			result.Assignments = append(result.Assignments, dto.CodeAssignment{ID: ref.ID, Code: code})
			continue
		}

		uc.logger.Info("Updating property", zap.String("id", ref.ID), zap.String("code", code))
		if err := uc.propertyRepo.SetCode(ctx, ref.ID, code); err != nil {
			uc.logger.Error("Failed to update property", zap.String("id", ref.ID), zap.Error(err))
			result.Failed++
			continue
		}

		result.Updated++
		result.Assignments = append(result.Assignments, dto.CodeAssignment{ID: ref.ID, Code: code})
	}

	uc.logger.Info("Update complete",
		zap.Int("updated", result.Updated),
		zap.Int("failed", result.Failed),
		zap.Bool("dry_run", dryRun))

	return result, nil
}
