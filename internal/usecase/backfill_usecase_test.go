package usecase_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/horus-listing/internal/domain"
	"github.com/horus-listing/internal/domain/repository/mocks"
	"github.com/horus-listing/internal/usecase"
	"github.com/horus-listing/internal/usecase/dto"
)

func strPtr(s string) *string { return &s }

func codeRefs() []domain.PropertyCodeRef {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.PropertyCodeRef{
		{ID: "a", PropertyCode: nil, CreatedAt: base},
		{ID: "b", PropertyCode: strPtr("Custom7"), CreatedAt: base.Add(time.Hour)},
		{ID: "c", PropertyCode: strPtr("   "), CreatedAt: base.Add(2 * time.Hour)},
		{ID: "d", PropertyCode: strPtr(""), CreatedAt: base.Add(3 * time.Hour)},
	}
}

func TestBackfillUseCase_AssignsPositionalCodes(t *testing.T) {
	repo := &mocks.PropertyRepository{}
	repo.On("ListCodeRefs", mock.Anything).Return(codeRefs(), nil)
	repo.On("SetCode", mock.Anything, "a", "Horus001").Return(nil)
	repo.On("SetCode", mock.Anything, "c", "Horus003").Return(nil)
	repo.On("SetCode", mock.Anything, "d", "Horus004").Return(nil)

	res, err := usecase.NewBackfillUseCase(repo, zap.NewNop()).BackfillCodes(context.Background(), false)

	require.NoError(t, err)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 3, res.Updated)
	assert.Zero(t, res.Failed)
	assert.Equal(t, []dto.CodeAssignment{
		{ID: "a", Code: "Horus001"},
		{ID: "c", Code: "Horus003"},
		{ID: "d", Code: "Horus004"},
	}, res.Assignments)
	repo.AssertNotCalled(t, "SetCode", mock.Anything, "b", mock.Anything)
}

func TestBackfillUseCase_FailureIsCountedAndSkipped(t *testing.T) {
	repo := &mocks.PropertyRepository{}
	repo.On("ListCodeRefs", mock.Anything).Return(codeRefs(), nil)
	repo.On("SetCode", mock.Anything, "a", "Horus001").Return(stderrors.New("conflict"))
	repo.On("SetCode", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	res, err := usecase.NewBackfillUseCase(repo, zap.NewNop()).BackfillCodes(context.Background(), false)

	require.NoError(t, err)
	assert.Equal(t, 2, res.Updated)
	assert.Equal(t, 1, res.Failed)
}

func TestBackfillUseCase_DryRunWritesNothing(t *testing.T) {
	repo := &mocks.PropertyRepository{}
	repo.On("ListCodeRefs", mock.Anything).Return(codeRefs(), nil)

	res, err := usecase.NewBackfillUseCase(repo, zap.NewNop()).BackfillCodes(context.Background(), true)

	require.NoError(t, err)
	assert.True(t, res.DryRun)
	assert.Zero(t, res.Updated)
	assert.Len(t, res.Assignments, 3)
	repo.AssertNotCalled(t, "SetCode", mock.Anything, mock.Anything, mock.Anything)
}

func TestBackfillUseCase_FetchError(t *testing.T) {
	repo := &mocks.PropertyRepository{}
	repo.On("ListCodeRefs", mock.Anything).Return(nil, stderrors.New("unreachable"))

	_, err := usecase.NewBackfillUseCase(repo, zap.NewNop()).BackfillCodes(context.Background(), false)
	assert.Error(t, err)
}

func TestBackfillUseCase_StopsOnCancelledContext(t *testing.T) {
	repo := &mocks.PropertyRepository{}
	repo.On("ListCodeRefs", mock.Anything).Return(codeRefs(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := usecase.NewBackfillUseCase(repo, zap.NewNop()).BackfillCodes(ctx, false)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Updated)
}
