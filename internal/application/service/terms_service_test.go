package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	"github.com/autocarcare/garage-api/pkg/apperror"
	"github.com/autocarcare/garage-api/pkg/cache"
)

func newTermsServiceForTest() (*TermsService, *fakeTermsRepo) {
	repo := newFakeTermsRepo()
	svc := NewTermsService(repo, cache.NewTTL[[]entity.TermsAndConditions](time.Minute))
	return svc, repo
}

func TestActiveTermsServedFromCache(t *testing.T) {
	svc, repo := newTermsServiceForTest()
	userID := uuid.New()

	_, err := svc.CreateTerm(context.Background(), &CreateTermInput{
		UserID:   userID,
		Content:  "Goods once sold will not be taken back.",
		IsActive: true,
	})
	require.NoError(t, err)

	first, err := svc.ActiveTerms(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.ActiveTerms(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, second, 1)

	// The second read must come from cache.
	assert.Equal(t, 1, repo.listActiveCalls)
}

func TestActiveTermsCachePerUser(t *testing.T) {
	svc, repo := newTermsServiceForTest()
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.CreateTerm(context.Background(), &CreateTermInput{
		UserID: alice, Content: "Warranty 30 days on labour.", IsActive: true,
	})
	require.NoError(t, err)

	aliceTerms, err := svc.ActiveTerms(context.Background(), alice)
	require.NoError(t, err)
	assert.Len(t, aliceTerms, 1)

	bobTerms, err := svc.ActiveTerms(context.Background(), bob)
	require.NoError(t, err)
	assert.Empty(t, bobTerms)
	assert.Equal(t, 2, repo.listActiveCalls)
}

func TestTermWritesInvalidateCache(t *testing.T) {
	svc, repo := newTermsServiceForTest()
	userID := uuid.New()

	term, err := svc.CreateTerm(context.Background(), &CreateTermInput{
		UserID: userID, Content: "Payment due on delivery.", IsActive: true,
	})
	require.NoError(t, err)

	_, err = svc.ActiveTerms(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, 1, repo.listActiveCalls)

	inactive := false
	_, err = svc.UpdateTerm(context.Background(), &UpdateTermInput{
		ID:       term.ID,
		UserID:   userID,
		IsActive: &inactive,
	})
	require.NoError(t, err)

	terms, err := svc.ActiveTerms(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, terms)
	assert.Equal(t, 2, repo.listActiveCalls)
}

func TestUpdateTermForbiddenForOtherUser(t *testing.T) {
	svc, _ := newTermsServiceForTest()
	owner := uuid.New()

	term, err := svc.CreateTerm(context.Background(), &CreateTermInput{
		UserID: owner, Content: "Subject to Pune jurisdiction.", IsActive: true,
	})
	require.NoError(t, err)

	content := "Changed"
	_, err = svc.UpdateTerm(context.Background(), &UpdateTermInput{
		ID:      term.ID,
		UserID:  uuid.New(),
		Content: &content,
	})
	assert.Equal(t, apperror.ErrForbidden, err)
}

func TestDeleteTermNotFound(t *testing.T) {
	svc, _ := newTermsServiceForTest()

	err := svc.DeleteTerm(context.Background(), uuid.New(), uuid.New(), false)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}
