package service

import (
	"context"
	"testing"

	"cineverse/internal/microservices/http-api/models"
	"cineverse/internal/microservices/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateCollection(t *testing.T) {
	repo := new(MockCollectionRepository)
	svc := NewCollectionService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*models.Collection")).Return(nil)

	c, err := svc.Create(ctx, "u1", CollectionInput{Title: "  Noir  ", IsPublic: true})

	require.NoError(t, err)
	assert.Equal(t, "Noir", c.Title)
	assert.Equal(t, "u1", c.UserID)
	assert.True(t, c.IsPublic)

	_, err = svc.Create(ctx, "u1", CollectionInput{Title: "   "})
	assert.Equal(t, ErrTitleRequired, err)
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestListMine_AttachesPreviews(t *testing.T) {
	repo := new(MockCollectionRepository)
	svc := NewCollectionService(repo)
	ctx := context.Background()

	repo.On("ListByUser", ctx, "u1").Return([]models.Collection{
		{ID: 2, UserID: "u1", Title: "Recent"},
		{ID: 1, UserID: "u1", Title: "Empty"},
	}, nil)
	repo.On("Previews", ctx, []int64{2, 1}, 4).Return(map[int64]repository.CollectionPreview{
		2: {Posters: []string{"/a.jpg", "/b.jpg"}, ItemCount: 6},
	}, nil)

	summaries, err := svc.ListMine(ctx, "u1")

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Recent", summaries[0].Title)
	assert.Equal(t, []string{"/a.jpg", "/b.jpg"}, summaries[0].PreviewPosters)
	assert.Equal(t, int64(6), summaries[0].ItemCount)
	assert.Equal(t, []string{}, summaries[1].PreviewPosters)
	assert.Zero(t, summaries[1].ItemCount)
}

func TestGetCollection_Visibility(t *testing.T) {
	ctx := context.Background()
	private := &models.Collection{ID: 1, UserID: "owner", IsPublic: false}
	public := &models.Collection{ID: 2, UserID: "owner", IsPublic: true}

	repo := new(MockCollectionRepository)
	repo.On("FindByID", ctx, int64(1), true).Return(private, nil)
	repo.On("FindByID", ctx, int64(2), true).Return(public, nil)
	repo.On("FindByID", ctx, int64(3), true).Return(nil, gorm.ErrRecordNotFound)
	svc := NewCollectionService(repo)

	tests := []struct {
		name      string
		requester string
		id        int64
		wantErr   error
	}{
		{"owner reads private", "owner", 1, nil},
		{"stranger reads private", "stranger", 1, ErrForbidden},
		{"anonymous reads private", "", 1, ErrForbidden},
		{"stranger reads public", "stranger", 2, nil},
		{"anonymous reads public", "", 2, nil},
		{"missing", "owner", 3, ErrCollectionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := svc.Get(ctx, tt.requester, tt.id)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, c.ID)
		})
	}
}

func TestUpdateCollection_Partial(t *testing.T) {
	repo := new(MockCollectionRepository)
	svc := NewCollectionService(repo)
	ctx := context.Background()

	repo.On("FindByID", ctx, int64(1), false).Return(&models.Collection{
		ID: 1, UserID: "u1", Title: "Old", Description: "keep", IsPublic: false,
	}, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*models.Collection")).Return(nil)

	c, err := svc.Update(ctx, "u1", 1, CollectionPatch{Title: strPtr(""), IsPublic: boolPtr(true)})

	require.NoError(t, err)
	assert.Equal(t, "Old", c.Title)
	assert.Equal(t, "keep", c.Description)
	assert.True(t, c.IsPublic)
}

func TestUpdateCollection_NotOwner(t *testing.T) {
	repo := new(MockCollectionRepository)
	svc := NewCollectionService(repo)
	ctx := context.Background()

	repo.On("FindByID", ctx, int64(1), false).Return(&models.Collection{ID: 1, UserID: "u1", IsPublic: true}, nil)

	_, err := svc.Update(ctx, "u2", 1, CollectionPatch{Title: strPtr("Mine now")})

	assert.Equal(t, ErrForbidden, err)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteCollection(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCollectionRepository)
	repo.On("FindByID", ctx, int64(1), false).Return(&models.Collection{ID: 1, UserID: "u1"}, nil)
	repo.On("FindByID", ctx, int64(2), false).Return(nil, gorm.ErrRecordNotFound)
	repo.On("Delete", ctx, int64(1)).Return(nil)
	svc := NewCollectionService(repo)

	assert.Equal(t, ErrForbidden, svc.Delete(ctx, "u2", 1))
	assert.Equal(t, ErrCollectionNotFound, svc.Delete(ctx, "u1", 2))
	assert.NoError(t, svc.Delete(ctx, "u1", 1))
	repo.AssertNumberOfCalls(t, "Delete", 1)
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()
	owned := &models.Collection{ID: 1, UserID: "u1"}
	input := CollectionItemInput{TMDBID: 550, Title: "Fight Club", PosterPath: "/p.jpg", ReleaseDate: "1999-10-15"}

	t.Run("first add succeeds", func(t *testing.T) {
		repo := new(MockCollectionRepository)
		repo.On("FindByID", ctx, int64(1), false).Return(owned, nil)
		repo.On("ItemExists", ctx, int64(1), int64(550)).Return(false, nil)
		repo.On("AddItem", ctx, mock.AnythingOfType("*models.CollectionItem")).Return(nil)

		item, err := NewCollectionService(repo).AddItem(ctx, "u1", 1, input)

		require.NoError(t, err)
		assert.Equal(t, int64(1), item.CollectionID)
		assert.Equal(t, "1999-10-15", item.ReleaseDate)
	})

	t.Run("second add conflicts", func(t *testing.T) {
		repo := new(MockCollectionRepository)
		repo.On("FindByID", ctx, int64(1), false).Return(owned, nil)
		repo.On("ItemExists", ctx, int64(1), int64(550)).Return(true, nil)

		_, err := NewCollectionService(repo).AddItem(ctx, "u1", 1, input)

		assert.Equal(t, ErrItemAlreadyExists, err)
		assert.Equal(t, KindConflict, KindOf(err))
	})

	t.Run("concurrent writer hits unique index", func(t *testing.T) {
		repo := new(MockCollectionRepository)
		repo.On("FindByID", ctx, int64(1), false).Return(owned, nil)
		repo.On("ItemExists", ctx, int64(1), int64(550)).Return(false, nil)
		repo.On("AddItem", ctx, mock.AnythingOfType("*models.CollectionItem")).Return(repository.ErrDuplicate)

		_, err := NewCollectionService(repo).AddItem(ctx, "u1", 1, input)
		assert.Equal(t, ErrItemAlreadyExists, err)
	})

	t.Run("not owner", func(t *testing.T) {
		repo := new(MockCollectionRepository)
		repo.On("FindByID", ctx, int64(1), false).Return(owned, nil)

		_, err := NewCollectionService(repo).AddItem(ctx, "u2", 1, input)
		assert.Equal(t, ErrForbidden, err)
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCollectionRepository)
	repo.On("FindByID", ctx, int64(1), false).Return(&models.Collection{ID: 1, UserID: "u1"}, nil)
	repo.On("RemoveItem", ctx, int64(1), int64(550)).Return(nil)
	repo.On("RemoveItem", ctx, int64(1), int64(999)).Return(gorm.ErrRecordNotFound)
	svc := NewCollectionService(repo)

	assert.NoError(t, svc.RemoveItem(ctx, "u1", 1, 550))
	assert.Equal(t, ErrItemNotInCollection, svc.RemoveItem(ctx, "u1", 1, 999))
	assert.Equal(t, ErrForbidden, svc.RemoveItem(ctx, "u2", 1, 550))
}
