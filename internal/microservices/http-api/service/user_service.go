package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cineverse/internal/microservices/http-api/models"
	"cineverse/internal/microservices/http-api/repository"
)

// WatchlistInput is the payload for adding a movie to a watchlist.
type WatchlistInput struct {
	TMDBID int64
	Title  string
	Poster string
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID, name, email string) (*models.User, error)
	GetWatchlist(ctx context.Context, userID string) ([]models.WatchlistEntry, error)
	AddToWatchlist(ctx context.Context, userID string, input WatchlistInput) (*models.WatchlistEntry, error)
	RemoveFromWatchlist(ctx context.Context, userID string, entryID int64) error
}

type userService struct {
	userRepo      repository.UserRepository
	watchlistRepo repository.WatchlistRepository
}

func NewUserService(userRepo repository.UserRepository, watchlistRepo repository.WatchlistRepository) UserService {
	return &userService{
		userRepo:      userRepo,
		watchlistRepo: watchlistRepo,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return user, nil
}

// UpdateProfile changes name and email after checking the email is not
// registered to a different account.
func (s *userService) UpdateProfile(ctx context.Context, userID, name, email string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" {
		return nil, ErrProfileFieldsRequired
	}

	taken, err := s.userRepo.EmailTakenByOther(ctx, email, userID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailInUse
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, name, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrEmailInUse
		case repository.IsNotFound(err):
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

func (s *userService) GetWatchlist(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	return s.watchlistRepo.List(ctx, userID)
}

// AddToWatchlist is idempotent: adding a movie already on the list returns
// the existing entry.
func (s *userService) AddToWatchlist(ctx context.Context, userID string, input WatchlistInput) (*models.WatchlistEntry, error) {
	if input.TMDBID <= 0 {
		return nil, ErrMovieIDRequired
	}

	return s.watchlistRepo.Upsert(ctx, &models.WatchlistEntry{
		UserID: userID,
		TMDBID: input.TMDBID,
		Title:  strings.TrimSpace(input.Title),
		Poster: input.Poster,
	})
}

func (s *userService) RemoveFromWatchlist(ctx context.Context, userID string, entryID int64) error {
	entry, err := s.watchlistRepo.FindByID(ctx, entryID)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrWatchlistEntryNotFound
		}
		return fmt.Errorf("find watchlist entry: %w", err)
	}

	if err := authorizeOwner(entry.UserID, userID); err != nil {
		return err
	}

	if err := s.watchlistRepo.Delete(ctx, entryID); err != nil {
		if repository.IsNotFound(err) {
			return ErrWatchlistEntryNotFound
		}
		return err
	}
	return nil
}
