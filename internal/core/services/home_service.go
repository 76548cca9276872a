package services

import (
	"context"
	"errors"

	"github.com/comitanigiacomo/kanso-home/internal/core/domain"
)

type HomeService struct {
	repo domain.HomeRepository
}

func NewHomeService(repo domain.HomeRepository) *HomeService {
	return &HomeService{
		repo: repo,
	}
}

type HomeView struct {
	Home    *domain.Home     `json:"home"`
	Members []*domain.Member `json:"members"`
}

// HomeIDForUser resolves the home a request acts on from the caller identity.
func (s *HomeService) HomeIDForUser(ctx context.Context, userID string) (string, error) {
	return s.repo.GetHomeIDForUser(ctx, userID)
}

func (s *HomeService) ensureHomeless(ctx context.Context, userID string) error {
	_, err := s.repo.GetHomeIDForUser(ctx, userID)
	switch {
	case err == nil:
		return domain.ErrAlreadyInHome
	case errors.Is(err, domain.ErrNotInHome):
		return nil
	default:
		return err
	}
}

func (s *HomeService) Create(ctx context.Context, userID, name string) (*domain.Home, error) {
	home, err := domain.NewHome(name)
	if err != nil {
		return nil, err
	}

	if err := s.ensureHomeless(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, home, userID); err != nil {
		return nil, err
	}

	return home, nil
}

func (s *HomeService) Join(ctx context.Context, userID, inviteCode string) (*domain.Home, error) {
	code := domain.NormalizeInviteCode(inviteCode)
	if code == "" {
		return nil, domain.ErrHomeNotFound
	}

	if err := s.ensureHomeless(ctx, userID); err != nil {
		return nil, err
	}

	home, err := s.repo.GetByInviteCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := s.repo.AddMember(ctx, home.ID, userID); err != nil {
		return nil, err
	}

	return home, nil
}

// Leave drops the membership. Receipts of the leaving user are kept and show
// up as unknown in per-user statistics from then on.
func (s *HomeService) Leave(ctx context.Context, userID string) error {
	homeID, err := s.repo.GetHomeIDForUser(ctx, userID)
	if err != nil {
		return err
	}

	return s.repo.RemoveMember(ctx, homeID, userID)
}

func (s *HomeService) Current(ctx context.Context, userID string) (*HomeView, error) {
	homeID, err := s.repo.GetHomeIDForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	home, err := s.repo.GetByID(ctx, homeID)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.ListMembers(ctx, homeID)
	if err != nil {
		return nil, err
	}

	return &HomeView{Home: home, Members: members}, nil
}
