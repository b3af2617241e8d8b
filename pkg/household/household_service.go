package household

import (
	"context"
	"errors"
	"strings"
	"time"

	"pantryplanner/domain"
	"pantryplanner/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	HouseholdService interface {
		CreateDefaultHousehold(ctx context.Context, ownerID uuid.UUID, name string) (uuid.UUID, error)
		ListMyHouseholds(ctx context.Context, userID uuid.UUID) ([]domain.HouseholdResponse, error)
		ListMembers(ctx context.Context, householdID, userID uuid.UUID) ([]domain.MemberResponse, error)
		ResolveHousehold(ctx context.Context, userID uuid.UUID, requested string) (uuid.UUID, error)
		CreateInvite(ctx context.Context, req domain.CreateInviteRequest, householdID, userID uuid.UUID) (domain.CreateInviteResponse, error)
		AcceptInvite(ctx context.Context, req domain.AcceptInviteRequest, userID uuid.UUID) (uuid.UUID, error)
		GetSettings(ctx context.Context, householdID uuid.UUID) (*entities.HouseholdSettings, error)
		UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest, householdID uuid.UUID) (*entities.HouseholdSettings, error)
	}

	householdService struct {
		householdRepository HouseholdRepository
	}
)

func NewHouseholdService(householdRepository HouseholdRepository) HouseholdService {
	return &householdService{householdRepository: householdRepository}
}

// CreateDefaultHousehold creates the household every user owns at signup,
// along with its owner membership and default settings.
func (s *householdService) CreateDefaultHousehold(ctx context.Context, ownerID uuid.UUID, name string) (uuid.UUID, error) {
	household := &entities.Household{
		ID:      uuid.New(),
		Name:    name,
		OwnerID: ownerID,
	}

	if err := s.householdRepository.CreateHousehold(ctx, household); err != nil {
		return uuid.Nil, err
	}

	member := &entities.HouseholdMember{
		ID:          uuid.New(),
		HouseholdID: household.ID,
		UserID:      ownerID,
		Role:        domain.RoleOwner,
	}
	if err := s.householdRepository.AddMember(ctx, member); err != nil {
		return uuid.Nil, err
	}

	settings := &entities.HouseholdSettings{
		ID:          uuid.New(),
		HouseholdID: household.ID,
		Locations:   entities.DefaultLocations,
		Categories:  entities.DefaultCategories,
	}
	if err := s.householdRepository.SaveSettings(ctx, settings); err != nil {
		return uuid.Nil, err
	}

	return household.ID, nil
}

func (s *householdService) ListMyHouseholds(ctx context.Context, userID uuid.UUID) ([]domain.HouseholdResponse, error) {
	memberships, err := s.householdRepository.GetMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	households := make([]domain.HouseholdResponse, 0, len(memberships))
	for _, m := range memberships {
		if m.Household == nil {
			continue
		}
		households = append(households, domain.HouseholdResponse{
			ID:        m.HouseholdID.String(),
			Name:      m.Household.Name,
			Role:      m.Role,
			CreatedAt: m.Household.CreatedAt,
		})
	}

	return households, nil
}

func (s *householdService) ListMembers(ctx context.Context, householdID, userID uuid.UUID) ([]domain.MemberResponse, error) {
	if _, err := s.householdRepository.GetMembership(ctx, householdID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotAMember
		}
		return nil, err
	}

	members, err := s.householdRepository.GetMembersByHousehold(ctx, householdID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MemberResponse, 0, len(members))
	for _, m := range members {
		member := domain.MemberResponse{
			UserID: m.UserID.String(),
			Role:   m.Role,
		}
		if m.User != nil {
			member.Name = m.User.Name
			member.Email = m.User.Email
		}
		result = append(result, member)
	}

	return result, nil
}

// ResolveHousehold picks the active household for a request: the requested one
// when the user is a member of it, otherwise the user's first household.
func (s *householdService) ResolveHousehold(ctx context.Context, userID uuid.UUID, requested string) (uuid.UUID, error) {
	if requested != "" {
		householdID, err := uuid.Parse(requested)
		if err != nil {
			return uuid.Nil, domain.ErrParseUUID
		}

		if _, err := s.householdRepository.GetMembership(ctx, householdID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, domain.ErrNotAMember
			}
			return uuid.Nil, err
		}
		return householdID, nil
	}

	memberships, err := s.householdRepository.GetMembershipsByUser(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}
	if len(memberships) == 0 {
		return uuid.Nil, domain.ErrHouseholdNotFound
	}

	return memberships[0].HouseholdID, nil
}

func (s *householdService) CreateInvite(ctx context.Context, req domain.CreateInviteRequest, householdID, userID uuid.UUID) (domain.CreateInviteResponse, error) {
	if _, err := s.householdRepository.GetMembership(ctx, householdID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CreateInviteResponse{}, domain.ErrNotAMember
		}
		return domain.CreateInviteResponse{}, err
	}

	expiresHours := req.ExpiresHours
	if expiresHours == 0 {
		expiresHours = 48
	}

	invite := &entities.HouseholdInvite{
		ID:          uuid.New(),
		HouseholdID: householdID,
		Code:        newInviteCode(),
		CreatedBy:   userID,
		ExpiresAt:   time.Now().Add(time.Duration(expiresHours) * time.Hour),
	}

	if err := s.householdRepository.CreateInvite(ctx, invite); err != nil {
		return domain.CreateInviteResponse{}, err
	}

	return domain.CreateInviteResponse{
		Code:      invite.Code,
		ExpiresAt: invite.ExpiresAt,
	}, nil
}

func (s *householdService) AcceptInvite(ctx context.Context, req domain.AcceptInviteRequest, userID uuid.UUID) (uuid.UUID, error) {
	invite, err := s.householdRepository.GetInviteByCode(ctx, strings.TrimSpace(req.Code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, domain.ErrInviteNotFound
		}
		return uuid.Nil, err
	}

	if time.Now().After(invite.ExpiresAt) {
		return uuid.Nil, domain.ErrInviteExpired
	}

	if _, err := s.householdRepository.GetMembership(ctx, invite.HouseholdID, userID); err == nil {
		return uuid.Nil, domain.ErrAlreadyMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}

	member := &entities.HouseholdMember{
		ID:          uuid.New(),
		HouseholdID: invite.HouseholdID,
		UserID:      userID,
		Role:        "member",
	}
	if err := s.householdRepository.AddMember(ctx, member); err != nil {
		return uuid.Nil, err
	}

	return invite.HouseholdID, nil
}

func (s *householdService) GetSettings(ctx context.Context, householdID uuid.UUID) (*entities.HouseholdSettings, error) {
	settings, err := s.householdRepository.GetSettings(ctx, householdID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Households created before settings existed fall back to defaults.
			return &entities.HouseholdSettings{
				HouseholdID: householdID,
				Locations:   entities.DefaultLocations,
				Categories:  entities.DefaultCategories,
			}, nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *householdService) UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest, householdID uuid.UUID) (*entities.HouseholdSettings, error) {
	settings, err := s.householdRepository.GetSettings(ctx, householdID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		settings = &entities.HouseholdSettings{
			ID:          uuid.New(),
			HouseholdID: householdID,
			Locations:   entities.DefaultLocations,
			Categories:  entities.DefaultCategories,
		}
	}

	if req.Locations != nil {
		settings.Locations = req.Locations
	}
	if req.Categories != nil {
		settings.Categories = req.Categories
	}

	if err := s.householdRepository.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func newInviteCode() string {
	// UUID without dashes is long enough to be unguessable and short enough
	// to share.
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
