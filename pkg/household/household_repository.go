package household

import (
	"context"

	"pantryplanner/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	HouseholdRepository interface {
		CreateHousehold(ctx context.Context, household *entities.Household) error
		GetHouseholdByID(ctx context.Context, id uuid.UUID) (*entities.Household, error)
		AddMember(ctx context.Context, member *entities.HouseholdMember) error
		GetMembership(ctx context.Context, householdID, userID uuid.UUID) (*entities.HouseholdMember, error)
		GetMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]entities.HouseholdMember, error)
		GetMembersByHousehold(ctx context.Context, householdID uuid.UUID) ([]entities.HouseholdMember, error)
		CreateInvite(ctx context.Context, invite *entities.HouseholdInvite) error
		GetInviteByCode(ctx context.Context, code string) (*entities.HouseholdInvite, error)
		GetSettings(ctx context.Context, householdID uuid.UUID) (*entities.HouseholdSettings, error)
		SaveSettings(ctx context.Context, settings *entities.HouseholdSettings) error
	}

	householdRepository struct {
		db *gorm.DB
	}
)

func NewHouseholdRepository(db *gorm.DB) HouseholdRepository {
	return &householdRepository{db: db}
}

func (r *householdRepository) CreateHousehold(ctx context.Context, household *entities.Household) error {
	return r.db.WithContext(ctx).Create(household).Error
}

func (r *householdRepository) GetHouseholdByID(ctx context.Context, id uuid.UUID) (*entities.Household, error) {
	var household entities.Household
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&household).Error; err != nil {
		return nil, err
	}
	return &household, nil
}

func (r *householdRepository) AddMember(ctx context.Context, member *entities.HouseholdMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *householdRepository) GetMembership(ctx context.Context, householdID, userID uuid.UUID) (*entities.HouseholdMember, error) {
	var member entities.HouseholdMember
	err := r.db.WithContext(ctx).
		Where("household_id = ? AND user_id = ?", householdID, userID).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *householdRepository) GetMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]entities.HouseholdMember, error) {
	var members []entities.HouseholdMember
	err := r.db.WithContext(ctx).
		Preload("Household").
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *householdRepository) GetMembersByHousehold(ctx context.Context, householdID uuid.UUID) ([]entities.HouseholdMember, error) {
	var members []entities.HouseholdMember
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("household_id = ?", householdID).
		Order("created_at asc").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *householdRepository) CreateInvite(ctx context.Context, invite *entities.HouseholdInvite) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

func (r *householdRepository) GetInviteByCode(ctx context.Context, code string) (*entities.HouseholdInvite, error) {
	var invite entities.HouseholdInvite
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&invite).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

func (r *householdRepository) GetSettings(ctx context.Context, householdID uuid.UUID) (*entities.HouseholdSettings, error) {
	var settings entities.HouseholdSettings
	if err := r.db.WithContext(ctx).Where("household_id = ?", householdID).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *householdRepository) SaveSettings(ctx context.Context, settings *entities.HouseholdSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
