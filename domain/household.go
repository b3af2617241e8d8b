package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetHouseholds   = "households retrieved successfully"
	MessageSuccessGetMembers      = "members retrieved successfully"
	MessageSuccessCreateInvite    = "invite created successfully"
	MessageSuccessAcceptInvite    = "invite accepted successfully"
	MessageSuccessGetSettings     = "settings retrieved successfully"
	MessageSuccessUpdateSettings  = "settings updated successfully"

	MessageFailedGetHouseholds  = "failed to retrieve households"
	MessageFailedGetMembers     = "failed to retrieve members"
	MessageFailedCreateInvite   = "failed to create invite"
	MessageFailedAcceptInvite   = "failed to accept invite"
	MessageFailedGetSettings    = "failed to retrieve settings"
	MessageFailedUpdateSettings = "failed to update settings"

	ErrHouseholdNotFound = errors.New("household not found")
	ErrNotAMember        = errors.New("user is not a member of this household")
	ErrInviteNotFound    = errors.New("invite code not found")
	ErrInviteExpired     = errors.New("invite code expired")
	ErrAlreadyMember     = errors.New("user is already a member")
)

type (
	HouseholdResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Role      string    `json:"role"`
		CreatedAt time.Time `json:"created_at"`
	}

	MemberResponse struct {
		UserID string `json:"user_id"`
		Name   string `json:"name"`
		Email  string `json:"email"`
		Role   string `json:"role"`
	}

	CreateInviteRequest struct {
		ExpiresHours int `json:"expires_hours" validate:"omitempty,gt=0,lte=720"`
	}

	CreateInviteResponse struct {
		Code      string    `json:"code"`
		ExpiresAt time.Time `json:"expires_at"`
	}

	AcceptInviteRequest struct {
		Code string `json:"code" validate:"required"`
	}

	UpdateSettingsRequest struct {
		Locations  []string `json:"locations" validate:"omitempty,min=1,dive,min=1"`
		Categories []string `json:"categories" validate:"omitempty,min=1,dive,min=1"`
	}
)
