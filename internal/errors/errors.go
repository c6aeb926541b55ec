package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a conflict with an existing entity
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in this organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthorizationError represents a permission-denied error
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// LimitExceededError represents a subscription cap being reached
type LimitExceededError struct {
	Resource string
	Limit    int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("%s limit of %d reached for this subscription", e.Resource, e.Limit)
}

// Is enables errors.Is() comparison for LimitExceededError
func (e *LimitExceededError) Is(target error) bool {
	t, ok := target.(*LimitExceededError)
	if !ok {
		return false
	}
	return e.Resource == t.Resource
}

// InvitationReason classifies invitation redemption failures
type InvitationReason string

const (
	InvitationReasonNotFound    InvitationReason = "not_found"
	InvitationReasonAlreadyUsed InvitationReason = "already_used"
	InvitationReasonExpired     InvitationReason = "expired"
	InvitationReasonRevoked     InvitationReason = "revoked"
)

// InvitationError represents an invitation code that cannot be redeemed
type InvitationError struct {
	Reason InvitationReason
}

func (e *InvitationError) Error() string {
	switch e.Reason {
	case InvitationReasonNotFound:
		return "invitation code not found"
	case InvitationReasonAlreadyUsed:
		return "invitation code already used"
	case InvitationReasonExpired:
		return "invitation code expired"
	case InvitationReasonRevoked:
		return "invitation code revoked"
	}
	return "invitation code is not redeemable"
}

// Is enables errors.Is() comparison for InvitationError
func (e *InvitationError) Is(target error) bool {
	t, ok := target.(*InvitationError)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

// Entity Not Found Errors
var (
	ErrUserNotFound          = &NotFoundError{Entity: "user"}
	ErrOrganizationNotFound  = &NotFoundError{Entity: "organization"}
	ErrMemberNotFound        = &NotFoundError{Entity: "organization member"}
	ErrVesselNotFound        = &NotFoundError{Entity: "vessel"}
	ErrVesselAccessNotFound  = &NotFoundError{Entity: "vessel access"}
	ErrSubscriptionNotFound  = &NotFoundError{Entity: "active subscription"}
	ErrSupplyRequestNotFound = &NotFoundError{Entity: "supply request"}
	ErrWaybillNotFound       = &NotFoundError{Entity: "waybill"}
)

// Already Exists Errors
var (
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrMemberExists       = &AlreadyExistsError{Entity: "organization member", Context: "for this user"}
	ErrVesselExists       = &AlreadyExistsError{Entity: "vessel", Context: "with this name in this organization"}
	ErrVesselAccessExists = &AlreadyExistsError{Entity: "vessel access", Context: "for this user"}
	ErrWaybillExists      = &AlreadyExistsError{Entity: "waybill", Context: "with this number"}
)

// Authorization Errors
var (
	ErrPermissionDenied    = &AuthorizationError{Message: "caller is not privileged for this organization"}
	ErrVesselAccessDenied  = &AuthorizationError{Message: "caller has no access to this vessel"}
	ErrOwnerSignupRequired = &AuthorizationError{Message: "only organization-owner accounts can create organizations"}
)

// Limit Errors
var (
	ErrVesselLimitExceeded = &LimitExceededError{Resource: "vessel"}
	ErrUserLimitExceeded   = &LimitExceededError{Resource: "user"}
)

// Invitation Errors
var (
	ErrInvitationNotFound    = &InvitationError{Reason: InvitationReasonNotFound}
	ErrInvitationAlreadyUsed = &InvitationError{Reason: InvitationReasonAlreadyUsed}
	ErrInvitationExpired     = &InvitationError{Reason: InvitationReasonExpired}
	ErrInvitationRevoked     = &InvitationError{Reason: InvitationReasonRevoked}
)

// Business Logic Errors
var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrInvitationScopeMissing  = errors.New("invitation requires an organization or vessel scope")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsLimitExceeded checks if an error is a LimitExceededError
func IsLimitExceeded(err error) bool {
	var limitErr *LimitExceededError
	return errors.As(err, &limitErr)
}

// IsInvitation checks if an error is an InvitationError
func IsInvitation(err error) bool {
	var invErr *InvitationError
	return errors.As(err, &invErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewLimitExceededError creates a new LimitExceededError with the reached cap
func NewLimitExceededError(resource string, limit int) error {
	return &LimitExceededError{Resource: resource, Limit: limit}
}
