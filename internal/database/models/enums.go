package models

// UserType distinguishes organization-founding users from regular invited users
type UserType string

const (
	UserTypeOrganizationOwner UserType = "organization_owner"
	UserTypeRegular           UserType = "regular"
)

// OrgRole represents the role of a member within an organization
type OrgRole string

const (
	OrgRoleAdmin   OrgRole = "admin"
	OrgRoleManager OrgRole = "manager"
	OrgRoleMember  OrgRole = "member"
)

// MemberStatus represents the lifecycle state of an organization membership
type MemberStatus string

const (
	MemberStatusActive    MemberStatus = "active"
	MemberStatusPending   MemberStatus = "pending"
	MemberStatusSuspended MemberStatus = "suspended"
)

// VesselRole represents a vessel-scoped role, independent from OrgRole
type VesselRole string

const (
	VesselRoleManager       VesselRole = "vessel_manager"
	VesselRoleChiefEngineer VesselRole = "chief_engineer"
	VesselRoleSupplier      VesselRole = "supplier"
	VesselRoleCrew          VesselRole = "crew"
)

// AccessStatus represents the state of a user's access to a vessel
type AccessStatus string

const (
	AccessStatusActive  AccessStatus = "active"
	AccessStatusRevoked AccessStatus = "revoked"
)

// InvitationStatus represents the consumption state of an invitation code
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusConsumed InvitationStatus = "consumed"
	InvitationStatusExpired  InvitationStatus = "expired"
	InvitationStatusRevoked  InvitationStatus = "revoked"
)

// SubscriptionStatus represents the billing state of a subscription
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusExpired  SubscriptionStatus = "expired"
)

// SupplyCategory classifies a supply request
type SupplyCategory string

const (
	SupplyCategoryProvisions SupplyCategory = "provisions"
	SupplyCategorySpareParts SupplyCategory = "spare_parts"
	SupplyCategoryFuel       SupplyCategory = "fuel"
	SupplyCategoryMedical    SupplyCategory = "medical"
	SupplyCategoryOther      SupplyCategory = "other"
)

// SupplyStatus represents the lifecycle state of a supply request
type SupplyStatus string

const (
	SupplyStatusDraft     SupplyStatus = "draft"
	SupplyStatusSubmitted SupplyStatus = "submitted"
	SupplyStatusApproved  SupplyStatus = "approved"
	SupplyStatusOrdered   SupplyStatus = "ordered"
	SupplyStatusDelivered SupplyStatus = "delivered"
	SupplyStatusCancelled SupplyStatus = "cancelled"
)

// WaybillStatus represents the shipping state of a waybill
type WaybillStatus string

const (
	WaybillStatusIssued    WaybillStatus = "issued"
	WaybillStatusInTransit WaybillStatus = "in_transit"
	WaybillStatusDelivered WaybillStatus = "delivered"
)

// IsValid checks if the UserType is valid
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeOrganizationOwner, UserTypeRegular:
		return true
	}
	return false
}

// IsValid checks if the OrgRole is valid
func (r OrgRole) IsValid() bool {
	switch r {
	case OrgRoleAdmin, OrgRoleManager, OrgRoleMember:
		return true
	}
	return false
}

// IsValid checks if the MemberStatus is valid
func (s MemberStatus) IsValid() bool {
	switch s {
	case MemberStatusActive, MemberStatusPending, MemberStatusSuspended:
		return true
	}
	return false
}

// IsValid checks if the VesselRole is valid
func (r VesselRole) IsValid() bool {
	switch r {
	case VesselRoleManager, VesselRoleChiefEngineer, VesselRoleSupplier, VesselRoleCrew:
		return true
	}
	return false
}

// IsValid checks if the AccessStatus is valid
func (s AccessStatus) IsValid() bool {
	switch s {
	case AccessStatusActive, AccessStatusRevoked:
		return true
	}
	return false
}

// IsValid checks if the InvitationStatus is valid
func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationStatusPending, InvitationStatusConsumed, InvitationStatusExpired, InvitationStatusRevoked:
		return true
	}
	return false
}

// IsValid checks if the SubscriptionStatus is valid
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusCanceled, SubscriptionStatusExpired:
		return true
	}
	return false
}

// IsValid checks if the SupplyCategory is valid
func (c SupplyCategory) IsValid() bool {
	switch c {
	case SupplyCategoryProvisions, SupplyCategorySpareParts, SupplyCategoryFuel, SupplyCategoryMedical, SupplyCategoryOther:
		return true
	}
	return false
}

// IsValid checks if the SupplyStatus is valid
func (s SupplyStatus) IsValid() bool {
	switch s {
	case SupplyStatusDraft, SupplyStatusSubmitted, SupplyStatusApproved, SupplyStatusOrdered, SupplyStatusDelivered, SupplyStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the WaybillStatus is valid
func (s WaybillStatus) IsValid() bool {
	switch s {
	case WaybillStatusIssued, WaybillStatusInTransit, WaybillStatusDelivered:
		return true
	}
	return false
}
