package auth

import (
	"net/http"

	apperrors "fleet-supply-backend/internal/errors"
	"fleet-supply-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccessGuard turns membership resolution into route middleware. Every
// request resolves the caller's standing afresh, so an ownership transfer,
// role change or revocation applies on the very next call.
type AccessGuard struct {
	resolver service.MembershipResolverInterface
}

// NewAccessGuard creates a new access guard
func NewAccessGuard(resolver service.MembershipResolverInterface) *AccessGuard {
	return &AccessGuard{resolver: resolver}
}

// RequireOrgPrivilege admits the organization owner and active admin or
// manager members. The path parameter names the organization ID.
func (g *AccessGuard) RequireOrgPrivilege(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		membership, ok := g.resolve(c, param)
		if !ok {
			return
		}

		if !membership.Privileged() {
			c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrPermissionDenied.Error()})
			c.Abort()
			return
		}

		c.Set("membership", membership)
		c.Next()
	}
}

// RequireOrgMember admits the organization owner and any active member,
// regardless of role.
func (g *AccessGuard) RequireOrgMember(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		membership, ok := g.resolve(c, param)
		if !ok {
			return
		}

		if membership.Source == service.PrivilegeSourceNone {
			c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrPermissionDenied.Error()})
			c.Abort()
			return
		}

		c.Set("membership", membership)
		c.Next()
	}
}

// RequireOrgOwner admits only the organization owner
func (g *AccessGuard) RequireOrgOwner(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		membership, ok := g.resolve(c, param)
		if !ok {
			return
		}

		if !membership.IsOwner {
			c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrPermissionDenied.Error()})
			c.Abort()
			return
		}

		c.Set("membership", membership)
		c.Next()
	}
}

// RequireVesselAccess admits users with an active vessel assignment, the
// owning organization's owner, and its privileged members.
func (g *AccessGuard) RequireVesselAccess(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		vesselID, err := uuid.Parse(c.Param(param))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vessel ID"})
			c.Abort()
			return
		}

		access, err := g.resolver.ResolveVessel(userID, vesselID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve vessel access"})
			}
			c.Abort()
			return
		}

		if !access.Active {
			c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrVesselAccessDenied.Error()})
			c.Abort()
			return
		}

		c.Set("vessel_access", access)
		c.Next()
	}
}

// resolve parses the organization path parameter and resolves the caller's
// membership, writing the error response itself on failure
func (g *AccessGuard) resolve(c *gin.Context, param string) (*service.Membership, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		c.Abort()
		return nil, false
	}

	orgID, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		c.Abort()
		return nil, false
	}

	membership, err := g.resolver.Resolve(userID, orgID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve membership"})
		}
		c.Abort()
		return nil, false
	}

	return membership, true
}

// GetMembership extracts the resolved membership set by the guard
func GetMembership(c *gin.Context) (*service.Membership, bool) {
	value, exists := c.Get("membership")
	if !exists {
		return nil, false
	}

	membership, ok := value.(*service.Membership)
	return membership, ok
}

// GetVesselAccess extracts the resolved vessel access set by the guard
func GetVesselAccess(c *gin.Context) (*service.VesselAccess, bool) {
	value, exists := c.Get("vessel_access")
	if !exists {
		return nil, false
	}

	access, ok := value.(*service.VesselAccess)
	return access, ok
}
