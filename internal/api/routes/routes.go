package routes

import (
	"time"

	"fleet-supply-backend/internal/api/handlers"
	"fleet-supply-backend/internal/api/middleware"
	"fleet-supply-backend/internal/auth"
	"fleet-supply-backend/internal/config"
	"fleet-supply-backend/internal/repository"
	"fleet-supply-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	memberRepo := repository.NewOrganizationMemberRepository(db)
	vesselRepo := repository.NewVesselRepository(db)
	userVesselRepo := repository.NewUserVesselRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	supplyRequestRepo := repository.NewSupplyRequestRepository(db)
	waybillRepo := repository.NewWaybillRepository(db)
	txManager := repository.NewTxManager(db)

	// Initialize services
	membershipService := service.NewMembershipService(orgRepo, memberRepo, userVesselRepo, vesselRepo)
	userService := service.NewUserService(userRepo, validator)
	orgService := service.NewOrganizationService(orgRepo, userRepo, validator)
	memberService := service.NewMemberService(memberRepo, orgRepo, userRepo, validator)
	vesselService := service.NewVesselService(vesselRepo, userVesselRepo, orgRepo, subscriptionRepo, membershipService, txManager, validator)
	invitationService := service.NewInvitationService(invitationRepo, memberRepo, userVesselRepo, orgRepo, vesselRepo, userRepo, txManager, validator, cfg.InvitationTTL())
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, orgRepo, vesselRepo, memberRepo)
	supplyRequestService := service.NewSupplyRequestService(supplyRequestRepo, vesselRepo, validator)
	waybillService := service.NewWaybillService(waybillRepo, supplyRequestRepo, validator)

	// Initialize auth
	authService, err := auth.NewAuthService(cfg.JWTSecret, "fleet-supply-backend", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	authMiddleware := auth.NewAuthMiddleware(authService)
	guard := auth.NewAccessGuard(membershipService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	orgHandler := handlers.NewOrganizationHandler(orgService)
	memberHandler := handlers.NewMemberHandler(memberService)
	vesselHandler := handlers.NewVesselHandler(vesselService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)
	supplyRequestHandler := handlers.NewSupplyRequestHandler(supplyRequestService)
	waybillHandler := handlers.NewWaybillHandler(waybillService)

	// Health check route
	router.GET("/health", healthHandler.Health)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Registration is open; everything else requires a token.
	api := router.Group("/api")
	api.POST("/users", userHandler.CreateUser)

	authed := api.Group("")
	authed.Use(authMiddleware.RequireAuth())
	{
		// Users
		authed.GET("/users", userHandler.ListUsers)
		authed.GET("/users/me", userHandler.GetCurrentUser)
		authed.GET("/users/:id", userHandler.GetUser)
		authed.PUT("/users/:id", userHandler.UpdateUser)

		// Organizations
		authed.POST("/organizations", orgHandler.CreateOrganization)
		authed.GET("/organizations", orgHandler.ListOrganizations)
		authed.GET("/organizations/all", orgHandler.ListAllOrganizations)

		orgs := authed.Group("/organizations/:id")
		{
			orgs.GET("", guard.RequireOrgMember("id"), orgHandler.GetOrganization)
			orgs.PUT("", guard.RequireOrgPrivilege("id"), orgHandler.UpdateOrganization)
			orgs.DELETE("", guard.RequireOrgOwner("id"), orgHandler.DeleteOrganization)

			// Members
			orgs.GET("/members", guard.RequireOrgMember("id"), memberHandler.ListMembers)
			orgs.POST("/members", guard.RequireOrgOwner("id"), memberHandler.AddMember)
			orgs.PUT("/members/:user_id/role", guard.RequireOrgPrivilege("id"), memberHandler.UpdateMemberRole)
			orgs.DELETE("/members/:user_id", guard.RequireOrgPrivilege("id"), memberHandler.RemoveMember)

			// Invitations
			orgs.GET("/invitations", guard.RequireOrgPrivilege("id"), invitationHandler.ListInvitations)
			orgs.POST("/invitations", guard.RequireOrgPrivilege("id"), invitationHandler.IssueInvitation)
			orgs.DELETE("/invitations/:invitation_id", guard.RequireOrgPrivilege("id"), invitationHandler.RevokeInvitation)

			// Vessels. Creation carries no guard: the service resolves the
			// caller's privilege inside the same transaction as the capacity
			// check, under the organization row lock.
			orgs.GET("/vessels", guard.RequireOrgMember("id"), vesselHandler.ListVessels)
			orgs.POST("/vessels", vesselHandler.CreateVessel)

			// Subscription
			orgs.GET("/subscription", guard.RequireOrgPrivilege("id"), subscriptionHandler.GetSubscription)
		}

		// Invitation redemption is scoped to the caller, not an organization
		authed.POST("/invitations/redeem", invitationHandler.RedeemInvitation)

		// Vessels
		authed.GET("/vessels", vesselHandler.ListMyVessels)
		vessels := authed.Group("/vessels/:vessel_id")
		vessels.Use(guard.RequireVesselAccess("vessel_id"))
		{
			vessels.GET("", vesselHandler.GetVessel)
			vessels.PUT("", vesselHandler.UpdateVessel)
			vessels.DELETE("", vesselHandler.DeleteVessel)

			// Supply requests
			vessels.GET("/supply-requests", supplyRequestHandler.ListSupplyRequests)
			vessels.POST("/supply-requests", supplyRequestHandler.CreateSupplyRequest)
		}

		// Supply requests and waybills
		requests := authed.Group("/supply-requests/:request_id")
		{
			requests.GET("", supplyRequestHandler.GetSupplyRequest)
			requests.PUT("", supplyRequestHandler.UpdateSupplyRequest)
			requests.PATCH("/status", supplyRequestHandler.UpdateSupplyRequestStatus)
			requests.DELETE("", supplyRequestHandler.DeleteSupplyRequest)
			requests.GET("/waybills", waybillHandler.ListWaybills)
			requests.POST("/waybills", waybillHandler.CreateWaybill)
		}

		authed.GET("/waybills/:id", waybillHandler.GetWaybill)
		authed.PATCH("/waybills/:id/status", waybillHandler.UpdateWaybillStatus)
	}

	return router, nil
}
