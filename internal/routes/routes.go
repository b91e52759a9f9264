package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/docterbee/membership-system/internal/audit"
	"github.com/docterbee/membership-system/internal/config"
	"github.com/docterbee/membership-system/internal/handlers"
	infraRepo "github.com/docterbee/membership-system/internal/infra/repository"
	"github.com/docterbee/membership-system/internal/middleware"
	"github.com/docterbee/membership-system/internal/session"
	ucadmin "github.com/docterbee/membership-system/internal/usecase/admin"
	ucmember "github.com/docterbee/membership-system/internal/usecase/member"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	memberRepo := infraRepo.NewMemberGormRepository(db)
	adminRepo := infraRepo.NewAdminGormRepository(db)
	activityRepo := infraRepo.NewActivityGormRepository(db)

	auditLogger := audit.New(activityRepo)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	sessions := session.NewStore(rdb)
	authenticator := middleware.NewAuthenticator(cfg, sessions)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucmember.NewRegister(memberRepo)
	bulkRegisterUC := ucmember.NewBulkRegister(registerUC)
	updateProfileUC := ucmember.NewUpdateProfile(memberRepo, auditDispatcher)
	adjustTransactionUC := ucmember.NewAdjustTransaction(memberRepo, auditDispatcher)
	deleteMemberUC := ucmember.NewDeleteMember(memberRepo, auditDispatcher)

	authenticateUC := ucadmin.NewAuthenticate(adminRepo)
	createAdminUC := ucadmin.NewCreateAdmin(adminRepo, auditDispatcher)
	deleteAdminUC := ucadmin.NewDeleteAdmin(adminRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	memberHandler := handlers.NewMemberHandler(registerUC, bulkRegisterUC, memberRepo)

	adminHandler := handlers.NewAdminHandler(handlers.AdminHandlerDeps{
		Cfg:      cfg,
		Auth:     authenticator,
		Sessions: sessions,

		Authenticate: authenticateUC,
		CreateAdmin:  createAdminUC,
		DeleteAdmin:  deleteAdminUC,

		UpdateProfile:     updateProfileUC,
		AdjustTransaction: adjustTransactionUC,
		DeleteMember:      deleteMemberUC,

		Members:    memberRepo,
		Admins:     adminRepo,
		Activities: activityRepo,

		AuditLog:      auditLogger,
		AuditDispatch: auditDispatcher,

		DB: db,
	})

	sessionHandler := handlers.NewSessionHandler()

	// ======================================================
	// API (JSON, action dispatch)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/member", memberHandler.Dispatch)
		api.POST("/admin", adminHandler.Dispatch)

		secured := api.Group("/")
		secured.Use(authenticator.Middleware())
		{
			secured.GET("/admin/session", sessionHandler.Get)
		}
	}
}
