package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/docterbee/membership-system/internal/audit"
	"github.com/docterbee/membership-system/internal/config"
	admindomain "github.com/docterbee/membership-system/internal/domain/admin"
	memberdomain "github.com/docterbee/membership-system/internal/domain/member"
	"github.com/docterbee/membership-system/internal/httperr"
	"github.com/docterbee/membership-system/internal/httpresp"
	"github.com/docterbee/membership-system/internal/logger"
	"github.com/docterbee/membership-system/internal/middleware"
	"github.com/docterbee/membership-system/internal/models"
	"github.com/docterbee/membership-system/internal/session"
	ucadmin "github.com/docterbee/membership-system/internal/usecase/admin"
	ucmember "github.com/docterbee/membership-system/internal/usecase/member"
)

// activityStore is what the activity-log actions need beyond audit.Store.
type activityStore interface {
	List(ctx context.Context, limit int) ([]models.ActivityLog, error)
	ClearAll(ctx context.Context) error
	ClearMalformed(ctx context.Context) error
}

// AdminHandler serves the admin endpoint: login plus every session-protected
// dashboard action, dispatched off the request's action tag.
type AdminHandler struct {
	cfg      *config.Config
	auth     *middleware.Authenticator
	sessions *session.Store

	authenticate *ucadmin.Authenticate
	createAdmin  *ucadmin.CreateAdmin
	deleteAdmin  *ucadmin.DeleteAdmin

	updateProfile     *ucmember.UpdateProfile
	adjustTransaction *ucmember.AdjustTransaction
	deleteMember      *ucmember.DeleteMember

	members    memberdomain.Repository
	admins     admindomain.Repository
	activities activityStore

	auditLog      *audit.Logger
	auditDispatch *audit.Dispatcher

	db *gorm.DB
}

type AdminHandlerDeps struct {
	Cfg      *config.Config
	Auth     *middleware.Authenticator
	Sessions *session.Store

	Authenticate *ucadmin.Authenticate
	CreateAdmin  *ucadmin.CreateAdmin
	DeleteAdmin  *ucadmin.DeleteAdmin

	UpdateProfile     *ucmember.UpdateProfile
	AdjustTransaction *ucmember.AdjustTransaction
	DeleteMember      *ucmember.DeleteMember

	Members    memberdomain.Repository
	Admins     admindomain.Repository
	Activities activityStore

	AuditLog      *audit.Logger
	AuditDispatch *audit.Dispatcher

	DB *gorm.DB
}

func NewAdminHandler(d AdminHandlerDeps) *AdminHandler {
	return &AdminHandler{
		cfg:               d.Cfg,
		auth:              d.Auth,
		sessions:          d.Sessions,
		authenticate:      d.Authenticate,
		createAdmin:       d.CreateAdmin,
		deleteAdmin:       d.DeleteAdmin,
		updateProfile:     d.UpdateProfile,
		adjustTransaction: d.AdjustTransaction,
		deleteMember:      d.DeleteMember,
		members:           d.Members,
		admins:            d.Admins,
		activities:        d.Activities,
		auditLog:          d.AuditLog,
		auditDispatch:     d.AuditDispatch,
		db:                d.DB,
	}
}

// --------- Requests ---------

type adminRequest struct {
	Action string `json:"action" binding:"required"`

	Username string `json:"username"`
	Password string `json:"password"`

	Data json.RawMessage `json:"data"`

	AdminID       uint `json:"admin_id"`
	MemberID      uint `json:"member_id"`
	PurchaseCount *int `json:"jumlah_pembelian"`

	Phone string `json:"phone"`

	ActivityType string         `json:"activity_type"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Details      map[string]any `json:"details"`

	Limit     int    `json:"limit"`
	Type      string `json:"type"`
	AdminName string `json:"admin_name"`
	Period    string `json:"period"`
}

type adminPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type memberUpdatePayload struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Age      *int   `json:"age"`
	Activity string `json:"activity"`
}

// --------- Dispatch ---------

func (h *AdminHandler) Dispatch(c *gin.Context) {
	var req adminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, httperr.Validation("invalid_request", "Invalid JSON input"))
		return
	}

	// Login is the one action that works without a session.
	if req.Action == "login" {
		h.login(c, req)
		return
	}

	sess, claims, err := h.auth.Session(c)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	actor := ucmember.Actor{
		ID:        sess.AdminID,
		Name:      sess.Username,
		IPAddress: audit.ClientIP(c.Request),
		UserAgent: c.Request.UserAgent(),
	}

	switch req.Action {
	case "logout":
		h.logout(c, claims.SessionID)
	case "create_admin":
		h.createAdminAction(c, req, actor)
	case "get_all_admins":
		h.getAllAdmins(c)
	case "delete_admin":
		h.deleteAdminAction(c, req, actor)
	case "update_transaction":
		h.updateTransaction(c, req, actor)
	case "update_member":
		h.updateMember(c, req, actor)
	case "delete_member":
		h.deleteMemberAction(c, req, actor)
	case "search_member":
		h.searchMember(c, req)
	case "setup_activity_table":
		h.setupActivityTable(c)
	case "get_activity_log":
		h.getActivityLog(c, req)
	case "log_activity":
		h.logActivity(c, req, actor)
	case "clear_activity_log":
		h.clearActivityLog(c)
	case "clear_unknown_activity_logs":
		h.clearUnknownActivityLogs(c)
	case "download_csv":
		h.downloadCSV(c, actor)
	default:
		httpresp.Fail(c, httperr.Validation("invalid_action", "Invalid action"))
	}
}

// --------- Auth ---------

func (h *AdminHandler) login(c *gin.Context, req adminRequest) {
	summary, err := h.authenticate.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	now := time.Now()
	sessionID, err := h.sessions.Create(c.Request.Context(), session.Session{
		AdminID:   summary.ID,
		Username:  summary.Username,
		Role:      summary.Role,
		LoginTime: now,
	})
	if err != nil {
		httpresp.Fail(c, httperr.Store("session_create_failed", err))
		return
	}

	token, err := session.SignToken(h.cfg.JWTSecret, session.Claims{
		AdminID:   summary.ID,
		Username:  summary.Username,
		Role:      summary.Role,
		SessionID: sessionID,
	}, now)
	if err != nil {
		httpresp.Fail(c, httperr.Store("token_sign_failed", err))
		return
	}

	h.auditDispatch.Dispatch(audit.Event{
		AdminID:   summary.ID,
		AdminName: summary.Username,
		Type:      audit.TypeLogin,
		Title:     "Admin Login",
		IPAddress: audit.ClientIP(c.Request),
		UserAgent: c.Request.UserAgent(),
	})

	httpresp.OKMessageData(c, "Login successful", gin.H{
		"admin":      summary,
		"token":      token,
		"expires_in": int(session.TTL.Seconds()),
	})
}

func (h *AdminHandler) logout(c *gin.Context, sessionID string) {
	if err := h.sessions.Delete(c.Request.Context(), sessionID); err != nil {
		httpresp.Fail(c, httperr.Store("logout_failed", err))
		return
	}
	httpresp.OKMessage(c, "Logged out")
}

// --------- Admin accounts ---------

func (h *AdminHandler) createAdminAction(c *gin.Context, req adminRequest, actor ucmember.Actor) {
	if len(req.Data) == 0 {
		httpresp.Fail(c, httperr.Validation("data_required", "Admin data not provided"))
		return
	}

	var payload adminPayload
	if err := json.Unmarshal(req.Data, &payload); err != nil {
		httpresp.Fail(c, httperr.Validation("invalid_request", "Invalid admin data"))
		return
	}

	adminID, err := h.createAdmin.Execute(c.Request.Context(), ucadmin.CreateInput{
		Username: payload.Username,
		Password: payload.Password,
		Email:    payload.Email,
		Role:     payload.Role,
	}, adminActor(actor))
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	httpresp.OKMessageData(c, "Admin created successfully", gin.H{"admin_id": adminID})
}

func (h *AdminHandler) getAllAdmins(c *gin.Context) {
	admins, err := h.admins.List(c.Request.Context())
	if err != nil {
		httpresp.Fail(c, httperr.Store("admin_list_failed", err))
		return
	}
	httpresp.List(c, admins)
}

func (h *AdminHandler) deleteAdminAction(c *gin.Context, req adminRequest, actor ucmember.Actor) {
	if req.AdminID == 0 {
		httpresp.Fail(c, httperr.Validation("admin_id_required", "Admin id not provided"))
		return
	}

	if err := h.deleteAdmin.Execute(c.Request.Context(), req.AdminID, adminActor(actor)); err != nil {
		httpresp.Fail(c, err)
		return
	}

	httpresp.OKMessage(c, "Admin deleted successfully")
}

// --------- Members ---------

func (h *AdminHandler) updateTransaction(c *gin.Context, req adminRequest, actor ucmember.Actor) {
	if req.MemberID == 0 || req.PurchaseCount == nil {
		httpresp.Fail(c, httperr.Validation("transaction_data_required", "Transaction data incomplete"))
		return
	}
	if *req.PurchaseCount < 0 {
		httpresp.Fail(c, httperr.Validation("negative_count", "Purchase count cannot be negative"))
		return
	}

	// The endpoint carries an absolute count; the counter move itself goes
	// through the clamped adjustment.
	m, err := h.members.GetByID(c.Request.Context(), req.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresp.Fail(c, httperr.NotFound("member_not_found", "Member not found"))
			return
		}
		httpresp.Fail(c, httperr.Store("member_lookup_failed", err))
		return
	}

	newCount, err := h.adjustTransaction.Execute(
		c.Request.Context(),
		req.MemberID,
		*req.PurchaseCount-m.PurchaseCount,
		actor,
	)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	httpresp.OKMessageData(c, "Transaction updated successfully", gin.H{"purchase_count": newCount})
}

func (h *AdminHandler) updateMember(c *gin.Context, req adminRequest, actor ucmember.Actor) {
	if req.MemberID == 0 || len(req.Data) == 0 {
		httpresp.Fail(c, httperr.Validation("member_data_required", "Member data incomplete"))
		return
	}

	var payload memberUpdatePayload
	if err := json.Unmarshal(req.Data, &payload); err != nil {
		httpresp.Fail(c, httperr.Validation("invalid_request", "Invalid member data"))
		return
	}

	_, err := h.updateProfile.Execute(c.Request.Context(), req.MemberID, ucmember.UpdateProfileInput{
		Name:     payload.Name,
		WhatsApp: payload.WhatsApp,
		Email:    payload.Email,
		Address:  payload.Address,
		Age:      payload.Age,
		Activity: payload.Activity,
	}, actor)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	httpresp.OKMessage(c, "Member updated successfully")
}

func (h *AdminHandler) deleteMemberAction(c *gin.Context, req adminRequest, actor ucmember.Actor) {
	if req.MemberID == 0 {
		httpresp.Fail(c, httperr.Validation("member_id_required", "Member id not provided"))
		return
	}

	if err := h.deleteMember.Execute(c.Request.Context(), req.MemberID, actor); err != nil {
		httpresp.Fail(c, err)
		return
	}

	httpresp.OKMessage(c, "Member deleted successfully")
}

func (h *AdminHandler) searchMember(c *gin.Context, req adminRequest) {
	if req.Phone == "" {
		httpresp.Fail(c, httperr.Validation("phone_required", "Phone number not provided"))
		return
	}

	members, err := h.members.SearchByPhone(c.Request.Context(), req.Phone)
	if err != nil {
		httpresp.Fail(c, httperr.Store("member_search_failed", err))
		return
	}

	httpresp.List(c, members)
}

// --------- Activity log ---------

func (h *AdminHandler) setupActivityTable(c *gin.Context) {
	if err := h.db.AutoMigrate(&models.ActivityLog{}); err != nil {
		httpresp.Fail(c, httperr.Store("activity_table_setup_failed", err))
		return
	}
	httpresp.OKMessage(c, "Activity log table ready")
}

func (h *AdminHandler) getActivityLog(c *gin.Context, req adminRequest) {
	entries, err := h.activities.List(c.Request.Context(), req.Limit)
	if err != nil {
		httpresp.Fail(c, httperr.Store("activity_list_failed", err))
		return
	}

	entries = audit.Filter(entries, audit.FilterOptions{
		Type:      req.Type,
		AdminName: req.AdminName,
		Period:    req.Period,
	}, time.Now())

	httpresp.List(c, entries)
}

func (h *AdminHandler) logActivity(c *gin.Context, req adminRequest, actor ucmember.Actor) {
	if req.ActivityType == "" || req.Title == "" {
		httpresp.Fail(c, httperr.Validation("activity_data_required", "Activity data incomplete"))
		return
	}

	activityType := audit.ActivityType(req.ActivityType)
	if !activityType.Valid() {
		httpresp.Fail(c, httperr.Validation("invalid_activity_type", "Invalid activity type"))
		return
	}

	err := h.auditLog.Log(c.Request.Context(), audit.Event{
		AdminID:     actor.ID,
		AdminName:   actor.Name,
		Type:        activityType,
		Title:       req.Title,
		Description: req.Description,
		Details:     req.Details,
		IPAddress:   actor.IPAddress,
		UserAgent:   actor.UserAgent,
	})
	if err != nil {
		httpresp.Fail(c, httperr.Store("activity_log_failed", err))
		return
	}

	httpresp.OKMessage(c, "Activity recorded")
}

func (h *AdminHandler) clearActivityLog(c *gin.Context) {
	if err := h.activities.ClearAll(c.Request.Context()); err != nil {
		httpresp.Fail(c, httperr.Store("activity_clear_failed", err))
		return
	}
	httpresp.OKMessage(c, "Activity log cleared")
}

func (h *AdminHandler) clearUnknownActivityLogs(c *gin.Context) {
	if err := h.activities.ClearMalformed(c.Request.Context()); err != nil {
		httpresp.Fail(c, httperr.Store("activity_clear_failed", err))
		return
	}
	httpresp.OKMessage(c, "Unknown activity log entries cleared")
}

// --------- CSV export ---------

func (h *AdminHandler) downloadCSV(c *gin.Context, actor ucmember.Actor) {
	members, err := h.members.ListAll(c.Request.Context())
	if err != nil {
		httpresp.Fail(c, httperr.Store("member_list_failed", err))
		return
	}

	filename := fmt.Sprintf("members_%s.csv", time.Now().Format("2006-01-02"))

	h.auditDispatch.Dispatch(audit.Event{
		AdminID:   actor.ID,
		AdminName: actor.Name,
		Type:      audit.TypeDownload,
		Title:     "Download Member CSV",
		Details: map[string]any{
			"filename":      filename,
			"total_records": len(members),
		},
		IPAddress: actor.IPAddress,
		UserAgent: actor.UserAgent,
	})

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Cache-Control", "no-cache, must-revalidate")

	if err := memberdomain.WriteCSV(c.Writer, members); err != nil {
		// Headers are gone by now; all we can do is log it.
		log := logger.Get()
		log.Error().Err(err).Msg("csv stream failed")
	}
}

func adminActor(a ucmember.Actor) ucadmin.Actor {
	return ucadmin.Actor{
		ID:        a.ID,
		Name:      a.Name,
		IPAddress: a.IPAddress,
		UserAgent: a.UserAgent,
	}
}
