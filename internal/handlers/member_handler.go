package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	memberdomain "github.com/docterbee/membership-system/internal/domain/member"
	"github.com/docterbee/membership-system/internal/httperr"
	"github.com/docterbee/membership-system/internal/httpresp"
	ucmember "github.com/docterbee/membership-system/internal/usecase/member"
)

// MemberHandler serves the public member endpoint: one POST path, one JSON
// action dispatcher.
type MemberHandler struct {
	register *ucmember.Register
	bulk     *ucmember.BulkRegister
	repo     memberdomain.Repository
}

func NewMemberHandler(
	register *ucmember.Register,
	bulk *ucmember.BulkRegister,
	repo memberdomain.Repository,
) *MemberHandler {
	return &MemberHandler{register: register, bulk: bulk, repo: repo}
}

// --------- Requests ---------

type memberPayload struct {
	Name          string `json:"name"`
	WhatsApp      string `json:"whatsapp"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Age           *int   `json:"age"`
	Activity      string `json:"activity"`
	CardType      string `json:"card_type"`
	UniqueCode    string `json:"unique_code"`
	ValidityLabel string `json:"validity_label"`
}

func (p memberPayload) toInput() ucmember.RegisterInput {
	return ucmember.RegisterInput{
		Name:          p.Name,
		WhatsApp:      p.WhatsApp,
		Email:         p.Email,
		Address:       p.Address,
		Age:           p.Age,
		Activity:      p.Activity,
		CardType:      p.CardType,
		UniqueCode:    p.UniqueCode,
		ValidityLabel: p.ValidityLabel,
	}
}

type memberRequest struct {
	Action string `json:"action" binding:"required"`

	Data     json.RawMessage `json:"data"`
	Code     string          `json:"code"`
	Limit    int             `json:"limit"`
	Offset   int             `json:"offset"`
	WhatsApp string          `json:"whatsapp"`
}

// --------- Dispatch ---------

func (h *MemberHandler) Dispatch(c *gin.Context) {
	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, httperr.Validation("invalid_request", "Invalid JSON input"))
		return
	}

	switch req.Action {
	case "save":
		h.save(c, req)
	case "check_code":
		h.checkCode(c, req)
	case "get_all":
		h.getAll(c, req)
	case "get_by_code":
		h.getByCode(c, req)
	case "search_by_whatsapp":
		h.searchByWhatsApp(c, req)
	case "bulk_save":
		h.bulkSave(c, req)
	case "stats":
		h.stats(c)
	default:
		httpresp.Fail(c, httperr.Validation("invalid_action", "Invalid action"))
	}
}

// --------- Actions ---------

func (h *MemberHandler) save(c *gin.Context, req memberRequest) {
	if len(req.Data) == 0 {
		httpresp.Fail(c, httperr.Validation("data_required", "Member data not provided"))
		return
	}

	var payload memberPayload
	if err := json.Unmarshal(req.Data, &payload); err != nil {
		httpresp.Fail(c, httperr.Validation("invalid_request", "Invalid member data"))
		return
	}

	m, err := h.register.Execute(c.Request.Context(), payload.toInput())
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	httpresp.OKMessageData(c, "Member saved successfully", gin.H{
		"member_id":      m.ID,
		"unique_code":    m.UniqueCode,
		"validity_label": m.ValidityLabel,
	})
}

func (h *MemberHandler) checkCode(c *gin.Context, req memberRequest) {
	if req.Code == "" {
		httpresp.Fail(c, httperr.Validation("code_required", "Code not provided"))
		return
	}

	exists, err := h.repo.CodeExists(c.Request.Context(), req.Code)
	if err != nil {
		httpresp.Fail(c, httperr.Store("code_lookup_failed", err))
		return
	}

	httpresp.OK(c, gin.H{"unique": !exists})
}

func (h *MemberHandler) getAll(c *gin.Context, req memberRequest) {
	limit := req.Limit
	if limit <= 0 {
		limit = 1000
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	members, err := h.repo.List(c.Request.Context(), limit, offset)
	if err != nil {
		httpresp.Fail(c, httperr.Store("member_list_failed", err))
		return
	}

	httpresp.List(c, members)
}

func (h *MemberHandler) getByCode(c *gin.Context, req memberRequest) {
	if req.Code == "" {
		httpresp.Fail(c, httperr.Validation("code_required", "Code not provided"))
		return
	}

	m, err := h.repo.GetByCode(c.Request.Context(), req.Code)
	if err != nil {
		httpresp.Fail(c, httperr.Store("member_lookup_failed", err))
		return
	}

	httpresp.OK(c, m)
}

func (h *MemberHandler) searchByWhatsApp(c *gin.Context, req memberRequest) {
	if req.WhatsApp == "" {
		httpresp.Fail(c, httperr.Validation("whatsapp_required", "WhatsApp number not provided"))
		return
	}

	m, err := h.repo.FindByFuzzyPhone(c.Request.Context(), memberdomain.DigitsOnly(req.WhatsApp))
	if err != nil {
		httpresp.Fail(c, httperr.Store("member_lookup_failed", err))
		return
	}

	if m == nil {
		c.JSON(http.StatusOK, httpresp.Envelope{Success: false, Message: "Member not found"})
		return
	}

	httpresp.OK(c, m)
}

func (h *MemberHandler) bulkSave(c *gin.Context, req memberRequest) {
	if len(req.Data) == 0 {
		httpresp.Fail(c, httperr.Validation("data_required", "Bulk data not provided or invalid"))
		return
	}

	var payloads []memberPayload
	if err := json.Unmarshal(req.Data, &payloads); err != nil {
		httpresp.Fail(c, httperr.Validation("invalid_request", "Bulk data not provided or invalid"))
		return
	}

	inputs := make([]ucmember.RegisterInput, 0, len(payloads))
	for _, p := range payloads {
		inputs = append(inputs, p.toInput())
	}

	result := h.bulk.Execute(c.Request.Context(), inputs)

	httpresp.OKMessageData(c, "Bulk import finished", result)
}

func (h *MemberHandler) stats(c *gin.Context) {
	stats, err := h.repo.Stats(c.Request.Context())
	if err != nil {
		httpresp.Fail(c, httperr.Store("stats_failed", err))
		return
	}

	httpresp.OK(c, stats)
}
