package handler

import (
	"github.com/gin-gonic/gin"

	tradeapp "github.com/lanzy-lanzy/tailoring/internal/application/trade"
)

// ClaimHandler handles the pickup board and claim processing
type ClaimHandler struct {
	BaseHandler
	claimService *tradeapp.ClaimService
}

// NewClaimHandler creates a new ClaimHandler
func NewClaimHandler(claimService *tradeapp.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimService: claimService}
}

// List shows finished orders awaiting pickup with their outstanding balances
func (h *ClaimHandler) List(c *gin.Context) {
	resp, err := h.claimService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Process releases a finished order to the customer, optionally
// collecting the outstanding balance at the counter
func (h *ClaimHandler) Process(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req tradeapp.ProcessClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.claimService.Process(c.Request.Context(), id, req, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RegisterRoutes registers claim routes
func (h *ClaimHandler) RegisterRoutes(rg *gin.RouterGroup) {
	claims := rg.Group("/claims")
	claims.GET("", h.List)
	claims.POST("/:id/process", h.Process)
}
