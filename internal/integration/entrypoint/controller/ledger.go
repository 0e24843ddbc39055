package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gestor-app/backend/internal/application/usecase/ledger"
	"github.com/gestor-app/backend/internal/domain/entity"
	"github.com/gestor-app/backend/internal/integration/entrypoint/dto"
	"github.com/gestor-app/backend/internal/integration/entrypoint/middleware"
)

// LedgerController handles the consolidated ledger endpoint.
type LedgerController struct {
	listLedgerUseCase *ledger.ListLedgerUseCase
	defaultMode       entity.AccountingMode
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(listLedgerUseCase *ledger.ListLedgerUseCase, defaultMode entity.AccountingMode) *LedgerController {
	return &LedgerController{
		listLedgerUseCase: listLedgerUseCase,
		defaultMode:       defaultMode,
	}
}

// List handles GET /ledger requests.
//
// The mode query parameter selects the accounting view: "cash" consolidates
// card purchases into invoices, anything else reports purchases as-is.
func (c *LedgerController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	mode := c.defaultMode
	if modeStr := ctx.Query("mode"); modeStr != "" {
		mode = entity.ParseAccountingMode(modeStr)
	}

	input := ledger.ListLedgerInput{
		UserID: userID,
		Mode:   mode,
	}

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			input.EndDate = &endDate
		}
	}

	output, err := c.listLedgerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute ledger view",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerResponse(output))
}
