package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	creditcard "github.com/gestor-app/backend/internal/application/usecase/credit_card"
	domainerror "github.com/gestor-app/backend/internal/domain/error"
	"github.com/gestor-app/backend/internal/integration/entrypoint/dto"
	"github.com/gestor-app/backend/internal/integration/entrypoint/middleware"
)

// CreditCardController handles credit card endpoints.
type CreditCardController struct {
	createUseCase      *creditcard.CreateCardUseCase
	listUseCase        *creditcard.ListCardsUseCase
	updateUseCase      *creditcard.UpdateCardUseCase
	deleteUseCase      *creditcard.DeleteCardUseCase
	getInvoicesUseCase *creditcard.GetInvoicesUseCase
	settleUseCase      *creditcard.SettleInvoiceUseCase
}

// NewCreditCardController creates a new credit card controller instance.
func NewCreditCardController(
	createUseCase *creditcard.CreateCardUseCase,
	listUseCase *creditcard.ListCardsUseCase,
	updateUseCase *creditcard.UpdateCardUseCase,
	deleteUseCase *creditcard.DeleteCardUseCase,
	getInvoicesUseCase *creditcard.GetInvoicesUseCase,
	settleUseCase *creditcard.SettleInvoiceUseCase,
) *CreditCardController {
	return &CreditCardController{
		createUseCase:      createUseCase,
		listUseCase:        listUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		getInvoicesUseCase: getInvoicesUseCase,
		settleUseCase:      settleUseCase,
	}
}

// Create handles POST /credit-cards requests.
func (c *CreditCardController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), creditcard.CreateCardInput{
		UserID:      userID,
		Name:        req.Name,
		ClosingDay:  req.ClosingDay,
		DueDay:      req.DueDay,
		LimitAmount: decimal.NewFromFloat(req.LimitAmount),
	})
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreditCardResponse(output.Card))
}

// List handles GET /credit-cards requests.
func (c *CreditCardController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), creditcard.ListCardsInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve credit cards",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCardListResponse(output.Cards))
}

// Update handles PATCH /credit-cards/:id requests.
func (c *CreditCardController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.UpdateCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := creditcard.UpdateCardInput{
		UserID:     userID,
		CardID:     ctx.Param("id"),
		Name:       req.Name,
		ClosingDay: req.ClosingDay,
		DueDay:     req.DueDay,
	}
	if req.LimitAmount != nil {
		limit := decimal.NewFromFloat(*req.LimitAmount)
		input.LimitAmount = &limit
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardResponse(output.Card))
}

// Delete handles DELETE /credit-cards/:id requests.
func (c *CreditCardController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), creditcard.DeleteCardInput{
		UserID: userID,
		CardID: ctx.Param("id"),
	})
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetInvoices handles GET /credit-cards/:id/invoices requests.
func (c *CreditCardController) GetInvoices(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getInvoicesUseCase.Execute(ctx.Request.Context(), creditcard.GetInvoicesInput{
		UserID: userID,
		CardID: ctx.Param("id"),
	})
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceListResponse(output))
}

// SettleInvoice handles POST /credit-cards/:id/invoices/settle requests.
func (c *CreditCardController) SettleInvoice(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.SettleInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.settleUseCase.Execute(ctx.Request.Context(), creditcard.SettleInvoiceInput{
		UserID:    userID,
		CardID:    ctx.Param("id"),
		DueDate:   req.DueDate,
		AccountID: req.AccountID,
	})
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SettleInvoiceResponse{
		Payment: dto.ToTransactionResponse(output.PaymentTransaction),
		Offset:  dto.ToTransactionResponse(output.OffsetTransaction),
		Amount:  output.Amount.StringFixed(2),
	})
}

// handleCardError maps credit card errors to HTTP responses.
func (c *CreditCardController) handleCardError(ctx *gin.Context, err error) {
	var cardErr *domainerror.CreditCardError
	if errors.As(err, &cardErr) {
		ctx.JSON(statusCodeForCardError(cardErr.Code), dto.ErrorResponse{
			Error: cardErr.Message,
			Code:  string(cardErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForCardError maps credit card error codes to HTTP status codes.
func statusCodeForCardError(code domainerror.CreditCardErrorCode) int {
	switch code {
	case domainerror.ErrCodeCreditCardNotFound, domainerror.ErrCodeInvoiceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidClosingDay,
		domainerror.ErrCodeInvalidDueDay,
		domainerror.ErrCodeNegativeCardLimit,
		domainerror.ErrCodeMissingCardFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvoiceAlreadySettled:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
