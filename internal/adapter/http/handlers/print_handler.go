package handlers

import (
	"errors"
	"log"
	"net/http"

	"labelpress/internal/adapter/http/dto/request"
	"labelpress/internal/adapter/http/dto/response"
	"labelpress/internal/usecase"
	"labelpress/pkg"

	"github.com/gin-gonic/gin"
)

// PrintHandler handles HTTP requests from shop-floor workstations: the
// print request itself, the execution confirmation, and the record lookup.

type PrintHandler struct {
	usecase usecase.IPrintAuthorizationUseCase
}

func NewPrintHandler(uc usecase.IPrintAuthorizationUseCase) *PrintHandler {
	return &PrintHandler{usecase: uc}
}

// RequestPrint evaluates a print request against the rule engine.
//
// @Summary      Request a label print
// @Description  Runs the authorization pipeline and returns the ZPL payload when authorized.
// @Tags         print
// @Accept       json
// @Produce      json
// @Param        request body request.PrintRequest true "print request"
// @Success      200 {object} response.AuthorizationResponse
// @Failure      400 {object} response.AuthorizationResponse
// @Failure      403 {object} response.AuthorizationResponse
// @Router       /print/request [post]
func (h *PrintHandler) RequestPrint(c *gin.Context) {
	var req request.PrintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[print][handler] invalid payload err=%v", err)
		c.JSON(http.StatusBadRequest, response.Denied("invalid request payload", "error: request body could not be parsed"))
		return
	}

	machineIdentifier := req.ResolveMachineIdentifier()
	if machineIdentifier == "" {
		c.JSON(http.StatusBadRequest, response.Denied("machine identifier required", "error: machine identifier not provided"))
		return
	}
	employeeNumber := req.ResolveEmployeeNumber()
	if employeeNumber == "" {
		c.JSON(http.StatusBadRequest, response.Denied("employee number required", "error: employee number not provided"))
		return
	}
	// The engine assumes a positive quantity; rejecting non-positive values
	// is the boundary's job.
	if req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, response.Denied("invalid quantity", "error: quantity must be greater than zero"))
		return
	}

	originIP := req.ResolveOriginIP(c.ClientIP())
	log.Printf("[print][handler] request start machine=%q employee=%q quantity=%d origin=%s", machineIdentifier, employeeNumber, req.Quantity, originIP)

	res := h.usecase.Evaluate(c.Request.Context(), machineIdentifier, employeeNumber, req.Quantity, originIP)
	resp := response.FromAuthorizationResult(res, req.Quantity)

	if !res.Authorized {
		log.Printf("[print][handler] request denied machine=%q employee=%q reason=%q", machineIdentifier, employeeNumber, res.DenialReason)
		c.JSON(http.StatusForbidden, resp)
		return
	}

	log.Printf("[print][handler] request authorized record=%s machine=%q employee=%q", resp.PrintRecordID, machineIdentifier, employeeNumber)
	c.JSON(http.StatusOK, resp)
}

// ConfirmPrint records the hardware outcome for an authorized print.
//
// @Summary      Confirm a print execution
// @Tags         print
// @Accept       json
// @Produce      json
// @Param        request body request.ConfirmationRequest true "confirmation"
// @Success      200 {object} response.ConfirmationResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /print/confirm [post]
func (h *PrintHandler) ConfirmPrint(c *gin.Context) {
	var req request.ConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[print][handler] confirm invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	rec, err := h.usecase.Confirm(c.Request.Context(), req.ResolvePrintRecordID(), req.Success, req.Result, req.ErrorMessage, req.ResolveExecutedAt())
	if err != nil {
		log.Printf("[print][handler] confirm failed record=%s err=%v", req.PrintRecordID, err)
		appErr := mapPrintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[print][handler] confirm success record=%s state=%s", rec.ID, rec.State)
	c.JSON(http.StatusOK, response.FromConfirmedRecord(rec))
}

// GetPrintRecord returns one print record with its resolved references.
//
// @Summary      Get a print record
// @Tags         print
// @Produce      json
// @Param        id path string true "print record id"
// @Success      200 {object} response.PrintRecordResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /print/records/{id} [get]
func (h *PrintHandler) GetPrintRecord(c *gin.Context) {
	id := c.Param("id")

	detail, err := h.usecase.GetRecord(c.Request.Context(), id)
	if err != nil {
		log.Printf("[print][handler] get failed record=%s err=%v", id, err)
		appErr := mapPrintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPrintRecordDetail(detail))
}

func mapPrintError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPrintRecordID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPrintRecordNotFound):
		return pkg.NewDomainErrorSimple("PRINT_RECORD_NOT_FOUND", "Print record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPrintRecordNotPending):
		return pkg.NewDomainErrorSimple("PRINT_RECORD_NOT_PENDING", "Print record is not awaiting execution", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
