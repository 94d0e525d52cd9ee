package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gwssd/medical_bills_app/internal/apperrors"
	portssvc "github.com/gwssd/medical_bills_app/internal/core/ports/services"
	"github.com/gwssd/medical_bills_app/internal/dto"
	"github.com/gwssd/medical_bills_app/internal/middleware"
)

// billHandler handles HTTP requests related to bills.
type billHandler struct {
	billService portssvc.BillSvcFacade
}

func newBillHandler(bs portssvc.BillSvcFacade) *billHandler {
	return &billHandler{billService: bs}
}

// registerBillRoutes registers all bill-related routes, including the
// employee-scoped bill listing.
func registerBillRoutes(rg *gin.RouterGroup, billService portssvc.BillSvcFacade) {
	h := newBillHandler(billService)

	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.GET("", h.listBills)
		bills.GET("/status/:status", h.getBillsByStatus)
		bills.POST("/filter", h.filterBills)
		bills.GET("/:billID", h.getBill)
		bills.PUT("/:billID", h.updateBill)
		bills.DELETE("/:billID", h.deleteBill)
		bills.PUT("/:billID/status", h.updateBillStatus)
	}

	rg.GET("/employees/:employeeID/bills", h.listEmployeeBills)
}

// createBill godoc
// @Summary Register a new bill
// @Description Creates a bill, snapshotting the employee's subdivision and seeding the status history
// @Tags bills
// @Accept json
// @Produce json
// @Param bill body dto.CreateBillRequest true "Bill details"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Missing required fields or duplicate bill number"
// @Failure 500 {object} map[string]string
// @Router /bills [post]
func (h *billHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create bill request", slog.String("error", err.Error()))
		if isMissingFields(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		}
		return
	}

	created, err := h.billService.CreateBill(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate bill number", slog.String("bill_number", req.BillNumber))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bill number already exists"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create bill", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	logger.Info("Bill created successfully", slog.String("bill_number", created.BillNumber))
	c.JSON(http.StatusCreated, gin.H{"message": "Bill created successfully", "id": created.ID})
}

// listBills godoc
// @Summary List bills
// @Description Lists all bills, newest first
// @Tags bills
// @Produce json
// @Success 200 {array} dto.BillResponse
// @Failure 500 {object} map[string]string
// @Router /bills [get]
func (h *billHandler) listBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bills, err := h.billService.ListBills(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list bills", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToBillResponseSlice(bills))
}

// getBill godoc
// @Summary Get a bill
// @Description Retrieves one bill, including its full status history
// @Tags bills
// @Produce json
// @Param billID path string true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bills/{billID} [get]
func (h *billHandler) getBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID := c.Param("billID")

	bill, err := h.billService.GetBillByID(c.Request.Context(), billID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		} else {
			logger.Error("Failed to get bill", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// updateBill godoc
// @Summary Update a bill
// @Description Merges the supplied fields into an existing bill. The status history is never touched through this path.
// @Tags bills
// @Accept json
// @Produce json
// @Param billID path string true "Bill ID"
// @Param bill body dto.UpdateBillRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bills/{billID} [put]
func (h *billHandler) updateBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID := c.Param("billID")

	var req dto.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update bill request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.billService.UpdateBill(c.Request.Context(), billID, req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update bill", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bill updated successfully"})
}

// deleteBill godoc
// @Summary Delete a bill
// @Tags bills
// @Produce json
// @Param billID path string true "Bill ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bills/{billID} [delete]
func (h *billHandler) deleteBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID := c.Param("billID")

	if err := h.billService.DeleteBill(c.Request.Context(), billID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		} else {
			logger.Error("Failed to delete bill", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bill deleted successfully"})
}

// listEmployeeBills godoc
// @Summary List an employee's bills
// @Description Lists all bills referencing the given employee ID, newest first
// @Tags bills
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {array} dto.BillResponse
// @Failure 500 {object} map[string]string
// @Router /employees/{employeeID}/bills [get]
func (h *billHandler) listEmployeeBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	bills, err := h.billService.GetBillsByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		logger.Error("Failed to list employee bills", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToBillResponseSlice(bills))
}

// updateBillStatus godoc
// @Summary Move a bill to a new status
// @Description Appends a status update to the bill's history and sets the current status atomically
// @Tags bills
// @Accept json
// @Produce json
// @Param billID path string true "Bill ID"
// @Param status body dto.UpdateBillStatusRequest true "Status update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bills/{billID}/status [put]
func (h *billHandler) updateBillStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID := c.Param("billID")

	var req dto.UpdateBillStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update bill status request", slog.String("error", err.Error()))
		if isMissingFields(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		}
		return
	}

	if err := h.billService.UpdateBillStatus(c.Request.Context(), billID, req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidStatus), errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		default:
			logger.Error("Failed to update bill status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	logger.Info("Bill status updated successfully", slog.String("bill_id", billID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, gin.H{"message": "Bill status updated successfully"})
}

// getBillsByStatus godoc
// @Summary List bills by status
// @Description Lists bills whose current status matches exactly, newest update first
// @Tags bills
// @Produce json
// @Param status path string true "Bill status"
// @Success 200 {array} dto.BillResponse
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 500 {object} map[string]string
// @Router /bills/status/{status} [get]
func (h *billHandler) getBillsByStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := c.Param("status")

	bills, err := h.billService.GetBillsByStatus(c.Request.Context(), status)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		} else {
			logger.Error("Failed to list bills by status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBillResponseSlice(bills))
}

// filterBills godoc
// @Summary Filter bills
// @Description Returns bills matching the conjunction of the supplied criteria; absent criteria do not constrain the result
// @Tags bills
// @Accept json
// @Produce json
// @Param filter body dto.FilterBillsRequest true "Filter criteria"
// @Success 200 {array} dto.BillResponse
// @Failure 500 {object} map[string]string
// @Router /bills/filter [post]
func (h *billHandler) filterBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.FilterBillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for filter bills request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	bills, err := h.billService.FilterBills(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to filter bills", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToBillResponseSlice(bills))
}
