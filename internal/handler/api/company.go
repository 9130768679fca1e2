package api

import (
	"errors"
	"net/http"

	"loginhub/internal/domain/company"
	reqdto "loginhub/internal/handler/dto/request"
	resdto "loginhub/internal/handler/dto/response"
	"loginhub/internal/handler/httperr"
	"loginhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CompanyHandler struct {
	provisioning usecase.ProvisioningUseCase
}

func NewCompanyHandler(provisioning usecase.ProvisioningUseCase) *CompanyHandler {
	return &CompanyHandler{
		provisioning: provisioning,
	}
}

// @Summary Onboard a company
// @Description Create a company and its first admin user atomically
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterCompanyRequest true "Company onboarding request"
// @Success 201 {object} resdto.CompanyOnboardedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req reqdto.RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.provisioning.RegisterCompany(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingField):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		case errors.Is(err, usecase.ErrDuplicateCompanyOrUser):
			httperr.AbortWithError(c, http.StatusConflict, err, "Document or email already registered", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CompanyOnboardedResponse{
		Message:    "Company and admin user created",
		CompanyID:  result.CompanyID,
		AdminEmail: result.AdminEmail,
	})
}

// @Summary List companies
// @Description All companies with their user counts
// @Tags admin
// @Produce json
// @Success 200 {array} readmodel.CompanyView
// @Router /api/admin/companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.provisioning.ListCompanies(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, companies)
}

// @Summary Update company status
// @Description Tenant kill-switch: inactive blocks all the company's users
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param request body reqdto.UpdateCompanyStatusRequest true "New status"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/companies/{id}/status [patch]
func (h *CompanyHandler) UpdateStatus(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid company ID", nil)
		return
	}

	var req reqdto.UpdateCompanyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Status must be 'active' or 'inactive'", nil)
		return
	}

	status, err := company.NewStatus(req.Status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Status must be 'active' or 'inactive'", nil)
		return
	}

	if err := h.provisioning.UpdateCompanyStatus(c.Request.Context(), companyID, status); err != nil {
		if errors.Is(err, usecase.ErrCompanyNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Company not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{
		Message: "Status updated to " + status.String(),
	})
}

// @Summary Delete company
// @Description Remove a company without remaining users
// @Tags admin
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid company ID", nil)
		return
	}

	if err := h.provisioning.DeleteCompany(c.Request.Context(), companyID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrCompanyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Company not found", nil)
		case errors.Is(err, usecase.ErrCompanyHasUsers):
			httperr.AbortWithError(c, http.StatusConflict, err, "Company still has users", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{
		Message: "Company removed",
	})
}
