package api

import (
	"errors"
	"net/http"

	reqdto "loginhub/internal/handler/dto/request"
	resdto "loginhub/internal/handler/dto/response"
	"loginhub/internal/handler/httperr"
	"loginhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	provisioning usecase.ProvisioningUseCase
}

func NewUserHandler(provisioning usecase.ProvisioningUseCase) *UserHandler {
	return &UserHandler{
		provisioning: provisioning,
	}
}

// @Summary Add user to a company
// @Description Create a user in an existing company; role defaults to member
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AddUserRequest true "User creation request"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/users [post]
func (h *UserHandler) Add(c *gin.Context) {
	var req reqdto.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.provisioning.AddUser(c.Request.Context(), req.ToCommand()); err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingField):
			var missing usecase.MissingFieldError
			if errors.As(err, &missing) {
				httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", gin.H{"field": missing.Field})
				return
			}
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		case errors.Is(err, usecase.ErrDuplicateEmail):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already in use", nil)
		case errors.Is(err, usecase.ErrCompanyNotFound):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "The referenced company does not exist", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.MessageResponse{
		Message: "User created",
	})
}

// @Summary List users
// @Description All users across companies
// @Tags admin
// @Produce json
// @Success 200 {array} readmodel.UserView
// @Router /api/admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.provisioning.ListUsers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary List users of a company
// @Tags admin
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {array} readmodel.UserView
// @Router /api/admin/companies/{id}/users [get]
func (h *UserHandler) ListByCompany(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid company ID", nil)
		return
	}

	users, err := h.provisioning.ListUsersByCompany(c.Request.Context(), companyID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary Remove user
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/users/{id} [delete]
func (h *UserHandler) Remove(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID", nil)
		return
	}

	if err := h.provisioning.RemoveUser(c.Request.Context(), userID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, usecase.ErrUserHasDependents):
			httperr.AbortWithError(c, http.StatusConflict, err, "User has dependent records", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{
		Message: "User removed",
	})
}
