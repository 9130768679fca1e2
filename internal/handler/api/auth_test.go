//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"loginhub/internal/handler/api"
	resdto "loginhub/internal/handler/dto/response"
	"loginhub/internal/handler/middleware"
	"loginhub/internal/usecase"
	"loginhub/internal/usecase/readmodel"
	"loginhub/tests/common/builder"
	"loginhub/tests/common/httptest"
	"loginhub/tests/common/testutil"
	usecasemock "loginhub/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockUseCase)

	s.router.POST("/api/auth/login", s.handler.Login)
	s.router.POST("/api/auth/logout", s.handler.Logout)

	mockAuthorizer := usecasemock.NewMockAuthorizer(s.mockCtrl)
	mockAuthorizer.EXPECT().Authorize(gomock.Any(), gomock.Any()).
		Return(&readmodel.Identity{UserID: uuid.New(), Email: "test@example.com", CompanyID: uuid.New(), Role: "admin"}, nil).
		AnyTimes()
	s.router.GET("/api/auth/me",
		middleware.NewAuthMiddleware(mockAuthorizer).RequireAuth(),
		s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: returns token and user summary", func() {
		rm := builder.NewUserBuilder().BuildReadModel()
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(&usecase.LoginResult{
				Token:     "signed-token",
				ExpiresIn: 86400,
				User:      rm,
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed-token", response.Token)
		s.Equal(int64(86400), response.ExpiresIn)
		s.Equal(rm.Email, response.User.Email)
		s.Equal(rm.CompanyID, response.Company.ID)
		s.Equal("active", response.Company.Status)
	})

	s.Run("error: 400 on validation failures", func() {
		tests := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "missing password", mutate: testutil.Field("password", nil)},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
			{name: "short password", mutate: testutil.Field("password", strings.Repeat("a", 7))},
		}

		for _, tc := range tests {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("error: 401 on invalid credentials", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertFlatErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 403 when company suspended", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrCompanySuspended)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertFlatErrorResponse(s.T(), rec, http.StatusForbidden, "Access blocked")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrTokenGeneration)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/logout", nil, "")

	var response resdto.MessageResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.NotEmpty(response.Message)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success with bearer token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me", nil, "any-token")

		var identity readmodel.Identity
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &identity)
		s.Equal("test@example.com", identity.Email)
	})

	s.Run("401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
