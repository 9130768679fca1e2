//go:build e2e

package admin_test

import (
	"net/http"
	"testing"

	"loginhub/internal/domain/user"
	reqdto "loginhub/internal/handler/dto/request"
	resdto "loginhub/internal/handler/dto/response"
	"loginhub/internal/usecase/readmodel"
	"loginhub/tests/common/dbtest"
	"loginhub/tests/common/httptest"
	"loginhub/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	companiesURL = "/api/admin/companies"
	usersURL     = "/api/admin/users"
)

type adminSuite struct {
	e2e.SharedSuite
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(adminSuite))
}

func (s *adminSuite) masterHeaders() map[string]string {
	return map[string]string{"X-Api-Key": s.Config.Admin.MasterKey}
}

func (s *adminSuite) registerBody() reqdto.RegisterCompanyRequest {
	return reqdto.RegisterCompanyRequest{
		Name:        "Acme Corp",
		TaxDocument: "12.345.678/0001-90",
		Email:       "contact@acme.example",
		AdminName:   "Acme Admin",
		AdminEmail:  "admin@acme.example",
		AdminPass:   dbtest.TestPassword,
	}
}

func (s *adminSuite) TestMasterKeyGate() {
	s.Run("request without key is refused", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodGet, companiesURL, nil, nil)
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("request with wrong key is refused", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodGet, companiesURL, nil,
			map[string]string{"X-Api-Key": "wrong-key"})
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("request with the master key passes", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodGet, companiesURL, nil, s.masterHeaders())
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *adminSuite) TestRegisterCompany() {
	s.Run("creates company and admin atomically", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, companiesURL,
			s.registerBody(), s.masterHeaders())

		var response resdto.CompanyOnboardedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.NotEqual(uuid.Nil, response.CompanyID)
		s.Equal("admin@acme.example", response.AdminEmail)

		// The admin can log in immediately
		loginRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			reqdto.LoginRequest{Email: "admin@acme.example", Password: dbtest.TestPassword}, "")
		s.Equal(http.StatusOK, loginRec.Code)
	})

	s.Run("duplicate document is rejected and nothing is persisted", func() {
		first := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, companiesURL,
			s.registerBody(), s.masterHeaders())
		s.Require().Equal(http.StatusCreated, first.Code)

		body := s.registerBody()
		body.Email = "other@acme.example"
		body.AdminEmail = "other-admin@acme.example"
		second := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, companiesURL,
			body, s.masterHeaders())
		s.Equal(http.StatusConflict, second.Code)

		// The failed onboarding must leave no orphan admin behind
		var n int
		s.Require().NoError(s.DB.QueryRow(s.T().Context(),
			"SELECT COUNT(*) FROM users WHERE email = 'other-admin@acme.example'").Scan(&n))
		s.Zero(n)
	})

	s.Run("missing fields are rejected", func() {
		body := s.registerBody()
		body.TaxDocument = ""
		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, companiesURL,
			body, s.masterHeaders())
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *adminSuite) TestCompanyLifecycle() {
	s.Run("list includes user counts", func() {
		companyID := dbtest.CreateTestCompany(s.T(), s.DB, "Acme Corp", "12.345.678/0001-90", "contact@acme.example")
		dbtest.CreateTestUser(s.T(), s.DB, companyID, "Admin", "admin@acme.example", user.RoleAdmin)
		dbtest.CreateTestUser(s.T(), s.DB, companyID, "Member", "member@acme.example", user.RoleMember)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodGet, companiesURL, nil, s.masterHeaders())

		var companies []readmodel.CompanyView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &companies)
		s.Require().Len(companies, 1)
		s.Equal(companyID, companies[0].ID)
		s.Equal(2, companies[0].TotalUsers)
	})

	s.Run("status flip suspends and reactivates", func() {
		companyID := dbtest.CreateTestCompany(s.T(), s.DB, "Acme Corp", "12.345.678/0001-90", "contact@acme.example")
		url := companiesURL + "/" + companyID.String() + "/status"

		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPatch, url,
			reqdto.UpdateCompanyStatusRequest{Status: "inactive"}, s.masterHeaders())
		s.Require().Equal(http.StatusOK, rec.Code)

		var status string
		s.Require().NoError(s.DB.QueryRow(s.T().Context(),
			"SELECT status FROM companies WHERE id = $1", companyID).Scan(&status))
		s.Equal("inactive", status)

		rec = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPatch, url,
			reqdto.UpdateCompanyStatusRequest{Status: "active"}, s.masterHeaders())
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("status flip on unknown company is 404", func() {
		url := companiesURL + "/" + uuid.NewString() + "/status"
		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPatch, url,
			reqdto.UpdateCompanyStatusRequest{Status: "inactive"}, s.masterHeaders())
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("delete refuses while users remain, succeeds after", func() {
		companyID := dbtest.CreateTestCompany(s.T(), s.DB, "Acme Corp", "12.345.678/0001-90", "contact@acme.example")
		userID := dbtest.CreateTestUser(s.T(), s.DB, companyID, "Admin", "admin@acme.example", user.RoleAdmin)
		url := companiesURL + "/" + companyID.String()

		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodDelete, url, nil, s.masterHeaders())
		s.Equal(http.StatusConflict, rec.Code)

		rec = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodDelete,
			usersURL+"/"+userID.String(), nil, s.masterHeaders())
		s.Require().Equal(http.StatusOK, rec.Code)

		rec = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodDelete, url, nil, s.masterHeaders())
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *adminSuite) TestUserManagement() {
	s.Run("add user defaults to member and can log in", func() {
		companyID := dbtest.CreateTestCompany(s.T(), s.DB, "Acme Corp", "12.345.678/0001-90", "contact@acme.example")

		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, usersURL,
			reqdto.AddUserRequest{
				CompanyID: companyID,
				Name:      "New Member",
				Email:     "member@acme.example",
				Password:  dbtest.TestPassword,
			}, s.masterHeaders())
		s.Require().Equal(http.StatusCreated, rec.Code)

		loginRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			reqdto.LoginRequest{Email: "member@acme.example", Password: dbtest.TestPassword}, "")

		var login resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), loginRec, http.StatusOK, &login)
		s.Equal("member", login.User.Role)
	})

	s.Run("duplicate email is 409", func() {
		companyID := dbtest.CreateTestCompany(s.T(), s.DB, "Acme Corp", "12.345.678/0001-90", "contact@acme.example")
		dbtest.CreateTestUser(s.T(), s.DB, companyID, "Existing", "member@acme.example", user.RoleMember)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, usersURL,
			reqdto.AddUserRequest{
				CompanyID: companyID,
				Name:      "Duplicate",
				Email:     "member@acme.example",
				Password:  dbtest.TestPassword,
			}, s.masterHeaders())
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("unknown company is 400", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, usersURL,
			reqdto.AddUserRequest{
				CompanyID: uuid.New(),
				Name:      "Orphan",
				Email:     "orphan@acme.example",
				Password:  dbtest.TestPassword,
			}, s.masterHeaders())
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("list users by company", func() {
		companyID := dbtest.CreateTestCompany(s.T(), s.DB, "Acme Corp", "12.345.678/0001-90", "contact@acme.example")
		otherID := dbtest.CreateTestCompany(s.T(), s.DB, "Other Co", "98.765.432/0001-10", "contact@other.example")
		dbtest.CreateTestUser(s.T(), s.DB, companyID, "Acme Member", "member@acme.example", user.RoleMember)
		dbtest.CreateTestUser(s.T(), s.DB, otherID, "Other Member", "member@other.example", user.RoleMember)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodGet,
			companiesURL+"/"+companyID.String()+"/users", nil, s.masterHeaders())

		var users []readmodel.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &users)
		s.Require().Len(users, 1)
		s.Equal("member@acme.example", users[0].Email)

		rec = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodGet, usersURL, nil, s.masterHeaders())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &users)
		s.Len(users, 2)
	})

	s.Run("remove unknown user is 404", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodDelete,
			usersURL+"/"+uuid.NewString(), nil, s.masterHeaders())
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
