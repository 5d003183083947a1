package handlers

import (
	"net/http"
	"testing"

	"project-catalog-backend/internal/service"
	"project-catalog-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserHandlerTestSuite tests the user endpoints
type UserHandlerTestSuite struct {
	suite.Suite
	db   *gorm.DB
	http *testutils.HTTPTestSuite
}

// SetupTest runs before each test with a fresh database and router
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteTestDB(suite.T())
	suite.http = testutils.SetupHTTPTest()

	handler := NewUserHandler(service.NewUserService(suite.db))
	suite.http.Router.GET("/api/v1/users", handler.ListUsers)
	suite.http.Router.POST("/api/v1/users", handler.CreateUser)
	suite.http.Router.DELETE("/api/v1/users/:id", handler.DeleteUser)
}

// TestCreateUser tests the happy path
func (suite *UserHandlerTestSuite) TestCreateUser() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/users", map[string]interface{}{
		"name":  "Alice",
		"email": "alice@test.com",
	})

	var response service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal("alice@test.com", response.Email)
}

// TestCreateUserConflict tests a 409 on a duplicate email
func (suite *UserHandlerTestSuite) TestCreateUserConflict() {
	payload := map[string]interface{}{"name": "Alice", "email": "alice@test.com"}

	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/users", payload)
	suite.Equal(http.StatusCreated, recorder.Code)

	recorder = suite.http.MakeRequest(http.MethodPost, "/api/v1/users", payload)
	suite.Equal(http.StatusConflict, recorder.Code)
}

// TestCreateUserValidationError tests a 400 on a malformed email
func (suite *UserHandlerTestSuite) TestCreateUserValidationError() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/users", map[string]interface{}{
		"name":  "Alice",
		"email": "not-an-email",
	})

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

// TestDeleteUser tests a 204 followed by an empty listing
func (suite *UserHandlerTestSuite) TestDeleteUser() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/users", map[string]interface{}{
		"name":  "Alice",
		"email": "alice@test.com",
	})
	var created service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &created)

	recorder = suite.http.MakeRequest(http.MethodDelete, "/api/v1/users/"+created.ID.String(), nil)
	suite.Equal(http.StatusNoContent, recorder.Code)

	recorder = suite.http.MakeRequest(http.MethodGet, "/api/v1/users", nil)
	var users []service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &users)
	suite.Empty(users)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
