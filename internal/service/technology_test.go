package service

import (
	"testing"

	"project-catalog-backend/internal/database/models"
	apperrors "project-catalog-backend/internal/errors"
	"project-catalog-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TechnologyServiceTestSuite tests the TechnologyService
type TechnologyServiceTestSuite struct {
	suite.Suite
	db        *gorm.DB
	service   *TechnologyService
	projects  *ProjectService
	factories *testutils.FactorySet
}

// SetupTest runs before each test with a fresh database
func (suite *TechnologyServiceTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteTestDB(suite.T())
	suite.service = NewTechnologyService(suite.db)
	suite.projects = NewProjectService(suite.db)
	suite.factories = testutils.NewFactorySet()
}

// TestCreateTechnology tests creating a technology
func (suite *TechnologyServiceTestSuite) TestCreateTechnology() {
	response, err := suite.service.CreateTechnology(&CreateTechnologyRequest{
		Name:        "postgres",
		Description: "relational database",
	})

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, response.ID)
	suite.Equal("postgres", response.Name)
}

// TestCreateTechnologyDuplicateName tests the name conflict
func (suite *TechnologyServiceTestSuite) TestCreateTechnologyDuplicateName() {
	_, err := suite.service.CreateTechnology(&CreateTechnologyRequest{Name: "postgres"})
	suite.Require().NoError(err)

	_, err = suite.service.CreateTechnology(&CreateTechnologyRequest{Name: "postgres"})
	suite.ErrorIs(err, apperrors.ErrTechnologyExists)
}

// TestCreateTechnologyValidation tests request validation
func (suite *TechnologyServiceTestSuite) TestCreateTechnologyValidation() {
	_, err := suite.service.CreateTechnology(&CreateTechnologyRequest{Name: ""})
	suite.True(apperrors.IsValidation(err))
}

// TestListTechnologies tests the name-ordered listing
func (suite *TechnologyServiceTestSuite) TestListTechnologies() {
	for _, name := range []string{"redis", "go", "postgres"} {
		_, err := suite.service.CreateTechnology(&CreateTechnologyRequest{Name: name})
		suite.Require().NoError(err)
	}

	responses, err := suite.service.ListTechnologies()

	suite.NoError(err)
	suite.Len(responses, 3)
	suite.Equal("go", responses[0].Name)
	suite.Equal("postgres", responses[1].Name)
	suite.Equal("redis", responses[2].Name)
}

// TestDeleteTechnologyDetachesProjects tests that deletion removes the
// technology from every project without touching the projects
func (suite *TechnologyServiceTestSuite) TestDeleteTechnologyDetachesProjects() {
	tech, err := suite.service.CreateTechnology(&CreateTechnologyRequest{Name: "legacy"})
	suite.Require().NoError(err)

	techIDs := []uuid.UUID{tech.ID}
	var projectIDs []uuid.UUID
	for i := 0; i < 3; i++ {
		created, createErr := suite.projects.CreateProject(&CreateProjectRequest{
			Name:          "project",
			Description:   "desc",
			RepositoryURL: "https://example.com/project",
			Language:      "Go",
			TechnologyIDs: &techIDs,
		})
		suite.Require().NoError(createErr)
		projectIDs = append(projectIDs, created.ID)
	}

	suite.NoError(suite.service.DeleteTechnology(tech.ID))

	var count int64
	suite.Require().NoError(suite.db.Model(&models.ProjectTechnology{}).Count(&count).Error)
	suite.Zero(count)

	for _, id := range projectIDs {
		aggregate, getErr := suite.projects.GetProject(id)
		suite.NoError(getErr)
		suite.Empty(aggregate.Technologies)
	}
}

// TestDeleteTechnologyNotFound tests deleting a missing technology
func (suite *TechnologyServiceTestSuite) TestDeleteTechnologyNotFound() {
	err := suite.service.DeleteTechnology(uuid.New())
	suite.ErrorIs(err, apperrors.ErrTechnologyNotFound)
}

func TestTechnologyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TechnologyServiceTestSuite))
}
