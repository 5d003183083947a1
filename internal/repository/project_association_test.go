package repository

import (
	"testing"

	"project-catalog-backend/internal/database/models"
	apperrors "project-catalog-backend/internal/errors"
	"project-catalog-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectAssociationRepositoryTestSuite tests the association repository
type ProjectAssociationRepositoryTestSuite struct {
	suite.Suite
	db        *gorm.DB
	repo      *ProjectAssociationRepository
	projects  *ProjectRepository
	factories *testutils.FactorySet
}

// SetupTest runs before each test with a fresh database
func (suite *ProjectAssociationRepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteTestDB(suite.T())
	suite.repo = NewProjectAssociationRepository(suite.db)
	suite.projects = NewProjectRepository(suite.db)
	suite.factories = testutils.NewFactorySet()
}

func (suite *ProjectAssociationRepositoryTestSuite) createProject() *models.Project {
	project := suite.factories.Project.Create()
	suite.Require().NoError(suite.projects.Create(project))
	return project
}

func (suite *ProjectAssociationRepositoryTestSuite) createTechnologies(names ...string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		tech := suite.factories.Technology.WithName(name)
		suite.Require().NoError(suite.db.Create(tech).Error)
		ids = append(ids, tech.ID)
	}
	return ids
}

func (suite *ProjectAssociationRepositoryTestSuite) createUsers(n int) []uuid.UUID {
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		user := suite.factories.User.Create()
		suite.Require().NoError(suite.db.Create(user).Error)
		ids = append(ids, user.ID)
	}
	return ids
}

// TestReplaceTechnologies tests replacing one technology set with another
func (suite *ProjectAssociationRepositoryTestSuite) TestReplaceTechnologies() {
	project := suite.createProject()
	techIDs := suite.createTechnologies("go", "postgres", "redis")

	err := suite.repo.ReplaceTechnologies(project.ID, techIDs[:2])
	suite.NoError(err)

	// Replace {go, postgres} with {postgres, redis}
	err = suite.repo.ReplaceTechnologies(project.ID, techIDs[1:])
	suite.NoError(err)

	technologies, err := suite.repo.ListTechnologiesFor(project.ID)
	suite.NoError(err)
	suite.Len(technologies, 2)
	suite.Equal("postgres", technologies[0].Name)
	suite.Equal("redis", technologies[1].Name)
}

// TestReplaceTechnologiesEmptyClears tests that an empty set removes all rows
func (suite *ProjectAssociationRepositoryTestSuite) TestReplaceTechnologiesEmptyClears() {
	project := suite.createProject()
	techIDs := suite.createTechnologies("go", "postgres")

	suite.Require().NoError(suite.repo.ReplaceTechnologies(project.ID, techIDs))

	err := suite.repo.ReplaceTechnologies(project.ID, nil)
	suite.NoError(err)

	technologies, err := suite.repo.ListTechnologiesFor(project.ID)
	suite.NoError(err)
	suite.Empty(technologies)
}

// TestReplaceTechnologiesUnknownID tests that an unknown ID fails without mutation
func (suite *ProjectAssociationRepositoryTestSuite) TestReplaceTechnologiesUnknownID() {
	project := suite.createProject()
	techIDs := suite.createTechnologies("go")

	suite.Require().NoError(suite.repo.ReplaceTechnologies(project.ID, techIDs))

	err := suite.repo.ReplaceTechnologies(project.ID, []uuid.UUID{techIDs[0], uuid.New()})
	suite.ErrorIs(err, apperrors.ErrTechnologyNotFound)

	// Existing set untouched
	technologies, listErr := suite.repo.ListTechnologiesFor(project.ID)
	suite.NoError(listErr)
	suite.Len(technologies, 1)
	suite.Equal("go", technologies[0].Name)
}

// TestReplaceTechnologiesDedupes tests that duplicate IDs collapse to one row
func (suite *ProjectAssociationRepositoryTestSuite) TestReplaceTechnologiesDedupes() {
	project := suite.createProject()
	techIDs := suite.createTechnologies("go")

	err := suite.repo.ReplaceTechnologies(project.ID, []uuid.UUID{techIDs[0], techIDs[0], techIDs[0]})
	suite.NoError(err)

	technologies, err := suite.repo.ListTechnologiesFor(project.ID)
	suite.NoError(err)
	suite.Len(technologies, 1)
}

// TestReplaceUsersAssignsRoles tests owner/contributor assignment by position
func (suite *ProjectAssociationRepositoryTestSuite) TestReplaceUsersAssignsRoles() {
	project := suite.createProject()
	userIDs := suite.createUsers(3)

	err := suite.repo.ReplaceUsers(project.ID, userIDs)
	suite.NoError(err)

	roles := suite.rolesByUser(project.ID)
	suite.Equal(models.UserRoleOwner, roles[userIDs[0]])
	suite.Equal(models.UserRoleContributor, roles[userIDs[1]])
	suite.Equal(models.UserRoleContributor, roles[userIDs[2]])
}

// TestReplaceUsersReorderChangesOwner tests that the owner follows first position
func (suite *ProjectAssociationRepositoryTestSuite) TestReplaceUsersReorderChangesOwner() {
	project := suite.createProject()
	userIDs := suite.createUsers(2)

	suite.Require().NoError(suite.repo.ReplaceUsers(project.ID, userIDs))

	err := suite.repo.ReplaceUsers(project.ID, []uuid.UUID{userIDs[1], userIDs[0]})
	suite.NoError(err)

	roles := suite.rolesByUser(project.ID)
	suite.Equal(models.UserRoleOwner, roles[userIDs[1]])
	suite.Equal(models.UserRoleContributor, roles[userIDs[0]])
}

// TestReplaceUsersUnknownID tests that an unknown user fails without mutation
func (suite *ProjectAssociationRepositoryTestSuite) TestReplaceUsersUnknownID() {
	project := suite.createProject()
	userIDs := suite.createUsers(1)

	suite.Require().NoError(suite.repo.ReplaceUsers(project.ID, userIDs))

	err := suite.repo.ReplaceUsers(project.ID, []uuid.UUID{uuid.New()})
	suite.ErrorIs(err, apperrors.ErrUserNotFound)

	roles := suite.rolesByUser(project.ID)
	suite.Len(roles, 1)
	suite.Equal(models.UserRoleOwner, roles[userIDs[0]])
}

// TestReplaceUsersDuplicateKeepsFirstPosition tests dedupe keeps the owner slot
func (suite *ProjectAssociationRepositoryTestSuite) TestReplaceUsersDuplicateKeepsFirstPosition() {
	project := suite.createProject()
	userIDs := suite.createUsers(2)

	err := suite.repo.ReplaceUsers(project.ID, []uuid.UUID{userIDs[0], userIDs[1], userIDs[0]})
	suite.NoError(err)

	roles := suite.rolesByUser(project.ID)
	suite.Len(roles, 2)
	suite.Equal(models.UserRoleOwner, roles[userIDs[0]])
	suite.Equal(models.UserRoleContributor, roles[userIDs[1]])
}

// TestDeleteForTechnology tests detaching a technology from every project
func (suite *ProjectAssociationRepositoryTestSuite) TestDeleteForTechnology() {
	techIDs := suite.createTechnologies("go", "postgres")
	projects := []*models.Project{suite.createProject(), suite.createProject(), suite.createProject()}
	for _, p := range projects {
		suite.Require().NoError(suite.repo.ReplaceTechnologies(p.ID, techIDs))
	}

	err := suite.repo.DeleteForTechnology(techIDs[0])
	suite.NoError(err)

	for _, p := range projects {
		technologies, listErr := suite.repo.ListTechnologiesFor(p.ID)
		suite.NoError(listErr)
		suite.Len(technologies, 1)
		suite.Equal("postgres", technologies[0].Name)
	}
}

// TestDeleteForProject tests removing both association kinds of a project
func (suite *ProjectAssociationRepositoryTestSuite) TestDeleteForProject() {
	project := suite.createProject()
	suite.Require().NoError(suite.repo.ReplaceTechnologies(project.ID, suite.createTechnologies("go")))
	suite.Require().NoError(suite.repo.ReplaceUsers(project.ID, suite.createUsers(2)))

	err := suite.repo.DeleteForProject(project.ID)
	suite.NoError(err)

	technologies, err := suite.repo.ListTechnologiesFor(project.ID)
	suite.NoError(err)
	suite.Empty(technologies)

	memberships, err := suite.repo.ListUsersFor(project.ID)
	suite.NoError(err)
	suite.Empty(memberships)
}

// TestListUsersForPreloadsUser tests that memberships carry the user row
func (suite *ProjectAssociationRepositoryTestSuite) TestListUsersForPreloadsUser() {
	project := suite.createProject()
	userIDs := suite.createUsers(2)
	suite.Require().NoError(suite.repo.ReplaceUsers(project.ID, userIDs))

	memberships, err := suite.repo.ListUsersFor(project.ID)
	suite.NoError(err)
	suite.Len(memberships, 2)
	for _, m := range memberships {
		suite.NotEqual(uuid.Nil, m.User.ID)
		suite.NotEmpty(m.User.Email)
	}
}

func (suite *ProjectAssociationRepositoryTestSuite) rolesByUser(projectID uuid.UUID) map[uuid.UUID]models.UserRole {
	memberships, err := suite.repo.ListUsersFor(projectID)
	suite.Require().NoError(err)
	roles := make(map[uuid.UUID]models.UserRole, len(memberships))
	for _, m := range memberships {
		roles[m.UserID] = m.Role
	}
	return roles
}

func TestProjectAssociationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectAssociationRepositoryTestSuite))
}
