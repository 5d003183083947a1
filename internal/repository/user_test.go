package repository

import (
	"testing"

	"project-catalog-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	db        *gorm.DB
	repo      *UserRepository
	factories *testutils.FactorySet
}

// SetupTest runs before each test with a fresh database
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteTestDB(suite.T())
	suite.repo = NewUserRepository(suite.db)
	suite.factories = testutils.NewFactorySet()
}

// TestCreateDuplicateEmail tests the unique email index
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	first := suite.factories.User.WithEmail("dev@test.com")
	suite.Require().NoError(suite.repo.Create(first))

	dup := suite.factories.User.WithEmail("dev@test.com")
	err := suite.repo.Create(dup)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByEmail tests lookup by the unique email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.WithEmail("dev@test.com")
	suite.Require().NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail("dev@test.com")
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)

	_, err = suite.repo.GetByEmail("missing@test.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAllOrdersByName tests the listing order
func (suite *UserRepositoryTestSuite) TestGetAllOrdersByName() {
	for _, name := range []string{"Charlie", "Alice", "Bob"} {
		suite.Require().NoError(suite.repo.Create(suite.factories.User.WithName(name)))
	}

	users, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Len(users, 3)
	suite.Equal("Alice", users[0].Name)
	suite.Equal("Bob", users[1].Name)
	suite.Equal("Charlie", users[2].Name)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
