package services

import (
	"testing"

	"github.com/lawyertrader999-svg/personal-finance-app/internal/models"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/repositories"
	"github.com/lawyertrader999-svg/personal-finance-app/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	categoryRepo *repository_mocks.MockCategoryRepositoryInterface
	service      CategoryServiceInterface
	userID       uuid.UUID
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.userID = uuid.New()

	s.service = NewCategoryService(s.categoryRepo, stubMetrics{})
}

func (s *CategoryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CategoryServiceTestSuite) TestCreateCategory_TrimsName() {
	s.categoryRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(category *models.Category) error {
			s.Equal("Groceries", category.Name)
			s.Equal(s.userID, category.UserID)
			return nil
		})

	category, err := s.service.CreateCategory(s.userID, "  Groceries  ", models.KindExpense)
	s.Require().NoError(err)
	s.Equal("Groceries", category.Name)
}

func (s *CategoryServiceTestSuite) TestCreateCategory_BlankName() {
	_, err := s.service.CreateCategory(s.userID, "   ", models.KindExpense)
	s.ErrorIs(err, models.ErrNameRequired)
}

func (s *CategoryServiceTestSuite) TestCreateCategory_InvalidKind() {
	_, err := s.service.CreateCategory(s.userID, "Groceries", "transfer")
	s.ErrorIs(err, models.ErrInvalidKind)
}

func (s *CategoryServiceTestSuite) TestListCategories_EmptyIsNotNil() {
	s.categoryRepo.EXPECT().ListByUserID(s.userID).Return(nil, nil)

	categories, err := s.service.ListCategories(s.userID)
	s.NoError(err)
	s.NotNil(categories)
	s.Empty(categories)
}

func (s *CategoryServiceTestSuite) TestDeleteCategory_RefusedWhileReferenced() {
	id := uuid.New()
	s.categoryRepo.EXPECT().CountReferences(id, s.userID).Return(int64(3), nil)

	s.ErrorIs(s.service.DeleteCategory(id, s.userID), ErrCategoryInUse)
}

func (s *CategoryServiceTestSuite) TestDeleteCategory() {
	id := uuid.New()
	s.categoryRepo.EXPECT().CountReferences(id, s.userID).Return(int64(0), nil)
	s.categoryRepo.EXPECT().Delete(id, s.userID).Return(nil)

	s.NoError(s.service.DeleteCategory(id, s.userID))
}

func (s *CategoryServiceTestSuite) TestDeleteCategory_NotFound() {
	id := uuid.New()
	s.categoryRepo.EXPECT().CountReferences(id, s.userID).Return(int64(0), nil)
	s.categoryRepo.EXPECT().Delete(id, s.userID).Return(repositories.ErrCategoryNotFound)

	s.ErrorIs(s.service.DeleteCategory(id, s.userID), repositories.ErrCategoryNotFound)
}
