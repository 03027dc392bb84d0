// internal/services/cart_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/shopsphere/commerce-backend/internal/models"
)

type CartServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *CartService
	user    *models.User
	product *models.Product
}

func (s *CartServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.service = NewCartService(s.db)
	s.user = seedUser(s.T(), s.db, "cartuser")

	category := seedCategory(s.T(), s.db, "Footwear")
	s.product = seedProduct(s.T(), s.db, category.ID, "Leather Boots", 120.00, nil)
}

func (s *CartServiceTestSuite) TestGetOrCreateCartIsIdempotent() {
	first, err := s.service.GetOrCreateCart(s.user.ID)
	s.Require().NoError(err)

	second, err := s.service.GetOrCreateCart(s.user.ID)
	s.Require().NoError(err)

	s.Equal(first.ID, second.ID)

	var count int64
	s.Require().NoError(s.db.Model(&models.Cart{}).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *CartServiceTestSuite) TestAddItemCreatesLine() {
	item, err := s.service.AddItem(s.user.ID, s.product.ID, 2)
	s.Require().NoError(err)

	s.Equal(2, item.Quantity)
	s.Equal(s.product.ID, item.ProductID)
}

func (s *CartServiceTestSuite) TestAddSameProductTwiceAccumulatesQuantity() {
	_, err := s.service.AddItem(s.user.ID, s.product.ID, 2)
	s.Require().NoError(err)

	item, err := s.service.AddItem(s.user.ID, s.product.ID, 3)
	s.Require().NoError(err)
	s.Equal(5, item.Quantity)

	var count int64
	s.Require().NoError(s.db.Model(&models.CartItem{}).Count(&count).Error)
	s.Equal(int64(1), count, "duplicate adds must land on one row")
}

func (s *CartServiceTestSuite) TestAddItemRejectsZeroQuantity() {
	_, err := s.service.AddItem(s.user.ID, s.product.ID, 0)
	s.Require().ErrorIs(err, ErrInvalidState)
}

func (s *CartServiceTestSuite) TestAddItemUnknownProduct() {
	_, err := s.service.AddItem(s.user.ID, uuid.New(), 1)
	s.Require().ErrorIs(err, ErrNotFound)
}

func (s *CartServiceTestSuite) TestUpdateItemSetsAbsoluteQuantity() {
	item, err := s.service.AddItem(s.user.ID, s.product.ID, 2)
	s.Require().NoError(err)

	updated, err := s.service.UpdateItem(s.user.ID, item.ID, 7)
	s.Require().NoError(err)
	s.Equal(7, updated.Quantity)
}

func (s *CartServiceTestSuite) TestUpdateItemRejectsZeroQuantity() {
	item, err := s.service.AddItem(s.user.ID, s.product.ID, 2)
	s.Require().NoError(err)

	_, err = s.service.UpdateItem(s.user.ID, item.ID, 0)
	s.Require().ErrorIs(err, ErrInvalidState)
}

func (s *CartServiceTestSuite) TestUpdateForeignItemIsNotFound() {
	item, err := s.service.AddItem(s.user.ID, s.product.ID, 2)
	s.Require().NoError(err)

	other := seedUser(s.T(), s.db, "otheruser")
	_, err = s.service.UpdateItem(other.ID, item.ID, 3)
	s.Require().ErrorIs(err, ErrNotFound)
}

func (s *CartServiceTestSuite) TestRemoveItem() {
	item, err := s.service.AddItem(s.user.ID, s.product.ID, 2)
	s.Require().NoError(err)

	s.Require().NoError(s.service.RemoveItem(s.user.ID, item.ID))

	var count int64
	s.Require().NoError(s.db.Model(&models.CartItem{}).Count(&count).Error)
	s.Equal(int64(0), count)
}

func (s *CartServiceTestSuite) TestCartDetailTotalUsesDiscountPrice() {
	category := seedCategory(s.T(), s.db, "Outerwear")
	discounted := seedProduct(s.T(), s.db, category.ID, "Rain Jacket", 200.00, floatPtr(150.00))

	_, err := s.service.AddItem(s.user.ID, s.product.ID, 2) // 2 x 120
	s.Require().NoError(err)
	_, err = s.service.AddItem(s.user.ID, discounted.ID, 1) // 1 x 150, not 200
	s.Require().NoError(err)

	detail, err := s.service.GetCartDetail(s.user.ID)
	s.Require().NoError(err)

	s.Len(detail.Items, 2)
	s.InDelta(390.00, detail.Total, 0.001)
}

func TestCartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}
