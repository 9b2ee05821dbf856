package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Ashish12122003/Menumate-backend/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCompletedOrder(t *testing.T, db *gorm.DB, shop *entity.Shop, user *entity.User) *entity.Order {
	t.Helper()
	o := &entity.Order{
		ShopID:      shop.ID,
		UserID:      &user.ID,
		TableNumber: "T1",
		TotalAmount: 25000,
		Status:      entity.OrderCompleted,
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

func TestReviewFlow(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)

	owner := seedVendor(t, db, entity.RoleOwner)
	shop := seedShop(t, db, owner)
	u1 := seedUser(t, db, "u1")
	u2 := seedUser(t, db, "u2")
	order := seedCompletedOrder(t, db, shop, u1)

	reviewPath := fmt.Sprintf("/api/orders/%d/review", order.ID)

	t.Run("FirstReviewAccepted", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, reviewPath, userToken(t, u1), gin.H{
			"rating": 5, "comment": "great",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		body := decodeBody(t, w)
		assert.Equal(t, "Thank you for your review!", body["message"])
	})

	t.Run("SecondReviewConflicts", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, reviewPath, userToken(t, u1), gin.H{"rating": 4})
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		body := decodeBody(t, w)
		assert.Equal(t, "You have already submitted a review for this order.", body["message"])
	})

	t.Run("OtherCustomerForbidden", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, reviewPath, userToken(t, u2), gin.H{"rating": 1})
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	t.Run("PendingOrderRejected", func(t *testing.T) {
		pending := &entity.Order{ShopID: shop.ID, UserID: &u2.ID, TableNumber: "T2", Status: entity.OrderPending}
		require.NoError(t, db.Create(pending).Error)

		w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/orders/%d/review", pending.ID), userToken(t, u2), gin.H{"rating": 3})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "You can only review completed orders.", decodeBody(t, w)["message"])
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, reviewPath, userToken(t, u2), gin.H{"rating": 6})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UnknownOrderNotFound", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/orders/9999/review", userToken(t, u1), gin.H{"rating": 5})
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("VendorTokenRejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, reviewPath, vendorToken(t, owner), gin.H{"rating": 5})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("PublicListIncludesAggregate", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/public/shops/%d/reviews", shop.ID), "", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := decodeBody(t, w)
		assert.EqualValues(t, 1, body["reviewCount"])
		assert.EqualValues(t, 5, body["averageRating"])
	})
}
