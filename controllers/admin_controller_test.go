package controllers

import (
	"net/http"
	"testing"

	"github.com/Ashish12122003/Menumate-backend/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminCreatesFoodCourtAndManager(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db)

	admin := seedVendor(t, db, entity.RoleAdmin)
	owner := seedVendor(t, db, entity.RoleOwner)

	t.Run("NonAdminForbidden", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/admin/food-courts", vendorToken(t, owner), gin.H{"name": "Central"})
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	var courtID float64
	t.Run("CreateFoodCourt", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/admin/food-courts", vendorToken(t, admin), gin.H{
			"name": "Central", "location": "Bangkok",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		courtID = decodeBody(t, w)["data"].(map[string]any)["ID"].(float64)
		require.NotZero(t, courtID)
	})

	t.Run("CreateManagerVendor", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/admin/vendors", vendorToken(t, admin), gin.H{
			"email": "mgr@test.local", "password": "secret1",
			"name": "central manager", "foodCourtId": courtID,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var mgr entity.Vendor
		require.NoError(t, db.Where("email = ?", "mgr@test.local").First(&mgr).Error)
		assert.Equal(t, entity.RoleManager, mgr.Role)
		require.NotNil(t, mgr.ManagesFoodCourtID)
		assert.EqualValues(t, courtID, *mgr.ManagesFoodCourtID)
	})

	t.Run("UnknownFoodCourtRejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/admin/vendors", vendorToken(t, admin), gin.H{
			"email": "mgr2@test.local", "password": "secret1",
			"name": "nobody", "foodCourtId": 9999,
		})
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
