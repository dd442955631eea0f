package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/torianyap/e-commerce-server-1/models"
	"gorm.io/gorm"
)

func seedCheckoutFixture(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&models.Product{ID: 1, Name: "ProductA", ImageURL: "https://img.example.com/a.png", Price: 100, Stock: 5}).Error)
	require.NoError(t, db.Create(&models.Product{ID: 2, Name: "ProductB", ImageURL: "https://img.example.com/b.png", Price: 40, Stock: 3}).Error)
	require.NoError(t, db.Create(&models.Cart{UserID: 1, ProductID: 1, Quantity: 2}).Error)
	require.NoError(t, db.Create(&models.Cart{UserID: 1, ProductID: 2, Quantity: 1}).Error)
}

func TestCheckout(t *testing.T) {
	db := setupDB(t)
	seedCheckoutFixture(t, db)
	r := setupRouter(db, 1)

	// The client total is irrelevant to the outcome.
	w := doJSON(t, r, http.MethodPost, "/cart/checkout", gin.H{"total": 999999})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Checked out")

	// Stock decreased by the purchased quantities.
	var a, b models.Product
	require.NoError(t, db.First(&a, 1).Error)
	require.NoError(t, db.First(&b, 2).Error)
	assert.Equal(t, 3, a.Stock)
	assert.Equal(t, 2, b.Stock)

	// One history entry per former cart line.
	var history []models.History
	require.NoError(t, db.Where("user_id = ?", 1).Order("product_id").Find(&history).Error)
	require.Len(t, history, 2)
	assert.Equal(t, 2, history[0].Quantity)
	assert.Equal(t, 1, history[1].Quantity)

	// The cart is empty afterwards.
	var count int64
	db.Model(&models.Cart{}).Where("user_id = ?", 1).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&models.Product{ID: 1, Name: "ProductA", ImageURL: "https://img.example.com/a.png", Price: 100, Stock: 5}).Error)
	r := setupRouter(db, 1)

	w := doJSON(t, r, http.MethodPost, "/cart/checkout", gin.H{"total": 100})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Checkout failed")

	// Nothing was mutated.
	var product models.Product
	require.NoError(t, db.First(&product, 1).Error)
	assert.Equal(t, 5, product.Stock)

	var historyCount int64
	db.Model(&models.History{}).Count(&historyCount)
	assert.Equal(t, int64(0), historyCount)
}

func TestCheckoutWithoutBody(t *testing.T) {
	db := setupDB(t)
	seedCheckoutFixture(t, db)
	r := setupRouter(db, 1)

	w := doJSON(t, r, http.MethodPost, "/cart/checkout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckoutDoesNotTouchOtherUsers(t *testing.T) {
	db := setupDB(t)
	seedCheckoutFixture(t, db)
	require.NoError(t, db.Create(&models.Cart{UserID: 2, ProductID: 1, Quantity: 1}).Error)
	r := setupRouter(db, 1)

	w := doJSON(t, r, http.MethodPost, "/cart/checkout", gin.H{"total": 240})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Cart{}).Where("user_id = ?", 2).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCheckoutFeedBroadcast(t *testing.T) {
	db := setupDB(t)
	seedCheckoutFixture(t, db)
	r := setupRouter(db, 1)
	r.GET("/admin/checkouts/ws", CheckoutFeedHandler)

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/admin/checkouts/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Give the server a moment to register the client.
	time.Sleep(100 * time.Millisecond)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/cart/checkout", strings.NewReader(`{"total":0}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event CheckoutEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, uint(1), event.UserID)
	assert.Equal(t, 240, event.Total) // 2*100 + 1*40, computed server-side
	assert.Len(t, event.Items, 2)
	assert.NotEmpty(t, event.Reference)
}
