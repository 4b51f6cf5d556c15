package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/woodcraft-ug/woodcraft-api/internal/application/analytics"
	"github.com/woodcraft-ug/woodcraft-api/internal/application/auth"
	"github.com/woodcraft-ug/woodcraft-api/internal/application/sales"
	"github.com/woodcraft-ug/woodcraft-api/internal/application/usecase"
	"github.com/woodcraft-ug/woodcraft-api/internal/domain/stock"
	apphttp "github.com/woodcraft-ug/woodcraft-api/internal/interfaces/http"
	"github.com/woodcraft-ug/woodcraft-api/internal/storage/memory"
)

// buildAPI wires the full route table over a fresh fixture store.
func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.New()
	thresholds := stock.DefaultThresholds()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(store.Users(), auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		ProductUC:   usecase.NewProductUseCase(store.Products(), thresholds.Showroom),
		WarehouseUC: usecase.NewWarehouseUseCase(store.WoodProducts(), thresholds.Warehouse),
		CustomerUC:  usecase.NewCustomerUseCase(store.Customers()),
		SupplierUC:  usecase.NewSupplierUseCase(store.Suppliers()),
		CheckoutUC:  sales.NewCheckoutUseCase(store.Products(), store.WoodProducts(), store.Sales(), store.Customers(), 5),
		DashboardUC: appanalytics.NewDashboardUseCase(store.Sales(), store.Products(), store.WoodProducts(), thresholds),
		ReportsUC:   appanalytics.NewReportsUseCase(store.Sales(), store.Products(), store.WoodProducts(), thresholds),
		JWTSecret:   testJWTSecret,
	})
	return app
}

// login signs in a seeded user and returns the bearer header value.
func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return "Bearer " + out.Token
}

func get(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestLogin_SeededManager(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app, "grace@woodcraft.ug", "manager123")
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	app := buildAPI(t)
	body, _ := json.Marshal(map[string]string{"email": "grace@woodcraft.ug", "password": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProducts_RequireToken(t *testing.T) {
	app := buildAPI(t)
	resp := get(t, app, "/api/products", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProducts_ListWithToken(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app, "peter@woodcraft.ug", "attendant123")

	resp := get(t, app, "/api/products?quality=premium", token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 2, out.Total)
}

func TestProductCreate_AttendantForbidden(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app, "peter@woodcraft.ug", "attendant123")

	body, _ := json.Marshal(map[string]interface{}{"name": "Office Desk", "type": "table"})
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDashboard_RoleAwareRevenue(t *testing.T) {
	app := buildAPI(t)

	managerResp := get(t, app, "/api/dashboard", login(t, app, "grace@woodcraft.ug", "manager123"))
	defer managerResp.Body.Close()
	require.Equal(t, http.StatusOK, managerResp.StatusCode)
	var managerOut map[string]interface{}
	require.NoError(t, json.NewDecoder(managerResp.Body).Decode(&managerOut))
	assert.Contains(t, managerOut, "total_revenue")

	attendantResp := get(t, app, "/api/dashboard", login(t, app, "peter@woodcraft.ug", "attendant123"))
	defer attendantResp.Body.Close()
	require.Equal(t, http.StatusOK, attendantResp.StatusCode)
	var attendantOut map[string]interface{}
	require.NoError(t, json.NewDecoder(attendantResp.Body).Decode(&attendantOut))
	assert.NotContains(t, attendantOut, "total_revenue", "revenue cards are manager only")
}

func TestReports_ManagerOnly(t *testing.T) {
	app := buildAPI(t)

	resp := get(t, app, "/api/reports/overview", login(t, app, "peter@woodcraft.ug", "attendant123"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	managerResp := get(t, app, "/api/reports/overview", login(t, app, "grace@woodcraft.ug", "manager123"))
	defer managerResp.Body.Close()
	assert.Equal(t, http.StatusOK, managerResp.StatusCode)
}

func TestCompleteSale_EndToEnd(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app, "peter@woodcraft.ug", "attendant123")

	body, _ := json.Marshal(map[string]interface{}{
		"customer_name":  "Walk-in",
		"customer_phone": "+256 700 000 000",
		"items":          []map[string]interface{}{{"product_id": "prod-005", "quantity": 2}},
		"delivery":       false,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/sales", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out struct {
		Sale struct {
			AttendantName string `json:"attendant_name"`
		} `json:"sale"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Peter Okello", out.Sale.AttendantName, "attendant comes from the token")
	assert.Contains(t, out.Message, "UGX 170,000")
}
