package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-movement-report/internal/application/dto"
	apphttp "github.com/jhoicas/stock-movement-report/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/stock-movement-report/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "inventory-pro-test"
	testExpMin    = 60
)

// tokenForRole genera el header Authorization con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

// guardedApp protege una ruta de escritura igual que POST /api/stock-periods.
func guardedApp() *fiber.App {
	app := fiber.New()
	app.Post("/periods",
		apphttp.AuthMiddleware(testJWTSecret, testIssuer),
		apphttp.RequireRole(apphttp.RoleAdmin, apphttp.RoleBodeguero),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id":    apphttp.GetUserID(c),
				"company_id": apphttp.GetCompanyID(c),
				"role":       apphttp.GetRole(c),
			})
		},
	)
	return app
}

func post(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/periods", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireRole_MatrizDeEscritura(t *testing.T) {
	cases := []struct {
		role string
		want int
	}{
		{apphttp.RoleAdmin, http.StatusOK},
		{apphttp.RoleBodeguero, http.StatusOK},
		{apphttp.RoleVendedor, http.StatusForbidden},
		{"auditor", http.StatusForbidden},
	}
	app := guardedApp()
	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			resp := post(t, app, tokenForRole(t, tc.role))
			defer resp.Body.Close()
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestAuthMiddleware_CargaClaimsEnLocals(t *testing.T) {
	resp := post(t, guardedApp(), tokenForRole(t, apphttp.RoleBodeguero))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testCompanyID, body["company_id"])
	assert.Equal(t, apphttp.RoleBodeguero, body["role"])
}

func TestAuthMiddleware_RechazosDevuelven401ConCodigo(t *testing.T) {
	cases := []struct {
		name   string
		header string
		code   string
	}{
		{"sin header", "", "MISSING_TOKEN"},
		{"sin prefijo Bearer", "Token abc", "INVALID_TOKEN"},
		{"token malformado", "Bearer token.invalido.aqui", "INVALID_TOKEN"},
		{"token sin rol", tokenForRole(t, ""), "MISSING_ROLE"},
	}
	app := guardedApp()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := post(t, app, tc.header)
			defer resp.Body.Close()
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.code, body.Code)
		})
	}
}
