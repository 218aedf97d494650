package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileBody struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Bio   string `json:"bio"`
	Email string `json:"email"`
}

type loginBody struct {
	AccessToken string      `json:"access_token"`
	Author      profileBody `json:"author"`
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func registerAndLogin(t *testing.T, app *TestApp, email string) (string, profileBody) {
	t.Helper()

	resp, err := app.post("/auth/register", map[string]string{
		"email":    email,
		"password": "password123",
		"name":     "Sam Reporter",
	}, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.post("/auth/login", map[string]string{
		"email":    email,
		"password": "password123",
	}, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login loginBody
	parseResponse(t, resp, &login)
	require.NotEmpty(t, login.AccessToken)
	return login.AccessToken, login.Author
}

func TestE2E_Auth(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	t.Run("register, login and fetch profile", func(t *testing.T) {
		token, author := registerAndLogin(t, app, "sam@example.com")
		assert.Equal(t, "sam@example.com", author.Email)

		resp, err := app.get("/auth/me", authHeader(token))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var profile profileBody
		parseResponse(t, resp, &profile)
		assert.Equal(t, author.ID, profile.ID)
		assert.Equal(t, "Sam Reporter", profile.Name)
	})

	t.Run("rejects duplicate registration", func(t *testing.T) {
		resp, err := app.post("/auth/register", map[string]string{
			"email":    "sam@example.com",
			"password": "password123",
			"name":     "Sam Again",
		}, nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusConflict, resp.StatusCode)

		var body errorBody
		parseResponse(t, resp, &body)
		assert.Equal(t, "EMAIL_TAKEN", body.Code)
	})

	t.Run("rejects wrong credentials", func(t *testing.T) {
		resp, err := app.post("/auth/login", map[string]string{
			"email":    "sam@example.com",
			"password": "not-the-password",
		}, nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var body errorBody
		parseResponse(t, resp, &body)
		assert.Equal(t, "INVALID_CREDENTIALS", body.Code)
		resp.Body.Close()
	})

	t.Run("requires a token for the profile", func(t *testing.T) {
		resp, err := app.get("/auth/me", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("updates the profile", func(t *testing.T) {
		token, _ := registerAndLogin(t, app, "editor@example.com")

		resp, err := app.put("/auth/me", map[string]string{
			"bio": "Covers city politics.",
		}, authHeader(token))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var profile profileBody
		parseResponse(t, resp, &profile)
		assert.Equal(t, "Covers city politics.", profile.Bio)
	})
}
