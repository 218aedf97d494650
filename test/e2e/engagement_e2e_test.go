package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2E_Newsletter(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	t.Run("subscribes a reader", func(t *testing.T) {
		resp, err := app.post("/newsletter/subscribe", map[string]string{
			"email": "reader@example.com",
		}, nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			Email    string `json:"email"`
			IsActive bool   `json:"is_active"`
		}
		parseResponse(t, resp, &body)
		assert.Equal(t, "reader@example.com", body.Email)
		assert.True(t, body.IsActive)
	})

	t.Run("rejects a second subscription", func(t *testing.T) {
		resp, err := app.post("/newsletter/subscribe", map[string]string{
			"email": "Reader@Example.com",
		}, nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusConflict, resp.StatusCode)

		var body errorBody
		parseResponse(t, resp, &body)
		assert.Equal(t, "ALREADY_SUBSCRIBED", body.Code)
	})

	t.Run("unsubscribes and allows resubscribing", func(t *testing.T) {
		resp, err := app.post("/newsletter/unsubscribe", map[string]string{
			"email": "reader@example.com",
		}, nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()

		resp, err = app.post("/newsletter/subscribe", map[string]string{
			"email": "reader@example.com",
		}, nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestE2E_Contact(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	token, _ := registerAndLogin(t, app, "newsroom@example.com")

	t.Run("accepts a message and lists it for staff", func(t *testing.T) {
		resp, err := app.post("/contact", map[string]string{
			"name":    "Alice",
			"email":   "alice@example.com",
			"subject": "Correction",
			"message": "The figure in paragraph three is outdated.",
		}, nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		resp, err = app.get("/contact", authHeader(token))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var list struct {
			Messages []struct {
				ID     string `json:"id"`
				IsRead bool   `json:"is_read"`
			} `json:"messages"`
		}
		parseResponse(t, resp, &list)
		require.Len(t, list.Messages, 1)
		assert.False(t, list.Messages[0].IsRead)

		resp, err = app.post("/contact/"+list.Messages[0].ID+"/read", nil, authHeader(token))
		require.NoError(t, err)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("hides the inbox from anonymous readers", func(t *testing.T) {
		resp, err := app.get("/contact", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestE2E_Settings(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	token, _ := registerAndLogin(t, app, "newsroom@example.com")

	type settingsBody struct {
		SiteName        string `json:"site_name"`
		SiteDescription string `json:"site_description"`
	}

	t.Run("serves defaults before anything is saved", func(t *testing.T) {
		resp, err := app.get("/settings", nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body settingsBody
		parseResponse(t, resp, &body)
		assert.Equal(t, "News Portal", body.SiteName)
	})

	t.Run("persists updates", func(t *testing.T) {
		resp, err := app.put("/settings", map[string]string{
			"site_name":        "The Harbor Times",
			"site_description": "Local news, daily.",
		}, authHeader(token))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		resp, err = app.get("/settings", nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body settingsBody
		parseResponse(t, resp, &body)
		assert.Equal(t, "The Harbor Times", body.SiteName)
		assert.Equal(t, "Local news, daily.", body.SiteDescription)
	})
}
