package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type categoryBody struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type articleBody struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Status     string `json:"status"`
	IsBreaking bool   `json:"is_breaking"`
	ViewsCount int    `json:"views_count"`
}

type commentBody struct {
	ID       string        `json:"id"`
	Content  string        `json:"content"`
	Replies  []commentBody `json:"replies"`
	Approved bool          `json:"approved"`
}

type articleDetailBody struct {
	articleBody
	Content     string        `json:"content"`
	ContentHTML string        `json:"content_html"`
	ReadingTime int           `json:"reading_time"`
	Related     []articleBody `json:"related_articles"`
	Comments    []commentBody `json:"comments"`
}

type articleListBody struct {
	Articles   []articleBody `json:"articles"`
	Pagination struct {
		TotalItems int `json:"total_items"`
	} `json:"pagination"`
}

func createCategory(t *testing.T, app *TestApp, token, name string) categoryBody {
	t.Helper()
	resp, err := app.post("/categories", map[string]string{"name": name}, authHeader(token))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var cat categoryBody
	parseResponse(t, resp, &cat)
	return cat
}

func createArticle(t *testing.T, app *TestApp, token string, body map[string]any) articleBody {
	t.Helper()
	resp, err := app.post("/articles", body, authHeader(token))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var a articleBody
	parseResponse(t, resp, &a)
	return a
}

func TestE2E_Publishing(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	token, _ := registerAndLogin(t, app, "newsroom@example.com")
	politics := createCategory(t, app, token, "Politics")

	t.Run("published articles are listed and readable", func(t *testing.T) {
		a := createArticle(t, app, token, map[string]any{
			"title":       "Council Approves Budget",
			"content":     "The council approved the budget in a late session.",
			"category_id": politics.ID,
			"tags":        []string{"budget", "council"},
			"publish":     true,
		})
		assert.Equal(t, "published", a.Status)
		assert.Equal(t, "council-approves-budget", a.Slug)

		resp, err := app.get("/articles", nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var list articleListBody
		parseResponse(t, resp, &list)
		require.Len(t, list.Articles, 1)
		assert.Equal(t, a.ID, list.Articles[0].ID)

		resp, err = app.get("/articles/council-approves-budget", nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var detail articleDetailBody
		parseResponse(t, resp, &detail)
		assert.Equal(t, a.ID, detail.ID)
		assert.NotEmpty(t, detail.ContentHTML)
		assert.GreaterOrEqual(t, detail.ReadingTime, 1)
	})

	t.Run("each read increments the view counter", func(t *testing.T) {
		createArticle(t, app, token, map[string]any{
			"title":       "Harbor Expansion Approved",
			"content":     "Work begins next spring.",
			"category_id": politics.ID,
			"publish":     true,
		})

		var first, second articleDetailBody

		resp, err := app.get("/articles/harbor-expansion-approved", nil)
		require.NoError(t, err)
		parseResponse(t, resp, &first)

		resp, err = app.get("/articles/harbor-expansion-approved", nil)
		require.NoError(t, err)
		parseResponse(t, resp, &second)

		assert.Equal(t, first.ViewsCount+1, second.ViewsCount)
	})

	t.Run("drafts are hidden from readers", func(t *testing.T) {
		draft := createArticle(t, app, token, map[string]any{
			"title":       "Unfinished Story",
			"content":     "Notes only.",
			"category_id": politics.ID,
		})
		assert.Equal(t, "draft", draft.Status)

		resp, err := app.get("/articles/unfinished-story", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()

		resp, err = app.post("/articles/"+draft.ID+"/publish", nil, authHeader(token))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		resp, err = app.get("/articles/unfinished-story", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("only the author can publish", func(t *testing.T) {
		otherToken, _ := registerAndLogin(t, app, "freelancer@example.com")

		draft := createArticle(t, app, token, map[string]any{
			"title":       "Exclusive Story",
			"content":     "Held for review.",
			"category_id": politics.ID,
		})

		resp, err := app.post("/articles/"+draft.ID+"/publish", nil, authHeader(otherToken))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("creating an article requires a token", func(t *testing.T) {
		resp, err := app.post("/articles", map[string]any{
			"title":       "Anonymous Story",
			"content":     "No byline.",
			"category_id": politics.ID,
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestE2E_Comments(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	token, _ := registerAndLogin(t, app, "newsroom@example.com")
	politics := createCategory(t, app, token, "Politics")
	a := createArticle(t, app, token, map[string]any{
		"title":       "Budget Vote Tonight",
		"content":     "The vote is expected after nine.",
		"category_id": politics.ID,
		"publish":     true,
	})

	t.Run("comments are held until approved", func(t *testing.T) {
		resp, err := app.post("/articles/"+a.ID+"/comments", map[string]string{
			"name":    "Alice",
			"email":   "alice@example.com",
			"content": "Finally some progress.",
		}, nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var cm commentBody
		parseResponse(t, resp, &cm)
		assert.False(t, cm.Approved)

		var detail articleDetailBody
		resp, err = app.get("/articles/"+a.Slug, nil)
		require.NoError(t, err)
		parseResponse(t, resp, &detail)
		assert.Empty(t, detail.Comments)

		resp, err = app.post("/comments/"+cm.ID+"/approve", nil, authHeader(token))
		require.NoError(t, err)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()

		resp, err = app.get("/articles/"+a.Slug, nil)
		require.NoError(t, err)
		parseResponse(t, resp, &detail)
		require.Len(t, detail.Comments, 1)
		assert.Equal(t, "Finally some progress.", detail.Comments[0].Content)
	})

	t.Run("approving requires a token", func(t *testing.T) {
		resp, err := app.post("/comments/"+a.ID+"/approve", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestE2E_Homepage(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	token, _ := registerAndLogin(t, app, "newsroom@example.com")
	politics := createCategory(t, app, token, "Politics")

	type homepageBody struct {
		FeaturedArticles []articleBody  `json:"featured_articles"`
		BreakingNews     []articleBody  `json:"breaking_news"`
		Categories       []categoryBody `json:"categories"`
	}

	fetchHomepage := func(t *testing.T) homepageBody {
		t.Helper()
		resp, err := app.get("/homepage", nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body homepageBody
		parseResponse(t, resp, &body)
		return body
	}

	// Prime the cache before anything is published.
	empty := fetchHomepage(t)
	require.Empty(t, empty.FeaturedArticles)

	createArticle(t, app, token, map[string]any{
		"title":       "Front Page Story",
		"content":     "Top of the site.",
		"category_id": politics.ID,
		"is_featured": true,
		"is_breaking": true,
		"publish":     true,
	})

	t.Run("serves the cached aggregate until it expires", func(t *testing.T) {
		body := fetchHomepage(t)
		assert.Empty(t, body.FeaturedArticles)
	})

	t.Run("rebuilds after the cache entry is dropped", func(t *testing.T) {
		app.Cache.Flush()

		body := fetchHomepage(t)
		require.Len(t, body.FeaturedArticles, 1)
		assert.Equal(t, "Front Page Story", body.FeaturedArticles[0].Title)
		require.Len(t, body.BreakingNews, 1)
		require.Len(t, body.Categories, 1)
		assert.Equal(t, "politics", body.Categories[0].Slug)
	})
}
