package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/cache"
	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/handler"
	pgRepo "github.com/newsdeskhq/newsdesk-backend/internal/adapter/repository/postgres"
	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/storage"
	"github.com/newsdeskhq/newsdesk-backend/internal/infrastructure/auth"
	"github.com/newsdeskhq/newsdesk-backend/internal/infrastructure/database"
	"github.com/newsdeskhq/newsdesk-backend/internal/infrastructure/middleware"
	"github.com/newsdeskhq/newsdesk-backend/internal/infrastructure/server"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/article"
	authUC "github.com/newsdeskhq/newsdesk-backend/internal/usecase/auth"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/category"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/comment"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/contact"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/homepage"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/newsletter"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/settings"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/upload"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testJWTSecret  = "test-secret-key-for-e2e-tests"
	apiBasePath    = "/api/v1"
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	Cache      *memoryCache
	BaseURL    string
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	migrationsPath := getMigrationsPath()
	err = database.RunMigrations(ctx, pool, migrationsPath)
	require.NoError(t, err)

	articleRepo := pgRepo.NewArticleRepo(pool)
	categoryRepo := pgRepo.NewCategoryRepo(pool)
	tagRepo := pgRepo.NewTagRepo(pool)
	authorRepo := pgRepo.NewAuthorRepo(pool)
	commentRepo := pgRepo.NewCommentRepo(pool)
	newsletterRepo := pgRepo.NewNewsletterRepo(pool)
	contactRepo := pgRepo.NewContactMessageRepo(pool)
	settingsRepo := pgRepo.NewSettingsRepo(pool)

	jwtSvc := auth.NewJWTService(testJWTSecret, 15*time.Minute)
	passwordHasher := auth.NewPasswordHasher(4) // Lower cost for faster tests

	// In-process stand-ins for Redis and S3
	store := newMemoryCache()
	stubStorage := &stubImageStorage{}
	stubProcessor := &stubImageProcessor{}

	logger := zap.NewNop()

	articleSvc := article.NewService(articleRepo, categoryRepo, tagRepo, commentRepo, authorRepo)
	homepageSvc := homepage.NewService(articleRepo, categoryRepo, tagRepo, store, 10*time.Minute, 15*time.Minute)
	authSvc := authUC.NewService(authorRepo, jwtSvc, passwordHasher)
	commentSvc := comment.NewService(commentRepo, articleRepo)
	newsletterSvc := newsletter.NewService(newsletterRepo)
	contactSvc := contact.NewService(contactRepo)
	categorySvc := category.NewService(categoryRepo)
	settingsSvc := settings.NewService(settingsRepo)
	uploadSvc := upload.NewService(articleRepo, authorRepo, stubProcessor, stubStorage, logger)

	router := server.NewRouter(server.RouterConfig{
		HomepageHandler:   handler.NewHomepageHandler(homepageSvc),
		ArticleHandler:    handler.NewArticleHandler(articleSvc),
		CategoryHandler:   handler.NewCategoryHandler(categorySvc),
		CommentHandler:    handler.NewCommentHandler(commentSvc),
		NewsletterHandler: handler.NewNewsletterHandler(newsletterSvc),
		ContactHandler:    handler.NewContactHandler(contactSvc),
		SettingsHandler:   handler.NewSettingsHandler(settingsSvc),
		AuthHandler:       handler.NewAuthHandler(authSvc),
		UploadHandler:     handler.NewUploadHandler(uploadSvc),
		AuthMiddleware:    middleware.NewAuthMiddleware(jwtSvc),
		Logger:            logger,
		Environment:       "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		Cache:     store,
		BaseURL:   ts.URL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Pool.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) request(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	fullPath := apiBasePath + path
	req, err := http.NewRequest(method, app.BaseURL+fullPath, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPost, path, body, headers)
}

func (app *TestApp) put(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPut, path, body, headers)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

// memoryCache is an in-process cache.Store so e2e tests need no Redis.

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]memoryEntry)}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, cache.ErrCacheMiss
	}
	return entry.value, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *memoryCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]memoryEntry)
}

// Stub implementations for image storage (avoids an S3 dependency)

type stubImageStorage struct{}

func (s *stubImageStorage) Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) error {
	return nil
}

func (s *stubImageStorage) Delete(ctx context.Context, key string) error {
	return nil
}

func (s *stubImageStorage) GetURL(key string) string {
	return "https://stub-storage.example.com/" + key
}

type stubImageProcessor struct{}

func (s *stubImageProcessor) Optimize(r io.Reader) (*storage.ProcessedImage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &storage.ProcessedImage{
		Data:        data,
		Width:       1200,
		Height:      800,
		Size:        int64(len(data)),
		ContentType: "image/jpeg",
	}, nil
}

func (s *stubImageProcessor) Thumbnail(r io.Reader) (*storage.ProcessedImage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &storage.ProcessedImage{
		Data:        data,
		Width:       400,
		Height:      267,
		Size:        int64(len(data)),
		ContentType: "image/jpeg",
	}, nil
}

// getMigrationsPath returns the absolute path to the migrations directory
func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
