package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cashtrack/config"
	"cashtrack/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func initJWTTestConfig() {
	config.GlobalConfig = &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		JWT:    config.JWTConfig{Secret: "test-jwt-secret-key"},
	}
}

func TestGenerateToken(t *testing.T) {
	initJWTTestConfig()
	defer func() { config.GlobalConfig = nil }()

	InitJWT(config.GlobalConfig)

	token, err := GenerateToken(1, "owner@example.com", 24*time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, len(token), 20)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "owner@example.com", claims.Email)
}

func TestParseToken(t *testing.T) {
	initJWTTestConfig()
	defer func() { config.GlobalConfig = nil }()

	InitJWT(config.GlobalConfig)

	token, _ := GenerateToken(100, "owner@example.com", time.Hour)
	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(100), claims.UserID)

	_, err = ParseToken("")
	assert.Error(t, err)

	_, err = ParseToken("not.a.valid.jwt")
	assert.Error(t, err)
	_, err = ParseToken("eyJhbGciOiJmb29iIn0.xxxx.yyyy")
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	initJWTTestConfig()
	defer func() { config.GlobalConfig = nil }()

	InitJWT(config.GlobalConfig)

	token, err := GenerateToken(5, "owner@example.com", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestJWTAuth(t *testing.T) {
	initJWTTestConfig()
	defer func() { config.GlobalConfig = nil }()

	InitJWT(config.GlobalConfig)
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(JWTAuth())
	router.GET("/protected", func(c *gin.Context) {
		id := GetCurrentUserID(c)
		c.String(200, "id:%d", id)
	})

	// no token
	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Please login")

	// not a Bearer header
	req2 := httptest.NewRequest("GET", "/protected", nil)
	req2.Header.Set("Authorization", "Basic xyz")
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)

	// Bearer with nothing after it
	req3 := httptest.NewRequest("GET", "/protected", nil)
	req3.Header.Set("Authorization", "Bearer ")
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, req3)
	assert.Equal(t, http.StatusUnauthorized, w3.Code)

	// valid token
	token, _ := GenerateToken(42, "owner@example.com", time.Hour)
	req4 := httptest.NewRequest("GET", "/protected", nil)
	req4.Header.Set("Authorization", "Bearer "+token)
	w4 := httptest.NewRecorder()
	router.ServeHTTP(w4, req4)
	assert.Equal(t, 200, w4.Code)
	assert.Equal(t, "id:42", w4.Body.String())
}

func setupUserMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func TestRequireActiveUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userColumns := []string{
		"id", "business_name", "business_type", "email", "password", "is_active", "created_at", "updated_at",
	}

	newRouter := func(userID uint) *gin.Engine {
		router := gin.New()
		router.Use(func(c *gin.Context) {
			c.Set("userID", userID)
			c.Next()
		})
		router.Use(RequireActiveUser())
		router.GET("/me", func(c *gin.Context) {
			user := GetCurrentUser(c)
			c.String(200, user.Email)
		})
		return router
	}

	t.Run("active user passes", func(t *testing.T) {
		mock, cleanup := setupUserMockDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT .* FROM `users`").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(1, "Shop", "retail", "owner@example.com", "hash", true, time.Now(), time.Now()))

		req := httptest.NewRequest("GET", "/me", nil)
		w := httptest.NewRecorder()
		newRouter(1).ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.Equal(t, "owner@example.com", w.Body.String())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deleted account", func(t *testing.T) {
		mock, cleanup := setupUserMockDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT .* FROM `users`").
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows(userColumns))

		req := httptest.NewRequest("GET", "/me", nil)
		w := httptest.NewRecorder()
		newRouter(2).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "User no longer exists")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deactivated account", func(t *testing.T) {
		mock, cleanup := setupUserMockDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT .* FROM `users`").
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(3, "Shop", "retail", "owner@example.com", "hash", false, time.Now(), time.Now()))

		req := httptest.NewRequest("GET", "/me", nil)
		w := httptest.NewRecorder()
		newRouter(3).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "User account is inactive")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, uint(0), GetCurrentUserID(c))

	c.Set("userID", uint(99))
	assert.Equal(t, uint(99), GetCurrentUserID(c))
}
