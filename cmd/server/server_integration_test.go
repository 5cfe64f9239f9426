package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brand-connector.backend/internal/infrastructure/repositories"
	"brand-connector.backend/pkg/jwt"
	"brand-connector.backend/pkg/redis"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := baseTestConfig(t)
	db, err := openDB(cfg.Database)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, repositories.AutoMigrate(db))

	jwtService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.AccessExpiry)
	require.NoError(t, err)

	return buildRouter(cfg, db, jwtService)
}

func call(t *testing.T, r *gin.Engine, method, path, token string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

// signupAndLogin registers a user and returns its id and bearer token
func signupAndLogin(t *testing.T, r *gin.Engine, name, email, role, tag, location string) (string, string) {
	t.Helper()
	rec := call(t, r, http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "pw",
		"role":     role,
		"tag":      tag,
		"location": location,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	userID := decode[map[string]interface{}](t, rec)["user_id"].(string)

	rec = call(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": "pw",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	login := decode[map[string]interface{}](t, rec)
	assert.Equal(t, "bearer", login["token_type"])
	return userID, login["access_token"].(string)
}

func TestServer_BrandSignupLoginUpdate(t *testing.T) {
	r := newTestServer(t)
	userID, token := signupAndLogin(t, r, "Acme", "a@x.com", "brand", "", "")

	rec := call(t, r, http.MethodPut, "/api/v1/brands/update", token, map[string]string{
		"name": "Acme Corp",
		"tag":  "fashion",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	brand := decode[map[string]interface{}](t, rec)
	assert.Equal(t, "Acme Corp", brand["name"])
	assert.Equal(t, "fashion", brand["tag"])
	assert.Equal(t, userID, brand["user_id"])

	// Disjoint partial payloads merge instead of resetting earlier fields
	rec = call(t, r, http.MethodPut, "/api/v1/brands/update", token, map[string]string{
		"location":    "Paris",
		"event_start": "2026-05-01",
		"event_end":   "2026-05-03",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	merged := decode[map[string]interface{}](t, rec)
	assert.Equal(t, brand["id"], merged["id"])
	assert.Equal(t, "Acme Corp", merged["name"])
	assert.Equal(t, "fashion", merged["tag"])
	assert.Equal(t, "Paris", merged["location"])
	assert.Equal(t, "2026-05-01", merged["event_start"])

	rec = call(t, r, http.MethodGet, "/api/v1/brands/filter?event_date=2026-05-02&name=acme", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "1", rec.Header().Get("X-Total-Count"))
	listed := decode[[]map[string]interface{}](t, rec)
	require.Len(t, listed, 1)
	assert.Equal(t, brand["id"], listed[0]["id"])

	rec = call(t, r, http.MethodGet, "/api/v1/brands/filter?event_date=2026-06-01", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]map[string]interface{}](t, rec))

	rec = call(t, r, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[map[string]interface{}](t, rec)
	assert.Equal(t, "Acme Corp", me["name"])
	assert.NotContains(t, me, "password_hash")
}

func TestServer_BrandUpdateNullClearsOptionalFields(t *testing.T) {
	r := newTestServer(t)
	_, token := signupAndLogin(t, r, "Acme", "acme@x.com", "brand", "", "")

	rec := call(t, r, http.MethodPut, "/api/v1/brands/update", token, map[string]string{
		"name":         "Acme Brand",
		"tag":          "fashion",
		"phone_number": "555",
		"location":     "Paris",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	brand := decode[map[string]interface{}](t, rec)
	assert.Equal(t, "fashion", brand["tag"])
	assert.Equal(t, "555", brand["phone_number"])

	rec = call(t, r, http.MethodPut, "/api/v1/brands/update", token, map[string]interface{}{
		"tag":          nil,
		"phone_number": nil,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cleared := decode[map[string]interface{}](t, rec)
	assert.Nil(t, cleared["tag"])
	assert.Nil(t, cleared["phone_number"])
	assert.Equal(t, "Paris", cleared["location"])
	assert.Equal(t, "Acme Brand", cleared["name"])

	rec = call(t, r, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode[map[string]interface{}](t, rec)["tag"])

	rec = call(t, r, http.MethodPut, "/api/v1/brands/update", token, map[string]interface{}{"name": nil})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_AuthFailures(t *testing.T) {
	r := newTestServer(t)
	_, influencerToken := signupAndLogin(t, r, "Ina", "ina@x.com", "influencer", "", "")

	rec := call(t, r, http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"name": "Dup", "email": "ina@x.com", "password": "pw", "role": "brand",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = call(t, r, http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"name": "Bad", "email": "bad@x.com", "password": "pw", "role": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// bcrypt rejects inputs over 72 bytes
	rec = call(t, r, http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"name": "Long", "email": "long@x.com", "password": strings.Repeat("p", 80), "role": "brand",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, "VALIDATION_ERROR", decode[map[string]interface{}](t, rec)["code"])

	rec = call(t, r, http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"name": "Wide", "email": "wide@x.com", "password": strings.Repeat("é", 40), "role": "brand",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	rec = call(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "ina@x.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(t, r, http.MethodPut, "/api/v1/brands/update", "", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(t, r, http.MethodPut, "/api/v1/brands/update", "not-a-token", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(t, r, http.MethodPut, "/api/v1/brands/update", influencerToken, map[string]string{"name": "x"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decode[map[string]interface{}](t, rec)["code"])
}

func TestServer_InfluencerFlow(t *testing.T) {
	r := newTestServer(t)
	_, brandToken := signupAndLogin(t, r, "Acme", "acme@x.com", "brand", "fashion", "Paris")
	_, starToken := signupAndLogin(t, r, "Star", "star@x.com", "influencer", "fashion", "Paris")
	_, smallToken := signupAndLogin(t, r, "Small", "small@x.com", "influencer", "food", "Rome")

	rec := call(t, r, http.MethodPut, "/api/v1/brands/update", brandToken, map[string]string{
		"tag": "fashion", "location": "Paris",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	brand := decode[map[string]interface{}](t, rec)

	rec = call(t, r, http.MethodPut, "/api/v1/influencers/update", starToken, map[string]interface{}{"reach": 5000})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	star := decode[map[string]interface{}](t, rec)
	assert.EqualValues(t, 5000, star["reach"])
	assert.Equal(t, false, star["verified"])

	rec = call(t, r, http.MethodPut, "/api/v1/influencers/update", smallToken, map[string]interface{}{"reach": 100})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = call(t, r, http.MethodGet, "/api/v1/influencers/filter?min_reach=1000", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-Total-Count"))
	filtered := decode[[]map[string]interface{}](t, rec)
	require.Len(t, filtered, 1)
	assert.Equal(t, star["id"], filtered[0]["id"])

	rec = call(t, r, http.MethodGet, "/api/v1/influencers/trending", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	trending := decode[[]map[string]interface{}](t, rec)
	require.Len(t, trending, 2)
	assert.Equal(t, star["id"], trending[0]["influencer_id"])
	assert.EqualValues(t, 100, trending[1]["reach"])

	rec = call(t, r, http.MethodGet, "/api/v1/brands/trending?tag=food", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, rec), 1)

	// Only brands may verify, and verifying twice is harmless
	rec = call(t, r, http.MethodPost, "/api/v1/influencers/"+star["id"].(string)+"/verify-reach", starToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	for i := 0; i < 2; i++ {
		rec = call(t, r, http.MethodPost, "/api/v1/influencers/"+star["id"].(string)+"/verify-reach", brandToken, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, true, decode[map[string]interface{}](t, rec)["verified"])
	}
	rec = call(t, r, http.MethodPost, "/api/v1/influencers/00000000-0000-7000-8000-000000000000/verify-reach", brandToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(t, r, http.MethodGet, "/api/v1/influencers/filter?verified=true", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, rec), 1)

	rec = call(t, r, http.MethodGet, "/api/v1/influencers/suggestions", starToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	suggestions := decode[[]map[string]interface{}](t, rec)
	require.Len(t, suggestions, 1)
	assert.Equal(t, brand["id"], suggestions[0]["id"])

	rec = call(t, r, http.MethodGet, "/api/v1/influencers/suggestions", smallToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]map[string]interface{}](t, rec))

	rec = call(t, r, http.MethodGet, "/api/v1/influencers/suggestions", brandToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_BrandUpdateByID(t *testing.T) {
	r := newTestServer(t)
	_, ownerToken := signupAndLogin(t, r, "Owner", "owner@x.com", "brand", "", "")
	_, otherToken := signupAndLogin(t, r, "Other", "other@x.com", "brand", "", "")

	id := "0190a000-0000-7000-8000-000000000001"
	rec := call(t, r, http.MethodPut, "/api/v1/brands/"+id+"/update", ownerToken, map[string]string{"name": "Owned"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, id, decode[map[string]interface{}](t, rec)["id"])

	rec = call(t, r, http.MethodPut, "/api/v1/brands/"+id+"/update", otherToken, map[string]string{"name": "Stolen"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = call(t, r, http.MethodPut, "/api/v1/brands/not-a-uuid/update", ownerToken, map[string]string{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// An email already used by another account is rejected and nothing is written
	rec = call(t, r, http.MethodPut, "/api/v1/brands/update", ownerToken, map[string]string{
		"name": "Renamed", "email": "other@x.com",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = call(t, r, http.MethodGet, "/api/v1/brands/filter?name=renamed", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]map[string]interface{}](t, rec))
}

func TestServer_IdempotentSignupReplay(t *testing.T) {
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { redis.SetClient(nil) })

	r := newTestServer(t)
	body := map[string]string{"name": "Acme", "email": "idem@x.com", "password": "pw", "role": "brand"}

	first := call(t, r, http.MethodPost, "/api/v1/auth/signup", "", body, "Idempotency-Key", "signup-1")
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())

	second := call(t, r, http.MethodPost, "/api/v1/auth/signup", "", body, "Idempotency-Key", "signup-1")
	require.Equal(t, http.StatusOK, second.Code, second.Body.String())
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Hit"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	third := call(t, r, http.MethodPost, "/api/v1/auth/signup", "", body)
	assert.Equal(t, http.StatusConflict, third.Code)
}

func TestServer_MetricsAndRequestID(t *testing.T) {
	r := newTestServer(t)

	rec := call(t, r, http.MethodGet, "/health", "", nil, "X-Request-ID", "req-42")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))

	rec = call(t, r, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "brand_connector_http_requests_total")
	assert.Contains(t, rec.Body.String(), `path="/health"`)
}
