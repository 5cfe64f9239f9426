package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"brand-connector.backend/internal/domain/entities"
	"brand-connector.backend/internal/interfaces/http/middleware"
)

type authServiceStub struct {
	signupFn      func(ctx context.Context, input *entities.SignupInput) (*entities.User, error)
	loginFn       func(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	getUserByIDFn func(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

func (s authServiceStub) Signup(ctx context.Context, input *entities.SignupInput) (*entities.User, error) {
	return s.signupFn(ctx, input)
}
func (s authServiceStub) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	return s.loginFn(ctx, input)
}
func (s authServiceStub) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return s.getUserByIDFn(ctx, id)
}

type brandServiceStub struct {
	updateFn      func(ctx context.Context, user *entities.User, input *entities.BrandUpdateInput) (*entities.Brand, error)
	updateByIDFn  func(ctx context.Context, user *entities.User, id uuid.UUID, input *entities.BrandUpdateInput) (*entities.Brand, error)
	filterFn      func(ctx context.Context, filter entities.BrandFilter) ([]*entities.BrandListing, int64, error)
	suggestionsFn func(ctx context.Context, user *entities.User) ([]*entities.BrandListing, error)
}

func (s brandServiceStub) UpdateProfile(ctx context.Context, user *entities.User, input *entities.BrandUpdateInput) (*entities.Brand, error) {
	return s.updateFn(ctx, user, input)
}
func (s brandServiceStub) UpdateProfileByID(ctx context.Context, user *entities.User, id uuid.UUID, input *entities.BrandUpdateInput) (*entities.Brand, error) {
	return s.updateByIDFn(ctx, user, id, input)
}
func (s brandServiceStub) Filter(ctx context.Context, filter entities.BrandFilter) ([]*entities.BrandListing, int64, error) {
	return s.filterFn(ctx, filter)
}
func (s brandServiceStub) Suggestions(ctx context.Context, user *entities.User) ([]*entities.BrandListing, error) {
	return s.suggestionsFn(ctx, user)
}

type influencerServiceStub struct {
	updateFn   func(ctx context.Context, user *entities.User, input *entities.InfluencerUpdateInput) (*entities.Influencer, error)
	verifyFn   func(ctx context.Context, user *entities.User, id uuid.UUID) (*entities.Influencer, error)
	filterFn   func(ctx context.Context, filter entities.InfluencerFilter) ([]*entities.InfluencerListing, int64, error)
	trendingFn func(ctx context.Context, tag, location string, limit, offset int) ([]entities.TrendingInfluencer, int64, error)
}

func (s influencerServiceStub) UpdateProfile(ctx context.Context, user *entities.User, input *entities.InfluencerUpdateInput) (*entities.Influencer, error) {
	return s.updateFn(ctx, user, input)
}
func (s influencerServiceStub) VerifyReach(ctx context.Context, user *entities.User, id uuid.UUID) (*entities.Influencer, error) {
	return s.verifyFn(ctx, user, id)
}
func (s influencerServiceStub) Filter(ctx context.Context, filter entities.InfluencerFilter) ([]*entities.InfluencerListing, int64, error) {
	return s.filterFn(ctx, filter)
}
func (s influencerServiceStub) Trending(ctx context.Context, tag, location string, limit, offset int) ([]entities.TrendingInfluencer, int64, error) {
	return s.trendingFn(ctx, tag, location, limit, offset)
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// withUser stands in for the auth middleware
func withUser(user *entities.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set(middleware.UserKey, user)
		}
		c.Next()
	}
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
