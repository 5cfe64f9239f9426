package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"brand-connector.backend/internal/domain/entities"
	domainerrors "brand-connector.backend/internal/domain/errors"
	"brand-connector.backend/internal/interfaces/http/middleware"
	"brand-connector.backend/internal/interfaces/http/response"
)

type InfluencerService interface {
	UpdateProfile(ctx context.Context, user *entities.User, input *entities.InfluencerUpdateInput) (*entities.Influencer, error)
	VerifyReach(ctx context.Context, user *entities.User, influencerID uuid.UUID) (*entities.Influencer, error)
	Filter(ctx context.Context, filter entities.InfluencerFilter) ([]*entities.InfluencerListing, int64, error)
	Trending(ctx context.Context, tag, location string, limit, offset int) ([]entities.TrendingInfluencer, int64, error)
}

// InfluencerHandler handles influencer endpoints
type InfluencerHandler struct {
	influencerService InfluencerService
}

// NewInfluencerHandler creates a new influencer handler
func NewInfluencerHandler(influencerService InfluencerService) *InfluencerHandler {
	return &InfluencerHandler{influencerService: influencerService}
}

type influencerFilterQuery struct {
	Name     string `form:"name"`
	Tag      string `form:"tag"`
	Location string `form:"location"`
	Reach    *int   `form:"reach"`
	MinReach *int   `form:"min_reach"`
	Verified *bool  `form:"verified"`
}

// Filter lists influencers
// GET /api/v1/influencers/filter
func (h *InfluencerHandler) Filter(c *gin.Context) {
	var q influencerFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid filter parameters"))
		return
	}
	page, err := bindPage(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := entities.InfluencerFilter{
		Name:     q.Name,
		Tag:      q.Tag,
		Location: q.Location,
		Limit:    page.Limit,
		Offset:   page.CalculateOffset(),
	}
	switch {
	case q.MinReach != nil:
		filter.MinReach = null.IntFrom(*q.MinReach)
	case q.Reach != nil:
		filter.MinReach = null.IntFrom(*q.Reach)
	}
	if q.Verified != nil {
		filter.Verified = null.BoolFrom(*q.Verified)
	}

	items, total, err := h.influencerService.Filter(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, http.StatusOK, items, total)
}

// Trending lists influencers by descending reach
// GET /api/v1/influencers/trending
func (h *InfluencerHandler) Trending(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, total, err := h.influencerService.Trending(c.Request.Context(), c.Query("tag"), c.Query("location"), page.Limit, page.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, http.StatusOK, items, total)
}

// Update upserts the caller's influencer profile
// PUT /api/v1/influencers/update
func (h *InfluencerHandler) Update(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.InfluencerUpdateInput
	if err := bindPartial(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	influencer, err := h.influencerService.UpdateProfile(c.Request.Context(), user, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, influencer)
}

// VerifyReach flips an influencer's verified flag
// POST /api/v1/influencers/:id/verify-reach
func (h *InfluencerHandler) VerifyReach(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}
	influencerID, err := parseID(c, "id", "influencer")
	if err != nil {
		response.Error(c, err)
		return
	}

	influencer, err := h.influencerService.VerifyReach(c.Request.Context(), user, influencerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"msg":           "Influencer reach verified",
		"influencer_id": influencer.ID,
		"verified":      influencer.Verified,
	})
}
