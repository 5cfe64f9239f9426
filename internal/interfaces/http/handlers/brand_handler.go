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

type BrandService interface {
	UpdateProfile(ctx context.Context, user *entities.User, input *entities.BrandUpdateInput) (*entities.Brand, error)
	UpdateProfileByID(ctx context.Context, user *entities.User, brandID uuid.UUID, input *entities.BrandUpdateInput) (*entities.Brand, error)
	Filter(ctx context.Context, filter entities.BrandFilter) ([]*entities.BrandListing, int64, error)
	Suggestions(ctx context.Context, user *entities.User) ([]*entities.BrandListing, error)
}

// BrandHandler handles brand endpoints
type BrandHandler struct {
	brandService BrandService
}

// NewBrandHandler creates a new brand handler
func NewBrandHandler(brandService BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

type brandFilterQuery struct {
	Name      string `form:"name"`
	Tag       string `form:"tag"`
	Location  string `form:"location"`
	EventDate string `form:"event_date"`
}

// Filter lists brands
// GET /api/v1/brands/filter
func (h *BrandHandler) Filter(c *gin.Context) {
	var q brandFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	page, err := bindPage(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := entities.BrandFilter{
		Name:     q.Name,
		Tag:      q.Tag,
		Location: q.Location,
		Limit:    page.Limit,
		Offset:   page.CalculateOffset(),
	}
	if q.EventDate != "" {
		d, err := entities.ParseDate(q.EventDate)
		if err != nil {
			response.Error(c, err)
			return
		}
		filter.EventDate = null.TimeFrom(d)
	}

	items, total, err := h.brandService.Filter(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, http.StatusOK, newBrandListingResponse(items), total)
}

// Update upserts the caller's brand profile
// PUT /api/v1/brands/update
func (h *BrandHandler) Update(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.BrandUpdateInput
	if err := bindPartial(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	brand, err := h.brandService.UpdateProfile(c.Request.Context(), user, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, newBrandResponse(brand))
}

// UpdateByID upserts a brand profile addressed by id
// PUT /api/v1/brands/:id/update
func (h *BrandHandler) UpdateByID(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}
	brandID, err := parseID(c, "id", "brand")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.BrandUpdateInput
	if err := bindPartial(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	brand, err := h.brandService.UpdateProfileByID(c.Request.Context(), user, brandID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, newBrandResponse(brand))
}

// Suggestions lists brands matching the calling influencer
// GET /api/v1/influencers/suggestions
func (h *BrandHandler) Suggestions(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	items, err := h.brandService.Suggestions(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, http.StatusOK, newBrandListingResponse(items), int64(len(items)))
}
