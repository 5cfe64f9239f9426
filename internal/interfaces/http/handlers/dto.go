package handlers

import (
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"brand-connector.backend/internal/domain/entities"
	domainerrors "brand-connector.backend/internal/domain/errors"
	"brand-connector.backend/pkg/utils"
)

type brandResponse struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	Name        null.String `json:"name"`
	Email       null.String `json:"email"`
	PhoneNumber null.String `json:"phone_number"`
	Tag         null.String `json:"tag"`
	Location    null.String `json:"location"`
	EventStart  null.String `json:"event_start"`
	EventEnd    null.String `json:"event_end"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type brandListingResponse struct {
	brandResponse
	Owner entities.UserSummary `json:"owner"`
}

func formatDate(t null.Time) null.String {
	if !t.Valid {
		return null.String{}
	}
	return null.StringFrom(t.Time.UTC().Format(entities.DateLayout))
}

func newBrandResponse(b *entities.Brand) brandResponse {
	return brandResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Name:        b.Name,
		Email:       b.Email,
		PhoneNumber: b.PhoneNumber,
		Tag:         b.Tag,
		Location:    b.Location,
		EventStart:  formatDate(b.EventStart),
		EventEnd:    formatDate(b.EventEnd),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func newBrandListingResponse(items []*entities.BrandListing) []brandListingResponse {
	out := make([]brandListingResponse, 0, len(items))
	for _, item := range items {
		out = append(out, brandListingResponse{
			brandResponse: newBrandResponse(&item.Brand),
			Owner:         item.Owner,
		})
	}
	return out
}

// bindPartial decodes a partial-update body. An empty body is an empty update.
func bindPartial(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return domainerrors.BadRequest("invalid request body")
	}
	return nil
}

func bindPage(c *gin.Context) (utils.PaginationParams, error) {
	var p utils.PaginationParams
	if err := c.ShouldBindQuery(&p); err != nil {
		return p, domainerrors.BadRequest("page and limit must be integers")
	}
	return utils.GetPaginationParams(p.Page, p.Limit), nil
}

func parseID(c *gin.Context, param, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, domainerrors.BadRequest("invalid " + what + " id")
	}
	return id, nil
}
