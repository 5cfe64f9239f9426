package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"brand-connector.backend/internal/domain/entities"
	domainerrors "brand-connector.backend/internal/domain/errors"
	"brand-connector.backend/internal/infrastructure/models"
	"brand-connector.backend/pkg/utils"
)

// BrandRepository implements brand profile operations
type BrandRepository struct {
	db *gorm.DB
}

// NewBrandRepository creates a new brand repository
func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// GetByID gets a brand by ID
func (r *BrandRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Brand, error) {
	var m models.Brand
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return brandToEntity(&m), nil
}

// GetByUserID gets the brand owned by a user
func (r *BrandRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Brand, error) {
	var m models.Brand
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return brandToEntity(&m), nil
}

// GetOrCreateByUserID returns the user's brand, inserting an empty one when
// absent. A concurrent insert for the same user is absorbed by the unique
// user_id index.
func (r *BrandRepository) GetOrCreateByUserID(ctx context.Context, userID, id uuid.UUID) (*entities.Brand, error) {
	existing, err := r.GetByUserID(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	if id == uuid.Nil {
		id = utils.GenerateUUIDv7()
	}
	now := time.Now().UTC()
	m := &models.Brand{
		ID:        id,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(m).Error
	if err != nil {
		return nil, translateError(err)
	}
	return r.GetByUserID(ctx, userID)
}

// Update writes every profile column of the brand
func (r *BrandRepository) Update(ctx context.Context, brand *entities.Brand) error {
	brand.UpdatedAt = time.Now().UTC()
	updates := map[string]interface{}{
		"name":         brand.Name.Ptr(),
		"email":        brand.Email.Ptr(),
		"phone_number": brand.PhoneNumber.Ptr(),
		"tag":          brand.Tag.Ptr(),
		"location":     brand.Location.Ptr(),
		"event_start":  brand.EventStart.Ptr(),
		"event_end":    brand.EventEnd.Ptr(),
		"updated_at":   brand.UpdatedAt,
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Brand{}).Where("id = ?", brand.ID).Updates(updates)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

type brandRow struct {
	models.Brand
	OwnerName     string
	OwnerEmail    string
	OwnerTag      *string
	OwnerLocation *string
	OwnerRole     string
}

// Filter lists brands joined with their owners. Every non-empty filter field
// adds one AND-ed predicate.
func (r *BrandRepository) Filter(ctx context.Context, f entities.BrandFilter) ([]*entities.BrandListing, int64, error) {
	q := GetDB(ctx, r.db).WithContext(ctx).
		Table("brands").
		Joins("JOIN users ON users.id = brands.user_id").
		Where("users.role = ?", string(entities.RoleBrand))

	if f.Name != "" {
		q = q.Where(`LOWER(brands.name) LIKE ? ESCAPE '\'`, containsPattern(f.Name))
	}
	if f.Tag != "" {
		q = q.Where("brands.tag = ?", f.Tag)
	}
	if f.Location != "" {
		q = q.Where("brands.location = ?", f.Location)
	}
	if f.EventDate.Valid {
		q = q.Where("brands.event_start <= ? AND brands.event_end >= ?", f.EventDate.Time, f.EventDate.Time)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := q.Select(`brands.*, users.name AS owner_name, users.email AS owner_email,
		users.tag AS owner_tag, users.location AS owner_location, users.role AS owner_role`).
		Order("brands.created_at ASC, brands.id ASC")
	if f.Limit > 0 {
		page = page.Limit(f.Limit).Offset(f.Offset)
	}

	var rows []brandRow
	if err := page.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*entities.BrandListing, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		out = append(out, &entities.BrandListing{
			Brand: *brandToEntity(&row.Brand),
			Owner: entities.UserSummary{
				ID:       row.UserID,
				Name:     row.OwnerName,
				Email:    row.OwnerEmail,
				Tag:      null.StringFromPtr(row.OwnerTag),
				Location: null.StringFromPtr(row.OwnerLocation),
				Role:     entities.Role(row.OwnerRole),
			},
		})
	}
	return out, total, nil
}

func brandToEntity(m *models.Brand) *entities.Brand {
	return &entities.Brand{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        null.StringFromPtr(m.Name),
		Email:       null.StringFromPtr(m.Email),
		PhoneNumber: null.StringFromPtr(m.PhoneNumber),
		Tag:         null.StringFromPtr(m.Tag),
		Location:    null.StringFromPtr(m.Location),
		EventStart:  dateFromPtr(m.EventStart),
		EventEnd:    dateFromPtr(m.EventEnd),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// dateFromPtr normalizes a stored date to midnight UTC
func dateFromPtr(t *time.Time) null.Time {
	if t == nil {
		return null.Time{}
	}
	return null.TimeFrom(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}
