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

// InfluencerRepository implements influencer profile operations
type InfluencerRepository struct {
	db *gorm.DB
}

// NewInfluencerRepository creates a new influencer repository
func NewInfluencerRepository(db *gorm.DB) *InfluencerRepository {
	return &InfluencerRepository{db: db}
}

// GetByID gets an influencer by ID
func (r *InfluencerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Influencer, error) {
	var m models.Influencer
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return influencerToEntity(&m), nil
}

// GetByUserID gets the influencer profile owned by a user
func (r *InfluencerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Influencer, error) {
	var m models.Influencer
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return influencerToEntity(&m), nil
}

// GetOrCreateByUserID returns the user's profile, inserting reach=0 and
// verified=false when absent.
func (r *InfluencerRepository) GetOrCreateByUserID(ctx context.Context, userID uuid.UUID) (*entities.Influencer, error) {
	existing, err := r.GetByUserID(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	m := &models.Influencer{
		ID:        utils.GenerateUUIDv7(),
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

// Update writes reach, verified and email. Verified is OR-ed with the stored
// value so a stale read can never clear it.
func (r *InfluencerRepository) Update(ctx context.Context, influencer *entities.Influencer) error {
	influencer.UpdatedAt = time.Now().UTC()
	updates := map[string]interface{}{
		"reach":      influencer.Reach,
		"email":      influencer.Email.Ptr(),
		"updated_at": influencer.UpdatedAt,
	}
	if influencer.Verified {
		updates["verified"] = true
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Influencer{}).Where("id = ?", influencer.ID).Updates(updates)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MarkVerified flips verified to true
func (r *InfluencerRepository) MarkVerified(ctx context.Context, id uuid.UUID) (*entities.Influencer, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Influencer{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"verified":   true,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

type influencerRow struct {
	models.Influencer
	OwnerName     string
	OwnerEmail    string
	OwnerTag      *string
	OwnerLocation *string
	OwnerRole     string
}

// Filter lists influencers joined with their owners. Tag, location and name
// match on the user record.
func (r *InfluencerRepository) Filter(ctx context.Context, f entities.InfluencerFilter) ([]*entities.InfluencerListing, int64, error) {
	q := GetDB(ctx, r.db).WithContext(ctx).
		Table("influencers").
		Joins("JOIN users ON users.id = influencers.user_id").
		Where("users.role = ?", string(entities.RoleInfluencer))

	if f.Name != "" {
		q = q.Where(`LOWER(users.name) LIKE ? ESCAPE '\'`, containsPattern(f.Name))
	}
	if f.Tag != "" {
		q = q.Where("users.tag = ?", f.Tag)
	}
	if f.Location != "" {
		q = q.Where("users.location = ?", f.Location)
	}
	if f.MinReach.Valid {
		q = q.Where("influencers.reach >= ?", f.MinReach.Int)
	}
	if f.Verified.Valid {
		q = q.Where("influencers.verified = ?", f.Verified.Bool)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := q.Select(`influencers.*, users.name AS owner_name, users.email AS owner_email,
		users.tag AS owner_tag, users.location AS owner_location, users.role AS owner_role`)
	if f.SortByReach {
		page = page.Order("influencers.reach DESC, influencers.id ASC")
	} else {
		page = page.Order("influencers.created_at ASC, influencers.id ASC")
	}
	if f.Limit > 0 {
		page = page.Limit(f.Limit).Offset(f.Offset)
	}

	var rows []influencerRow
	if err := page.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*entities.InfluencerListing, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		out = append(out, &entities.InfluencerListing{
			Influencer: *influencerToEntity(&row.Influencer),
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

func influencerToEntity(m *models.Influencer) *entities.Influencer {
	return &entities.Influencer{
		ID:        m.ID,
		UserID:    m.UserID,
		Reach:     m.Reach,
		Verified:  m.Verified,
		Email:     null.StringFromPtr(m.Email),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
