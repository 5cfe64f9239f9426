package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	domainerrors "brand-connector.backend/internal/domain/errors"
)

// Influencer is the profile extension of a user with role influencer
type Influencer struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Reach     int         `json:"reach"`
	Verified  bool        `json:"verified"`
	Email     null.String `json:"email"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// InfluencerUpdateInput is a partial influencer update. Name, tag and
// location live on the user record, where influencer matching reads them.
// Reach and verified are not nullable, so a null there is ignored.
type InfluencerUpdateInput struct {
	Name     OptionalString `json:"name"`
	Email    OptionalString `json:"email"`
	Tag      OptionalString `json:"tag"`
	Location OptionalString `json:"location"`
	Reach    null.Int       `json:"reach"`
	Verified null.Bool      `json:"verified"`
}

// Validate checks the present fields
func (in *InfluencerUpdateInput) Validate() error {
	if err := validateEmail(in.Email.Change()); err != nil {
		return err
	}
	name := in.Name.Change()
	if name.Valid && name.String == "" {
		return domainerrors.Invalid("name must not be empty")
	}
	if in.Reach.Valid && in.Reach.Int < 0 {
		return domainerrors.Invalid("reach must not be negative")
	}
	if err := validateMax(name, "name", 100); err != nil {
		return err
	}
	if err := validateMax(in.Tag.Change(), "tag", 50); err != nil {
		return err
	}
	return validateMax(in.Location.Change(), "location", 100)
}

// ApplyTo merges the present profile fields into inf. Verified only ever
// moves from false to true.
func (in *InfluencerUpdateInput) ApplyTo(inf *Influencer) error {
	if err := in.Validate(); err != nil {
		return err
	}
	if in.Reach.Valid {
		inf.Reach = in.Reach.Int
	}
	if in.Verified.Valid && in.Verified.Bool {
		inf.Verified = true
	}
	if in.Email.Set {
		inf.Email = in.Email.Value
	}
	return nil
}

// UserChanges returns the fields mirrored onto the owning user
func (in *InfluencerUpdateInput) UserChanges() UserChanges {
	return UserChanges{
		Name:     in.Name.Change(),
		Email:    in.Email.Change(),
		Tag:      in.Tag.Change(),
		Location: in.Location.Change(),
	}
}

// InfluencerFilter narrows influencer listings. Zero values mean "no filter".
type InfluencerFilter struct {
	Name        string
	Tag         string
	Location    string
	MinReach    null.Int
	Verified    null.Bool
	SortByReach bool
	Limit       int
	Offset      int
}

// InfluencerListing is an influencer joined with its owning user
type InfluencerListing struct {
	Influencer
	Owner UserSummary `json:"owner"`
}

// TrendingInfluencer is the flattened row returned by the trending listing
type TrendingInfluencer struct {
	InfluencerID uuid.UUID   `json:"influencer_id"`
	Name         string      `json:"name"`
	Location     null.String `json:"location"`
	Tag          null.String `json:"tag"`
	Reach        int         `json:"reach"`
	Verified     bool        `json:"verified"`
}

// Trending projects a listing onto the trending row shape
func (l *InfluencerListing) Trending() TrendingInfluencer {
	return TrendingInfluencer{
		InfluencerID: l.ID,
		Name:         l.Owner.Name,
		Location:     l.Owner.Location,
		Tag:          l.Owner.Tag,
		Reach:        l.Reach,
		Verified:     l.Verified,
	}
}
