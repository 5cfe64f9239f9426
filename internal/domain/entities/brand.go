package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	domainerrors "brand-connector.backend/internal/domain/errors"
)

// Brand is the profile extension of a user with role brand
type Brand struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	Name        null.String `json:"name"`
	Email       null.String `json:"email"`
	PhoneNumber null.String `json:"phone_number"`
	Tag         null.String `json:"tag"`
	Location    null.String `json:"location"`
	EventStart  null.Time   `json:"event_start"`
	EventEnd    null.Time   `json:"event_end"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// BrandUpdateInput is a partial brand update. A key missing from the request
// body leaves the stored value untouched; null or "" clears optional fields.
type BrandUpdateInput struct {
	Name        OptionalString `json:"name"`
	Email       OptionalString `json:"email"`
	PhoneNumber OptionalString `json:"phone_number"`
	Tag         OptionalString `json:"tag"`
	Location    OptionalString `json:"location"`
	EventStart  OptionalString `json:"event_start"`
	EventEnd    OptionalString `json:"event_end"`
}

// Validate checks the present fields. Name and email are mirrored onto the
// user, so they cannot be cleared.
func (in *BrandUpdateInput) Validate() error {
	if err := validateEmail(in.Email.Change()); err != nil {
		return err
	}
	if name := in.Name.Change(); name.Valid && name.String == "" {
		return domainerrors.Invalid("name must not be empty")
	}
	for _, f := range []struct {
		v     null.String
		field string
		max   int
	}{
		{in.Name.Change(), "name", 100},
		{in.PhoneNumber.Change(), "phone_number", 20},
		{in.Tag.Change(), "tag", 50},
		{in.Location.Change(), "location", 100},
	} {
		if err := validateMax(f.v, f.field, f.max); err != nil {
			return err
		}
	}
	if _, err := parseNullDate(in.EventStart.Change()); err != nil {
		return err
	}
	if _, err := parseNullDate(in.EventEnd.Change()); err != nil {
		return err
	}
	return nil
}

// ApplyTo merges the present fields into b. The resulting event window must
// not end before it starts.
func (in *BrandUpdateInput) ApplyTo(b *Brand) error {
	if err := in.Validate(); err != nil {
		return err
	}
	if in.Name.Set {
		b.Name = in.Name.Value
	}
	if in.Email.Set {
		b.Email = in.Email.Value
	}
	if in.PhoneNumber.Set {
		b.PhoneNumber = cleared(in.PhoneNumber.Change())
	}
	if in.Tag.Set {
		b.Tag = cleared(in.Tag.Change())
	}
	if in.Location.Set {
		b.Location = cleared(in.Location.Change())
	}
	if in.EventStart.Set {
		b.EventStart, _ = parseNullDate(in.EventStart.Change())
	}
	if in.EventEnd.Set {
		b.EventEnd, _ = parseNullDate(in.EventEnd.Change())
	}
	if b.EventStart.Valid && b.EventEnd.Valid && b.EventEnd.Time.Before(b.EventStart.Time) {
		return domainerrors.Invalid("event_end must not be before event_start")
	}
	return nil
}

// UserChanges returns the fields mirrored onto the owning user
func (in *BrandUpdateInput) UserChanges() UserChanges {
	return UserChanges{
		Name:     in.Name.Change(),
		Email:    in.Email.Change(),
		Tag:      in.Tag.Change(),
		Location: in.Location.Change(),
	}
}

// BrandFilter narrows brand listings. Zero values mean "no filter".
type BrandFilter struct {
	Name      string
	Tag       string
	Location  string
	EventDate null.Time
	Limit     int
	Offset    int
}

// BrandListing is a brand joined with its owning user
type BrandListing struct {
	Brand
	Owner UserSummary `json:"owner"`
}
