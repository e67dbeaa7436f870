package domain

import (
	"context"
	"strings"
	"time"

	"github.com/IkkkaM/PersonManagement/internal/apperrors"
)

// City referenced by persons. A city cannot be deleted while any person
// still references it.
type City struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewCity builds a validated city.
func NewCity(name string) (*City, error) {
	c := &City{}
	if err := c.setName(name); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return c, nil
}

// UpdateName re-validates and applies the city name.
func (c *City) UpdateName(name string) error {
	if err := c.setName(name); err != nil {
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (c *City) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return apperrors.Validation(apperrors.CityNameRequired)
	}
	c.Name = name
	return nil
}

// CityRepository defines city persistence operations.
type CityRepository interface {
	GetAll(ctx context.Context) ([]City, error)
	GetByID(ctx context.Context, id int) (*City, error)
	Exists(ctx context.Context, id int) (bool, error)
	// IsReferenced reports whether any person references the city.
	IsReferenced(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, city *City) error
	Update(ctx context.Context, city *City) error
	Delete(ctx context.Context, id int) error
}
