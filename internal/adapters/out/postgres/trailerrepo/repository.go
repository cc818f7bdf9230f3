package trailerrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/trailer"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTrailerRepository implements TrailerRepository using GORM.
type GormTrailerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTrailerRepository creates a new GORM trailer repository.
func NewGormTrailerRepository(db *gorm.DB, tracker aggregateTracker) *GormTrailerRepository {
	return &GormTrailerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new trailer to the database.
func (r *GormTrailerRepository) Add(ctx context.Context, aggregate *trailer.Trailer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing trailer to the database.
func (r *GormTrailerRepository) Update(ctx context.Context, aggregate *trailer.Trailer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TrailerDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a trailer by ID.
func (r *GormTrailerRepository) Get(ctx context.Context, id kernel.UUID) (*trailer.Trailer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TrailerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trailer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all non-archived trailers.
func (r *GormTrailerRepository) GetAllActive(ctx context.Context) ([]*trailer.Trailer, error) {
	var dtos []TrailerDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "is_active").Error; err != nil {
		return nil, err
	}

	trailers := make([]*trailer.Trailer, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		trailers = append(trailers, t)
	}

	return trailers, nil
}
