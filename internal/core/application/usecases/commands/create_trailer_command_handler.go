package commands

import (
	"context"

	"logistics/internal/core/domain/model/trailer"
)

// CreateTrailerCommandHandler handles registration of new trailers.
type CreateTrailerCommandHandler struct {
	uowFactory TrailerUoWFactory
}

// NewCreateTrailerCommandHandler creates a handler for trailer registration.
func NewCreateTrailerCommandHandler(uowFactory TrailerUoWFactory) CreateTrailerCommandHandler {
	return CreateTrailerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trailer creation command.
func (h *CreateTrailerCommandHandler) Handle(ctx context.Context, cmd CreateTrailerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newTrailer, err := trailer.NewTrailer(
		cmd.TrailerID(), cmd.Plate(), cmd.Model(), cmd.TrailerType(),
	)
	if err != nil {
		return err
	}

	if err = uow.TrailerRepository().Add(ctx, newTrailer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
