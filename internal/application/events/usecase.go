package events

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/retail-wizard/internal/application/dto"
	"github.com/jhoicas/retail-wizard/internal/domain"
	"github.com/jhoicas/retail-wizard/internal/domain/entity"
	"github.com/jhoicas/retail-wizard/internal/domain/repository"
)

// UseCase lista y registra eventos de una fuente (producto o CD).
type UseCase struct {
	repo repository.EventRepository
	now  func() time.Time
}

// NewUseCase construye el caso de uso sobre el repositorio de la fuente.
func NewUseCase(repo repository.EventRepository) *UseCase {
	return &UseCase{repo: repo, now: time.Now}
}

// List devuelve los eventos del producto; nunca nil (lista vacía si no hay).
func (uc *UseCase) List(ctx context.Context, q dto.ListEventsQuery) ([]dto.EventDTO, error) {
	if q.ProductID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	locType := strings.ToUpper(strings.TrimSpace(q.LocType))
	if locType != "" && locType != entity.LocTypeStore && locType != entity.LocTypeWarehouse {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(ctx, repository.EventFilter{
		ProductID:  q.ProductID,
		LocType:    locType,
		LocationID: q.LocationID,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventDTO, 0, len(list))
	for _, e := range list {
		out = append(out, toDTO(e))
	}
	return out, nil
}

// Create registra un evento. occurred_at ausente toma la hora actual.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateEventRequest) (*dto.EventDTO, error) {
	locType := strings.ToUpper(strings.TrimSpace(in.LocType))
	if in.ProductID <= 0 || in.LocationID < 0 || strings.TrimSpace(in.EventType) == "" ||
		(locType != entity.LocTypeStore && locType != entity.LocTypeWarehouse) {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	occurred := now
	if in.OccurredAt != nil {
		occurred = *in.OccurredAt
	}
	e := &entity.Event{
		ProductID:  in.ProductID,
		LocationID: in.LocationID,
		LocType:    locType,
		EventType:  strings.ToUpper(strings.TrimSpace(in.EventType)),
		Quantity:   in.Quantity,
		Reference:  in.Reference,
		OccurredAt: occurred,
		CreatedAt:  now,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	out := toDTO(e)
	return &out, nil
}

func toDTO(e *entity.Event) dto.EventDTO {
	return dto.EventDTO{
		ID:         e.ID,
		ProductID:  e.ProductID,
		LocationID: e.LocationID,
		LocType:    e.LocType,
		EventType:  e.EventType,
		Quantity:   e.Quantity,
		Reference:  e.Reference,
		OccurredAt: e.OccurredAt,
	}
}
