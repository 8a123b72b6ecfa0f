package services

import (
	"context"
	"fmt"
	"time"

	"eventbooking/internal/domain"
)

type eventQueryService struct {
	eventRepo      domain.EventRepository
	regRepo        domain.RegistrationRepository
	contextTimeout time.Duration
}

// NewEventQueryService returns the read-only view over events and registrations.
func NewEventQueryService(eventRepo domain.EventRepository, regRepo domain.RegistrationRepository, timeout time.Duration) domain.EventQueryService {
	return &eventQueryService{
		eventRepo:      eventRepo,
		regRepo:        regRepo,
		contextTimeout: timeout,
	}
}

func (s *eventQueryService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.contextTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.contextTimeout)
}

func (s *eventQueryService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.eventRepo.GetByID(ctx, id)
}

func (s *eventQueryService) GetEventByName(ctx context.Context, name string) (*domain.Event, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.eventRepo.GetByName(ctx, name)
}

// ListEvents returns one page of events ordered by name and the total count.
func (s *eventQueryService) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.eventRepo.List(ctx, params.Normalize())
}

// FilterEvents returns the events matching every set field of filter.
func (s *eventQueryService) FilterEvents(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.eventRepo.ListFiltered(ctx, filter)
}

// ListUserEvents returns the user's registrations, newest first, each with its event.
func (s *eventQueryService) ListUserEvents(ctx context.Context, userID string) ([]*domain.RegistrationWithEvent, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	regs, err := s.regRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.RegistrationWithEvent, 0, len(regs))
	for _, reg := range regs {
		ev, err := s.eventRepo.GetByID(ctx, reg.EventID)
		if err != nil {
			if domain.IsNotFoundKind(err, domain.KindEvent) {
				continue
			}
			return nil, fmt.Errorf("get event %s: %w", reg.EventID, err)
		}
		result = append(result, &domain.RegistrationWithEvent{Registration: reg, Event: ev})
	}
	return result, nil
}
