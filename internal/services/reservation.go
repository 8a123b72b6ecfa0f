package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"eventbooking/internal/clock"
	"eventbooking/internal/domain"
)

const (
	msgRegistered   = "User successfully registered on event"
	msgUnregistered = "User successfully unregistered on event"
)

// ErrCapacityBelowOccupancy is returned by UpdateEvent when the new capacity
// is lower than the number of current registrations.
var ErrCapacityBelowOccupancy = fmt.Errorf("cannot reduce capacity below current registrations: %w", domain.ErrCapacityExceeded)

type reservationService struct {
	eventRepo      domain.EventRepository
	regRepo        domain.RegistrationRepository
	userRepo       domain.UserRepository
	tx             domain.Transactor
	clock          clock.Clock
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewReservationService returns the service that owns every capacity change.
// emailService may be nil, in which case no notifications are sent.
func NewReservationService(
	eventRepo domain.EventRepository,
	regRepo domain.RegistrationRepository,
	userRepo domain.UserRepository,
	tx domain.Transactor,
	clk clock.Clock,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.ReservationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &reservationService{
		eventRepo:      eventRepo,
		regRepo:        regRepo,
		userRepo:       userRepo,
		tx:             tx,
		clock:          clk,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *reservationService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.contextTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.contextTimeout)
}

func (s *reservationService) requireUser(ctx context.Context, userID string) error {
	ok, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return domain.NewNotFound(domain.KindUser, userID)
	}
	return nil
}

// RegisterUserOnEvent reserves one place on eventID for userID.
func (s *reservationService) RegisterUserOnEvent(ctx context.Context, userID, eventID string) (*domain.ReservationResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	// Advisory only; the locked recount below is authoritative.
	if event.PlacesLeft < 1 {
		return nil, domain.ErrNoPlacesLeft
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	reg := domain.NewRegistration(userID, eventID, s.clock.Now())
	reg.ID = uuid.NewString()

	var placesLeft int
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		locked, err := s.eventRepo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return err
		}
		occupancy, err := s.regRepo.CountByEvent(ctx, eventID)
		if err != nil {
			return fmt.Errorf("count registrations: %w", err)
		}
		if err := s.regRepo.Insert(ctx, reg); err != nil {
			return err
		}
		decision := domain.EnforceCapacity(locked.MaxParticipants, occupancy, domain.DeltaReserve)
		if err := decision.Err(); err != nil {
			return err
		}
		if err := s.eventRepo.UpdatePlacesLeft(ctx, eventID, decision.PlacesLeft); err != nil {
			return err
		}
		event = locked
		placesLeft = decision.PlacesLeft
		return ctx.Err()
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, userID, event, true)

	return &domain.ReservationResult{
		Message:      msgRegistered,
		Registration: reg,
		PlacesLeft:   placesLeft,
	}, nil
}

// UnregisterUserOnEvent releases the place userID holds on eventID.
func (s *reservationService) UnregisterUserOnEvent(ctx context.Context, userID, eventID string) (*domain.ReservationResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	var placesLeft int
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		locked, err := s.eventRepo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return err
		}
		occupancy, err := s.regRepo.CountByEvent(ctx, eventID)
		if err != nil {
			return fmt.Errorf("count registrations: %w", err)
		}
		removed, err := s.regRepo.DeleteByPair(ctx, userID, eventID)
		if err != nil {
			return err
		}
		if !removed {
			return domain.NewNotFound(domain.KindRegistration, userID+"/"+eventID)
		}
		decision := domain.EnforceCapacity(locked.MaxParticipants, occupancy, domain.DeltaRelease)
		if err := decision.Err(); err != nil {
			return err
		}
		if err := s.eventRepo.UpdatePlacesLeft(ctx, eventID, decision.PlacesLeft); err != nil {
			return err
		}
		event = locked
		placesLeft = decision.PlacesLeft
		return ctx.Err()
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, userID, event, false)

	return &domain.ReservationResult{
		Message:    msgUnregistered,
		PlacesLeft: placesLeft,
	}, nil
}

// notify sends the confirmation or cancellation email. Failures are logged only.
func (s *reservationService) notify(ctx context.Context, userID string, event *domain.Event, registered bool) {
	if s.emailService == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "registration email skipped", "user_id", userID, "err", err)
		return
	}
	data := &domain.RegistrationEmailData{
		Email:      user.Email,
		Name:       user.Name,
		EventName:  event.Name,
		EventPlace: event.Place,
		EventDate:  event.Date.Format(time.RFC1123),
	}
	if registered {
		err = s.emailService.SendRegistrationConfirmed(ctx, data)
	} else {
		err = s.emailService.SendRegistrationCancelled(ctx, data)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "registration email failed", "user_id", userID, "event_id", event.ID, "err", err)
	}
}

func checkEvent(event *domain.Event) error {
	if event == nil {
		return fmt.Errorf("event is nil")
	}
	if event.MaxParticipants <= 0 {
		return &domain.ValidationError{Fields: []domain.FieldError{{
			Field: "max_participants", Rule: "gt", Message: "max_participants must be greater than 0",
		}}}
	}
	return nil
}

// CreateEvent stores a new event with all places free.
func (s *reservationService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := checkEvent(event); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	created := *event
	created.ID = uuid.NewString()
	created.PlacesLeft = created.MaxParticipants
	created.CreatedAt = now
	created.UpdatedAt = now

	if err := s.eventRepo.Create(ctx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateEvent replaces the mutable fields of an event and recomputes its
// places left against the current registrations.
func (s *reservationService) UpdateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := checkEvent(event); err != nil {
		return nil, err
	}

	var updated domain.Event
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.eventRepo.GetByIDForUpdate(ctx, event.ID)
		if err != nil {
			return err
		}
		occupancy, err := s.regRepo.CountByEvent(ctx, event.ID)
		if err != nil {
			return fmt.Errorf("count registrations: %w", err)
		}
		decision := domain.EnforceCapacity(event.MaxParticipants, occupancy, domain.DeltaRecheck)
		if !decision.Accepted {
			if errors.Is(decision.Reason, domain.ErrCapacityExceeded) {
				return ErrCapacityBelowOccupancy
			}
			return decision.Reason
		}

		updated = *event
		updated.PlacesLeft = decision.PlacesLeft
		updated.CreatedAt = current.CreatedAt
		updated.UpdatedAt = s.clock.Now()
		if updated.Picture == nil {
			updated.Picture = current.Picture
		}
		if err := s.eventRepo.Update(ctx, &updated); err != nil {
			return err
		}
		return ctx.Err()
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteEvent removes an event together with all its registrations.
func (s *reservationService) DeleteEvent(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var deleted *domain.Event
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		event, err := s.eventRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		n, err := s.regRepo.DeleteByEvent(ctx, id)
		if err != nil {
			return err
		}
		if err := s.eventRepo.Delete(ctx, id); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "event deleted", "event_id", id, "registrations_removed", n)
		deleted = event
		return ctx.Err()
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// SetEventPicture records the picture reference for an event.
func (s *reservationService) SetEventPicture(ctx context.Context, eventID, picture string) (*domain.Event, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if picture == "" {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{{
			Field: "picture", Rule: "required", Message: "picture is required",
		}}}
	}
	if err := s.eventRepo.UpdatePicture(ctx, eventID, picture); err != nil {
		return nil, err
	}
	return s.eventRepo.GetByID(ctx, eventID)
}
