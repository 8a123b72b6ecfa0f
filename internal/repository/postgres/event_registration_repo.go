package postgres

import (
	"context"
	"database/sql"
	"strings"

	"eventbooking/internal/domain"
)

type eventRegistrationRepository struct {
	DB *sql.DB
}

func NewEventRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &eventRegistrationRepository{
		DB: db,
	}
}

func (r *eventRegistrationRepository) Insert(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO event_registrations (id, user_id, event_id, registration_date)
		VALUES ($1, $2, $3, $4)
	`
	_, err := conn(ctx, r.DB).ExecContext(ctx, query, reg.ID, reg.UserID, reg.EventID, reg.RegistrationDate)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRegistration
		}
		if isForeignKeyViolation(err) {
			if strings.Contains(constraintName(err), "user") {
				return domain.NewNotFound(domain.KindUser, reg.UserID)
			}
			return domain.NewNotFound(domain.KindEvent, reg.EventID)
		}
		return wrapDBError("insert event registration", err)
	}
	return nil
}

func (r *eventRegistrationRepository) DeleteByPair(ctx context.Context, userID, eventID string) (bool, error) {
	query := `DELETE FROM event_registrations WHERE user_id = $1 AND event_id = $2`
	result, err := conn(ctx, r.DB).ExecContext(ctx, query, userID, eventID)
	if err != nil {
		if isInvalidTextRepresentation(err) {
			return false, nil
		}
		return false, wrapDBError("delete event registration", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *eventRegistrationRepository) CountByEvent(ctx context.Context, eventID string) (int, error) {
	query := `SELECT COUNT(*) FROM event_registrations WHERE event_id = $1`
	var count int
	if err := conn(ctx, r.DB).QueryRowContext(ctx, query, eventID).Scan(&count); err != nil {
		return 0, wrapDBError("count event registrations", err)
	}
	return count, nil
}

func (r *eventRegistrationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error) {
	query := `
		SELECT id, user_id, event_id, registration_date
		FROM event_registrations
		WHERE user_id = $1
		ORDER BY registration_date DESC
	`
	return r.list(ctx, query, userID)
}

func (r *eventRegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `
		SELECT id, user_id, event_id, registration_date
		FROM event_registrations
		WHERE event_id = $1
		ORDER BY registration_date ASC
	`
	return r.list(ctx, query, eventID)
}

func (r *eventRegistrationRepository) list(ctx context.Context, query, arg string) ([]*domain.Registration, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, arg)
	if err != nil {
		if isInvalidTextRepresentation(err) {
			return []*domain.Registration{}, nil
		}
		return nil, wrapDBError("list event registrations", err)
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(&reg.ID, &reg.UserID, &reg.EventID, &reg.RegistrationDate); err != nil {
			return nil, wrapDBError("scan event registration", err)
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("list event registrations", err)
	}
	return regs, nil
}

func (r *eventRegistrationRepository) DeleteByEvent(ctx context.Context, eventID string) (int64, error) {
	query := `DELETE FROM event_registrations WHERE event_id = $1`
	result, err := conn(ctx, r.DB).ExecContext(ctx, query, eventID)
	if err != nil {
		return 0, wrapDBError("delete event registrations", err)
	}
	return result.RowsAffected()
}
