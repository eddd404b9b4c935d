package store

import (
	"context"

	"meal-sharing/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// ReservationStore runs all reservation queries. There is deliberately no
// capacity check against the meal here; overlapping reservation creates are
// resolved by the database alone.
type ReservationStore struct {
	db      *sqlx.DB
	dialect goqu.DialectWrapper
}

func NewReservationStore(db *sqlx.DB, dialect goqu.DialectWrapper) *ReservationStore {
	return &ReservationStore{db: db, dialect: dialect}
}

func (s *ReservationStore) List(ctx context.Context) ([]models.Reservation, error) {
	query, args, err := s.dialect.From("reservation").
		Order(goqu.C("id").Asc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build reservations query")
	}

	reservations := make([]models.Reservation, 0)
	if err := s.db.SelectContext(ctx, &reservations, query, args...); err != nil {
		return nil, errors.Wrap(err, "query reservations")
	}
	return reservations, nil
}

func (s *ReservationStore) Get(ctx context.Context, id int64) (*models.Reservation, error) {
	query, args, err := s.dialect.From("reservation").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build reservation query")
	}

	var reservation models.Reservation
	if err := s.db.GetContext(ctx, &reservation, query, args...); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (s *ReservationStore) Create(ctx context.Context, r *models.Reservation) (*models.Reservation, error) {
	query, args, err := s.dialect.Insert("reservation").Rows(goqu.Record{
		"meal_id":             r.MealID,
		"number_of_guests":    r.NumberOfGuests,
		"created_date":        r.CreatedDate,
		"contact_phonenumber": r.ContactPhonenumber,
		"contact_name":        r.ContactName,
		"contact_email":       r.ContactEmail,
	}).Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build reservation insert")
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "insert reservation")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "reservation insert id")
	}
	return s.Get(ctx, id)
}

func (s *ReservationStore) Update(ctx context.Context, id int64, r *models.Reservation) (*models.Reservation, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	query, args, err := s.dialect.Update("reservation").Set(goqu.Record{
		"meal_id":             r.MealID,
		"number_of_guests":    r.NumberOfGuests,
		"contact_phonenumber": r.ContactPhonenumber,
		"contact_name":        r.ContactName,
		"contact_email":       r.ContactEmail,
	}).Where(goqu.C("id").Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build reservation update")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, errors.Wrap(err, "update reservation")
	}
	return s.Get(ctx, id)
}

func (s *ReservationStore) Delete(ctx context.Context, id int64) (*models.Reservation, error) {
	reservation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	query, args, err := s.dialect.Delete("reservation").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build reservation delete")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, errors.Wrap(err, "delete reservation")
	}
	return reservation, nil
}
