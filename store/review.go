package store

import (
	"context"

	"meal-sharing/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// ReviewStore runs all review queries.
type ReviewStore struct {
	db      *sqlx.DB
	dialect goqu.DialectWrapper
}

func NewReviewStore(db *sqlx.DB, dialect goqu.DialectWrapper) *ReviewStore {
	return &ReviewStore{db: db, dialect: dialect}
}

func (s *ReviewStore) List(ctx context.Context) ([]models.Review, error) {
	query, args, err := s.dialect.From("review").
		Order(goqu.C("id").Asc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build reviews query")
	}

	reviews := make([]models.Review, 0)
	if err := s.db.SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, errors.Wrap(err, "query reviews")
	}
	return reviews, nil
}

// ListByMeal returns the reviews for one meal, empty slice when there are
// none. Whether the meal itself exists is the caller's concern.
func (s *ReviewStore) ListByMeal(ctx context.Context, mealID int64) ([]models.Review, error) {
	query, args, err := s.dialect.From("review").
		Where(goqu.C("meal_id").Eq(mealID)).
		Order(goqu.C("id").Asc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build reviews query")
	}

	reviews := make([]models.Review, 0)
	if err := s.db.SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, errors.Wrap(err, "query reviews")
	}
	return reviews, nil
}

func (s *ReviewStore) Get(ctx context.Context, id int64) (*models.Review, error) {
	query, args, err := s.dialect.From("review").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build review query")
	}

	var review models.Review
	if err := s.db.GetContext(ctx, &review, query, args...); err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewStore) Create(ctx context.Context, r *models.Review) (*models.Review, error) {
	query, args, err := s.dialect.Insert("review").Rows(goqu.Record{
		"meal_id":     r.MealID,
		"title":       r.Title,
		"description": r.Description,
		"stars":       r.Stars,
	}).Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build review insert")
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "insert review")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "review insert id")
	}
	return s.Get(ctx, id)
}

func (s *ReviewStore) Update(ctx context.Context, id int64, r *models.Review) (*models.Review, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	query, args, err := s.dialect.Update("review").Set(goqu.Record{
		"meal_id":     r.MealID,
		"title":       r.Title,
		"description": r.Description,
		"stars":       r.Stars,
	}).Where(goqu.C("id").Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build review update")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, errors.Wrap(err, "update review")
	}
	return s.Get(ctx, id)
}

func (s *ReviewStore) Delete(ctx context.Context, id int64) (*models.Review, error) {
	review, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	query, args, err := s.dialect.Delete("review").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build review delete")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, errors.Wrap(err, "delete review")
	}
	return review, nil
}
