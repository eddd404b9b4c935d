package store

import (
	"context"
	"strings"
	"time"

	"meal-sharing/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// MealStore runs all meal queries. The handle and SQL dialect are injected;
// the store keeps no other state.
type MealStore struct {
	db      *sqlx.DB
	dialect goqu.DialectWrapper
}

func NewMealStore(db *sqlx.DB, dialect goqu.DialectWrapper) *MealStore {
	return &MealStore{db: db, dialect: dialect}
}

// List composes the meals listing query: meals left-joined with their
// reservation counts, every requested filter ANDed on top, ordered by the
// resolved sort key and capped by the requested limit.
func (s *MealStore) List(ctx context.Context, q *MealQuery) ([]models.MealWithCount, error) {
	counts := s.dialect.From("reservation").
		Select(goqu.C("meal_id"), goqu.COUNT(goqu.Star()).As("reservation_count")).
		GroupBy("meal_id")

	ds := s.dialect.From("meal").
		LeftJoin(counts.As("r"), goqu.On(goqu.I("meal.id").Eq(goqu.I("r.meal_id")))).
		Select(goqu.I("meal.*"), goqu.COALESCE(goqu.I("r.reservation_count"), 0).As("reservation_count"))

	if q.MaxPrice != nil {
		ds = ds.Where(goqu.I("meal.price").Lte(*q.MaxPrice))
	}
	if q.AvailableOnly {
		ds = ds.Where(goqu.I("meal.max_reservations").Gt(goqu.COALESCE(goqu.I("r.reservation_count"), 0)))
	}
	if q.Title != "" {
		ds = ds.Where(goqu.L("LOWER(meal.title) LIKE ?", "%"+strings.ToLower(q.Title)+"%"))
	}
	if q.DateAfter != nil {
		ds = ds.Where(goqu.I("meal.when").Gt(*q.DateAfter))
	}
	if q.DateBefore != nil {
		ds = ds.Where(goqu.I("meal.when").Lt(*q.DateBefore))
	}

	order := goqu.I("meal.id").Asc()
	if q.SortKey != "" {
		col := goqu.I("meal." + q.SortKey)
		if q.SortDir == "desc" {
			order = col.Desc()
		} else {
			order = col.Asc()
		}
	}
	ds = ds.Order(order)

	if q.Limit != nil {
		ds = ds.Limit(uint(*q.Limit))
	}

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build meals query")
	}

	meals := make([]models.MealWithCount, 0)
	if err := s.db.SelectContext(ctx, &meals, query, args...); err != nil {
		return nil, errors.Wrap(err, "query meals")
	}
	return meals, nil
}

func (s *MealStore) Get(ctx context.Context, id int64) (*models.Meal, error) {
	query, args, err := s.dialect.From("meal").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build meal query")
	}

	var meal models.Meal
	if err := s.db.GetContext(ctx, &meal, query, args...); err != nil {
		return nil, err
	}
	return &meal, nil
}

// Create inserts the meal and reloads it so the caller gets the row exactly
// as the database assigned it.
func (s *MealStore) Create(ctx context.Context, m *models.Meal) (*models.Meal, error) {
	query, args, err := s.dialect.Insert("meal").Rows(goqu.Record{
		"title":            m.Title,
		"description":      m.Description,
		"location":         m.Location,
		"when":             m.When,
		"max_reservations": m.MaxReservations,
		"price":            m.Price,
		"created_date":     m.CreatedDate,
	}).Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build meal insert")
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "insert meal")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "meal insert id")
	}
	return s.Get(ctx, id)
}

// Update rewrites every mutable column of the meal. Returns sql.ErrNoRows
// when the id does not exist.
func (s *MealStore) Update(ctx context.Context, id int64, m *models.Meal) (*models.Meal, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	query, args, err := s.dialect.Update("meal").Set(goqu.Record{
		"title":            m.Title,
		"description":      m.Description,
		"location":         m.Location,
		"when":             m.When,
		"max_reservations": m.MaxReservations,
		"price":            m.Price,
	}).Where(goqu.C("id").Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build meal update")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, errors.Wrap(err, "update meal")
	}
	return s.Get(ctx, id)
}

// Delete removes the meal and returns the row as it was before deletion.
func (s *MealStore) Delete(ctx context.Context, id int64) (*models.Meal, error) {
	meal, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	query, args, err := s.dialect.Delete("meal").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build meal delete")
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, errors.Wrap(err, "delete meal")
	}
	return meal, nil
}

// Future returns meals scheduled after now, soonest first.
func (s *MealStore) Future(ctx context.Context) ([]models.Meal, error) {
	return s.selectMeals(ctx, s.dialect.From("meal").
		Where(goqu.I("meal.when").Gt(time.Now())).
		Order(goqu.I("meal.when").Asc()))
}

// Past returns meals already held, oldest first.
func (s *MealStore) Past(ctx context.Context) ([]models.Meal, error) {
	return s.selectMeals(ctx, s.dialect.From("meal").
		Where(goqu.I("meal.when").Lt(time.Now())).
		Order(goqu.I("meal.when").Asc()))
}

// All returns every meal ordered by id ascending.
func (s *MealStore) All(ctx context.Context) ([]models.Meal, error) {
	return s.selectMeals(ctx, s.dialect.From("meal").
		Order(goqu.C("id").Asc()))
}

// First returns the lowest-id meal, sql.ErrNoRows when the table is empty.
func (s *MealStore) First(ctx context.Context) (*models.Meal, error) {
	return s.getMeal(ctx, s.dialect.From("meal").
		Order(goqu.C("id").Asc()).Limit(1))
}

// Last returns the highest-id meal, sql.ErrNoRows when the table is empty.
func (s *MealStore) Last(ctx context.Context) (*models.Meal, error) {
	return s.getMeal(ctx, s.dialect.From("meal").
		Order(goqu.C("id").Desc()).Limit(1))
}

func (s *MealStore) selectMeals(ctx context.Context, ds *goqu.SelectDataset) ([]models.Meal, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build meals query")
	}

	meals := make([]models.Meal, 0)
	if err := s.db.SelectContext(ctx, &meals, query, args...); err != nil {
		return nil, errors.Wrap(err, "query meals")
	}
	return meals, nil
}

func (s *MealStore) getMeal(ctx context.Context, ds *goqu.SelectDataset) (*models.Meal, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build meal query")
	}

	var meal models.Meal
	if err := s.db.GetContext(ctx, &meal, query, args...); err != nil {
		return nil, err
	}
	return &meal, nil
}
