package chatRepository

import (
	"LakbayLaguna/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Attractions:    &attractionsRepository{q: sqlExecutor, log: r.log},
		Accommodations: &accommodationsRepository{q: sqlExecutor, log: r.log},
		Foods:          &foodsRepository{q: sqlExecutor, log: r.log},
		Commit:         commitFunc,
		Rollback:       rollbackFunc,
	}, nil
}

type Client struct {
	Attractions interface {
		GetByCity(ctx context.Context, city string) ([]entity.Attraction, error)
		GetByLocation(ctx context.Context, city, location string) (entity.Attraction, error)
		CreateAttraction(ctx context.Context, attraction entity.Attraction) error
		DeleteByCity(ctx context.Context, city string) error
	}

	Accommodations interface {
		GetByCity(ctx context.Context, city string) ([]entity.Accommodation, error)
		CreateAccommodation(ctx context.Context, accommodation entity.Accommodation) error
		DeleteByCity(ctx context.Context, city string) error
	}

	Foods interface {
		GetByCity(ctx context.Context, city string) ([]entity.Food, error)
		SearchByName(ctx context.Context, city, name string) ([]entity.Food, error)
		CreateFood(ctx context.Context, food entity.Food) error
		DeleteByCity(ctx context.Context, city string) error
	}

	Commit   func() error
	Rollback func() error
}

type attractionsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type accommodationsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type foodsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
