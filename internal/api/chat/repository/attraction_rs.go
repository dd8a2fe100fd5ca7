package chatRepository

import (
	"LakbayLaguna/internal/api/chat"
	"LakbayLaguna/internal/entity"
	contextPkg "LakbayLaguna/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type AttractionDB struct {
	ID            sql.NullString  `db:"id"`
	City          sql.NullString  `db:"city"`
	Location      sql.NullString  `db:"location"`
	Opening       sql.NullString  `db:"opening"`
	Closing       sql.NullString  `db:"closing"`
	Activities    sql.NullString  `db:"activities"`
	Description   sql.NullString  `db:"description"`
	Rating        sql.NullFloat64 `db:"rating"`
	EntranceFee   sql.NullString  `db:"entrance_fee"`
	BestSeason    sql.NullString  `db:"best_season"`
	BestSeasonWhy sql.NullString  `db:"best_season_why"`
	BestDate      sql.NullString  `db:"best_date"`
	AvailableDays sql.NullString  `db:"available_days"`
}

func (r *attractionsRepository) GetByCity(ctx context.Context, city string) ([]entity.Attraction, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []AttractionDB

	argsKV := map[string]interface{}{
		"city": city,
	}

	query, args, err := sqlx.Named(queryGetAttractionsByCity, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAttractionsByCity named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAttractionsByCity execution err")
		return nil, err
	}

	var attractions []entity.Attraction
	for _, row := range rows {
		attractions = append(attractions, r.makeAttraction(row))
	}

	return attractions, nil
}

func (r *attractionsRepository) GetByLocation(ctx context.Context, city, location string) (entity.Attraction, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row AttractionDB

	argsKV := map[string]interface{}{
		"city":     city,
		"location": location,
	}

	query, args, err := sqlx.Named(queryGetAttractionByLocation, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAttractionByLocation named query preparation err")
		return entity.Attraction{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"location":   location,
			}).Warn("GetAttractionByLocation no rows found")
			return entity.Attraction{}, chat.ErrAttractionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAttractionByLocation execution err")
		return entity.Attraction{}, err
	}

	return r.makeAttraction(row), nil
}

func (r *attractionsRepository) CreateAttraction(ctx context.Context, attraction entity.Attraction) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":              attraction.ID,
		"city":            attraction.City,
		"location":        attraction.Location,
		"opening":         attraction.Opening,
		"closing":         attraction.Closing,
		"activities":      attraction.Activities,
		"description":     attraction.Description,
		"rating":          attraction.Rating,
		"entrance_fee":    attraction.EntranceFee,
		"best_season":     attraction.BestSeason,
		"best_season_why": attraction.BestSeasonWhy,
		"best_date":       attraction.BestDate,
		"available_days":  attraction.AvailableDays,
	}

	query, args, err := sqlx.Named(queryCreateAttraction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateAttraction")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating attraction")
		return err
	}

	return nil
}

func (r *attractionsRepository) DeleteByCity(ctx context.Context, city string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"city": city,
	}

	query, args, err := sqlx.Named(queryDeleteAttractionsByCity, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteAttractionsByCity named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteAttractionsByCity execution err")
		return err
	}

	return nil
}

func (r *attractionsRepository) makeAttraction(row AttractionDB) entity.Attraction {
	return entity.Attraction{
		ID:            row.ID.String,
		City:          row.City.String,
		Location:      row.Location.String,
		Opening:       row.Opening.String,
		Closing:       row.Closing.String,
		Activities:    row.Activities.String,
		Description:   row.Description.String,
		Rating:        row.Rating.Float64,
		EntranceFee:   row.EntranceFee.String,
		BestSeason:    row.BestSeason.String,
		BestSeasonWhy: row.BestSeasonWhy.String,
		BestDate:      row.BestDate.String,
		AvailableDays: row.AvailableDays.String,
	}
}
