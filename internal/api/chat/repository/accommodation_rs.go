package chatRepository

import (
	"LakbayLaguna/internal/entity"
	contextPkg "LakbayLaguna/pkg/context"
	"context"
	"database/sql"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type AccommodationDB struct {
	ID                sql.NullString  `db:"id"`
	City              sql.NullString  `db:"city"`
	Name              sql.NullString  `db:"name"`
	Description       sql.NullString  `db:"description"`
	NearestAttraction sql.NullString  `db:"nearest_attraction"`
	Type              sql.NullString  `db:"type"`
	Level             sql.NullString  `db:"level"`
	PhoneNumber       sql.NullString  `db:"phone_number"`
	Rating            sql.NullFloat64 `db:"rating"`
	PriceRange        sql.NullString  `db:"price_range"`
	OneDayRate        sql.NullString  `db:"one_day_rate"`
	TwelveHourRate    sql.NullString  `db:"twelve_hour_rate"`
	SixHourRate       sql.NullString  `db:"six_hour_rate"`
}

func (r *accommodationsRepository) GetByCity(ctx context.Context, city string) ([]entity.Accommodation, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []AccommodationDB

	argsKV := map[string]interface{}{
		"city": city,
	}

	query, args, err := sqlx.Named(queryGetAccommodationsByCity, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAccommodationsByCity named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAccommodationsByCity execution err")
		return nil, err
	}

	var accommodations []entity.Accommodation
	for _, row := range rows {
		accommodations = append(accommodations, r.makeAccommodation(row))
	}

	return accommodations, nil
}

func (r *accommodationsRepository) CreateAccommodation(ctx context.Context, accommodation entity.Accommodation) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":                 accommodation.ID,
		"city":               accommodation.City,
		"name":               accommodation.Name,
		"description":        accommodation.Description,
		"nearest_attraction": accommodation.NearestAttraction,
		"type":               accommodation.Type,
		"level":              accommodation.Level,
		"phone_number":       accommodation.PhoneNumber,
		"rating":             accommodation.Rating,
		"price_range":        accommodation.PriceRange,
		"one_day_rate":       accommodation.OneDayRate,
		"twelve_hour_rate":   accommodation.TwelveHourRate,
		"six_hour_rate":      accommodation.SixHourRate,
	}

	query, args, err := sqlx.Named(queryCreateAccommodation, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateAccommodation")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating accommodation")
		return err
	}

	return nil
}

func (r *accommodationsRepository) DeleteByCity(ctx context.Context, city string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"city": city,
	}

	query, args, err := sqlx.Named(queryDeleteAccommodationsByCity, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteAccommodationsByCity named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteAccommodationsByCity execution err")
		return err
	}

	return nil
}

func (r *accommodationsRepository) makeAccommodation(row AccommodationDB) entity.Accommodation {
	return entity.Accommodation{
		ID:                row.ID.String,
		City:              row.City.String,
		Name:              row.Name.String,
		Description:       row.Description.String,
		NearestAttraction: row.NearestAttraction.String,
		Type:              row.Type.String,
		Level:             row.Level.String,
		PhoneNumber:       row.PhoneNumber.String,
		Rating:            row.Rating.Float64,
		PriceRange:        row.PriceRange.String,
		OneDayRate:        row.OneDayRate.String,
		TwelveHourRate:    row.TwelveHourRate.String,
		SixHourRate:       row.SixHourRate.String,
	}
}
