package chatRepository

import (
	"LakbayLaguna/internal/entity"
	contextPkg "LakbayLaguna/pkg/context"
	"context"
	"database/sql"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type FoodDB struct {
	ID          sql.NullString `db:"id"`
	City        sql.NullString `db:"city"`
	Name        sql.NullString `db:"name"`
	Description sql.NullString `db:"description"`
	PriceRange  sql.NullString `db:"price_range"`
	Type        sql.NullString `db:"type"`
	WhereToBuy  sql.NullString `db:"where_to_buy"`
}

func (r *foodsRepository) GetByCity(ctx context.Context, city string) ([]entity.Food, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []FoodDB

	argsKV := map[string]interface{}{
		"city": city,
	}

	query, args, err := sqlx.Named(queryGetFoodsByCity, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFoodsByCity named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFoodsByCity execution err")
		return nil, err
	}

	var foods []entity.Food
	for _, row := range rows {
		foods = append(foods, r.makeFood(row))
	}

	return foods, nil
}

func (r *foodsRepository) SearchByName(ctx context.Context, city, name string) ([]entity.Food, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []FoodDB

	argsKV := map[string]interface{}{
		"city": city,
		"name": name,
	}

	query, args, err := sqlx.Named(querySearchFoodsByName, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchFoodsByName named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchFoodsByName execution err")
		return nil, err
	}

	var foods []entity.Food
	for _, row := range rows {
		foods = append(foods, r.makeFood(row))
	}

	return foods, nil
}

func (r *foodsRepository) CreateFood(ctx context.Context, food entity.Food) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":           food.ID,
		"city":         food.City,
		"name":         food.Name,
		"description":  food.Description,
		"price_range":  food.PriceRange,
		"type":         food.Type,
		"where_to_buy": food.WhereToBuy,
	}

	query, args, err := sqlx.Named(queryCreateFood, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateFood")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating food")
		return err
	}

	return nil
}

func (r *foodsRepository) DeleteByCity(ctx context.Context, city string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"city": city,
	}

	query, args, err := sqlx.Named(queryDeleteFoodsByCity, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteFoodsByCity named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteFoodsByCity execution err")
		return err
	}

	return nil
}

func (r *foodsRepository) makeFood(row FoodDB) entity.Food {
	return entity.Food{
		ID:          row.ID.String,
		City:        row.City.String,
		Name:        row.Name.String,
		Description: row.Description.String,
		PriceRange:  row.PriceRange.String,
		Type:        row.Type.String,
		WhereToBuy:  row.WhereToBuy.String,
	}
}
