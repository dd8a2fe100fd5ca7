package chatRepository

const (
	queryGetAttractionsByCity = `
		SELECT
			id,
			city,
			location,
			opening,
			closing,
			activities,
			description,
			rating,
			entrance_fee,
			best_season,
			best_season_why,
			best_date,
			available_days
		FROM attractions
		WHERE city = :city
		ORDER BY location ASC
	`

	queryGetAttractionByLocation = `
		SELECT
			id,
			city,
			location,
			opening,
			closing,
			activities,
			description,
			rating,
			entrance_fee,
			best_season,
			best_season_why,
			best_date,
			available_days
		FROM attractions
		WHERE city = :city AND LOWER(location) = LOWER(:location)
	`

	queryCreateAttraction = `
		INSERT INTO attractions (
			id,
			city,
			location,
			opening,
			closing,
			activities,
			description,
			rating,
			entrance_fee,
			best_season,
			best_season_why,
			best_date,
			available_days
		) VALUES (
			:id,
			:city,
			:location,
			:opening,
			:closing,
			:activities,
			:description,
			:rating,
			:entrance_fee,
			:best_season,
			:best_season_why,
			:best_date,
			:available_days
		)
	`

	queryDeleteAttractionsByCity = `
		DELETE FROM attractions
		WHERE city = :city
	`

	queryGetAccommodationsByCity = `
		SELECT
			id,
			city,
			name,
			description,
			nearest_attraction,
			type,
			level,
			phone_number,
			rating,
			price_range,
			one_day_rate,
			twelve_hour_rate,
			six_hour_rate
		FROM accommodations
		WHERE city = :city
		ORDER BY name ASC
	`

	queryCreateAccommodation = `
		INSERT INTO accommodations (
			id,
			city,
			name,
			description,
			nearest_attraction,
			type,
			level,
			phone_number,
			rating,
			price_range,
			one_day_rate,
			twelve_hour_rate,
			six_hour_rate
		) VALUES (
			:id,
			:city,
			:name,
			:description,
			:nearest_attraction,
			:type,
			:level,
			:phone_number,
			:rating,
			:price_range,
			:one_day_rate,
			:twelve_hour_rate,
			:six_hour_rate
		)
	`

	queryDeleteAccommodationsByCity = `
		DELETE FROM accommodations
		WHERE city = :city
	`

	queryGetFoodsByCity = `
		SELECT
			id,
			city,
			name,
			description,
			price_range,
			type,
			where_to_buy
		FROM foods
		WHERE city = :city
		ORDER BY name ASC
	`

	querySearchFoodsByName = `
		SELECT
			id,
			city,
			name,
			description,
			price_range,
			type,
			where_to_buy
		FROM foods
		WHERE city = :city AND LOWER(name) LIKE '%' || LOWER(:name) || '%'
		ORDER BY name ASC
	`

	queryCreateFood = `
		INSERT INTO foods (
			id,
			city,
			name,
			description,
			price_range,
			type,
			where_to_buy
		) VALUES (
			:id,
			:city,
			:name,
			:description,
			:price_range,
			:type,
			:where_to_buy
		)
	`

	queryDeleteFoodsByCity = `
		DELETE FROM foods
		WHERE city = :city
	`
)
