package store

// SQL query constants organized by entity. Dynamic rental listing SQL is
// built in query.go.

// Vehicle queries.
const (
	queryListRawVehicles = `
		SELECT id, data, updated_at
		FROM vehicles
		ORDER BY updated_at DESC, id
		LIMIT $1`

	queryUpsertRawVehicle = `
		INSERT INTO vehicles (id, data, updated_at)
		VALUES (@id, @data, COALESCE(@updated_at, now()))
		ON CONFLICT (id) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at
		RETURNING updated_at`

	queryDeleteVehicle = `DELETE FROM vehicles WHERE id = $1`

	queryCountVehicles = `SELECT COUNT(*) FROM vehicles`
)

// Settings queries.
const (
	queryGetSetting = `
		SELECT key, value, updated_at
		FROM settings
		WHERE key = $1`

	queryPutSetting = `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = now()`
)

// Rental car queries.
const (
	queryGetRentalCar = baseRentalSelect + `
		WHERE id = $1`

	queryCreateRentalCar = `
		INSERT INTO rental_cars (
			id, name, brand, model, category, seats,
			transmission, fuel, price_per_day, deposit,
			images, features, description, available, multilingual
		) VALUES (
			@id, @name, @brand, @model, @category, @seats,
			@transmission, @fuel, @price_per_day, @deposit,
			@images, @features, @description, @available, @multilingual
		)
		RETURNING created_at, updated_at`

	queryUpdateRentalCar = `
		UPDATE rental_cars SET
			name = @name,
			brand = @brand,
			model = @model,
			category = @category,
			seats = @seats,
			transmission = @transmission,
			fuel = @fuel,
			price_per_day = @price_per_day,
			deposit = @deposit,
			images = @images,
			features = @features,
			description = @description,
			available = @available,
			multilingual = @multilingual,
			updated_at = now()
		WHERE id = @id
		RETURNING created_at, updated_at`

	queryDeleteRentalCar = `DELETE FROM rental_cars WHERE id = $1`
)
