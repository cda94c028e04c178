// SPDX-License-Identifier: Apache-2.0

package store

const (
	createUser = `
		INSERT INTO users (username, name, email, role, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, name, email, role, created_at;`

	findUserByUsername = `
		SELECT id, username, name, email, role, created_at, password_hash
		FROM users
		WHERE username = $1;`

	getUserByID = `
		SELECT id, username, name, email, role, created_at
		FROM users
		WHERE id = $1;`

	getAllUsers = `
		SELECT id, username, name, email, role, created_at
		FROM users
		ORDER BY name;`

	deleteUser = `
		DELETE FROM users WHERE id = $1;`

	createEquipment = `
		INSERT INTO equipment (
			name,
			kind,
			manufacturer,
			model,
			serial_number,
			asset_tag,
			sector,
			status,
			acquired_at,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, name, kind, manufacturer, model, serial_number, asset_tag,
			sector, status, acquired_at, created_at, updated_at;`

	getEquipment = `
		SELECT id, name, kind, manufacturer, model, serial_number, asset_tag,
			sector, status, acquired_at, created_at, updated_at
		FROM equipment
		WHERE id = $1;`

	updateEquipment = `
		UPDATE equipment SET
			name          = $1,
			kind          = $2,
			manufacturer  = $3,
			model         = $4,
			serial_number = $5,
			asset_tag     = $6,
			sector        = $7,
			status        = $8,
			acquired_at   = $9,
			updated_at    = CURRENT_TIMESTAMP
		WHERE id = $10
		RETURNING id, name, kind, manufacturer, model, serial_number, asset_tag,
			sector, status, acquired_at, created_at, updated_at;`

	updateEquipmentStatus = `
		UPDATE equipment SET
			status     = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING id, name, kind, manufacturer, model, serial_number, asset_tag,
			sector, status, acquired_at, created_at, updated_at;`

	deleteEquipment = `
		DELETE FROM equipment WHERE id = $1;`
)
