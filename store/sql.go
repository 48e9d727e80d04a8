package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/devskill-org/openweathermap/weather"
)

const schema = `
CREATE TABLE IF NOT EXISTS observations (
	location_id BIGINT NOT NULL,
	observed_at BIGINT NOT NULL,
	run_id TEXT NOT NULL,
	location_name TEXT NOT NULL,
	country TEXT NOT NULL DEFAULT '',
	units TEXT NOT NULL,
	temperature DOUBLE PRECISION NOT NULL,
	temperature_unit TEXT NOT NULL,
	feels_like DOUBLE PRECISION,
	pressure DOUBLE PRECISION NOT NULL,
	humidity INTEGER NOT NULL,
	wind_speed DOUBLE PRECISION,
	wind_deg DOUBLE PRECISION,
	clouds INTEGER,
	rain_1h DOUBLE PRECISION,
	snow_1h DOUBLE PRECISION,
	condition_id INTEGER,
	description TEXT NOT NULL DEFAULT '',
	icon TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (location_id, observed_at)
)`

const columns = `location_id, observed_at, run_id, location_name, country, units, temperature,
	temperature_unit, feels_like, pressure, humidity, wind_speed, wind_deg, clouds,
	rain_1h, snow_1h, condition_id, description, icon`

const upsertQuery = `
	INSERT INTO observations (` + columns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (location_id, observed_at) DO UPDATE SET
		run_id = EXCLUDED.run_id,
		location_name = EXCLUDED.location_name,
		country = EXCLUDED.country,
		units = EXCLUDED.units,
		temperature = EXCLUDED.temperature,
		temperature_unit = EXCLUDED.temperature_unit,
		feels_like = EXCLUDED.feels_like,
		pressure = EXCLUDED.pressure,
		humidity = EXCLUDED.humidity,
		wind_speed = EXCLUDED.wind_speed,
		wind_deg = EXCLUDED.wind_deg,
		clouds = EXCLUDED.clouds,
		rain_1h = EXCLUDED.rain_1h,
		snow_1h = EXCLUDED.snow_1h,
		condition_id = EXCLUDED.condition_id,
		description = EXCLUDED.description,
		icon = EXCLUDED.icon`

const latestQuery = `
	SELECT ` + columns + `
	FROM observations o
	WHERE observed_at = (SELECT MAX(observed_at) FROM observations WHERE location_id = o.location_id)
	ORDER BY location_id`

const historyQuery = `
	SELECT ` + columns + `
	FROM observations
	WHERE location_id = ? AND observed_at >= ?
	ORDER BY observed_at`

const pruneQuery = `DELETE FROM observations WHERE observed_at < ?`

// sqlStore implements Store on database/sql; the drivers differ only in placeholder syntax
type sqlStore struct {
	db     *sql.DB
	rebind func(string) string
}

func (s *sqlStore) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveObservations upserts observations in one transaction
func (s *sqlStore) SaveObservations(ctx context.Context, observations []Observation) error {
	if len(observations) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, s.rebind(upsertQuery))
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, o := range observations {
		_, err := stmt.ExecContext(ctx,
			o.LocationID,
			o.ObservedAt.Unix(),
			o.RunID.String(),
			o.LocationName,
			o.CountryCode,
			string(o.Units),
			o.Temperature,
			o.TemperatureUnit,
			o.FeelsLike,
			o.Pressure,
			o.Humidity,
			o.WindSpeed,
			o.WindDegrees,
			o.Clouds,
			o.RainOneHour,
			o.SnowOneHour,
			o.ConditionID,
			o.Description,
			o.Icon,
		)
		if err != nil {
			return fmt.Errorf("failed to insert observation for location %d: %w", o.LocationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LatestObservations returns the most recent observation of every location
func (s *sqlStore) LatestObservations(ctx context.Context) ([]Observation, error) {
	return s.query(ctx, latestQuery)
}

// History returns the observations of a location since the given time, oldest first
func (s *sqlStore) History(ctx context.Context, locationID int64, since time.Time) ([]Observation, error) {
	return s.query(ctx, historyQuery, locationID, since.Unix())
}

// Prune deletes observations older than before and reports how many were removed
func (s *sqlStore) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, s.rebind(pruneQuery), before.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to prune observations: %w", err)
	}
	return res.RowsAffected()
}

// Close closes the database connection
func (s *sqlStore) Close() error {
	return s.db.Close()
}

func (s *sqlStore) query(ctx context.Context, query string, args ...any) ([]Observation, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query observations: %w", err)
	}
	defer rows.Close()

	var out []Observation
	for rows.Next() {
		var o Observation
		var observedAt int64
		var runID, units string
		if err := rows.Scan(
			&o.LocationID,
			&observedAt,
			&runID,
			&o.LocationName,
			&o.CountryCode,
			&units,
			&o.Temperature,
			&o.TemperatureUnit,
			&o.FeelsLike,
			&o.Pressure,
			&o.Humidity,
			&o.WindSpeed,
			&o.WindDegrees,
			&o.Clouds,
			&o.RainOneHour,
			&o.SnowOneHour,
			&o.ConditionID,
			&o.Description,
			&o.Icon,
		); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		o.ObservedAt = time.Unix(observedAt, 0).UTC()
		o.Units = weather.UnitSystem(units)
		if o.RunID, err = uuid.Parse(runID); err != nil {
			return nil, fmt.Errorf("invalid run id %q: %w", runID, err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating observations: %w", err)
	}
	return out, nil
}

// numbered rewrites ? placeholders to the $n form used by PostgreSQL
func numbered(query string) string {
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func unchanged(query string) string {
	return query
}
