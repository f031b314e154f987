package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	"climate-api/internal/domain/entity"
	"climate-api/internal/domain/model"
	"climate-api/pkg/log"
	"climate-api/pkg/msg"

	"go.uber.org/zap"
)

//go:embed sql/find-precipitation.sql
var findPrecipitationSQL string

//go:embed sql/find-station-names.sql
var findStationNamesSQL string

//go:embed sql/find-tobs-desc.sql
var findTobsDescSQL string

//go:embed sql/find-latest-date.sql
var findLatestDateSQL string

//go:embed sql/calc-temperature-stats.sql
var calcTemperatureStatsSQL string

type SQLCClimateGateway struct {
	DB *sql.DB
}

var _ ClimateGateway = (*SQLCClimateGateway)(nil)

func NewSQLCClimateGateway(db *sql.DB) *SQLCClimateGateway {
	return &SQLCClimateGateway{DB: db}
}

// withConn acquires one connection for fn and returns it to the pool on every path
func (gateway *SQLCClimateGateway) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := gateway.DB.Conn(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			log.Error("close connection", zap.Error(closeErr))
		}
	}()
	return fn(conn)
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		log.Error("close rows", zap.Error(err))
	}
}

func (gateway *SQLCClimateGateway) FindPrecipitation(ctx context.Context) ([]model.PrecipitationDTO, error) {
	results := make([]model.PrecipitationDTO, 0)
	err := gateway.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, findPrecipitationSQL)
		if err != nil {
			return err
		}
		defer closeRows(rows)

		for rows.Next() {
			var p model.PrecipitationDTO
			var prcp sql.NullFloat64
			if err := rows.Scan(&p.Station, &p.Date, &prcp); err != nil {
				return err
			}
			p.Prcp = nullableFloat(prcp.Valid, prcp.Float64)
			results = append(results, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (gateway *SQLCClimateGateway) FindStationNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	err := gateway.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, findStationNamesSQL)
		if err != nil {
			return err
		}
		defer closeRows(rows)

		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return err
			}
			names = append(names, name)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (gateway *SQLCClimateGateway) FindTemperatureObservationsDesc(ctx context.Context) ([]model.TemperatureObservationDTO, error) {
	results := make([]model.TemperatureObservationDTO, 0)
	err := gateway.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, findTobsDescSQL)
		if err != nil {
			return err
		}
		defer closeRows(rows)

		for rows.Next() {
			var o model.TemperatureObservationDTO
			var tobs sql.NullFloat64
			if err := rows.Scan(&o.Station, &o.Date, &tobs); err != nil {
				return err
			}
			o.Tobs = nullableFloat(tobs.Valid, tobs.Float64)
			results = append(results, o)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (gateway *SQLCClimateGateway) FindLatestDate(ctx context.Context) (string, bool, error) {
	var latest sql.NullString
	err := gateway.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, findLatestDateSQL).Scan(&latest)
	})
	if err != nil {
		return "", false, err
	}
	return latest.String, latest.Valid, nil
}

func (gateway *SQLCClimateGateway) CalcTemperatureStats(ctx context.Context, start string, end string) (model.TemperatureStats, error) {
	var low, avg, high sql.NullFloat64
	err := gateway.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, calcTemperatureStatsSQL, start, end).Scan(&low, &avg, &high)
	})
	if err != nil {
		return model.TemperatureStats{}, err
	}
	return model.TemperatureStats{
		Min: nullableFloat(low.Valid, low.Float64),
		Avg: nullableFloat(avg.Valid, avg.Float64),
		Max: nullableFloat(high.Valid, high.Float64),
	}, nil
}

// ValidateSchema selects every declared column from an empty result set;
// the store rejects the statement when a table or column is missing.
func (gateway *SQLCClimateGateway) ValidateSchema(ctx context.Context) error {
	return gateway.withConn(ctx, func(conn *sql.Conn) error {
		for _, table := range entity.Schema {
			query := fmt.Sprintf("SELECT %s FROM %s WHERE 1 = 0", strings.Join(table.Columns, ", "), table.Name)
			rows, err := conn.QueryContext(ctx, query)
			if err != nil {
				return fmt.Errorf("%s: %w", msg.GetMessage("db.schema-invalid", table.Name), err)
			}
			closeRows(rows)
		}
		return nil
	})
}
