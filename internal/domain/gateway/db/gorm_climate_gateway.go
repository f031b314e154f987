package db

import (
	"context"
	"database/sql"
	"errors"

	"climate-api/internal/domain/entity"
	"climate-api/internal/domain/model"
	"climate-api/pkg/msg"

	"gorm.io/gorm"
)

type GormClimateGateway struct {
	DB *gorm.DB
}

var _ ClimateGateway = (*GormClimateGateway)(nil)

func NewGormClimateGateway(db *gorm.DB) *GormClimateGateway {
	return &GormClimateGateway{DB: db}
}

// withConnection runs fc on one pooled connection, released when fc returns
func (gateway *GormClimateGateway) withConnection(ctx context.Context, fc func(tx *gorm.DB) error) error {
	return gateway.DB.WithContext(ctx).Connection(fc)
}

func (gateway *GormClimateGateway) FindPrecipitation(ctx context.Context) ([]model.PrecipitationDTO, error) {
	results := make([]model.PrecipitationDTO, 0)
	err := gateway.withConnection(ctx, func(tx *gorm.DB) error {
		return tx.Model(&entity.Measurement{}).
			Select("station", "date", "prcp").
			Scan(&results).Error
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (gateway *GormClimateGateway) FindStationNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	err := gateway.withConnection(ctx, func(tx *gorm.DB) error {
		return tx.Model(&entity.Station{}).Pluck("name", &names).Error
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (gateway *GormClimateGateway) FindTemperatureObservationsDesc(ctx context.Context) ([]model.TemperatureObservationDTO, error) {
	results := make([]model.TemperatureObservationDTO, 0)
	err := gateway.withConnection(ctx, func(tx *gorm.DB) error {
		return tx.Model(&entity.Measurement{}).
			Select("station", "date", "tobs").
			Order("date DESC").
			Scan(&results).Error
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (gateway *GormClimateGateway) FindLatestDate(ctx context.Context) (string, bool, error) {
	var latest sql.NullString
	err := gateway.withConnection(ctx, func(tx *gorm.DB) error {
		return tx.Model(&entity.Measurement{}).
			Select("MAX(date)").
			Scan(&latest).Error
	})
	if err != nil {
		return "", false, err
	}
	return latest.String, latest.Valid, nil
}

func (gateway *GormClimateGateway) CalcTemperatureStats(ctx context.Context, start string, end string) (model.TemperatureStats, error) {
	var row struct {
		Min sql.NullFloat64
		Avg sql.NullFloat64
		Max sql.NullFloat64
	}
	err := gateway.withConnection(ctx, func(tx *gorm.DB) error {
		return tx.Model(&entity.Measurement{}).
			Select("MIN(tobs) AS min, AVG(tobs) AS avg, MAX(tobs) AS max").
			Where("date >= ? AND date <= ?", start, end).
			Scan(&row).Error
	})
	if err != nil {
		return model.TemperatureStats{}, err
	}
	return model.TemperatureStats{
		Min: nullableFloat(row.Min.Valid, row.Min.Float64),
		Avg: nullableFloat(row.Avg.Valid, row.Avg.Float64),
		Max: nullableFloat(row.Max.Valid, row.Max.Float64),
	}, nil
}

func (gateway *GormClimateGateway) ValidateSchema(ctx context.Context) error {
	return gateway.withConnection(ctx, func(tx *gorm.DB) error {
		migrator := tx.Migrator()
		for _, table := range entity.Schema {
			if !migrator.HasTable(table.Name) {
				return errors.New(msg.GetMessage("db.missing-table", table.Name))
			}
			for _, column := range table.Columns {
				if !migrator.HasColumn(table.Name, column) {
					return errors.New(msg.GetMessage("db.missing-column", table.Name, column))
				}
			}
		}
		return nil
	})
}
