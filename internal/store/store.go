package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repositories bundles every repository the services depend on.
type Repositories struct {
	Houses         HouseRepository
	Rooms          RoomRepository
	Devices        DeviceRepository
	DeviceTypes    DeviceTypeRepository
	Sensors        SensorRepository
	SensorTypes    SensorTypeRepository
	SensorModels   SensorModelRepository
	Actuators      ActuatorRepository
	ActuatorTypes  ActuatorTypeRepository
	ActuatorModels ActuatorModelRepository
	Readings       ReadingRepository
}

// NewGormRepositories creates GORM-backed repositories sharing one connection.
func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Houses:         &gormHouseRepository{db: db},
		Rooms:          &gormRoomRepository{db: db},
		Devices:        &gormDeviceRepository{db: db},
		DeviceTypes:    &gormDeviceTypeRepository{db: db},
		Sensors:        &gormSensorRepository{db: db},
		SensorTypes:    &gormSensorTypeRepository{db: db},
		SensorModels:   &gormSensorModelRepository{db: db},
		Actuators:      &gormActuatorRepository{db: db},
		ActuatorTypes:  &gormActuatorTypeRepository{db: db},
		ActuatorModels: &gormActuatorModelRepository{db: db},
		Readings:       &gormReadingRepository{db: db},
	}
}

// --- Generic helpers shared by the repositories ---

// upsert inserts row or, when the primary key exists, overwrites every
// mutable column.
func upsert[R any](ctx context.Context, db *gorm.DB, row *R) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(row).Error
}

// take loads the single row matching conds or returns notFound.
func take[R any](ctx context.Context, db *gorm.DB, notFound error, conds ...any) (R, error) {
	var row R
	err := db.WithContext(ctx).Take(&row, conds...).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, notFound
	}
	return row, err
}

func exists[R any](ctx context.Context, db *gorm.DB, column string, value any) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(new(R)).Where(column+" = ?", value).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// list runs q and converts every row. The result is never nil.
func list[R, E any](ctx context.Context, q *gorm.DB, toDomain func(R) (E, error)) ([]E, error) {
	var rows []R
	if err := q.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]E, 0, len(rows))
	for _, r := range rows {
		e, err := toDomain(r)
		if err != nil {
			return nil, fmt.Errorf("corrupt row: %w", err)
		}
		out = append(out, e)
	}
	return out, nil
}
