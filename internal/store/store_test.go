package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"smarthome-backend/config"
	"smarthome-backend/internal/db"
	"smarthome-backend/internal/domain"
)

// newMockDB opens GORM on top of sqlmock so tests can assert the SQL sent to Postgres.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

// newTestRepos returns repositories over a private in-memory SQLite database.
func newTestRepos(t *testing.T) (*Repositories, *gorm.DB) {
	gormDB, err := db.Init(&config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewGormRepositories(gormDB), gormDB
}

func sweetHome(t *testing.T) domain.House {
	address, err := domain.NewAddress("Rua Central", "12", "4000-001", "Porto", "Portugal")
	require.NoError(t, err)
	gps, err := domain.NewGPS(41.15, -8.61)
	require.NoError(t, err)
	h, err := domain.NewHouse("Sweet Home", address, gps)
	require.NoError(t, err)
	return h
}

func TestRoomRepository_SaveThenFind(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	house := sweetHome(t)
	require.NoError(t, repos.Houses.Save(ctx, house))

	room, err := domain.NewRoom("Master Bedroom", house.ID, 1, 5, 3, 4)
	require.NoError(t, err)
	require.NoError(t, repos.Rooms.Save(ctx, room))

	got, err := repos.Rooms.FindByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, room, got)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, domain.Name("Master Bedroom"), got.Name)
	assert.Equal(t, house.ID, got.HouseID)
	assert.Equal(t, domain.Floor(1), got.Floor)
	assert.Equal(t, domain.Dimensions{Width: 5, Height: 3, Length: 4}, got.Dimensions)

	ok, err := repos.Rooms.Exists(ctx, room.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRepositories_FindByIDMissing(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	_, err := repos.Rooms.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repos.Houses.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrHouseNotFound)

	_, err = repos.Devices.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrDeviceNotFound)

	_, err = repos.SensorModels.FindByName(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrSensorModelNotFound)

	ok, err := repos.Sensors.Exists(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRoomRepository_FindByHouseID(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	house := sweetHome(t)
	require.NoError(t, repos.Houses.Save(ctx, house))
	for i, name := range []string{"Kitchen", "Office"} {
		room, err := domain.NewRoom(name, house.ID, i, 3, 2.5, 3)
		require.NoError(t, err)
		require.NoError(t, repos.Rooms.Save(ctx, room))
	}

	rooms, err := repos.Rooms.FindByHouseID(ctx, house.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, domain.Name("Kitchen"), rooms[0].Name)

	none, err := repos.Rooms.FindByHouseID(ctx, "other")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestHouseRepository_SaveOverwritesLocation(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	house := sweetHome(t)
	require.NoError(t, repos.Houses.Save(ctx, house))

	address, err := domain.NewAddress("Avenida da Liberdade", "100", "1250-001", "Lisboa", "Portugal")
	require.NoError(t, err)
	gps, err := domain.NewGPS(38.72, -9.14)
	require.NoError(t, err)
	require.NoError(t, house.Relocate(address, gps))
	require.NoError(t, repos.Houses.Save(ctx, house))

	got, err := repos.Houses.FindByID(ctx, house.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lisboa", got.Address.City)
	assert.Equal(t, 38.72, got.GPS.Latitude)

	all, err := repos.Houses.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDeviceRepository_DeactivationPersists(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	d, err := domain.NewDevice("Heater", "thermostat", "room-1")
	require.NoError(t, err)
	require.NoError(t, repos.Devices.Save(ctx, d))

	require.NoError(t, d.Deactivate())
	require.NoError(t, repos.Devices.Save(ctx, d))

	got, err := repos.Devices.FindByID(ctx, d.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	byType, err := repos.Devices.FindByTypeID(ctx, "thermostat")
	require.NoError(t, err)
	assert.Len(t, byType, 1)

	byRoom, err := repos.Devices.FindByRoomID(ctx, "room-2")
	require.NoError(t, err)
	assert.Empty(t, byRoom)
}

func TestActuatorRepository_Limits(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()

	limits := &domain.ActuatorLimits{Lower: 0, Upper: 100}
	withLimits, err := domain.NewActuator("Blind motor", "RollerBlindActuator", "dev-1", limits)
	require.NoError(t, err)
	plain, err := domain.NewActuator("Relay", "SwitchActuator", "dev-1", nil)
	require.NoError(t, err)
	require.NoError(t, repos.Actuators.Save(ctx, withLimits))
	require.NoError(t, repos.Actuators.Save(ctx, plain))

	got, err := repos.Actuators.FindByID(ctx, withLimits.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Limits)
	assert.Equal(t, *limits, *got.Limits)

	got, err = repos.Actuators.FindByID(ctx, plain.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Limits)

	byDevice, err := repos.Actuators.FindByDeviceID(ctx, "dev-1")
	require.NoError(t, err)
	assert.Len(t, byDevice, 2)
}

func TestReadingRepository_FindBySensorIDInPeriod(t *testing.T) {
	repos, _ := newTestRepos(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	now := base.Add(24 * time.Hour)

	// Saved out of order on purpose.
	for _, offset := range []time.Duration{2 * time.Hour, 0, time.Hour, 3 * time.Hour} {
		r, err := domain.NewReading("sensor-1", "21.5", base.Add(offset), now)
		require.NoError(t, err)
		require.NoError(t, repos.Readings.Save(ctx, r))
	}
	other, err := domain.NewReading("sensor-2", "40", base.Add(time.Hour), now)
	require.NoError(t, err)
	require.NoError(t, repos.Readings.Save(ctx, other))

	got, err := repos.Readings.FindBySensorIDInPeriod(ctx, "sensor-1", base, base.Add(2*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 3, "both bounds are inclusive")
	for i, want := range []time.Time{base, base.Add(time.Hour), base.Add(2 * time.Hour)} {
		assert.True(t, want.Equal(got[i].TimeStamp.Time()), "reading %d at %s", i, got[i].TimeStamp.Time())
		assert.Equal(t, domain.SensorID("sensor-1"), got[i].SensorID)
	}

	all, err := repos.Readings.FindBySensorID(ctx, "sensor-1")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	empty, err := repos.Readings.FindBySensorIDInPeriod(ctx, "sensor-3", base, now)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestCatalogRepositories_FindByTypeID(t *testing.T) {
	repos, gormDB := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, db.SeedCatalog(ctx, gormDB, &config.CatalogConfig{
		DeviceTypes: []config.TypeEntry{{ID: "thermostat", Description: "Thermostat"}},
		SensorTypes: []config.TypeEntry{{ID: "temperature", Description: "Temperature", Unit: "C"}},
		SensorModels: []config.ModelEntry{
			{Name: "TemperatureSensor", TypeID: "temperature"},
			{Name: "HumiditySensor", TypeID: "humidity"},
		},
		ActuatorTypes:  []config.TypeEntry{{ID: "switch", Description: "Switch"}},
		ActuatorModels: []config.ModelEntry{{Name: "SwitchActuator", TypeID: "switch"}},
	}))

	models, err := repos.SensorModels.FindByTypeID(ctx, "temperature")
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, domain.ModelName("TemperatureSensor"), models[0].Name)

	st, err := repos.SensorTypes.FindByID(ctx, "temperature")
	require.NoError(t, err)
	assert.Equal(t, domain.Unit("C"), st.Unit)

	ok, err := repos.DeviceTypes.Exists(ctx, "thermostat")
	require.NoError(t, err)
	assert.True(t, ok)

	actuatorModels, err := repos.ActuatorModels.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, actuatorModels, 1)
}

func TestGormHouseRepository_SaveIssuesUpsert(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repos := NewGormRepositories(gormDB)
	house := sweetHome(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "houses" .* ON CONFLICT \("id"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repos.Houses.Save(context.Background(), house))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormReadingRepository_PeriodQuery(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repos := NewGormRepositories(gormDB)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mock.ExpectQuery(`SELECT \* FROM "readings" WHERE sensor_id = \$1 AND recorded_at >= \$2 AND recorded_at <= \$3 ORDER BY recorded_at`).
		WithArgs("sensor-1", start, end).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sensor_id", "value", "recorded_at"}).
			AddRow("r1", "sensor-1", "20.1", start.Add(10*time.Minute)))

	got, err := repos.Readings.FindBySensorIDInPeriod(context.Background(), "sensor-1", start, end)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ReadingValue("20.1"), got[0].Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRoomRepository_QueryErrorIsWrapped(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repos := NewGormRepositories(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "rooms"`).WillReturnError(assert.AnError)

	_, err := repos.Rooms.FindAll(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
