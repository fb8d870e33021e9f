package dto

import (
	"time"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/parse"
)

func HouseToDTO(h domain.House) HouseDTO {
	return HouseDTO{
		ID:         h.ID.String(),
		Name:       h.Name.String(),
		Street:     h.Address.Street,
		DoorNumber: h.Address.DoorNumber,
		PostalCode: h.Address.PostalCode,
		City:       h.Address.City,
		Country:    h.Address.Country,
		Latitude:   h.GPS.Latitude,
		Longitude:  h.GPS.Longitude,
	}
}

func HouseFromDTO(d HouseDTO) (domain.House, error) {
	id, err := domain.ParseID[domain.HouseID](d.ID)
	if err != nil {
		return domain.House{}, err
	}
	loc := LocationRequest{
		Street:     d.Street,
		DoorNumber: d.DoorNumber,
		PostalCode: d.PostalCode,
		City:       d.City,
		Country:    d.Country,
		Latitude:   d.Latitude,
		Longitude:  d.Longitude,
	}
	address, gps, err := LocationFromRequest(loc)
	if err != nil {
		return domain.House{}, err
	}
	return domain.RestoreHouse(id, d.Name, address, gps)
}

// LocationFromRequest validates the address and coordinates in r.
func LocationFromRequest(r LocationRequest) (domain.Address, domain.GPS, error) {
	address, err := domain.NewAddress(r.Street, r.DoorNumber, r.PostalCode, r.City, r.Country)
	if err != nil {
		return domain.Address{}, domain.GPS{}, err
	}
	gps, err := domain.NewGPS(r.Latitude, r.Longitude)
	if err != nil {
		return domain.Address{}, domain.GPS{}, err
	}
	return address, gps, nil
}

func RoomToDTO(r domain.Room) RoomDTO {
	return RoomDTO{
		ID:      r.ID.String(),
		Name:    r.Name.String(),
		HouseID: r.HouseID.String(),
		Floor:   int(r.Floor),
		Width:   r.Dimensions.Width,
		Height:  r.Dimensions.Height,
		Length:  r.Dimensions.Length,
	}
}

func RoomFromDTO(d RoomDTO) (domain.Room, error) {
	id, err := domain.ParseID[domain.RoomID](d.ID)
	if err != nil {
		return domain.Room{}, err
	}
	houseID, err := domain.ParseID[domain.HouseID](d.HouseID)
	if err != nil {
		return domain.Room{}, err
	}
	return domain.RestoreRoom(id, d.Name, houseID, d.Floor, d.Width, d.Height, d.Length)
}

func DeviceToDTO(d domain.Device) DeviceDTO {
	return DeviceDTO{
		ID:     d.ID.String(),
		Name:   d.Name.String(),
		TypeID: d.TypeID.String(),
		RoomID: d.RoomID.String(),
		Active: d.Active,
	}
}

func DeviceFromDTO(d DeviceDTO) (domain.Device, error) {
	id, err := domain.ParseID[domain.DeviceID](d.ID)
	if err != nil {
		return domain.Device{}, err
	}
	typeID, err := domain.ParseID[domain.DeviceTypeID](d.TypeID)
	if err != nil {
		return domain.Device{}, err
	}
	roomID, err := domain.ParseID[domain.RoomID](d.RoomID)
	if err != nil {
		return domain.Device{}, err
	}
	return domain.RestoreDevice(id, d.Name, typeID, roomID, d.Active)
}

func DeviceTypeToDTO(t domain.DeviceType) DeviceTypeDTO {
	return DeviceTypeDTO{ID: t.ID.String(), Description: t.Description}
}

func DeviceTypeFromDTO(d DeviceTypeDTO) (domain.DeviceType, error) {
	return domain.NewDeviceType(d.ID, d.Description)
}

func SensorTypeToDTO(t domain.SensorType) SensorTypeDTO {
	return SensorTypeDTO{ID: t.ID.String(), Description: t.Description, Unit: string(t.Unit)}
}

func SensorTypeFromDTO(d SensorTypeDTO) (domain.SensorType, error) {
	return domain.NewSensorType(d.ID, d.Description, d.Unit)
}

func SensorModelToDTO(m domain.SensorModel) ModelDTO {
	return ModelDTO{Name: m.Name.String(), TypeID: m.TypeID.String(), Description: m.Description}
}

func SensorModelFromDTO(d ModelDTO) (domain.SensorModel, error) {
	return domain.NewSensorModel(d.Name, d.TypeID, d.Description)
}

func ActuatorTypeToDTO(t domain.ActuatorType) ActuatorTypeDTO {
	return ActuatorTypeDTO{ID: t.ID.String(), Description: t.Description}
}

func ActuatorTypeFromDTO(d ActuatorTypeDTO) (domain.ActuatorType, error) {
	return domain.NewActuatorType(d.ID, d.Description)
}

func ActuatorModelToDTO(m domain.ActuatorModel) ModelDTO {
	return ModelDTO{Name: m.Name.String(), TypeID: m.TypeID.String(), Description: m.Description}
}

func ActuatorModelFromDTO(d ModelDTO) (domain.ActuatorModel, error) {
	return domain.NewActuatorModel(d.Name, d.TypeID, d.Description)
}

func SensorToDTO(s domain.Sensor) SensorDTO {
	return SensorDTO{
		ID:        s.ID.String(),
		Name:      s.Name.String(),
		ModelName: s.ModelName.String(),
		DeviceID:  s.DeviceID.String(),
	}
}

func SensorFromDTO(d SensorDTO) (domain.Sensor, error) {
	id, err := domain.ParseID[domain.SensorID](d.ID)
	if err != nil {
		return domain.Sensor{}, err
	}
	modelName, err := domain.ParseModelName(d.ModelName)
	if err != nil {
		return domain.Sensor{}, err
	}
	deviceID, err := domain.ParseID[domain.DeviceID](d.DeviceID)
	if err != nil {
		return domain.Sensor{}, err
	}
	return domain.RestoreSensor(id, d.Name, modelName, deviceID)
}

func ActuatorToDTO(a domain.Actuator) ActuatorDTO {
	out := ActuatorDTO{
		ID:        a.ID.String(),
		Name:      a.Name.String(),
		ModelName: a.ModelName.String(),
		DeviceID:  a.DeviceID.String(),
	}
	if a.Limits != nil {
		lower, upper := a.Limits.Lower, a.Limits.Upper
		out.LowerLimit = &lower
		out.UpperLimit = &upper
	}
	return out
}

func ActuatorFromDTO(d ActuatorDTO) (domain.Actuator, error) {
	id, err := domain.ParseID[domain.ActuatorID](d.ID)
	if err != nil {
		return domain.Actuator{}, err
	}
	modelName, err := domain.ParseModelName(d.ModelName)
	if err != nil {
		return domain.Actuator{}, err
	}
	deviceID, err := domain.ParseID[domain.DeviceID](d.DeviceID)
	if err != nil {
		return domain.Actuator{}, err
	}
	limits, err := LimitsFromDTO(d.LowerLimit, d.UpperLimit)
	if err != nil {
		return domain.Actuator{}, err
	}
	return domain.RestoreActuator(id, d.Name, modelName, deviceID, limits)
}

// LimitsFromDTO returns nil when both bounds are absent and an error when
// only one is given.
func LimitsFromDTO(lower, upper *float64) (*domain.ActuatorLimits, error) {
	if lower == nil && upper == nil {
		return nil, nil
	}
	if lower == nil || upper == nil {
		return nil, domain.ErrInvalidLimits
	}
	l, err := domain.NewActuatorLimits(*lower, *upper)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func ReadingToDTO(r domain.Reading) ReadingDTO {
	return ReadingDTO{
		ID:        r.ID.String(),
		SensorID:  string(r.SensorID),
		Value:     r.Value.String(),
		Timestamp: r.TimeStamp.Time().Format(time.RFC3339Nano),
	}
}

func ReadingFromDTO(d ReadingDTO) (domain.Reading, error) {
	id, err := domain.ParseID[domain.ReadingID](d.ID)
	if err != nil {
		return domain.Reading{}, err
	}
	sensorID, err := domain.ParseID[domain.SensorID](d.SensorID)
	if err != nil {
		return domain.Reading{}, err
	}
	at, err := parse.ParseTimeStamp(d.Timestamp)
	if err != nil {
		return domain.Reading{}, err
	}
	return domain.RestoreReading(id, sensorID, d.Value, at, time.Now())
}

// MapSlice converts every element with fn. The result is never nil.
func MapSlice[E, D any](in []E, fn func(E) D) []D {
	out := make([]D, 0, len(in))
	for _, e := range in {
		out = append(out, fn(e))
	}
	return out
}
