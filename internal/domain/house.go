package domain

// House is the root of the location hierarchy. Rooms reference it by ID.
type House struct {
	ID      HouseID
	Name    Name
	Address Address
	GPS     GPS
}

// NewHouse creates a house with a fresh identity.
func NewHouse(name string, address Address, gps GPS) (House, error) {
	return RestoreHouse(newID[HouseID](), name, address, gps)
}

// RestoreHouse rebuilds a house with a known identity.
func RestoreHouse(id HouseID, name string, address Address, gps GPS) (House, error) {
	if id == "" {
		return House{}, ErrBlankID
	}
	n, err := NewName(name)
	if err != nil {
		return House{}, err
	}
	a, err := NewAddress(address.Street, address.DoorNumber, address.PostalCode, address.City, address.Country)
	if err != nil {
		return House{}, err
	}
	g, err := NewGPS(gps.Latitude, gps.Longitude)
	if err != nil {
		return House{}, err
	}
	return House{ID: id, Name: n, Address: a, GPS: g}, nil
}

// Relocate replaces the address and coordinates of the house.
func (h *House) Relocate(address Address, gps GPS) error {
	a, err := NewAddress(address.Street, address.DoorNumber, address.PostalCode, address.City, address.Country)
	if err != nil {
		return err
	}
	g, err := NewGPS(gps.Latitude, gps.Longitude)
	if err != nil {
		return err
	}
	h.Address = a
	h.GPS = g
	return nil
}
