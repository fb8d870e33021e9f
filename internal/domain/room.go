package domain

// Room belongs to exactly one house.
type Room struct {
	ID         RoomID
	Name       Name
	HouseID    HouseID
	Floor      Floor
	Dimensions Dimensions
}

// NewRoom creates a room with a fresh identity.
func NewRoom(name string, houseID HouseID, floor int, width, height, length float64) (Room, error) {
	return RestoreRoom(newID[RoomID](), name, houseID, floor, width, height, length)
}

// RestoreRoom rebuilds a room with a known identity.
func RestoreRoom(id RoomID, name string, houseID HouseID, floor int, width, height, length float64) (Room, error) {
	if id == "" || houseID == "" {
		return Room{}, ErrBlankID
	}
	n, err := NewName(name)
	if err != nil {
		return Room{}, err
	}
	dims, err := NewDimensions(width, height, length)
	if err != nil {
		return Room{}, err
	}
	return Room{ID: id, Name: n, HouseID: houseID, Floor: Floor(floor), Dimensions: dims}, nil
}
