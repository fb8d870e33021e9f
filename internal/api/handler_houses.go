package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarthome-backend/internal/domain"
	"smarthome-backend/internal/dto"
)

func houseResource(h domain.House) dto.HouseDTO {
	out := dto.HouseToDTO(h)
	out.Links = dto.SelfLink(href("houses", out.ID))
	return out
}

// ListHouses handles GET /api/houses.
func (h *Handler) ListHouses(c *gin.Context) {
	houses, err := h.svc.Houses.ListHouses(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	respondCollection(c, "houses", dto.MapSlice(houses, houseResource))
}

// GetHouse handles GET /api/houses/:id.
func (h *Handler) GetHouse(c *gin.Context) {
	id, ok := pathID[domain.HouseID](c, "id")
	if !ok {
		return
	}
	house, err := h.svc.Houses.GetHouse(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, houseResource(house))
}

// CreateHouse handles POST /api/houses.
func (h *Handler) CreateHouse(c *gin.Context) {
	var req dto.CreateHouseRequest
	if !bindBody(c, &req) {
		return
	}
	address, gps, err := dto.LocationFromRequest(req.LocationRequest)
	if err != nil {
		abortWithError(c, err)
		return
	}
	house, err := h.svc.Houses.CreateHouse(c.Request.Context(), req.Name, address, gps)
	if err != nil {
		abortWithError(c, err)
		return
	}
	out := houseResource(house)
	respondCreated(c, out.Links.Self.Href, out)
}

// ConfigureLocation handles PUT /api/houses/:id/location.
func (h *Handler) ConfigureLocation(c *gin.Context) {
	id, ok := pathID[domain.HouseID](c, "id")
	if !ok {
		return
	}
	var req dto.LocationRequest
	if !bindBody(c, &req) {
		return
	}
	address, gps, err := dto.LocationFromRequest(req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	house, err := h.svc.Houses.ConfigureLocation(c.Request.Context(), id, address, gps)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, houseResource(house))
}
