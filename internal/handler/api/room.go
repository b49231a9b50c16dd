package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/httperr"
	"staybook/internal/handler/middleware"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary Create room
// @Description Add a room to a hotel owned by the current manager (admins may target any hotel)
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Create room request"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrStaffRoleNeeded, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateRoom(c.Request.Context(), commands.CreateRoomRequest{
		HotelID:            req.HotelID,
		Number:             req.Number,
		PricePerNightCents: req.PricePerNightCents,
		MaxGuests:          req.MaxGuests,
	}, actorID, role)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrStaffRoleNeeded):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Manager or admin role required", nil)
		case errors.Is(err, commands.ErrHotelNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Hotel belongs to another manager", nil)
		case errors.Is(err, commands.ErrHotelNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.RoomID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

// @Summary Get room
// @Description Get room by ID
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrRoomNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary List hotel rooms
// @Description List rooms of a hotel, optionally only those free for a stay window
// @Tags rooms
// @Produce json
// @Param id path string true "Hotel ID"
// @Param check_in query string false "Stay start date (RFC 3339)"
// @Param check_out query string false "Stay end date (RFC 3339)"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /hotels/{id}/rooms [get]
func (h *RoomHandler) ListByHotel(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel ID format", nil)
		return
	}

	checkInStr, checkOutStr := c.Query("check_in"), c.Query("check_out")
	if checkInStr == "" && checkOutStr == "" {
		items, listErr := h.q.ListByHotel(c.Request.Context(), hotelID)
		if listErr != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, listErr, "Internal server error", nil)
			return
		}
		c.JSON(http.StatusOK, resdto.FromRoomList(items))
		return
	}

	checkIn, err := time.Parse(time.RFC3339, checkInStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid check_in format", nil)
		return
	}
	checkOut, err := time.Parse(time.RFC3339, checkOutStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid check_out format", nil)
		return
	}

	items, err := h.q.ListAvailable(c.Request.Context(), hotelID, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidStayDate) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid stay dates", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomList(items))
}

// @Summary Block or unblock room
// @Description Flip the administrative block switch on a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.SetRoomBlockedRequest true "Block request"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/blocked [put]
func (h *RoomHandler) SetBlocked(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	var req reqdto.SetRoomBlockedRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.cmds.SetRoomBlocked(c.Request.Context(), id, *req.Blocked, role); err != nil {
		switch {
		case errors.Is(err, commands.ErrStaffRoleNeeded):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Manager or admin role required", nil)
		case errors.Is(err, commands.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}
