package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-reservation/models"
	"hotel-reservation/services"
	"hotel-reservation/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService
	Logger  *zap.Logger
}

func NewRoomController(svc *services.RoomService, logger *zap.Logger) *RoomController {
	return &RoomController{RoomSvc: svc, Logger: logger}
}

// GET /api/rooms
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetAll(c.Request.Context())
	if err != nil {
		ctrl.Logger.Error("list rooms", zap.Error(err))
		utils.ServiceError(c, err)
		return
	}
	utils.Negotiate(c, http.StatusOK, rooms, models.RoomList{Rooms: rooms})
}

// GET /api/rooms/:id
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	room, err := ctrl.RoomSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if services.KindOf(err) != services.KindNotFound {
			ctrl.Logger.Error("get room", zap.Uint("room_id", id), zap.Error(err))
		}
		utils.ServiceError(c, err)
		return
	}
	utils.Negotiate(c, http.StatusOK, room, room)
}

// POST /api/rooms
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := bindEntity(c, &room); err != nil {
		ctrl.Logger.Warn("create room: invalid payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := ctrl.RoomSvc.Create(c.Request.Context(), &room); err != nil {
		ctrl.Logger.Warn("create room", zap.Error(err))
		utils.ServiceError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/rooms/%d", room.ID))
	utils.Negotiate(c, http.StatusCreated, room, room)
}

// PUT /api/rooms/:id
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room id")
		return
	}

	var room models.Room
	if err := bindEntity(c, &room); err != nil {
		ctrl.Logger.Warn("update room: invalid payload", zap.Uint("room_id", id), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := ctrl.RoomSvc.Update(c.Request.Context(), id, &room); err != nil {
		ctrl.Logger.Warn("update room", zap.Uint("room_id", id), zap.Error(err))
		utils.ServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// DELETE /api/rooms/:id
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room id")
		return
	}

	if err := ctrl.RoomSvc.Delete(c.Request.Context(), id); err != nil {
		ctrl.Logger.Warn("delete room", zap.Uint("room_id", id), zap.Error(err))
		utils.ServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
