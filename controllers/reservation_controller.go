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

type ReservationController struct {
	ReservationSvc *services.ReservationService
	Logger         *zap.Logger
}

func NewReservationController(svc *services.ReservationService, logger *zap.Logger) *ReservationController {
	return &ReservationController{ReservationSvc: svc, Logger: logger}
}

// GET /api/reservations
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	list, err := ctrl.ReservationSvc.GetAll(c.Request.Context())
	if err != nil {
		ctrl.Logger.Error("list reservations", zap.Error(err))
		utils.ServiceError(c, err)
		return
	}
	utils.Negotiate(c, http.StatusOK, list, models.ReservationList{Reservations: list})
}

// GET /api/reservations/:id
func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	r, err := ctrl.ReservationSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if services.KindOf(err) != services.KindNotFound {
			ctrl.Logger.Error("get reservation", zap.Uint("reservation_id", id), zap.Error(err))
		}
		utils.ServiceError(c, err)
		return
	}
	utils.Negotiate(c, http.StatusOK, r, r)
}

// GET /api/reservations/search?checkIn=yyyy-MM-dd&checkOut=yyyy-MM-dd
func (ctrl *ReservationController) SearchAvailability(c *gin.Context) {
	rooms, err := ctrl.ReservationSvc.Search(c.Request.Context(), c.Query("checkIn"), c.Query("checkOut"))
	if err != nil {
		if services.KindOf(err) == services.KindInternal {
			ctrl.Logger.Error("search availability", zap.Error(err))
		}
		utils.ServiceError(c, err)
		return
	}
	utils.Negotiate(c, http.StatusOK, rooms, models.RoomList{Rooms: rooms})
}

// POST /api/reservations
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var r models.Reservation
	if err := bindEntity(c, &r); err != nil {
		ctrl.Logger.Warn("create reservation: invalid payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := ctrl.ReservationSvc.Create(c.Request.Context(), &r); err != nil {
		ctrl.Logger.Warn("create reservation", zap.Error(err))
		utils.ServiceError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/reservations/%d", r.ID))
	utils.Negotiate(c, http.StatusCreated, r, r)
}

// PUT /api/reservations/:id
func (ctrl *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	var r models.Reservation
	if err := bindEntity(c, &r); err != nil {
		ctrl.Logger.Warn("update reservation: invalid payload", zap.Uint("reservation_id", id), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := ctrl.ReservationSvc.Update(c.Request.Context(), id, &r); err != nil {
		ctrl.Logger.Warn("update reservation", zap.Uint("reservation_id", id), zap.Error(err))
		utils.ServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// DELETE /api/reservations/:id
func (ctrl *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	if err := ctrl.ReservationSvc.Delete(c.Request.Context(), id); err != nil {
		ctrl.Logger.Warn("delete reservation", zap.Uint("reservation_id", id), zap.Error(err))
		utils.ServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
