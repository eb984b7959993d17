package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/railconnect/reservation-service/internal/dto"
	"github.com/railconnect/reservation-service/internal/models"
	"github.com/railconnect/reservation-service/internal/service"
)

type ReservationHandler struct {
	svc      service.ReservationService
	validate *validator.Validate
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc, validate: validator.New()}
}

func (h *ReservationHandler) RegisterRoutes(e *echo.Echo) {
	trains := e.Group("/api/v1/trains")
	trains.GET("", h.ListTrains)
	trains.POST("", h.AddTrain)
	trains.GET("/search", h.SearchTrains)
	trains.GET("/:id", h.GetTrain)
	trains.GET("/:id/bookings", h.ListBookings)
	trains.POST("/:id/bookings", h.BookTicket)

	e.GET("/api/v1/bookings/:pnr", h.GetBooking)
	e.DELETE("/api/v1/bookings/:pnr", h.CancelTicket)
	e.GET("/api/v1/waitlist", h.GetWaitlist)
}

// BookTicket validates the passenger request here at the edge; the
// engine itself does not re-check these fields.
func (h *ReservationHandler) BookTicket(c echo.Context) error {
	trainID := c.Param("id")

	var req dto.BookTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	passenger := models.Passenger{
		Name:    req.Name,
		Age:     req.Age,
		Gender:  req.Gender,
		TrainID: trainID,
	}

	booked, err := h.svc.BookTicket(c.Request().Context(), trainID, passenger)
	if err != nil {
		if errors.Is(err, service.ErrTrainNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// A full train is not a failure: the request is accepted onto the
	// waiting queue.
	if booked.Status == models.StatusWaitlisted {
		return c.JSON(http.StatusAccepted, dto.ToBookingResponse(booked))
	}
	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booked))
}

func (h *ReservationHandler) CancelTicket(c echo.Context) error {
	cancelled, err := h.svc.CancelTicket(c.Request().Context(), c.Param("pnr"))
	if err != nil {
		if errors.Is(err, service.ErrPNRNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(cancelled))
}

func (h *ReservationHandler) GetBooking(c echo.Context) error {
	p, ok := h.svc.FindPassenger(c.Param("pnr"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "booking not found")
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(p))
}

func (h *ReservationHandler) AddTrain(c echo.Context) error {
	var req dto.AddTrainRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	train := models.Train{
		TrainID:     req.TrainID,
		Name:        req.Name,
		Source:      req.Source,
		Destination: req.Destination,
		TotalSeats:  req.TotalSeats,
		BaseFare:    req.BaseFare,
	}

	if err := h.svc.AddTrain(c.Request().Context(), train); err != nil {
		if errors.Is(err, service.ErrTrainExists) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToTrainResponse(&train))
}

func (h *ReservationHandler) GetTrain(c echo.Context) error {
	train, ok := h.svc.FindTrain(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "train not found")
	}

	return c.JSON(http.StatusOK, dto.ToTrainResponse(train))
}

func (h *ReservationHandler) ListTrains(c echo.Context) error {
	trains := h.svc.ListTrains()

	resp := make([]dto.TrainResponse, len(trains))
	for i := range trains {
		resp[i] = dto.ToTrainResponse(&trains[i])
	}
	return c.JSON(http.StatusOK, resp)
}

// SearchTrains answers with an empty list when nothing matches; a
// missing query parameter is the only error here.
func (h *ReservationHandler) SearchTrains(c echo.Context) error {
	source := c.QueryParam("source")
	destination := c.QueryParam("destination")
	if source == "" || destination == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "source and destination are required")
	}

	trains := h.svc.SearchTrains(source, destination)
	resp := make([]dto.TrainResponse, len(trains))
	for i := range trains {
		resp[i] = dto.ToTrainResponse(&trains[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) ListBookings(c echo.Context) error {
	trainID := c.Param("id")
	if _, ok := h.svc.FindTrain(trainID); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "train not found")
	}

	bookings := h.svc.ListBookings(trainID)
	resp := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = dto.ToBookingResponse(&bookings[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) GetWaitlist(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.ToWaitlistResponse(h.svc.Waitlist()))
}
