package dto

import "github.com/railconnect/reservation-service/internal/models"

type BookingResponse struct {
	Status  models.BookingStatus `json:"status"`
	PNR     string               `json:"pnr,omitempty"`
	Name    string               `json:"name"`
	Age     int                  `json:"age"`
	Gender  string               `json:"gender"`
	TrainID string               `json:"train_id,omitempty"`
	SeatNo  int                  `json:"seat_no,omitempty"`
	Fare    float64              `json:"fare,omitempty"`
}

type TrainResponse struct {
	TrainID        string  `json:"train_id"`
	Name           string  `json:"name"`
	Source         string  `json:"source"`
	Destination    string  `json:"destination"`
	TotalSeats     int     `json:"total_seats"`
	BookedSeats    int     `json:"booked_seats"`
	SeatsAvailable int     `json:"seats_available"`
	BaseFare       float64 `json:"base_fare"`
}

type WaitlistEntryResponse struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	TrainID  string `json:"train_id,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingResponse(p *models.Passenger) BookingResponse {
	return BookingResponse{
		Status:  p.Status,
		PNR:     p.PNR,
		Name:    p.Name,
		Age:     p.Age,
		Gender:  p.Gender,
		TrainID: p.TrainID,
		SeatNo:  p.SeatNo,
		Fare:    p.Fare,
	}
}

func ToTrainResponse(t *models.Train) TrainResponse {
	return TrainResponse{
		TrainID:        t.TrainID,
		Name:           t.Name,
		Source:         t.Source,
		Destination:    t.Destination,
		TotalSeats:     t.TotalSeats,
		BookedSeats:    t.BookedSeats,
		SeatsAvailable: t.TotalSeats - t.BookedSeats,
		BaseFare:       t.BaseFare,
	}
}

func ToWaitlistResponse(waiting []models.Passenger) []WaitlistEntryResponse {
	resp := make([]WaitlistEntryResponse, len(waiting))
	for i, p := range waiting {
		resp[i] = WaitlistEntryResponse{
			Position: i + 1,
			Name:     p.Name,
			Age:      p.Age,
			Gender:   p.Gender,
			TrainID:  p.TrainID,
		}
	}
	return resp
}
