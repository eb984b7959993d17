package models

type BookingStatus string

const (
	StatusConfirmed  BookingStatus = "confirmed"
	StatusWaitlisted BookingStatus = "waitlisted"
	StatusCancelled  BookingStatus = "cancelled"
)

// Passenger is a booking record. A confirmed passenger carries a PNR,
// a seat number and a fare; a waitlisted one carries only the request
// fields (name, age, gender and the requested train, which may be
// empty meaning "any train").
type Passenger struct {
	Name    string        `json:"name"`
	Age     int           `json:"age"`
	Gender  string        `json:"gender"`
	PNR     string        `json:"pnr,omitempty"`
	TrainID string        `json:"trainId"`
	SeatNo  int           `json:"seatNo,omitempty"`
	Fare    float64       `json:"fare,omitempty"`
	Status  BookingStatus `json:"status,omitempty"`
}
