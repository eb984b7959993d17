package models

// Train is a scheduled train with a fixed seat capacity.
// BookedSeats is maintained by the reservation service and always
// satisfies 0 <= BookedSeats <= TotalSeats.
type Train struct {
	TrainID     string  `json:"trainId"`
	Name        string  `json:"name"`
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	TotalSeats  int     `json:"totalSeats"`
	BookedSeats int     `json:"bookedSeats"`
	BaseFare    float64 `json:"baseFare"`
}

func (t *Train) HasFreeSeat() bool {
	return t.BookedSeats < t.TotalSeats
}
