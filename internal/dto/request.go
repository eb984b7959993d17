package dto

type BookTicketRequest struct {
	Name   string `json:"name" validate:"required"`
	Age    int    `json:"age" validate:"required,gt=0"`
	Gender string `json:"gender" validate:"required"`
}

type AddTrainRequest struct {
	TrainID     string  `json:"train_id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Source      string  `json:"source" validate:"required"`
	Destination string  `json:"destination" validate:"required"`
	TotalSeats  int     `json:"total_seats" validate:"gte=0"`
	BaseFare    float64 `json:"base_fare" validate:"gte=0"`
}
