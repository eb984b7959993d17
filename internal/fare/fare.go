package fare

// Compute derives the fare for a newly booked seat: the train's base
// fare plus a 1% surge per occupied seat, counted after the seat being
// priced. occupiedAfterBooking is therefore always >= 1.
func Compute(baseFare float64, occupiedAfterBooking int) float64 {
	return baseFare * (1.0 + 0.01*float64(occupiedAfterBooking))
}
