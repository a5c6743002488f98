package models

// Guest-of values
const (
	GuestOfBride = "Bride"
	GuestOfGroom = "Groom"
	GuestOfBoth  = "Both"
)

// Attending values ("" means undecided)
const (
	AttendingYes = "Yes"
	AttendingNo  = "No"
)
