package actuator

// DefaultPins are BCM pin numbers of IN1..IN4 on the reference wiring.
var DefaultPins = []int{26, 13, 6, 5}

// NewULN2003 creates a stepper for a ULN2003 darlington driver board with
// lines wired to IN1..IN4 in board order.
func NewULN2003[IN1, IN2, IN3, IN4 OutputPin](dir Direction, in1 IN1, in2 IN2, in3 IN3, in4 IN4) *Stepper[IN1, IN2, IN3, IN4] {
	return New(dir, in1, in2, in3, in4)
}
