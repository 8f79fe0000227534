package gpio

import "fmt"

const stepperPins = 4

func checkCount(c int) error {
	if c != stepperPins {
		return fmt.Errorf("incorrect number of pins in definition. found %d expected %d", c, stepperPins)
	}
	return nil
}
