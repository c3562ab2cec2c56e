package shooter

// Autopilot chooses an input for headless play: it chases the lowest enemy,
// the one closest to costing a life, and fires continuously.
func Autopilot(s Snapshot) Input {
	in := Input{Fire: true}
	target := -1
	for i := range s.Enemies {
		if target < 0 || s.Enemies[i].Y > s.Enemies[target].Y {
			target = i
		}
	}
	if target < 0 {
		return in
	}

	eb := s.Enemies[target].Box()
	dx := (eb.X + eb.W/2) - (s.Player.X + s.Player.W/2)
	// Close enough when another step would overshoot.
	const deadZone = 5
	switch {
	case dx < -deadZone:
		in.Move = MoveLeft
	case dx > deadZone:
		in.Move = MoveRight
	}
	return in
}
