package sim

// solarSystem builds the static body registry
// Orbital parameters are scene units tuned for framing, not to scale;
// day/year lengths and surface gravity are real values
func solarSystem() (Body, []Body) {
	sun := Body{
		Name:          "Sun",
		Radius:        20.0,
		RotationSpeed: 0.1,
		DayLength:     25.0,
		Gravity:       274.0,
		Color:         Tint{1.0, 0.9, 0.3},
		WikiURL:       "https://en.wikipedia.org/wiki/Sun",
	}

	planets := []Body{
		{
			Name:        "Mercury",
			Radius:      3.0,
			OrbitRadius: 40.0,
			OrbitSpeed:  4.15,
			RotationSpeed: 1.0,
			Tilt:        0.034,
			DayLength:   58.6,
			YearLength:  88.0,
			Gravity:     3.7,
			Color:       Tint{0.55, 0.55, 0.57},
			WikiURL:     "https://en.wikipedia.org/wiki/Mercury_(planet)",
		},
		{
			Name:        "Venus",
			Radius:      4.5,
			OrbitRadius: 55.0,
			OrbitSpeed:  1.62,
			RotationSpeed: 0.4,
			Tilt:        2.64,
			DayLength:   243.0,
			YearLength:  225.0,
			Gravity:     8.87,
			Color:       Tint{0.95, 0.88, 0.7},
			WikiURL:     "https://en.wikipedia.org/wiki/Venus",
		},
		{
			Name:        "Earth",
			Radius:      5.0,
			OrbitRadius: 75.0,
			OrbitSpeed:  1.0,
			RotationSpeed: 1.0,
			Tilt:        23.44,
			DayLength:   1.0,
			YearLength:  365.25,
			Gravity:     9.81,
			Color:       Tint{0.25, 0.5, 0.85},
			WikiURL:     "https://en.wikipedia.org/wiki/Earth",
			Moons: []Moon{
				{
					Name:        "Moon",
					Radius:      1.3,
					OrbitRadius: 10.0,
					OrbitSpeed:  3.0,
					Color:       Tint{0.7, 0.7, 0.7},
				},
			},
		},
		{
			Name:        "Mars",
			Radius:      4.0,
			OrbitRadius: 95.0,
			OrbitSpeed:  0.53,
			RotationSpeed: 1.0,
			Tilt:        25.19,
			DayLength:   1.03,
			YearLength:  687.0,
			Gravity:     3.71,
			Color:       Tint{0.85, 0.35, 0.25},
			WikiURL:     "https://en.wikipedia.org/wiki/Mars",
		},
		{
			Name:            "Jupiter",
			Radius:          12.0,
			OrbitRadius:     130.0,
			OrbitSpeed:      0.084,
			RotationSpeed:   2.4,
			Tilt:            3.13,
			TextureRotation: 90.0,
			DayLength:       0.41,
			YearLength:      4333.0,
			Gravity:         24.79,
			Color:           Tint{0.85, 0.65, 0.45},
			WikiURL:         "https://en.wikipedia.org/wiki/Jupiter",
		},
		{
			Name:        "Saturn",
			Radius:      10.0,
			OrbitRadius: 170.0,
			OrbitSpeed:  0.034,
			RotationSpeed: 2.2,
			Tilt:        26.73,
			DayLength:   0.45,
			YearLength:  10759.0,
			Gravity:     10.44,
			HasRings:    true,
			RingInner:   14.0,
			RingOuter:   24.0,
			Color:       Tint{0.92, 0.85, 0.65},
			WikiURL:     "https://en.wikipedia.org/wiki/Saturn",
		},
		{
			Name:        "Uranus",
			Radius:      7.0,
			OrbitRadius: 210.0,
			OrbitSpeed:  0.012,
			RotationSpeed: 1.4,
			Tilt:        97.77,
			DayLength:   0.72,
			YearLength:  30687.0,
			Gravity:     8.87,
			Color:       Tint{0.6, 0.8, 0.85},
			WikiURL:     "https://en.wikipedia.org/wiki/Uranus",
		},
		{
			Name:        "Neptune",
			Radius:      6.5,
			OrbitRadius: 250.0,
			OrbitSpeed:  0.006,
			RotationSpeed: 1.5,
			Tilt:        28.32,
			DayLength:   0.67,
			YearLength:  60190.0,
			Gravity:     11.15,
			Color:       Tint{0.3, 0.4, 0.9},
			WikiURL:     "https://en.wikipedia.org/wiki/Neptune",
		},
	}

	return sun, planets
}
