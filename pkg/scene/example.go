package scene

// Example returns a small scene with one of each shape kind and a builder
// halfway through a cubic curve.
func Example() *Scene {
	seed := uint64(42)
	stroke := "#1f2933"
	fill := "#e63946"
	sky := "#457b9d"
	return &Scene{
		Width:      480,
		Height:     320,
		Background: "#ffffff",
		Options:    Style{Seed: &seed, StrokeColor: &stroke},
		Shapes: []Shape{
			{Kind: "rectangle", Center: &Vec{110, 90}, HalfExtents: &Vec{70, 45}, Angle: -4,
				Options: &Style{FillColor: &fill}},
			{Kind: "ellipse", Center: &Vec{320, 90}, Radii: &Vec{80, 50},
				Options: &Style{FillColor: &sky, FillStyle: "cross-hatch"}},
			{Kind: "line", Start: &Vec{40, 200}, End: &Vec{440, 220}},
			{Kind: "quadbez", Start: &Vec{40, 280}, Cp: &Vec{140, 200}, End: &Vec{240, 280}},
			{Kind: "cubbez", Start: &Vec{260, 280}, Cp1: &Vec{300, 200}, Cp2: &Vec{400, 320}, End: &Vec{440, 250}},
		},
		Builders: []Builder{
			{Kind: "cubbez", Points: []Vec{{40, 150}, {120, 120}, {200, 180}}},
		},
	}
}
