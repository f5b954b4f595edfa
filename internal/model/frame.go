package model

// ElementFrame is a screen-space rectangle, top-left origin. It is always a
// snapshot taken at read time; frames are never cached across requests.
type ElementFrame struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the geometric center of the frame, used by the global
// click-on-element dispatch path.
func (f ElementFrame) Center() (x, y float64) {
	return f.X + f.Width/2, f.Y + f.Height/2
}
