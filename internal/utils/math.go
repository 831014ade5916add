// internal/utils/math.go
package utils

import "math"

// NormalizeAngle maps an angle into [-π, π].
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// AngleDiff is the signed shortest rotation from `from` to `to`.
func AngleDiff(from, to float64) float64 {
	return NormalizeAngle(to - from)
}

// TurnTowards rotates from toward to by at most maxStep radians.
func TurnTowards(from, to, maxStep float64) float64 {
	diff := AngleDiff(from, to)
	if math.Abs(diff) <= maxStep {
		return NormalizeAngle(to)
	}
	if diff < 0 {
		maxStep = -maxStep
	}
	return NormalizeAngle(from + maxStep)
}
