package astro

import "math"

// Gravitational parameters (m^3/s^2) and body radii (m).
const (
	MuEarth = 3.986004418e14
	MuMoon  = 4.9048695e12
	REarth  = 6378137.0
	RMoon   = 1737400.0
)

// TwoPi is one full revolution of true longitude.
const TwoPi = 2 * math.Pi

// SecondsPerDay converts mission elapsed time to days for axis labels.
const SecondsPerDay = 86400.0

// Mean lunar orbit about Earth, used by the default ephemeris evaluator.
// Angles in radians, semi-major axis in metres.
const (
	MoonSemiMajorAxis  = 3.84748e8
	MoonEccentricity   = 0.0549
	MoonInclination    = 5.145 * math.Pi / 180
	MoonAscendingNode  = 125.08 * math.Pi / 180
	MoonArgPerigee     = 318.15 * math.Pi / 180
	MoonMeanAnomalyJ2k = 115.3654 * math.Pi / 180
)
