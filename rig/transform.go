package rig

// Sample is the output of one motion generator evaluation, and also the
// composited result of a full layer stack: a position offset, an Euler
// rotation in degrees, a scale, and an alpha channel the renderer may read
// for transparency flourishes.
type Sample struct {
	Offset   Vec3
	Rotation Vec3
	Scale    Vec3
	Alpha    float64
}

// IdentitySample is the neutral pose: no offset, no rotation, unit scale,
// fully opaque.
func IdentitySample() Sample {
	return Sample{Scale: One, Alpha: 1}
}

func lerpSample(a, b Sample, t float64) Sample {
	return Sample{
		Offset:   LerpVec3(a.Offset, b.Offset, t),
		Rotation: LerpVec3(a.Rotation, b.Rotation, t),
		Scale:    LerpVec3(a.Scale, b.Scale, t),
		Alpha:    Lerp(a.Alpha, b.Alpha, t),
	}
}
