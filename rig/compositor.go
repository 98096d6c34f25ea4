package rig

// composite folds the layer outputs into one transform, in ascending layer
// order. Layer 0 is the foundation; higher layers add or override on top,
// so the result depends on layer order.
//
// samples[i] is layer i's pose for this tick (the animator substitutes the
// reaction overlay for the base layer's sample while a reaction runs).
func composite(layers []Layer, samples []Sample) Sample {
	out := IdentitySample()
	for i := range layers {
		l := &layers[i]
		if !l.Active() {
			continue
		}
		s := samples[i]
		w := Clamp01(l.Weight)
		switch l.Mode {
		case BlendOverride:
			out.Offset = LerpVec3(out.Offset, s.Offset, w)
			out.Rotation = LerpVec3(out.Rotation, s.Rotation, w)
			out.Scale = LerpVec3(out.Scale, s.Scale, w)
			out.Alpha = Lerp(out.Alpha, s.Alpha, w)
		case BlendAdditive:
			out.Offset = out.Offset.Add(s.Offset.Scale(w))
			out.Rotation = out.Rotation.Add(s.Rotation.Scale(w))
			out.Scale = out.Scale.Mul(LerpVec3(One, s.Scale, w))
			out.Alpha *= Lerp(1, s.Alpha, w)
		case BlendMultiply:
			out.Scale = out.Scale.Mul(LerpVec3(One, s.Scale, w))
		}
	}
	out.Alpha = Clamp01(out.Alpha)
	return out
}
