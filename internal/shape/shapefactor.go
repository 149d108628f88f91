package shape

// ExternalShapeFactor returns C_shp = C_p,e·K_a·K_c,e·K_l·K_p
// (AS/NZS 1170.2 Clause 5.2). Use 1.0 for any factor that does not apply.
func ExternalShapeFactor(cpe, ka, kce, kl, kp float64) float64 {
	return cpe * ka * kce * kl * kp
}

// InternalShapeFactor returns C_shp = C_p,i·K_c,i.
func InternalShapeFactor(cpi, kci float64) float64 {
	return cpi * kci
}
