package connection

// InternalForces are the design internal forces acting on a connection
// component, in the component's local axes (N axial, V shear, M bending).
// Forces in Newtons, moments in Newton-meters.
type InternalForces struct {
	N  float64 `json:"n"`
	Vy float64 `json:"vy"`
	Vz float64 `json:"vz"`
	My float64 `json:"my"`
	Mz float64 `json:"mz"`
}
