package planck

// Physical constants, CODATA 2018 exact values (SI).
const (
	// PlanckConstant is h in J·s.
	PlanckConstant = 6.62607015e-34
	// SpeedOfLight is c in m/s.
	SpeedOfLight = 2.99792458e8
	// BoltzmannConstant is k_B in J/K.
	BoltzmannConstant = 1.380649e-23
	// WienDisplacement is Wien's displacement constant b in m·K,
	// relating temperature to the peak-emission wavelength λ_max = b/T.
	WienDisplacement = 2.897771955e-3
)

// MetersPerNanometer converts between the nanometer convention used at
// the visualization boundary and the meters the radiance formula needs.
const MetersPerNanometer = 1e-9
