package decision

// Mechanism identifies a migration transfer mechanism.
type Mechanism string

// Known mechanisms. MechanismNone marks the absence of a recommendation.
const (
	MechanismDataSync Mechanism = "datasync"
	MechanismDMS      Mechanism = "dms"
	MechanismSnowball Mechanism = "snowball"
	MechanismNone     Mechanism = "none"
)

// IsValid reports whether the mechanism is one of the known values.
func (m Mechanism) IsValid() bool {
	switch m {
	case MechanismDataSync, MechanismDMS, MechanismSnowball, MechanismNone:
		return true
	}
	return false
}

// DisplayName returns the AWS service name for the mechanism.
func (m Mechanism) DisplayName() string {
	switch m {
	case MechanismDataSync:
		return "DataSync"
	case MechanismDMS:
		return "DMS"
	case MechanismSnowball:
		return "Snowball Edge"
	case MechanismNone:
		return "None"
	}
	return string(m)
}

// Suitability grades how well a mechanism fits a migration.
type Suitability string

// Suitability grades.
const (
	SuitabilityHigh   Suitability = "High"
	SuitabilityMedium Suitability = "Medium"
	SuitabilityLow    Suitability = "Low"
)
