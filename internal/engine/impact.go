package engine

// BusinessImpact grades how sensitive the migrated data is and suggests a
// rollout approach.
type BusinessImpact struct {
	Score          float64 `json:"score"`
	Level          string  `json:"level"`
	Recommendation string  `json:"recommendation"`
}

var impactWeights = map[string]float64{
	"Customer Data":         0.9,
	"Financial Records":     0.95,
	"Employee Data":         0.7,
	"Intellectual Property": 0.85,
	"System Logs":           0.3,
	"Application Data":      0.8,
	"Database Backups":      0.6,
	"Media Files":           0.4,
	"Documents":             0.5,
}

const defaultImpactWeight = 0.5

// assessImpact averages the impact weight of each configured data type.
// Unknown types weigh in at the default.
func assessImpact(dataTypes []string) BusinessImpact {
	if len(dataTypes) == 0 {
		return BusinessImpact{Score: 0.5, Level: "Medium", Recommendation: "Standard migration approach"}
	}

	sum := 0.0
	for _, dt := range dataTypes {
		w, ok := impactWeights[dt]
		if !ok {
			w = defaultImpactWeight
		}
		sum += w
	}
	score := sum / float64(len(dataTypes))

	switch {
	case score >= 0.8:
		return BusinessImpact{Score: score, Level: "Critical", Recommendation: "Phased migration with extensive testing"}
	case score >= 0.6:
		return BusinessImpact{Score: score, Level: "High", Recommendation: "Careful planning with pilot phase"}
	case score >= 0.4:
		return BusinessImpact{Score: score, Level: "Medium", Recommendation: "Standard migration approach"}
	default:
		return BusinessImpact{Score: score, Level: "Low", Recommendation: "Direct migration acceptable"}
	}
}
