package engine

import "fmt"

// ComplianceAssessment is the union of controls mandated by the selected
// frameworks plus any conflicts with the configured data handling.
type ComplianceAssessment struct {
	Requirements []string `json:"requirements"`
	Risks        []string `json:"risks,omitempty"`
}

// assessCompliance collects the control set for each framework and flags
// framework rules the configuration contradicts.
func (e *Engine) assessCompliance(cfg MigrationConfig) ComplianceAssessment {
	seen := make(map[string]struct{})
	var assessment ComplianceAssessment

	for _, framework := range cfg.ComplianceFrameworks {
		reqs, ok := e.catalog.ComplianceRequirements(framework)
		if !ok {
			continue
		}
		for _, req := range reqs {
			if _, dup := seen[req]; dup {
				continue
			}
			seen[req] = struct{}{}
			assessment.Requirements = append(assessment.Requirements, req)
		}

		if framework == "GDPR" && cfg.DataResidency == "No restrictions" {
			assessment.Risks = append(assessment.Risks, "GDPR requires data residency controls")
		}
		if (framework == "HIPAA" || framework == "PCI-DSS") && cfg.DataClassification == "Public" {
			assessment.Risks = append(assessment.Risks,
				fmt.Sprintf("%s incompatible with Public data classification", framework))
		}
	}

	return assessment
}
