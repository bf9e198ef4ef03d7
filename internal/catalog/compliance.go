package catalog

import "strings"

// complianceRequirements maps a compliance framework to the controls it
// mandates for a migration.
var complianceRequirements = map[string][]string{
	"SOX":      {"encryption_required", "audit_trail", "data_retention"},
	"GDPR":     {"encryption_required", "data_residency", "right_to_delete"},
	"HIPAA":    {"encryption_required", "access_logging", "data_residency"},
	"PCI-DSS":  {"encryption_required", "network_segmentation", "access_control"},
	"SOC2":     {"encryption_required", "monitoring", "access_control"},
	"ISO27001": {"risk_assessment", "documentation", "continuous_monitoring"},
	"FedRAMP":  {"encryption_required", "continuous_monitoring", "incident_response"},
	"FISMA":    {"encryption_required", "access_control", "audit_trail"},
}

const defaultEngineFactor = 0.85

// engineCompatibility holds per-engine DMS throughput factors, keyed by the
// normalized engine name.
var engineCompatibility = map[string]float64{
	"oracle":     0.85,
	"sql server": 0.90,
	"mysql":      0.95,
	"postgresql": 0.95,
	"mongodb":    0.80,
	"cassandra":  0.75,
}

func normalizeEngine(engine string) string {
	return strings.ToLower(strings.TrimSpace(engine))
}
