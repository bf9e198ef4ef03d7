package catalog

// FallbackPrices is the static price table used whenever a live pricing
// lookup is unavailable, malformed or too slow. Values are USD and
// intentionally conservative; they track published on-demand rates for the
// reference region.
type FallbackPrices struct {
	Compute            map[string]float64 `yaml:"compute"`
	ComputeDefault     float64            `yaml:"compute_default"`
	Replication        map[string]float64 `yaml:"replication"`
	ReplicationDefault float64            `yaml:"replication_default"`
	Storage            map[string]float64 `yaml:"storage"`
	StorageDefault     float64            `yaml:"storage_default"`
	TransferPerGB      float64            `yaml:"transfer_per_gb"`
	Line10GbpsHourly   float64            `yaml:"line_10gbps_hourly"`
	Line1GbpsHourly    float64            `yaml:"line_1gbps_hourly"`
	Line100MbpsHourly  float64            `yaml:"line_100mbps_hourly"`
}

var defaultFallbackPrices = FallbackPrices{
	Compute: map[string]float64{
		"m5.large": 0.096, "m5.xlarge": 0.192, "m5.2xlarge": 0.384,
		"m5.4xlarge": 0.768, "m5.8xlarge": 1.536,
		"c5.2xlarge": 0.34, "c5.4xlarge": 0.68, "c5.9xlarge": 1.53,
		"r5.2xlarge": 0.504, "r5.4xlarge": 1.008,
	},
	ComputeDefault: 0.10,
	Replication: map[string]float64{
		"dms.t3.micro": 0.020, "dms.t3.small": 0.040, "dms.t3.medium": 0.080,
		"dms.t3.large": 0.160, "dms.c5.large": 0.192, "dms.c5.xlarge": 0.384,
		"dms.c5.2xlarge": 0.768, "dms.c5.4xlarge": 1.536,
		"dms.r5.large": 0.252, "dms.r5.xlarge": 0.504,
		"dms.r5.2xlarge": 1.008, "dms.r5.4xlarge": 2.016,
	},
	ReplicationDefault: 0.20,
	Storage: map[string]float64{
		"Standard": 0.023, "Standard-IA": 0.0125, "One Zone-IA": 0.01,
		"Glacier Instant Retrieval": 0.004, "Glacier Flexible Retrieval": 0.0036,
		"Glacier Deep Archive": 0.00099,
	},
	StorageDefault:    0.023,
	TransferPerGB:     0.09,
	Line10GbpsHourly:  1.55,
	Line1GbpsHourly:   0.30,
	Line100MbpsHourly: 0.03,
}

// ComputeRate returns the fallback hourly rate for an agent instance type.
func (f FallbackPrices) ComputeRate(instanceType string) float64 {
	if rate, ok := f.Compute[instanceType]; ok {
		return rate
	}
	return f.ComputeDefault
}

// ReplicationRate returns the fallback hourly rate for a replication
// instance class.
func (f FallbackPrices) ReplicationRate(instanceType string) float64 {
	if rate, ok := f.Replication[instanceType]; ok {
		return rate
	}
	return f.ReplicationDefault
}

// StorageRate returns the fallback per-GB-month rate for an S3 storage class.
func (f FallbackPrices) StorageRate(storageClass string) float64 {
	if rate, ok := f.Storage[storageClass]; ok {
		return rate
	}
	return f.StorageDefault
}

// LineHourlyRate returns the fallback Direct Connect hourly rate for a port
// sized to carry the given bandwidth.
func (f FallbackPrices) LineHourlyRate(bandwidthMbps float64) float64 {
	switch {
	case bandwidthMbps >= 10000:
		return f.Line10GbpsHourly
	case bandwidthMbps >= 1000:
		return f.Line1GbpsHourly
	default:
		return f.Line100MbpsHourly
	}
}

// Fallback returns the static fallback price table.
func (c *Catalog) Fallback() FallbackPrices {
	return c.fallback
}

// priceListLocations maps AWS region codes to Price List API location names.
var priceListLocations = map[string]string{
	"us-east-1":      "US East (N. Virginia)",
	"us-east-2":      "US East (Ohio)",
	"us-west-1":      "US West (N. California)",
	"us-west-2":      "US West (Oregon)",
	"eu-west-1":      "Europe (Ireland)",
	"eu-central-1":   "Europe (Frankfurt)",
	"ap-southeast-1": "Asia Pacific (Singapore)",
	"ap-northeast-1": "Asia Pacific (Tokyo)",
	"ap-south-1":     "Asia Pacific (Mumbai)",
	"sa-east-1":      "South America (Sao Paulo)",
}

const defaultLocation = "US East (N. Virginia)"
