package catalog

// Known network connectivity patterns.
const (
	PatternDirectConnectDedicated = "direct_connect_dedicated"
	PatternDirectConnectHosted    = "direct_connect_hosted"
	PatternSiteToSiteVPN          = "site_to_site_vpn"
	PatternTransitGateway         = "transit_gateway"
)

const (
	defaultPatternEfficiency = 0.85
	defaultLatencyMs         = 50.0
)

// NetworkPattern captures the fixed characteristics of a connectivity option.
type NetworkPattern struct {
	MaxBandwidthGbps   float64
	LatencyMs          float64
	AvailabilityPct    float64
	SetupTimeDays      float64
	MonthlyCostPerGbps float64
	Efficiency         float64
}

var networkPatterns = map[string]NetworkPattern{
	PatternDirectConnectDedicated: {
		MaxBandwidthGbps:   100,
		LatencyMs:          1,
		AvailabilityPct:    99.95,
		SetupTimeDays:      30,
		MonthlyCostPerGbps: 300,
		Efficiency:         0.95,
	},
	PatternDirectConnectHosted: {
		MaxBandwidthGbps:   10,
		LatencyMs:          2,
		AvailabilityPct:    99.9,
		SetupTimeDays:      14,
		MonthlyCostPerGbps: 100,
		Efficiency:         0.90,
	},
	PatternSiteToSiteVPN: {
		MaxBandwidthGbps:   1.25,
		LatencyMs:          150,
		AvailabilityPct:    99.95,
		SetupTimeDays:      1,
		MonthlyCostPerGbps: 45,
		Efficiency:         0.75,
	},
	PatternTransitGateway: {
		MaxBandwidthGbps:   50,
		LatencyMs:          1,
		AvailabilityPct:    99.95,
		SetupTimeDays:      1,
		MonthlyCostPerGbps: 50,
		Efficiency:         0.85,
	},
}

// geographicLatency maps source locations to estimated latency (ms) per
// target AWS region.
var geographicLatency = map[string]map[string]float64{
	"San Jose, CA":    {"us-west-1": 15, "us-west-2": 25, "us-east-1": 70, "us-east-2": 65},
	"San Antonio, TX": {"us-west-1": 45, "us-west-2": 50, "us-east-1": 35, "us-east-2": 30},
	"New York, NY":    {"us-west-1": 75, "us-west-2": 80, "us-east-1": 10, "us-east-2": 15},
	"Chicago, IL":     {"us-west-1": 60, "us-west-2": 65, "us-east-1": 25, "us-east-2": 20},
	"Dallas, TX":      {"us-west-1": 40, "us-west-2": 45, "us-east-1": 35, "us-east-2": 30},
	"Los Angeles, CA": {"us-west-1": 20, "us-west-2": 15, "us-east-1": 75, "us-east-2": 70},
	"Atlanta, GA":     {"us-west-1": 65, "us-west-2": 70, "us-east-1": 15, "us-east-2": 20},
	"London, UK":      {"us-west-1": 150, "us-west-2": 155, "us-east-1": 80, "us-east-2": 85},
	"Frankfurt, DE":   {"us-west-1": 160, "us-west-2": 165, "us-east-1": 90, "us-east-2": 95},
	"Tokyo, JP":       {"us-west-1": 120, "us-west-2": 115, "us-east-1": 180, "us-east-2": 185},
	"Sydney, AU":      {"us-west-1": 170, "us-west-2": 165, "us-east-1": 220, "us-east-2": 225},
}
