package catalog

// AgentProfile describes the measured capability of an EC2 instance type when
// running a DataSync agent.
type AgentProfile struct {
	VCPU               int
	MemoryGB           int
	NetworkMbps        float64
	BaselineThroughput float64 // Mbps a single agent sustains under ideal conditions
	CostPerHour        float64 // fallback hourly rate, USD
}

// ReplicationProfile describes a DMS replication instance class.
type ReplicationProfile struct {
	VCPU           int
	MemoryGB       int
	NetworkMbps    float64
	ThroughputMbps float64
	CostPerHour    float64 // fallback hourly rate, USD
}

var agentProfiles = map[string]AgentProfile{
	"m5.large":    {VCPU: 2, MemoryGB: 8, NetworkMbps: 750, BaselineThroughput: 150, CostPerHour: 0.096},
	"m5.xlarge":   {VCPU: 4, MemoryGB: 16, NetworkMbps: 750, BaselineThroughput: 250, CostPerHour: 0.192},
	"m5.2xlarge":  {VCPU: 8, MemoryGB: 32, NetworkMbps: 1000, BaselineThroughput: 400, CostPerHour: 0.384},
	"m5.4xlarge":  {VCPU: 16, MemoryGB: 64, NetworkMbps: 2000, BaselineThroughput: 600, CostPerHour: 0.768},
	"m5.8xlarge":  {VCPU: 32, MemoryGB: 128, NetworkMbps: 4000, BaselineThroughput: 1000, CostPerHour: 1.536},
	"c5.2xlarge":  {VCPU: 8, MemoryGB: 16, NetworkMbps: 2000, BaselineThroughput: 500, CostPerHour: 0.34},
	"c5.4xlarge":  {VCPU: 16, MemoryGB: 32, NetworkMbps: 4000, BaselineThroughput: 800, CostPerHour: 0.68},
	"c5.9xlarge":  {VCPU: 36, MemoryGB: 72, NetworkMbps: 10000, BaselineThroughput: 1500, CostPerHour: 1.53},
	"r5.2xlarge":  {VCPU: 8, MemoryGB: 64, NetworkMbps: 2000, BaselineThroughput: 450, CostPerHour: 0.504},
	"r5.4xlarge":  {VCPU: 16, MemoryGB: 128, NetworkMbps: 4000, BaselineThroughput: 700, CostPerHour: 1.008},
}

var replicationProfiles = map[string]ReplicationProfile{
	"dms.t3.micro":   {VCPU: 2, MemoryGB: 1, NetworkMbps: 2048, ThroughputMbps: 50, CostPerHour: 0.020},
	"dms.t3.small":   {VCPU: 2, MemoryGB: 2, NetworkMbps: 5000, ThroughputMbps: 100, CostPerHour: 0.040},
	"dms.t3.medium":  {VCPU: 2, MemoryGB: 4, NetworkMbps: 5000, ThroughputMbps: 200, CostPerHour: 0.080},
	"dms.t3.large":   {VCPU: 2, MemoryGB: 8, NetworkMbps: 5000, ThroughputMbps: 400, CostPerHour: 0.160},
	"dms.c5.large":   {VCPU: 2, MemoryGB: 4, NetworkMbps: 10000, ThroughputMbps: 600, CostPerHour: 0.192},
	"dms.c5.xlarge":  {VCPU: 4, MemoryGB: 8, NetworkMbps: 10000, ThroughputMbps: 1200, CostPerHour: 0.384},
	"dms.c5.2xlarge": {VCPU: 8, MemoryGB: 16, NetworkMbps: 10000, ThroughputMbps: 2400, CostPerHour: 0.768},
	"dms.c5.4xlarge": {VCPU: 16, MemoryGB: 32, NetworkMbps: 10000, ThroughputMbps: 4800, CostPerHour: 1.536},
	"dms.r5.large":   {VCPU: 2, MemoryGB: 16, NetworkMbps: 10000, ThroughputMbps: 800, CostPerHour: 0.252},
	"dms.r5.xlarge":  {VCPU: 4, MemoryGB: 32, NetworkMbps: 10000, ThroughputMbps: 1600, CostPerHour: 0.504},
	"dms.r5.2xlarge": {VCPU: 8, MemoryGB: 64, NetworkMbps: 10000, ThroughputMbps: 3200, CostPerHour: 1.008},
	"dms.r5.4xlarge": {VCPU: 16, MemoryGB: 128, NetworkMbps: 10000, ThroughputMbps: 6400, CostPerHour: 2.016},
}

// FileSizeCategory classifies the dominant file size of a dataset. Small file
// workloads waste throughput on per-object overhead, large files approach
// line rate.
type FileSizeCategory string

// Known file size categories.
const (
	FileSizeUnder1MB   FileSizeCategory = "under_1mb"
	FileSize1To10MB    FileSizeCategory = "1mb_10mb"
	FileSize10To100MB  FileSizeCategory = "10mb_100mb"
	FileSize100MBTo1GB FileSizeCategory = "100mb_1gb"
	FileSizeOver1GB    FileSizeCategory = "over_1gb"
)

var fileSizeMultipliers = map[FileSizeCategory]float64{
	FileSizeUnder1MB:   0.25,
	FileSize1To10MB:    0.45,
	FileSize10To100MB:  0.70,
	FileSize100MBTo1GB: 0.90,
	FileSizeOver1GB:    0.95,
}
