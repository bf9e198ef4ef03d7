package throughput

import (
	"fmt"
	"math"

	"github.com/cloudmigrate/migration-estimator/internal/catalog"
)

// ShippingDestination scales transit time by how far the site is from an
// AWS ingestion facility.
type ShippingDestination string

// Known shipping destinations.
const (
	DestinationDomestic      ShippingDestination = "domestic"
	DestinationInternational ShippingDestination = "international"
	DestinationRemote        ShippingDestination = "remote"
)

var shippingMultipliers = map[ShippingDestination]float64{
	DestinationDomestic:      1,
	DestinationInternational: 2,
	DestinationRemote:        3,
}

// IsValid reports whether the destination is one of the known values.
func (d ShippingDestination) IsValid() bool {
	_, ok := shippingMultipliers[d]
	return ok
}

// snowballProcessingDays covers AWS-side ingestion after the device arrives.
const snowballProcessingDays = 2.0

// SnowballInput parameterizes a physical shipping estimate.
type SnowballInput struct {
	DeviceType       string
	DataSizeGB       float64
	RequestedDevices int
	Destination      ShippingDestination
}

// SnowballEstimate is the physical shipping result. EquivalentMbps is the
// data volume spread over the whole timeline for comparison against network
// transfers; no wire ever carries data at that rate.
type SnowballEstimate struct {
	DeviceType        string  `json:"device_type"`
	DevicesNeeded     int     `json:"devices_needed"`
	DeviceUtilization float64 `json:"device_utilization"`
	LoadingDays       float64 `json:"loading_days"`
	ShippingDays      float64 `json:"shipping_days"`
	TimelineDays      float64 `json:"timeline_days"`
	EquivalentMbps    float64 `json:"equivalent_mbps"`
	CostUSD           float64 `json:"cost_usd"`
}

// Snowball estimates the device count, end-to-end timeline and device fees
// for shipping the dataset on physical appliances.
func (m *Model) Snowball(in SnowballInput) (SnowballEstimate, error) {
	spec, ok := m.catalog.DeviceSpec(in.DeviceType)
	if !ok {
		return SnowballEstimate{}, fmt.Errorf("unknown device type %q", in.DeviceType)
	}
	if !in.Destination.IsValid() {
		return SnowballEstimate{}, fmt.Errorf("unknown shipping destination %q", in.Destination)
	}

	capacityGB := spec.CapacityTB * 1024
	needed := int(math.Ceil(in.DataSizeGB / capacityGB))
	if needed < 1 {
		needed = 1
	}
	if in.RequestedDevices > needed {
		needed = in.RequestedDevices
	}

	loadingDays := in.DataSizeGB * 8 / (spec.TransferRateGbps * 1000 * 3600 * 24)

	shippingDays := spec.ShippingDays * shippingMultipliers[in.Destination]
	timelineDays := 2*shippingDays + loadingDays + snowballProcessingDays

	equivalentMbps := 0.0
	if timelineDays > 0 {
		equivalentMbps = in.DataSizeGB * 8 * 1000 / (timelineDays * 24 * 3600)
	}

	pricing := m.catalog.DevicePricing(in.DeviceType)

	return SnowballEstimate{
		DeviceType:        in.DeviceType,
		DevicesNeeded:     needed,
		DeviceUtilization: in.DataSizeGB / (capacityGB * float64(needed)),
		LoadingDays:       loadingDays,
		ShippingDays:      shippingDays,
		TimelineDays:      timelineDays,
		EquivalentMbps:    equivalentMbps,
		CostUSD:           snowballCost(pricing, needed, timelineDays),
	}, nil
}

// snowballCost is the device fee plus per-day charges beyond the included
// rental window, per device.
func snowballCost(p catalog.DevicePricing, devices int, timelineDays float64) float64 {
	extraDays := math.Max(0, timelineDays-float64(p.DaysIncluded))
	return p.DeviceFee*float64(devices) + extraDays*catalog.ExtraDayFeeUSD*float64(devices)
}
