package catalog

// Known Snowball device types.
const (
	DeviceSnowcone             = "snowcone"
	DeviceSnowballEdgeStorage  = "snowball_edge_storage"
	DeviceSnowballEdgeCompute  = "snowball_edge_compute"
)

// DeviceSpec describes the hardware characteristics of a Snowball family
// device.
type DeviceSpec struct {
	CapacityTB       float64
	TransferRateGbps float64
	WeightLbs        float64
	ShippingDays     float64 // one-way shipping for a domestic destination
	UseCase          string
}

// DevicePricing is the flat-fee price structure for a Snowball device order.
// Jobs that run longer than DaysIncluded accrue a per-day surcharge.
type DevicePricing struct {
	DeviceFee    float64
	DaysIncluded float64
}

// ExtraDayFeeUSD is the per-device surcharge for each day beyond the included
// job window.
const ExtraDayFeeUSD = 15.0

var deviceSpecs = map[string]DeviceSpec{
	DeviceSnowcone: {
		CapacityTB:       0.008,
		TransferRateGbps: 0.025,
		WeightLbs:        4.5,
		ShippingDays:     4,
		UseCase:          "Edge computing, small datasets",
	},
	DeviceSnowballEdgeStorage: {
		CapacityTB:       80,
		TransferRateGbps: 1.0,
		WeightLbs:        49.7,
		ShippingDays:     6,
		UseCase:          "Large datasets, local processing",
	},
	DeviceSnowballEdgeCompute: {
		CapacityTB:       42,
		TransferRateGbps: 1.0,
		WeightLbs:        49.7,
		ShippingDays:     6,
		UseCase:          "Edge computing with storage",
	},
}

var devicePricing = map[string]DevicePricing{
	DeviceSnowcone:            {DeviceFee: 60, DaysIncluded: 5},
	DeviceSnowballEdgeStorage: {DeviceFee: 300, DaysIncluded: 10},
	DeviceSnowballEdgeCompute: {DeviceFee: 400, DaysIncluded: 10},
}
