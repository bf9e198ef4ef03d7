package pricing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/cloudmigrate/migration-estimator/internal/catalog"
)

// DefaultLookupTimeout bounds how long the resolver waits on one live
// lookup before degrading that lookup to the fallback table.
const DefaultLookupTimeout = 10 * time.Second

// Resolver resolves unit prices with cache-then-live-then-fallback
// semantics. It never fails: any lookup problem degrades to the static
// fallback value and is reported as a Warning to the caller.
type Resolver struct {
	cache    *Cache
	provider Provider // nil when live pricing is disabled
	catalog  *catalog.Catalog
	logger   zerolog.Logger
	timeout  time.Duration
}

// NewResolver builds a Resolver. provider may be nil, in which case every
// resolution serves cache or fallback values. timeout <= 0 selects
// DefaultLookupTimeout.
func NewResolver(cache *Cache, provider Provider, cat *catalog.Catalog, logger zerolog.Logger, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	return &Resolver{
		cache:    cache,
		provider: provider,
		catalog:  cat,
		logger:   logger,
		timeout:  timeout,
	}
}

// Resolve returns the unit price for key. The returned Warning is nil when
// the value came from cache or a successful live lookup.
func (r *Resolver) Resolve(ctx context.Context, key Key) (Value, *Warning) {
	if amount, ok := r.cache.Get(key); ok {
		return Value{Amount: amount, Source: SourceLive, ResolvedAt: time.Now()}, nil
	}

	if r.provider == nil {
		return r.fallback(key, "live pricing disabled")
	}

	amount, err := r.lookupLive(ctx, key)
	if err != nil {
		return r.fallback(key, err.Error())
	}

	r.cache.Put(key, amount)
	return Value{Amount: amount, Source: SourceLive, ResolvedAt: time.Now()}, nil
}

// ResolveBatch resolves the compute, storage, transfer and dedicated-line
// unit prices concurrently. Each lookup is independently bounded by the
// resolver timeout; a slow or failed lookup degrades only its own entry.
// The result is always complete.
func (r *Resolver) ResolveBatch(ctx context.Context, spec BatchSpec) BatchResult {
	keys := [4]Key{
		{Service: ServiceCompute, Parameter: spec.InstanceType, Region: spec.Region},
		{Service: ServiceStorage, Parameter: spec.StorageClass, Region: spec.Region},
		{Service: ServiceTransfer, Parameter: "outbound", Region: spec.Region},
		{Service: ServiceDedicatedLine, Parameter: portSpeed(spec.BandwidthMbps), Region: spec.Region},
	}

	var (
		values   [4]Value
		warnings [4]*Warning
		wg       sync.WaitGroup
	)
	for i, key := range keys {
		wg.Add(1)
		go func(slot int, key Key) {
			defer wg.Done()
			values[slot], warnings[slot] = r.Resolve(ctx, key)
		}(i, key)
	}
	wg.Wait()

	result := BatchResult{
		Compute:       values[0],
		Storage:       values[1],
		Transfer:      values[2],
		DedicatedLine: values[3],
	}
	for _, w := range warnings {
		if w != nil {
			result.Warnings = append(result.Warnings, *w)
		}
	}
	return result
}

// lookupLive runs exactly one provider call, abandoning it after the
// resolver timeout. An abandoned call is not cancelled beyond its context;
// its eventual result is discarded.
func (r *Resolver) lookupLive(ctx context.Context, key Key) (float64, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	type outcome struct {
		amount float64
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		amount, err := r.provider.UnitPrice(lookupCtx, r.buildQuery(key))
		done <- outcome{amount: amount, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			return 0, out.err
		}
		if key.Service == ServiceDedicatedLine {
			// Direct Connect ports are quoted monthly; convert to hourly.
			return out.amount / (24 * 30), nil
		}
		return out.amount, nil
	case <-lookupCtx.Done():
		return 0, fmt.Errorf("lookup timed out after %s", r.timeout)
	}
}

func (r *Resolver) fallback(key Key, reason string) (Value, *Warning) {
	fb := r.catalog.Fallback()

	var amount float64
	switch key.Service {
	case ServiceCompute:
		amount = fb.ComputeRate(key.Parameter)
	case ServiceReplication:
		amount = fb.ReplicationRate(key.Parameter)
	case ServiceStorage:
		amount = fb.StorageRate(key.Parameter)
	case ServiceTransfer:
		amount = fb.TransferPerGB
	case ServiceDedicatedLine:
		amount = fb.LineHourlyRate(portSpeedMbps(key.Parameter))
	default:
		amount = 0
	}

	r.logger.Warn().
		Str("key", key.String()).
		Str("reason", reason).
		Float64("fallback_amount", amount).
		Msg("pricing lookup degraded to fallback")

	return Value{Amount: amount, Source: SourceFallback, ResolvedAt: time.Now()},
		&Warning{Key: key, Reason: reason}
}

// storageClassNames maps our storage class identifiers to the Price List
// storageClass attribute values.
var storageClassNames = map[string]string{
	"Standard":                   "General Purpose",
	"Standard-IA":                "Infrequent Access",
	"One Zone-IA":                "One Zone - Infrequent Access",
	"Glacier Instant Retrieval":  "Amazon Glacier Instant Retrieval",
	"Glacier Flexible Retrieval": "Amazon Glacier Flexible Retrieval",
	"Glacier Deep Archive":       "Amazon Glacier Deep Archive",
}

// buildQuery maps a Key onto a provider query. The region field becomes a
// Price List location name; unmapped regions default to the reference
// region.
func (r *Resolver) buildQuery(key Key) Query {
	location := r.catalog.Location(key.Region)

	switch key.Service {
	case ServiceCompute:
		return Query{
			ServiceCode: "AmazonEC2",
			Filters: []Filter{
				{Field: "instanceType", Value: key.Parameter},
				{Field: "operatingSystem", Value: "Linux"},
				{Field: "location", Value: location},
				{Field: "tenancy", Value: "Shared"},
				{Field: "preInstalledSw", Value: "NA"},
			},
		}
	case ServiceReplication:
		return Query{
			ServiceCode: "AWSDataMigrationSvc",
			Filters: []Filter{
				{Field: "instanceType", Value: key.Parameter},
				{Field: "location", Value: location},
			},
		}
	case ServiceStorage:
		storageClass, ok := storageClassNames[key.Parameter]
		if !ok {
			storageClass = storageClassNames["Standard"]
		}
		return Query{
			ServiceCode: "AmazonS3",
			Filters: []Filter{
				{Field: "storageClass", Value: storageClass},
				{Field: "location", Value: location},
				{Field: "volumeType", Value: "Standard"},
			},
		}
	case ServiceTransfer:
		return Query{
			ServiceCode: "AmazonEC2",
			Filters: []Filter{
				{Field: "transferType", Value: "AWS Outbound"},
				{Field: "location", Value: location},
			},
		}
	case ServiceDedicatedLine:
		return Query{
			ServiceCode: "AWSDirectConnect",
			Filters: []Filter{
				{Field: "portSpeed", Value: key.Parameter},
				{Field: "location", Value: location},
			},
		}
	default:
		return Query{}
	}
}

// portSpeed buckets a bandwidth requirement into a Direct Connect port
// speed.
func portSpeed(bandwidthMbps float64) string {
	switch {
	case bandwidthMbps >= 10000:
		return "10Gbps"
	case bandwidthMbps >= 1000:
		return "1Gbps"
	default:
		return "100Mbps"
	}
}

func portSpeedMbps(speed string) float64 {
	switch speed {
	case "10Gbps":
		return 10000
	case "1Gbps":
		return 1000
	default:
		return 100
	}
}
