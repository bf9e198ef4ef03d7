package pricing

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudmigrate/migration-estimator/internal/catalog"
)

// providerFunc adapts a function to the Provider interface.
type providerFunc func(ctx context.Context, q Query) (float64, error)

func (f providerFunc) UnitPrice(ctx context.Context, q Query) (float64, error) {
	return f(ctx, q)
}

func newTestResolver(t *testing.T, provider Provider, timeout time.Duration) *Resolver {
	t.Helper()
	return NewResolver(NewCache(time.Hour), provider, catalog.New(), zerolog.Nop(), timeout)
}

func TestResolve_NilProviderUsesFallback(t *testing.T) {
	r := newTestResolver(t, nil, 0)
	key := Key{Service: ServiceCompute, Parameter: "m5.large", Region: "us-east-1"}

	value, warning := r.Resolve(context.Background(), key)

	assert.Equal(t, SourceFallback, value.Source)
	assert.InDelta(t, 0.096, value.Amount, 1e-9)
	require.NotNil(t, warning)
	assert.Equal(t, key, warning.Key)
}

func TestResolve_ProviderErrorUsesFallback(t *testing.T) {
	provider := providerFunc(func(context.Context, Query) (float64, error) {
		return 0, errors.New("throttled")
	})
	r := newTestResolver(t, provider, 0)
	key := Key{Service: ServiceStorage, Parameter: "Standard", Region: "us-east-1"}

	value, warning := r.Resolve(context.Background(), key)

	assert.Equal(t, SourceFallback, value.Source)
	assert.InDelta(t, 0.023, value.Amount, 1e-9)
	require.NotNil(t, warning)
	assert.Contains(t, warning.Reason, "throttled")
}

func TestResolve_LiveValueIsCached(t *testing.T) {
	var calls atomic.Int64
	provider := providerFunc(func(context.Context, Query) (float64, error) {
		calls.Add(1)
		return 0.111, nil
	})
	r := newTestResolver(t, provider, 0)
	key := Key{Service: ServiceCompute, Parameter: "m5.xlarge", Region: "us-east-1"}

	first, warning := r.Resolve(context.Background(), key)
	require.Nil(t, warning)
	assert.Equal(t, SourceLive, first.Source)
	assert.InDelta(t, 0.111, first.Amount, 1e-9)

	second, warning := r.Resolve(context.Background(), key)
	require.Nil(t, warning)
	assert.InDelta(t, first.Amount, second.Amount, 1e-9)
	assert.Equal(t, int64(1), calls.Load(), "second resolve within TTL must not hit the provider")
}

func TestResolve_DedicatedLineMonthlyToHourly(t *testing.T) {
	provider := providerFunc(func(context.Context, Query) (float64, error) {
		return 720.0, nil // monthly port price
	})
	r := newTestResolver(t, provider, 0)
	key := Key{Service: ServiceDedicatedLine, Parameter: "1Gbps", Region: "us-east-1"}

	value, warning := r.Resolve(context.Background(), key)
	require.Nil(t, warning)
	assert.InDelta(t, 1.0, value.Amount, 1e-9)
}

func TestResolve_SlowProviderTimesOut(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	provider := providerFunc(func(ctx context.Context, _ Query) (float64, error) {
		select {
		case <-release:
		case <-ctx.Done():
		}
		return 9.99, nil
	})
	r := newTestResolver(t, provider, 50*time.Millisecond)
	key := Key{Service: ServiceCompute, Parameter: "m5.large", Region: "us-east-1"}

	start := time.Now()
	value, warning := r.Resolve(context.Background(), key)
	elapsed := time.Since(start)

	assert.Equal(t, SourceFallback, value.Source)
	require.NotNil(t, warning)
	assert.Contains(t, warning.Reason, "timed out")
	assert.Less(t, elapsed, 2*time.Second, "resolve must not block past the timeout bound")
}

func TestResolveBatch_AllFallback(t *testing.T) {
	r := newTestResolver(t, nil, 0)

	result := r.ResolveBatch(context.Background(), BatchSpec{
		InstanceType:  "m5.large",
		StorageClass:  "Standard",
		Region:        "us-east-1",
		BandwidthMbps: 1000,
	})

	for name, value := range map[string]Value{
		"compute":        result.Compute,
		"storage":        result.Storage,
		"transfer":       result.Transfer,
		"dedicated_line": result.DedicatedLine,
	} {
		assert.Equal(t, SourceFallback, value.Source, "%s should be fallback", name)
		assert.Greater(t, value.Amount, 0.0, "%s fallback amount should be positive", name)
	}
	assert.Len(t, result.Warnings, 4)
}

func TestResolveBatch_OneFailureDegradesOnlyItself(t *testing.T) {
	provider := providerFunc(func(_ context.Context, q Query) (float64, error) {
		if q.ServiceCode == "AmazonS3" {
			return 0, errors.New("no price list entry")
		}
		return 0.5, nil
	})
	r := newTestResolver(t, provider, 0)

	result := r.ResolveBatch(context.Background(), BatchSpec{
		InstanceType:  "m5.large",
		StorageClass:  "Standard",
		Region:        "us-east-1",
		BandwidthMbps: 10000,
	})

	assert.Equal(t, SourceLive, result.Compute.Source)
	assert.Equal(t, SourceLive, result.Transfer.Source)
	assert.Equal(t, SourceLive, result.DedicatedLine.Source)
	assert.Equal(t, SourceFallback, result.Storage.Source)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, ServiceStorage, result.Warnings[0].Key.Service)
}

func TestBuildQuery(t *testing.T) {
	r := newTestResolver(t, nil, 0)

	tests := []struct {
		name        string
		key         Key
		wantService string
		wantFilter  Filter
	}{
		{
			name:        "compute",
			key:         Key{Service: ServiceCompute, Parameter: "m5.large", Region: "us-east-1"},
			wantService: "AmazonEC2",
			wantFilter:  Filter{Field: "instanceType", Value: "m5.large"},
		},
		{
			name:        "storage class mapped to price list name",
			key:         Key{Service: ServiceStorage, Parameter: "Standard", Region: "us-east-1"},
			wantService: "AmazonS3",
			wantFilter:  Filter{Field: "storageClass", Value: "General Purpose"},
		},
		{
			name:        "dedicated line",
			key:         Key{Service: ServiceDedicatedLine, Parameter: "10Gbps", Region: "us-east-1"},
			wantService: "AWSDirectConnect",
			wantFilter:  Filter{Field: "portSpeed", Value: "10Gbps"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := r.buildQuery(tt.key)
			assert.Equal(t, tt.wantService, q.ServiceCode)
			assert.Contains(t, q.Filters, tt.wantFilter)
		})
	}
}

func TestBuildQuery_UnknownRegionDefaultsLocation(t *testing.T) {
	r := newTestResolver(t, nil, 0)
	q := r.buildQuery(Key{Service: ServiceCompute, Parameter: "m5.large", Region: "mars-north-1"})
	assert.Contains(t, q.Filters, Filter{Field: "location", Value: "US East (N. Virginia)"})
}

func TestPortSpeed(t *testing.T) {
	tests := []struct {
		bandwidth float64
		want      string
	}{
		{10000, "10Gbps"},
		{25000, "10Gbps"},
		{1000, "1Gbps"},
		{9999, "1Gbps"},
		{999, "100Mbps"},
		{0, "100Mbps"},
	}
	for _, tt := range tests {
		if got := portSpeed(tt.bandwidth); got != tt.want {
			t.Errorf("portSpeed(%v) = %q, want %q", tt.bandwidth, got, tt.want)
		}
	}
}
