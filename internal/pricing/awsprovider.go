package pricing

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awspricing "github.com/aws/aws-sdk-go-v2/service/pricing"
	pricingtypes "github.com/aws/aws-sdk-go-v2/service/pricing/types"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// priceListAPI is the subset of the AWS Pricing client the provider needs.
type priceListAPI interface {
	GetProducts(ctx context.Context, params *awspricing.GetProductsInput, optFns ...func(*awspricing.Options)) (*awspricing.GetProductsOutput, error)
}

// AWSProvider resolves unit prices through the AWS Price List API
// (GetProducts with TERM_MATCH filters). The API is only served from
// us-east-1 regardless of the region being priced.
type AWSProvider struct {
	client priceListAPI
	logger zerolog.Logger
}

// NewAWSProvider wraps an AWS Pricing client.
func NewAWSProvider(client priceListAPI, logger zerolog.Logger) *AWSProvider {
	return &AWSProvider{client: client, logger: logger}
}

// NewAWSProviderFromConfig builds a provider from a loaded AWS SDK config.
func NewAWSProviderFromConfig(cfg aws.Config, logger zerolog.Logger) *AWSProvider {
	client := awspricing.NewFromConfig(cfg, func(o *awspricing.Options) {
		o.Region = "us-east-1"
	})
	return NewAWSProvider(client, logger)
}

// UnitPrice runs one GetProducts call and extracts the first on-demand USD
// unit price from the response.
func (p *AWSProvider) UnitPrice(ctx context.Context, q Query) (float64, error) {
	filters := make([]pricingtypes.Filter, 0, len(q.Filters))
	for _, f := range q.Filters {
		filters = append(filters, pricingtypes.Filter{
			Type:  pricingtypes.FilterTypeTermMatch,
			Field: aws.String(f.Field),
			Value: aws.String(f.Value),
		})
	}

	out, err := p.client.GetProducts(ctx, &awspricing.GetProductsInput{
		ServiceCode: aws.String(q.ServiceCode),
		MaxResults:  aws.Int32(1),
		Filters:     filters,
	})
	if err != nil {
		return 0, fmt.Errorf("get products %s: %w", q.ServiceCode, err)
	}
	if len(out.PriceList) == 0 {
		return 0, fmt.Errorf("get products %s: empty price list", q.ServiceCode)
	}

	price, ok := extractOnDemandUSD([]byte(out.PriceList[0]))
	if !ok {
		p.logger.Debug().
			Str("service_code", q.ServiceCode).
			Msg("price list entry has no usable on-demand USD dimension")
		return 0, fmt.Errorf("get products %s: no on-demand USD price", q.ServiceCode)
	}
	return price, nil
}

// priceListEntry mirrors the relevant shape of one AWS Price List document:
// terms -> OnDemand -> offer term -> priceDimensions -> pricePerUnit.
type priceListEntry struct {
	Terms struct {
		OnDemand map[string]struct {
			PriceDimensions map[string]struct {
				Unit         string            `json:"unit"`
				PricePerUnit map[string]string `json:"pricePerUnit"`
			} `json:"priceDimensions"`
		} `json:"OnDemand"`
	} `json:"terms"`
}

// extractOnDemandUSD pulls the first USD-denominated on-demand unit price
// out of a raw price list document. Malformed documents yield (0, false).
func extractOnDemandUSD(raw []byte) (float64, bool) {
	var entry priceListEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return 0, false
	}
	for _, term := range entry.Terms.OnDemand {
		for _, dim := range term.PriceDimensions {
			amountStr, ok := dim.PricePerUnit["USD"]
			if !ok {
				continue
			}
			amount, err := strconv.ParseFloat(amountStr, 64)
			if err != nil {
				continue
			}
			return amount, true
		}
	}
	return 0, false
}
