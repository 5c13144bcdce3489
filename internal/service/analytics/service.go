// Package service derives the dashboard analytics views: supplier
// summaries from the composite supply keys, and the low-stock report.
package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/bryanrg22/CalTech-Hacks/internal/geo"
	"github.com/bryanrg22/CalTech-Hacks/internal/logger"
	"github.com/bryanrg22/CalTech-Hacks/internal/model"
)

type SupplyRepository interface {
	List(ctx context.Context) ([]*model.SupplyLink, error)
}

type PartRepository interface {
	List(ctx context.Context, filter model.PartsFilter) ([]*model.Part, error)
}

type service struct {
	supply        SupplyRepository
	parts         PartRepository
	readDBTimeout time.Duration
}

func NewAnalyticsService(
	supply SupplyRepository,
	parts PartRepository,
	readDBTimeout time.Duration,
) *service {
	return &service{supply: supply, parts: parts, readDBTimeout: readDBTimeout}
}

// SupplierSummaries groups all supply links by supplier and averages their
// reliability and lead time. Links whose composite key decoded to an empty
// part id keep their supplier grouping; the supplier id itself comes from
// the shared key codec via the repository.
func (s *service) SupplierSummaries(ctx context.Context) ([]model.SupplierSummary, error) {
	const op = "analytics.service.SupplierSummaries"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	links, err := s.supply.List(ctx)
	if err != nil {
		logger.Error(ctx, "list supply links", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	grouped := lo.GroupBy(links, func(l *model.SupplyLink) string {
		return l.SupplierID
	})

	out := make([]model.SupplierSummary, 0, len(grouped))
	for supplierID, supplierLinks := range grouped {
		var reliability, leadTime float64
		partIDs := make([]string, 0, len(supplierLinks))
		origins := make([]string, 0, len(supplierLinks))

		for _, l := range supplierLinks {
			reliability += l.ReliabilityRating
			leadTime += float64(l.LeadTimeDays)
			if l.PartID != "" {
				partIDs = append(partIDs, l.PartID)
			}
			if l.Origin != "" {
				origins = append(origins, l.Origin)
			}
		}

		n := float64(len(supplierLinks))
		out = append(out, model.SupplierSummary{
			SupplierID:      supplierID,
			PartCount:       len(lo.Uniq(partIDs)),
			AvgReliability:  reliability / n,
			AvgLeadTimeDays: leadTime / n,
			Origins:         lo.Uniq(origins),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].SupplierID < out[j].SupplierID
	})

	return out, nil
}

// arcSteps is the interpolation resolution of a rendered supply route.
const arcSteps = 100

// SupplyRoutes renders one curved path per supply link for the map page:
// supplier origin to the warehouse holding the part. Links whose supplier
// has no known origin are left out rather than drawn from a wrong place.
func (s *service) SupplyRoutes(ctx context.Context) ([]model.SupplyRoute, error) {
	const op = "analytics.service.SupplyRoutes"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	links, err := s.supply.List(ctx)
	if err != nil {
		logger.Error(ctx, "list supply links", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	parts, err := s.parts.List(ctx, model.PartsFilter{})
	if err != nil {
		logger.Error(ctx, "list parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	locationByPart := make(map[string]string, len(parts))
	for _, p := range parts {
		locationByPart[p.ID] = p.Location
	}

	out := make([]model.SupplyRoute, 0, len(links))
	for _, l := range links {
		src, ok := geo.SupplierCoords(l.SupplierID)
		if !ok {
			continue
		}

		dst := geo.WarehouseCoords(locationByPart[l.PartID])

		out = append(out, model.SupplyRoute{
			SupplierID: l.SupplierID,
			PartID:     l.PartID,
			Points:     geo.ArcLine(src, dst, arcSteps),
		})
	}

	return out, nil
}

// LowStockParts returns the parts whose on-hand quantity fell below their
// minimum stock threshold. Blocked parts are excluded.
func (s *service) LowStockParts(ctx context.Context) ([]*model.Part, error) {
	const op = "analytics.service.LowStockParts"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	parts, err := s.parts.List(ctx, model.PartsFilter{})
	if err != nil {
		logger.Error(ctx, "list parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	low := lo.Filter(parts, func(p *model.Part, _ int) bool {
		return p.NeedsReorder()
	})

	return low, nil
}
