package repository

import (
	"github.com/bryanrg22/CalTech-Hacks/internal/model"
	"github.com/bryanrg22/CalTech-Hacks/internal/supplykey"
)

func EntityToModel(e *SupplyLinkEntity) *model.SupplyLink {
	if e == nil {
		return nil
	}

	supplierID, partID := supplykey.Decode(e.ID)

	return &model.SupplyLink{
		ID:                e.ID,
		SupplierID:        supplierID,
		PartID:            partID,
		PricePerUnit:      e.PricePerUnit,
		LeadTimeDays:      e.LeadTimeDays,
		MinOrderQty:       e.MinOrderQty,
		ReliabilityRating: e.ReliabilityRating,
		Origin:            e.Origin,
	}
}

func EntityFromModel(l *model.SupplyLink) *SupplyLinkEntity {
	if l == nil {
		return nil
	}

	id := l.ID
	if id == "" {
		id = supplykey.Encode(l.SupplierID, l.PartID)
	}

	return &SupplyLinkEntity{
		ID:                id,
		PricePerUnit:      l.PricePerUnit,
		LeadTimeDays:      l.LeadTimeDays,
		MinOrderQty:       l.MinOrderQty,
		ReliabilityRating: l.ReliabilityRating,
		Origin:            l.Origin,
	}
}
