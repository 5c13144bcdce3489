package repository

import "github.com/bryanrg22/CalTech-Hacks/internal/model"

func EntityToModel(e *SaleEntity) *model.Sale {
	if e == nil {
		return nil
	}

	return &model.Sale{
		ID:                  e.ID,
		Model:               e.Model,
		Version:             e.Version,
		Quantity:            e.Quantity,
		OrderType:           model.SaleOrderType(e.OrderType),
		CreatedAt:           e.CreatedAt,
		RequestedDate:       e.RequestedDate,
		AcceptedRequestDate: e.AcceptedRequestDate,
	}
}

func EntityFromModel(s *model.Sale) *SaleEntity {
	if s == nil {
		return nil
	}

	return &SaleEntity{
		ID:                  s.ID,
		Model:               s.Model,
		Version:             s.Version,
		Quantity:            s.Quantity,
		OrderType:           string(s.OrderType),
		CreatedAt:           s.CreatedAt,
		RequestedDate:       s.RequestedDate,
		AcceptedRequestDate: s.AcceptedRequestDate,
	}
}
