package repository

import "github.com/bryanrg22/CalTech-Hacks/internal/model"

func EntityToModel(e *OrderEntity) *model.Order {
	if e == nil {
		return nil
	}

	return &model.Order{
		ID:                   e.ID,
		PartID:               e.PartID,
		SupplierID:           e.SupplierID,
		QuantityOrdered:      e.QuantityOrdered,
		OrderDate:            e.OrderDate,
		ExpectedDeliveryDate: e.ExpectedDeliveryDate,
		Status:               model.OrderStatus(e.Status),
		ActualDeliveredAt:    e.ActualDeliveredAt,
	}
}

func EntityFromModel(o *model.Order) *OrderEntity {
	if o == nil {
		return nil
	}

	return &OrderEntity{
		ID:                   o.ID,
		PartID:               o.PartID,
		SupplierID:           o.SupplierID,
		QuantityOrdered:      o.QuantityOrdered,
		OrderDate:            o.OrderDate,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		Status:               string(o.Status),
		ActualDeliveredAt:    o.ActualDeliveredAt,
	}
}
