package importer

import (
	"github.com/bryanrg22/CalTech-Hacks/internal/model"
)

func requestToBatch(req importRequest) model.ImportBatch {
	batch := model.ImportBatch{}

	if len(req.Parts) > 0 {
		batch.Parts = make(map[string]model.Part, len(req.Parts))
		for id, p := range req.Parts {
			batch.Parts[id] = model.Part{
				ID:                  id,
				Name:                p.Name,
				Type:                p.Type,
				Quantity:            p.Quantity,
				MinStock:            p.MinStock,
				ReorderQuantity:     p.ReorderQuantity,
				ReorderIntervalDays: p.ReorderIntervalDays,
				Location:            p.Location,
				Weight:              p.Weight,
				UsedInModels:        p.UsedInModels,
				Blocked:             p.Blocked,
				Comments:            p.Comments,
				SuccessorPart:       p.SuccessorPart,
			}
		}
	}

	if len(req.Orders) > 0 {
		batch.Orders = make(map[string]model.Order, len(req.Orders))
		for id, o := range req.Orders {
			status := model.OrderStatus(o.Status)
			if status == "" {
				status = model.OrderStatusOrdered
			}
			batch.Orders[id] = model.Order{
				ID:                   id,
				PartID:               o.PartID,
				SupplierID:           o.SupplierID,
				QuantityOrdered:      o.QuantityOrdered,
				OrderDate:            o.OrderDate,
				ExpectedDeliveryDate: o.ExpectedDeliveryDate,
				Status:               status,
				ActualDeliveredAt:    o.ActualDeliveredAt,
			}
		}
	}

	if len(req.Sales) > 0 {
		batch.Sales = make(map[string]model.Sale, len(req.Sales))
		for id, s := range req.Sales {
			batch.Sales[id] = model.Sale{
				ID:                  id,
				Model:               s.Model,
				Version:             s.Version,
				Quantity:            s.Quantity,
				OrderType:           model.SaleOrderType(s.OrderType),
				CreatedAt:           s.CreatedAt,
				RequestedDate:       s.RequestedDate,
				AcceptedRequestDate: s.AcceptedRequestDate,
			}
		}
	}

	return batch
}

func resultToResponse(res *model.ImportResult) importResponse {
	out := importResponse{
		ImportID:       res.ImportID,
		PartsImported:  res.PartsImported,
		OrdersImported: res.OrdersImported,
		SalesImported:  res.SalesImported,
	}
	if res.Aggregation != nil {
		out.Aggregation = aggregationToDTO(res.Aggregation)
	}

	return out
}

func aggregationToDTO(agg *model.AggregationResult) *aggregationDTO {
	dto := &aggregationDTO{
		OrdersProcessed:   agg.OrdersProcessed,
		IncrementsApplied: agg.IncrementsApplied,
		Skipped:           make([]skippedDTO, 0, len(agg.Skipped)),
		Failures:          make([]failureDTO, 0, len(agg.Failures)),
	}

	for _, s := range agg.Skipped {
		dto.Skipped = append(dto.Skipped, skippedDTO{OrderID: s.OrderID, PartID: s.PartID})
	}
	for _, f := range agg.Failures {
		dto.Failures = append(dto.Failures, failureDTO{
			OrderID: f.OrderID,
			ModelID: f.ModelID,
			Error:   f.Err.Error(),
		})
	}

	return dto
}
