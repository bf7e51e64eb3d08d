// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"database/sql"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderResponse is the read model shared by all order queries.
type OrderResponse struct {
	ID                     kernel.UUID
	CustomerID             kernel.UUID
	Price                  float64
	Weight                 float64
	Address                string
	Status                 string
	IsPrepared             bool
	IsDelivered            bool
	CourierID              *kernel.UUID
	TimeOfCreation         time.Time
	ExpectedTimeOfDelivery *time.Time
	TimeOfDelivery         *time.Time
}

// orderColumns is the select list every order query shares, in scan order.
const orderColumns = `
		id,
		customer_id,
		price,
		weight,
		address,
		status,
		courier_id,
		time_of_creation,
		expected_time_of_delivery,
		time_of_delivery`

// scanOrderRows scans rows produced by a query selecting orderColumns.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var resp OrderResponse
		var id, customerID uuid.UUID
		var courierID *uuid.UUID
		var status int

		err := rows.Scan(
			&id,
			&customerID,
			&resp.Price,
			&resp.Weight,
			&resp.Address,
			&status,
			&courierID,
			&resp.TimeOfCreation,
			&resp.ExpectedTimeOfDelivery,
			&resp.TimeOfDelivery,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if courierID != nil {
			cid, err := kernel.UUIDFromBytes(courierID[:])
			if err != nil {
				return nil, err
			}
			resp.CourierID = &cid
		}

		orderStatus := order.Status(status)
		resp.Status = orderStatus.String()
		resp.IsPrepared = orderStatus.IsPrepared()
		resp.IsDelivered = orderStatus.IsDelivered()

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
