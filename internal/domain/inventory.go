package domain

import "time"

type AvailabilityStatus string

const (
	AvailabilityStatusAvailable    AvailabilityStatus = "Available"
	AvailabilityStatusLowStock     AvailabilityStatus = "Low Stock"
	AvailabilityStatusNotAvailable AvailabilityStatus = "Not Available"
)

// InventoryRecord holds the authoritative unit counters for one equipment
// line. AvailabilityStatus is never stored; it is re-derived from the
// counters every time a record is loaded so the two can never disagree.
type InventoryRecord struct {
	EquipmentID         int32              `json:"equipment_id"`
	RFIDTag             string             `json:"rfid_tag"`
	AvailableQuantity   int32              `json:"available_quantity"`
	BorrowedQuantity    int32              `json:"borrowed_quantity"`
	DamagedQuantity     int32              `json:"damaged_quantity"`
	MaintenanceQuantity int32              `json:"maintenance_quantity"`
	MinimumStockLevel   int32              `json:"minimum_stock_level"`
	AvailabilityStatus  AvailabilityStatus `json:"availability_status"`
	UpdatedOn           time.Time          `json:"updated_on"`
}

// DeriveAvailabilityStatus computes the availability status from the
// available counter and the low-stock threshold.
func DeriveAvailabilityStatus(available, minimumStock int32) AvailabilityStatus {
	switch {
	case available <= 0:
		return AvailabilityStatusNotAvailable
	case available <= minimumStock:
		return AvailabilityStatusLowStock
	default:
		return AvailabilityStatusAvailable
	}
}

// Recompute refreshes the derived status in place.
func (r *InventoryRecord) Recompute() {
	r.AvailabilityStatus = DeriveAvailabilityStatus(r.AvailableQuantity, r.MinimumStockLevel)
}

// TotalUnits is the sum of all four counters. It must always equal the
// owning equipment's quantity.
func (r *InventoryRecord) TotalUnits() int32 {
	return r.AvailableQuantity + r.BorrowedQuantity + r.DamagedQuantity + r.MaintenanceQuantity
}
