package models

// Supplier is the suppliers table row.
type Supplier struct {
	SupplierID string `db:"supplier_id"`
	Name       string `db:"name"`
	Phone      string `db:"phone"`
	Address    string `db:"address"`
	AuditFields
}
