package domain

// Supplier is an external agent/broker referenced by cross transactions. A
// reference entity only: the ledger never moves money on a supplier directly.
type Supplier struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	AuditFields
}
