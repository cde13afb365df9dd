package matching

// AssignRequest mirrors the admin assignment payload. Price is an
// opaque scalar supplied by the assigner.
type AssignRequest struct {
	RequestID int64   `json:"UserRequestId" binding:"required"`
	VendorID  int64   `json:"vendorId" binding:"required"`
	Price     float64 `json:"price" binding:"required"`
}
