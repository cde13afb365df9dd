package tasks

type AdvanceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RecordImagesRequest struct {
	Slot string   `json:"slot" binding:"required"` // before | after
	URLs []string `json:"urls" binding:"required"`
}
