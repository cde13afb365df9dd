package intake

// CreateRequestForm mirrors the multipart intake form. The dimension
// fields arrive as loose strings and are parsed into optional numerics
// before anything is stored.
type CreateRequestForm struct {
	Rooms  string `form:"rooms" validate:"required"`
	Type   string `form:"type"`
	Height string `form:"height"`
	Width  string `form:"width"`
	Length string `form:"length"`
}

// Filter narrows ListRequests. Zero values mean "no constraint".
type Filter struct {
	CustomerID int64
	Status     string
}
