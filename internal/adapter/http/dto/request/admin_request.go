package request

type LoginRequest struct {
	Password string `json:"password"`
}

type ListServiceRequestsQuery struct {
	Q      string `form:"q"`
	Sort   string `form:"sort"`
	Order  string `form:"order"`
	Toggle string `form:"toggle"`
	Page   int    `form:"page,default=1"`
}

type ExportServiceRequestsQuery struct {
	Format string `form:"format,default=csv"`
	Q      string `form:"q"`
	Sort   string `form:"sort"`
	Order  string `form:"order"`
}
