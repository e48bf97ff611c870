package http

type createReq struct {
	Name     string `json:"name"`
	Template string `json:"template"`
}

type renameReq struct {
	Name string `json:"name"`
}
