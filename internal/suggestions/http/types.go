package http

type applyReq struct {
	Suggestion string `json:"suggestion"`
}
