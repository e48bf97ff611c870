package http

type createDocumentReq struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type updateContentReq struct {
	Content string `json:"content"`
	Version int64  `json:"version"`
}

type setActiveReq struct {
	DocumentID string `json:"document_id"`
}
