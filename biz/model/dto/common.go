package dto

type ErrorResp struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

type MessageResp struct {
	Mensaje string `json:"mensaje"`
}
