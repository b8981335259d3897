package bridge

type SendMessageRequest struct {
	ChatID  string `json:"chatId"`
	Message string `json:"message"`
}

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type SessionState struct {
	Success bool   `json:"success"`
	State   string `json:"state"` // CONNECTED, STARTING, SCAN_QR_CODE, ...
	Message string `json:"message,omitempty"`
}

type QRResponse struct {
	Success bool   `json:"success"`
	QR      string `json:"qr,omitempty"`
	Message string `json:"message,omitempty"`
}
