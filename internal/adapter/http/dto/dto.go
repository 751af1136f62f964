package dto

// PaymentRequest is the request body for payment submission. Amount binds as
// an integer so fractional or string amounts fail validation before they
// reach the orchestrator.
type PaymentRequest struct {
	TransactionID     string `json:"transactionId" binding:"required,max=100,safe_id"`
	Username          string `json:"username" binding:"omitempty,max=100"`
	Amount            int64  `json:"amount" binding:"required,gt=0"`
	Network           string `json:"network" binding:"required"`
	DestinationWallet string `json:"destinationWallet" binding:"required,max=512"`
	WebhookURL        string `json:"webhookUrl" binding:"omitempty,safe_url"`
	WebhookSecret     string `json:"webhookSecret" binding:"omitempty,max=256"`
}

// PaymentResponse is the response body for an accepted payment.
type PaymentResponse struct {
	ID              string `json:"id"`
	TransactionID   string `json:"transactionId"`
	Network         string `json:"network"`
	Amount          int64  `json:"amount"`
	Status          string `json:"status"`
	TransactionHash string `json:"transactionHash"`
	NetworkFee      int64  `json:"networkFee"`
	CompletedAt     string `json:"completedAt,omitempty"`
}

// WebhookTestRequest is the request body for a manual webhook probe.
type WebhookTestRequest struct {
	URL    string `json:"url" binding:"required,safe_url"`
	Secret string `json:"secret" binding:"omitempty,max=256"`
}

// WebhookTestResponse reports whether the probe was delivered.
type WebhookTestResponse struct {
	Delivered bool `json:"delivered"`
}
