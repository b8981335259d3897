package web3forms

// SubmitInput is the flat form payload Web3Forms relays to the configured
// inbox. Field names surface as-is in the delivered email.
type SubmitInput struct {
	AccessKey string `json:"access_key"`
	Subject   string `json:"subject"`
	FromName  string `json:"from_name"`
	Name      string `json:"name,omitempty"`
	Mobile    string `json:"mobile,omitempty"`
	Service   string `json:"service,omitempty"`
	Operator  string `json:"operator,omitempty"`
	Location  string `json:"location,omitempty"`
	Source    string `json:"source,omitempty"`
	Message   string `json:"message,omitempty"`
}

type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
