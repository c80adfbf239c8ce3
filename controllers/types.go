package controllers

// Response is the envelope every endpoint returns. Exactly one of Errors,
// Data or UserDetails accompanies Message depending on the outcome.
type Response struct {
	Message     string      `json:"Message,omitempty"`
	Errors      []string    `json:"Errors,omitempty"`
	Data        interface{} `json:"Data,omitempty"`
	UserDetails interface{} `json:"UserDetails,omitempty"`
}
