package models

// Customer is a client record. The remote API owns identity: saving a form
// without an ID creates a customer, saving with one updates it.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// CustomerForm carries the editable profile fields. Phone and Address may be
// left blank and persist that way.
type CustomerForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
