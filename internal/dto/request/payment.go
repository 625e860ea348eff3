package request

type ConfirmPaymentRequest struct {
	StageToken     string `json:"stage_token" validate:"required,uuid4"`
	CardNumber     string `json:"card_number" validate:"required,credit_card"`
	ExpiryMonth    string `json:"expiry_month" validate:"required,oneof=01 02 03 04 05 06 07 08 09 10 11 12"`
	ExpiryYear     string `json:"expiry_year" validate:"required,len=4,numeric"`
	CVV            string `json:"cvv" validate:"required,numeric,min=3,max=4"`
	CardholderName string `json:"cardholder_name" validate:"required,min=2,max=100"`
	BillingAddress string `json:"billing_address" validate:"required,min=5,max=200"`
	AgreeTerms     bool   `json:"agree_terms" validate:"required"`
}
