package entity

// AccountType selects the registration variant and its activation template.
type AccountType string

const (
	AccountTypeUser   AccountType = "user"
	AccountTypeSeller AccountType = "seller"
)

func (a AccountType) String() string {
	return string(a)
}

// ActivationTemplate returns the email template id used to deliver the OTP.
func (a AccountType) ActivationTemplate() string {
	if a == AccountTypeSeller {
		return "seller-activation-mail"
	}
	return "user-activation-mail"
}
