package forms

// Visibility is how a password input displays its value
type Visibility bool

const (
	Masked Visibility = false
	Plain  Visibility = true
)

// Toggle alternates between masked and plain display
func (v Visibility) Toggle() Visibility {
	return !v
}

// InputType is the HTML input type rendering the visibility
func (v Visibility) InputType() string {
	if v == Plain {
		return "text"
	}
	return "password"
}
