package models

const (
	MsgNameRequired     = "Please enter product name"
	MsgPriceNegative    = "Price cannot be negative"
	MsgQuantityNegative = "Quantity cannot be negative"
)

// ValidationError representa un error de validación
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate rechaza precio o cantidad negativos y exige el nombre
func (in ProductCreate) Validate() error {
	if err := checkNumbers(in.Price, in.Quantity); err != nil {
		return err
	}
	if in.Name == nil || *in.Name == "" {
		return &ValidationError{Field: "name", Message: MsgNameRequired}
	}
	return nil
}

// Validate comprueba solo los campos enviados
func (u ProductUpdate) Validate() error {
	if err := checkNumbers(u.Price, u.Quantity); err != nil {
		return err
	}
	if u.Name != nil && *u.Name == "" {
		return &ValidationError{Field: "name", Message: MsgNameRequired}
	}
	return nil
}

func checkNumbers(price *float64, quantity *int) error {
	if price != nil && *price < 0 {
		return &ValidationError{Field: "price", Message: MsgPriceNegative}
	}
	if quantity != nil && *quantity < 0 {
		return &ValidationError{Field: "quantity", Message: MsgQuantityNegative}
	}
	return nil
}
