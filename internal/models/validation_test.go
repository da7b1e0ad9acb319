package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestProductCreateValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      ProductCreate
		field   string
		message string
	}{
		{"valid", ProductCreate{Name: ptr("Pen"), Price: ptr(2.5), Quantity: ptr(10)}, "", ""},
		{"zero values", ProductCreate{Name: ptr("Pen"), Price: ptr(0.0), Quantity: ptr(0)}, "", ""},
		{"defaults omitted", ProductCreate{Name: ptr("Pen")}, "", ""},
		{"negative price", ProductCreate{Name: ptr("Pen"), Price: ptr(-1.0)}, "price", MsgPriceNegative},
		{"negative quantity", ProductCreate{Name: ptr("Pen"), Quantity: ptr(-3)}, "quantity", MsgQuantityNegative},
		{"price checked first", ProductCreate{Price: ptr(-1.0), Quantity: ptr(-1)}, "price", MsgPriceNegative},
		{"missing name", ProductCreate{Price: ptr(1.0)}, "name", MsgNameRequired},
		{"empty name", ProductCreate{Name: ptr("")}, "name", MsgNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.message, verr.Error())
		})
	}
}

func TestProductUpdateValidate(t *testing.T) {
	assert.NoError(t, ProductUpdate{}.Validate())
	assert.NoError(t, ProductUpdate{Quantity: ptr(5)}.Validate())

	err := ProductUpdate{Price: ptr(-0.01)}.Validate()
	assert.EqualError(t, err, MsgPriceNegative)

	err = ProductUpdate{Quantity: ptr(-1)}.Validate()
	assert.EqualError(t, err, MsgQuantityNegative)

	err = ProductUpdate{Name: ptr("")}.Validate()
	assert.EqualError(t, err, MsgNameRequired)
}

func TestProductCreateDefaults(t *testing.T) {
	p := ProductCreate{Name: ptr("Pen")}.Product()
	assert.Equal(t, "Pen", p.Name)
	assert.Zero(t, p.Price)
	assert.Zero(t, p.Quantity)
	assert.Empty(t, p.Image)
	assert.True(t, p.ID.IsZero())
}

func TestProductUpdateApply(t *testing.T) {
	p := &Product{Name: "Pen", Price: 2.5, Quantity: 10, Image: "pen.png"}
	ProductUpdate{Quantity: ptr(5)}.Apply(p)

	assert.Equal(t, "Pen", p.Name)
	assert.Equal(t, 2.5, p.Price)
	assert.Equal(t, 5, p.Quantity)
	assert.Equal(t, "pen.png", p.Image)
	assert.True(t, ProductUpdate{}.IsEmpty())
	assert.False(t, ProductUpdate{Image: ptr("")}.IsEmpty())
}
