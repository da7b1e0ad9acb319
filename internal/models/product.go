package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product representa un producto del inventario
type Product struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Price     float64            `json:"price" bson:"price"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	Image     string             `json:"Image,omitempty" bson:"Image,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductCreate es el cuerpo aceptado por POST /products
type ProductCreate struct {
	Name     *string  `json:"name" form:"name"`
	Price    *float64 `json:"price" form:"price"`
	Quantity *int     `json:"quantity" form:"quantity"`
	Image    *string  `json:"Image" form:"Image"`
}

// ProductUpdate representa los campos actualizables de un producto.
// Un campo nil conserva su valor anterior.
type ProductUpdate struct {
	Name     *string  `json:"name" form:"name"`
	Price    *float64 `json:"price" form:"price"`
	Quantity *int     `json:"quantity" form:"quantity"`
	Image    *string  `json:"Image" form:"Image"`
}

// Product construye el documento a insertar aplicando los valores por defecto.
// Price y Quantity valen 0 cuando no se envían.
func (in ProductCreate) Product() *Product {
	p := &Product{}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	return p
}

// IsEmpty indica si la actualización no trae ningún campo
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Price == nil && u.Quantity == nil && u.Image == nil
}

// Apply copia en p los campos presentes en u
func (u ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Quantity != nil {
		p.Quantity = *u.Quantity
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
}
