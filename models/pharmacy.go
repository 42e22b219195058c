package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is implemented by every record stored in its own collection.
type Document interface {
	GetID() primitive.ObjectID
	SetID(id primitive.ObjectID)
	Created() time.Time
	Stamp(created, updated time.Time)
}

// Base carries the fields shared by every stored record.
type Base struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (b *Base) GetID() primitive.ObjectID   { return b.ID }
func (b *Base) SetID(id primitive.ObjectID) { b.ID = id }

func (b *Base) Created() time.Time { return b.CreatedAt }

func (b *Base) Stamp(created, updated time.Time) {
	b.CreatedAt = created
	b.UpdatedAt = updated
}

type Stock struct {
	Base         `bson:",inline"`
	Name         string    `bson:"name" json:"name" binding:"required"`
	Category     string    `bson:"category,omitempty" json:"category,omitempty"`
	Manufacturer string    `bson:"manufacturer,omitempty" json:"manufacturer,omitempty"`
	BatchNumber  string    `bson:"batchNumber,omitempty" json:"batchNumber,omitempty"`
	Quantity     int       `bson:"quantity" json:"quantity" binding:"gte=0"`
	Price        float64   `bson:"price" json:"price" binding:"gte=0"`
	Rack         string    `bson:"rack,omitempty" json:"rack,omitempty"`
	Shelf        string    `bson:"shelf,omitempty" json:"shelf,omitempty"`
	ExpiryDate   time.Time `bson:"expiryDate,omitempty" json:"expiryDate,omitempty"`
}

type LineItem struct {
	Name     string  `bson:"name" json:"name" binding:"required"`
	Quantity int     `bson:"quantity" json:"quantity" binding:"gt=0"`
	Price    float64 `bson:"price" json:"price" binding:"gte=0"`
}

type Sale struct {
	Base          `bson:",inline"`
	InvoiceNumber string     `bson:"invoiceNumber" json:"invoiceNumber" binding:"required"`
	CustomerName  string     `bson:"customerName,omitempty" json:"customerName,omitempty"`
	CustomerPhone string     `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`
	Items         []LineItem `bson:"items" json:"items" binding:"dive"`
	TotalAmount   float64    `bson:"totalAmount" json:"totalAmount" binding:"gte=0"`
	PaymentMethod string     `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	Date          time.Time  `bson:"date" json:"date"`
}

type Purchase struct {
	Base          `bson:",inline"`
	InvoiceNumber string     `bson:"invoiceNumber" json:"invoiceNumber" binding:"required"`
	SupplierName  string     `bson:"supplierName" json:"supplierName" binding:"required"`
	Items         []LineItem `bson:"items" json:"items" binding:"dive"`
	TotalAmount   float64    `bson:"totalAmount" json:"totalAmount" binding:"gte=0"`
	PurchaseDate  time.Time  `bson:"purchaseDate" json:"purchaseDate"`
}

type Customer struct {
	Base           `bson:",inline"`
	Name           string  `bson:"name" json:"name" binding:"required"`
	Phone          string  `bson:"phone,omitempty" json:"phone,omitempty"`
	Email          string  `bson:"email,omitempty" json:"email,omitempty" binding:"omitempty,email"`
	Address        string  `bson:"address,omitempty" json:"address,omitempty"`
	LoyaltyPoints  int     `bson:"loyaltyPoints" json:"loyaltyPoints" binding:"gte=0"`
	TotalPurchases float64 `bson:"totalPurchases" json:"totalPurchases"`
}

type Supplier struct {
	Base          `bson:",inline"`
	Name          string `bson:"name" json:"name" binding:"required"`
	ContactPerson string `bson:"contactPerson,omitempty" json:"contactPerson,omitempty"`
	Phone         string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email         string `bson:"email,omitempty" json:"email,omitempty" binding:"omitempty,email"`
	Address       string `bson:"address,omitempty" json:"address,omitempty"`
}

type Product struct {
	Base         `bson:",inline"`
	Name         string  `bson:"name" json:"name" binding:"required"`
	Category     string  `bson:"category,omitempty" json:"category,omitempty"`
	Manufacturer string  `bson:"manufacturer,omitempty" json:"manufacturer,omitempty"`
	Description  string  `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64 `bson:"price" json:"price" binding:"gte=0"`
}
