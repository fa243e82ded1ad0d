package models

import "time"

// Order statuses, in fulfillment order.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
)

// OrderItem snapshots product price and quantity at order time. Later price
// edits on the product never change a placed order's total.
type OrderItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"orderId" gorm:"index;type:varchar(36)"`
	ProductID string  `json:"productId" gorm:"type:varchar(36)"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`

	// Display-only expansion.
	ProductName  string `json:"productName,omitempty" gorm:"-"`
	ProductImage string `json:"productImage,omitempty" gorm:"-"`
}

// Order is immutable after creation except for Status. All items reference
// the same restaurant; that is enforced once at assembly time.
type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerID      string      `json:"customerId" gorm:"index;type:varchar(36)"`
	RestaurantID    string      `json:"restaurantId" gorm:"index;type:varchar(36)"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	TotalPrice      float64     `json:"totalPrice"`
	DeliveryAddress string      `json:"deliveryAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	Status          string      `json:"status" gorm:"type:varchar(20);default:pending"`

	// Display-only expansion.
	CustomerName   string `json:"customerName,omitempty" gorm:"-"`
	CustomerPhone  string `json:"customerPhone,omitempty" gorm:"-"`
	RestaurantName string `json:"restaurantName,omitempty" gorm:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
