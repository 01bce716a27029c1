package http

// NewOrder is the request body for opening an order.
type NewOrder struct {
	CustomerID int `json:"customerId"`
	CompanyID  int `json:"companyId"`
}

// NewItem is the request body for adding a product to a basket.
type NewItem struct {
	ProductID int `json:"productId"`
}

// NewDelivery is the request body for binding a ready order to a courier.
// Destination may be omitted; the customer's registered address is used then.
type NewDelivery struct {
	OrderNumber int    `json:"orderNumber"`
	CourierID   int    `json:"courierId"`
	Destination string `json:"destination"`
}

// OrderCreated carries an order number back to the caller.
type OrderCreated struct {
	Number int `json:"number"`
}

// DeliveryCreated carries a delivery id back to the caller.
type DeliveryCreated struct {
	ID int `json:"id"`
}

// AttributeValue carries a projected attribute value.
type AttributeValue struct {
	Value string `json:"value"`
}

// Error is the uniform error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
