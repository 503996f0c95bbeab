package order

import "orderservice/domain/shared"

// OrderItemID Item identity local to one order. Assigned sequentially,
// starting at 1, when the order is initialized.
type OrderItemID int64

// Product Entity referenced by an order item. Name and price submitted by
// the customer are untrusted until the domain service overwrites them with
// the restaurant's confirmed values; only then does the item price check
// have something to compare against.
type Product struct {
	id        shared.ProductID
	name      string
	price     shared.Money
	confirmed bool
}

// NewProduct A product as submitted on the create command (unconfirmed)
func NewProduct(id shared.ProductID) *Product {
	return &Product{id: id}
}

// NewConfirmedProduct A product carrying authoritative name and price,
// as found in a restaurant snapshot
func NewConfirmedProduct(id shared.ProductID, name string, price shared.Money) *Product {
	return &Product{id: id, name: name, price: price, confirmed: true}
}

// UpdateWithConfirmedNameAndPrice Reconciliation: overwrite the submitted
// name/price with the restaurant's authoritative values. Happens at most
// once per order validation.
func (p *Product) UpdateWithConfirmedNameAndPrice(name string, price shared.Money) {
	p.name = name
	p.price = price
	p.confirmed = true
}

func (p *Product) ID() shared.ProductID { return p.id }
func (p *Product) Name() string { return p.name }
func (p *Product) Price() shared.Money { return p.price }
func (p *Product) IsConfirmed() bool { return p.confirmed }

// OrderItem Entity inside the Order aggregate. It has no global identity
// and can only be reached through the aggregate root.
type OrderItem struct {
	id       OrderItemID
	orderID  shared.OrderID
	product  *Product
	quantity int64
	price    shared.Money
	subTotal shared.Money
}

// ItemParams Order item assembly input
type ItemParams struct {
	Product  *Product
	Quantity int64
	Price    shared.Money
	SubTotal shared.Money
}

// NewOrderItem Assemble an item from the create command. The id stays zero
// until the aggregate is initialized.
func NewOrderItem(params ItemParams) *OrderItem {
	return &OrderItem{
		product:  params.Product,
		quantity: params.Quantity,
		price:    params.Price,
		subTotal: params.SubTotal,
	}
}

// RestoreOrderItem Reconstruct an item from persistence.
// Only for repository implementations.
func RestoreOrderItem(id OrderItemID, orderID shared.OrderID, params ItemParams) *OrderItem {
	item := NewOrderItem(params)
	item.id = id
	item.orderID = orderID
	return item
}

func (i *OrderItem) ID() OrderItemID { return i.id }
func (i *OrderItem) OrderID() shared.OrderID { return i.orderID }
func (i *OrderItem) Product() *Product { return i.product }
func (i *OrderItem) Quantity() int64 { return i.quantity }
func (i *OrderItem) Price() shared.Money { return i.price }
func (i *OrderItem) SubTotal() shared.Money { return i.subTotal }

// isPriceValid The unit price must be positive, equal the product's
// confirmed price, and multiply out to the subtotal
func (i *OrderItem) isPriceValid() bool {
	return i.price.IsGreaterThanZero() &&
		i.product.IsConfirmed() &&
		i.price.Equals(i.product.Price()) &&
		i.price.Multiply(i.quantity).Equals(i.subTotal)
}

// initialize is called by Order.InitializeOrder to bind the item to its
// order and hand it its sequential id
func (i *OrderItem) initialize(orderID shared.OrderID, itemID OrderItemID) {
	i.orderID = orderID
	i.id = itemID
}
