// Package delivery contains the Delivery aggregate, the binding between one
// ready order and one courier. A delivery is immutable once created; its
// creation drives the order into Delivering and its completion drives the
// order into Delivered.
package delivery
