// Package parcel contains the Parcel aggregate and its Status and Type enums.
//
// A parcel is the shippable item of the marketplace: it has a sender, a
// receiver, a destination address, and a monotonic delivery status that
// mirrors the lifecycle of its live order. The status state machine here is
// one half of the cross-entity invariant enforced by the command handlers:
// whenever an order is claimed or finished, the owning parcel's status is
// advanced within the same transaction.
package parcel
