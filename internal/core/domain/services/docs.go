// Package services contains stateless domain services operating on multiple
// aggregates. The lifecycle service answers, without side effects, whether an
// (Order, Parcel) pair permits a claim or a finish by a given account, and
// derives the parcel status implied by an order's phase. Command handlers are
// responsible for turning a negative answer into a typed rejection.
package services
