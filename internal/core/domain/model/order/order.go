package order

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrCompletionFlowRequired is returned when a caller tries to move an order
	// into Completed through a plain status change. Completion requires the
	// driven distances and goes through Complete.
	ErrCompletionFlowRequired = errors.New("completed status requires the completion flow with distances")

	// ErrGoodsDescriptionIsRequired is returned when creating an order without a goods description.
	ErrGoodsDescriptionIsRequired = errs.NewValueIsRequiredError("goods description")
	// ErrLoadingAddressIsRequired is returned when creating an order without a loading address.
	ErrLoadingAddressIsRequired = errs.NewValueIsRequiredError("loading address")
	// ErrUnloadingAddressIsRequired is returned when creating an order without an unloading address.
	ErrUnloadingAddressIsRequired = errs.NewValueIsRequiredError("unloading address")
)

// Order represents a single transport job from a loading location to an
// unloading location. It is the aggregate root owning the order lifecycle:
// it validates status transitions, stamps milestone dates, and records the
// completion figures.
//
// Order maintains these invariants:
//   - The order number is immutable after creation and unique per order
//   - startDate is set at most once, on first entry into Started
//   - endDate is set exactly once, on entry into Completed
//   - Completion figures exist iff the order is Completed
//   - Status transitions follow the Status state machine
//
// The three resource references (driver, truck, trailer) are non-owning:
// claiming and releasing the referenced resources is the responsibility of
// the calling use case via the resource ledger. The aggregate only tells it
// what the new status implies.
type Order struct {
	id     kernel.UUID
	number Number

	clientID  kernel.UUID
	driverID  kernel.UUID
	truckID   kernel.UUID
	trailerID kernel.UUID

	transportType    TransportType
	goodsDescription string
	loadingAddress   string
	unloadingAddress string
	loadingDate      time.Time
	price            float64

	status     Status
	startDate  *time.Time
	endDate    *time.Time
	completion *Completion

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status.
//
// All referenced entities must have valid identifiers, the order number must
// be constructed, the transport type must be valid, the goods description and
// both addresses must be non-empty, and the price must be non-negative.
//
// The caller is responsible for claiming the three referenced resources as
// part of the same business transaction.
func NewOrder(
	id kernel.UUID,
	number Number,
	clientID kernel.UUID,
	driverID kernel.UUID,
	truckID kernel.UUID,
	trailerID kernel.UUID,
	transportType TransportType,
	goodsDescription string,
	loadingAddress string,
	unloadingAddress string,
	loadingDate time.Time,
	price float64,
) (*Order, error) {
	order := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setClientID(clientID),
		order.setResourceIDs(driverID, truckID, trailerID),
		order.setTransportType(transportType),
		order.setGoodsDescription(goodsDescription),
		order.setAddresses(loadingAddress, unloadingAddress),
		order.setPrice(price),
	); err != nil {
		return nil, err
	}

	order.loadingDate = loadingDate
	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its status, milestone dates, and completion figures.
//
// Beyond field validation it enforces consistency between status and the
// completion data: a Completed order must carry completion figures and an
// end date, and no other status may carry either.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	clientID kernel.UUID,
	driverID kernel.UUID,
	truckID kernel.UUID,
	trailerID kernel.UUID,
	transportType TransportType,
	goodsDescription string,
	loadingAddress string,
	unloadingAddress string,
	loadingDate time.Time,
	price float64,
	status Status,
	startDate *time.Time,
	endDate *time.Time,
	completion *Completion,
) (*Order, error) {
	order, err := NewOrder(
		id, number, clientID, driverID, truckID, trailerID,
		transportType, goodsDescription, loadingAddress, unloadingAddress,
		loadingDate, price,
	)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = validateCompletionConsistency(status, endDate, completion); err != nil {
		return nil, err
	}
	if completion != nil {
		if err = completion.Validate(); err != nil {
			return nil, err
		}
	}

	order.status = status
	order.startDate = startDate
	order.endDate = endDate
	order.completion = completion
	return order, nil
}

// validateCompletionConsistency enforces that completion figures and the end
// date exist exactly when the order is Completed.
func validateCompletionConsistency(status Status, endDate *time.Time, completion *Completion) error {
	if status == Completed && (completion == nil || endDate == nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s order must have completion figures and an end date", status.String()),
		)
	}
	if status != Completed && completion != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s order must not have completion figures", status.String()),
		)
	}
	return nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() Number {
	return o.number
}

// ClientID returns the identifier of the client the transport is for.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// DriverID returns the identifier of the claimed driver.
func (o *Order) DriverID() kernel.UUID {
	return o.driverID
}

// TruckID returns the identifier of the claimed truck.
func (o *Order) TruckID() kernel.UUID {
	return o.truckID
}

// TrailerID returns the identifier of the claimed trailer.
func (o *Order) TrailerID() kernel.UUID {
	return o.trailerID
}

// TransportType returns whether this is a full-load or partial-load transport.
func (o *Order) TransportType() TransportType {
	return o.transportType
}

// GoodsDescription returns the description of the transported goods.
func (o *Order) GoodsDescription() string {
	return o.goodsDescription
}

// LoadingAddress returns the address where the goods are loaded.
func (o *Order) LoadingAddress() string {
	return o.loadingAddress
}

// UnloadingAddress returns the address where the goods are unloaded.
func (o *Order) UnloadingAddress() string {
	return o.unloadingAddress
}

// LoadingDate returns the planned loading date.
func (o *Order) LoadingDate() time.Time {
	return o.loadingDate
}

// Price returns the agreed transport price.
func (o *Order) Price() float64 {
	return o.price
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// StartDate returns the date the transport actually started,
// or nil if the order never entered Started.
func (o *Order) StartDate() *time.Time {
	return o.startDate
}

// EndDate returns the date the transport completed, or nil if not completed.
func (o *Order) EndDate() *time.Time {
	return o.endDate
}

// Completion returns the recorded completion figures, or nil if the order
// has not completed.
func (o *Order) Completion() *Completion {
	return o.completion
}

// Advance moves the order to the next non-completed status.
//
// This method enforces the following business rules:
//   - The transition must be permitted by the Status state machine
//     (forward-only with skipping allowed; Failed from any non-terminal)
//   - Completed is rejected: completion requires distances and goes
//     through Complete
//   - First entry into Started stamps the start date with now's date;
//     the start date is never overwritten
//
// After a successful Advance into a non-terminal status, the caller must
// ensure the three referenced resources are claimed (Busy); after an
// Advance into Failed, the caller must release them.
func (o *Order) Advance(next Status, now time.Time) error {
	newStatus, err := o.status.Advance(next)
	if err != nil {
		return err
	}
	if newStatus == Completed {
		return ErrCompletionFlowRequired
	}

	if newStatus == Started && o.startDate == nil {
		startDate := dateOf(now)
		o.startDate = &startDate
	}

	o.status = newStatus
	return nil
}

// Fail moves the order into the absorbing Failed status.
// Permitted from any non-terminal status. Dates are not touched and no
// completion figures are recorded. The caller must release the three
// referenced resources.
func (o *Order) Fail() error {
	newStatus, err := o.status.Advance(Failed)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete finishes the order with the recorded distances.
//
// Permitted from any non-terminal status. Sets the status to Completed and
// stamps the end date with now's date. Completed is terminal, so completion
// fires at most once per order.
//
// The caller must release the three referenced resources and add
// completion.TotalKm() to the truck's odometer in the same business
// transaction; this is the only path that increments an odometer.
func (o *Order) Complete(completion Completion, now time.Time) error {
	if err := completion.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Advance(Completed)
	if err != nil {
		return err
	}

	endDate := dateOf(now)
	o.endDate = &endDate
	o.completion = &completion
	o.status = newStatus
	return nil
}

// ReleasesResourcesOnDelete reports whether deleting the order must release
// its resources. Completed orders released them at completion; re-toggling
// on delete would wrongly free resources claimed by a newer order.
func (o *Order) ReleasesResourcesOnDelete() bool {
	return o.status != Completed
}

// dateOf truncates a timestamp to its calendar date in UTC.
// Milestone dates are dates, not instants.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setResourceIDs(driverID, truckID, trailerID kernel.UUID) error {
	if err := errors.Join(
		driverID.Validate(),
		truckID.Validate(),
		trailerID.Validate(),
	); err != nil {
		return err
	}
	o.driverID = driverID
	o.truckID = truckID
	o.trailerID = trailerID
	return nil
}

func (o *Order) setTransportType(transportType TransportType) error {
	if err := transportType.Validate(); err != nil {
		return err
	}
	o.transportType = transportType
	return nil
}

func (o *Order) setGoodsDescription(goodsDescription string) error {
	if goodsDescription == "" {
		return ErrGoodsDescriptionIsRequired
	}
	o.goodsDescription = goodsDescription
	return nil
}

func (o *Order) setAddresses(loadingAddress, unloadingAddress string) error {
	if loadingAddress == "" {
		return ErrLoadingAddressIsRequired
	}
	if unloadingAddress == "" {
		return ErrUnloadingAddressIsRequired
	}
	o.loadingAddress = loadingAddress
	o.unloadingAddress = unloadingAddress
	return nil
}

func (o *Order) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%v is negative", price),
		)
	}
	o.price = price
	return nil
}
