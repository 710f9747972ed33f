// Package order puts redactions and clues into a stable, predictable
// display order: page ascending, then top to bottom, then in reading
// direction across the line.
//
// # Comparison
//
// [Orderer.Compare] is a total three-way comparison over [model.RankedItem]
// values, nil included:
//
//   - the same item compares [Equal] to itself
//   - absent (nil) items sort before present items
//   - items without usable geometry sort before items with geometry
//   - otherwise the topmost region of each item decides, by page, then
//     top edge, then leading edge
//
// Malformed regions are ignored rather than reported, so the comparison
// never fails part way through a sort.
//
// # Sorting
//
//	o := order.NewOrderer()
//	order.SortStable(o, redactions)
//
// [ByPosition] adapts an [Orderer] to sort.Interface for callers that need
// the untyped form.
//
// # Configuration
//
//	config := order.DefaultConfig()
//	config.Direction = order.RightToLeft
//	o := order.NewOrdererWithConfig(config)
//
// An [Orderer] holds no mutable state and may be shared between goroutines.
package order
