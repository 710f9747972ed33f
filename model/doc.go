// Package model defines the data handled by the redaction verification
// workflow.
//
// # Geometry
//
// A [Region] is an axis-aligned rectangle on one page, in raster
// coordinates (Y grows downward). PDF rectangles can be converted with
// [NewRegionFromPDF]. A [RegionSet] holds every zone of one item and may be
// empty; its helpers skip malformed regions (NaN or infinite coordinates,
// inverted edges, page numbers below 1) instead of failing.
//
// # Items
//
// Anything that can be put in spatial order implements [RankedItem]. The
// concrete [Redaction] type covers both confirmed redactions and clues
// ([KindClue]) and carries a [ConfidenceLevel] and applied [Exemptions].
package model
