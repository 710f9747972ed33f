// Package redaction provides a fluent API for loading redactions and clues
// and putting them in review order.
//
// Basic usage:
//
//	items, warnings, err := redaction.Open("found.yaml").Sorted()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", redaction.FormatWarnings(warnings))
//	}
//
// With options:
//
//	session, _, err := redaction.Open("found.yaml").
//	    Pages(1, 2).
//	    Levels(model.ConfidenceHigh, model.ConfidenceMedium).
//	    Direction(order.RightToLeft).
//	    Session(logger)
//
// Input files are YAML or JSON:
//
//	coordinates: raster      # or pdf, with page_height
//	redactions:
//	  - id: r1
//	    category: SSN
//	    confidence: High
//	    zones:
//	      - {page: 1, left: 72, top: 90, right: 180, bottom: 102}
//
// For lower-level control use the model, order and verify packages.
package redaction

// Open returns a Loader for the given file. Nothing is read until a
// terminal operation such as Items or Sorted is called.
func Open(filename string) *Loader {
	return &Loader{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes returns a Loader reading YAML or JSON from memory
func FromBytes(data []byte) *Loader {
	return &Loader{
		data:    append([]byte(nil), data...),
		hasData: true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	catalog := redaction.Must(exemption.Load("foia.xml"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustItems is a helper that wraps a call to Items or Sorted and panics
// if the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	items := redaction.MustItems(redaction.Open("found.yaml").Sorted())
func MustItems[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
