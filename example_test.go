package redaction_test

import (
	"fmt"
	"log"

	"github.com/tsawler/redaction"
	"github.com/tsawler/redaction/model"
	"github.com/tsawler/redaction/order"
)

func Example_sorted() {
	items, warnings, err := redaction.Open("testdata/found.yaml").
		Pages(1).
		Levels(model.ConfidenceHigh, model.ConfidenceMedium).
		Sorted()
	if err != nil {
		log.Fatal(err)
	}
	for _, item := range items {
		fmt.Println(item.ID)
	}
	_ = warnings
	// Output:
	// ssn-1
	// name-1
}

func Example_orderer() {
	o := order.NewOrderer()
	a := &model.Redaction{ID: "a", Zones: model.RegionSet{model.NewRegion(1, 0, 10, 50, 20)}}
	b := &model.Redaction{ID: "b", Zones: model.RegionSet{model.NewRegion(1, 0, 50, 50, 60)}}

	fmt.Println(o.Compare(a, b), o.Compare(b, a), o.Compare(nil, a), o.Compare(a, a))
	// Output: -1 1 -1 0
}
