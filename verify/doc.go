// Package verify holds the state behind the redaction review list: every
// redaction and clue found in a document, kept in spatial order, with a
// viewed flag per row so a reviewer can step through what they have not
// looked at yet.
//
//	s := verify.NewSession(order.NewOrderer(), logger, redactions...)
//	for i, ok := s.Next(-1); ok; i, ok = s.Next(i) {
//	    row, _ := s.Row(i)
//	    // review row.Item
//	    s.MarkViewed(row.ID)
//	}
package verify
