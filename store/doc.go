// Package store saves review sessions to a SQLite database so a
// verification pass can be resumed later.
//
// The pure Go modernc.org/sqlite driver is used, so no C toolchain is
// needed:
//
//	st, err := store.Open(ctx, "review.db", logger)
//	if err != nil {
//	    // handle error
//	}
//	defer st.Close()
//	err = st.Save(ctx, "contract-42", session.Rows())
//	rows, err := st.Load(ctx, "contract-42")
package store
