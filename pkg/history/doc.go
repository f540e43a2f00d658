// Package history records accepted gift circles in a local SQLite database.
//
// Each draw gets a random UUID and keeps its metadata (label, attempts,
// seed, whether groups were enforced) together with the full assignment in
// cycle order, so a past draw can be listed, shown again, or reproduced from
// its seed.
//
//	st, err := history.Open(ctx, path)
//	if err != nil {
//	    return err
//	}
//	defer st.Close()
//
//	d, err := st.Record(ctx, "Christmas 2026", res)
//
// The store uses the pure-Go modernc.org/sqlite driver and a single
// connection, so it is safe for concurrent use from one process.
package history
