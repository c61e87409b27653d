// Package calendar provides the Google Calendar implementation of the
// scheduling engine's gateway interface.
//
// The client covers exactly the three provider round trips the engine
// performs: free/busy queries, event listing ordered by start time, and
// event insertion. It supports multi-account authentication via token files
// or service-account credentials and records per-operation metrics and spans
// when instrumentation is attached.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := calendar.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	records, err := client.ListEvents(ctx, "primary", time.Now(), time.Now().AddDate(0, 0, 7), "", 50)
//	if err != nil {
//	    log.Fatal(err)
//	}
package calendar
