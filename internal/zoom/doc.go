// Package zoom provides a client for the Zoom REST API v2.
//
// A Client authenticates every call with a bearer access token, which is
// typically obtained through the zoomauth package or supplied via the
// ZOOM_ACCESS_TOKEN environment variable:
//
//	client, err := zoom.NewClientFromEnvironment()
//	if err != nil {
//	    return err
//	}
//	meetings, err := client.ListMeetings(ctx)
//
// Typed wrappers cover meetings, registrants and users. Listing endpoints
// that paginate with next_page_token are drained transparently. For
// endpoints without a wrapper, the raw Get/Post/Patch/Put/Delete methods
// pass requests through unchanged.
//
// API failures are reported as *APIError with Zoom's status, code and
// message; the IsNotFound, IsNotAuthorized and related predicates match
// common statuses. Transport failures are returned as wrapped errors and
// are never silently retried.
package zoom
