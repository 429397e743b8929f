// Package metno provides a client for the met.no locationforecast API.
//
// # Overview
//
// The widget needs a single endpoint, the compact forecast for a fixed point:
//
//	GET https://api.met.no/weatherapi/locationforecast/2.0/compact?lat=..&lon=..&altitude=..
//
// met.no requires an identifying User-Agent header; NewClient refuses to
// build a client without one.
//
// # Usage
//
//	client, err := metno.NewClient(metno.Options{
//		UserAgent: "weatherpane/0.1 you@example.com",
//		Latitude:  59.8837,
//		Longitude: 10.8055,
//		Altitude:  166,
//	})
//	if err != nil {
//		return err
//	}
//	forecast, err := client.Compact(ctx)
//	if err != nil {
//		return err
//	}
//	reading, err := metno.Current(forecast)
//
// # Error Handling
//
// Every error wraps one sentinel naming the step that failed:
//
//   - ErrClient: missing user agent or malformed endpoint
//   - ErrRequest: transport failure or HTTP status >= 400
//   - ErrBody: the response body could not be read
//   - ErrParse: the body is not a valid forecast document
//   - ErrMissingField: no time series, no air temperature, or no next-hour summary
//
// Stage(err) turns these into short names for structured logs.
package metno
