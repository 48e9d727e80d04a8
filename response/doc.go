// Package response maps OpenWeatherMap response bodies onto the value objects of package weather.
//
// Each endpoint family has one assembler taking the raw body and the unit system the request was
// made with:
//
//	current, err := response.CurrentWeather(body, weather.Metric)
//	if err != nil {
//		// errors.Is(err, response.ErrCannotParse) holds for every mapping failure
//	}
//
// The body is decoded into wire structs whose optional members are pointers. Field extractors
// turn those nodes into value objects: a missing required key or a value violating an invariant
// aborts the whole mapping with a single *ParseError, optional keys that are absent stay nil.
//
// Mapping never performs I/O and keeps no state between calls.
package response
