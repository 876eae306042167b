// Package tourio reads city lists and writes tours.
//
// Inputs:
//   - ReadCities: CSV, one "x,y" record per city, optional header line.
//   - ReadGeoJSON: FeatureCollection of Point / MultiPoint features.
//   - ReadCitiesFile: picks the format by file extension.
//
// City ids are the 0-based order of appearance. Malformed or empty input is
// rejected here, so the solvers only ever see well-formed coordinates.
//
// Outputs:
//   - WriteTour / ReadTour: the "index" header followed by one city id per line.
//   - WriteGeoJSON: the closed tour as a LineString plus one Point per city.
//   - PrintTour: human-readable listing with leg and running lengths.
//   - WriteReport / ReadReport: YAML run summary built by NewReport.
package tourio
