// Package geo provides the two stateless geographic helpers the
// navigator core needs: great-circle distance between coordinates and a
// GPS→screen projection for the map canvas.
//
// What:
//
//   - Coord: a latitude/longitude pair with range validation.
//   - Distance: haversine distance in meters (paulmach/orb).
//   - Projector: maps coordinates into a padded screen rectangle with
//     inverted Y, built once from the campus bounding box.
//
// Why:
//
//   - Edge weights with no surveyed distance fall back to the
//     great-circle distance between their endpoints.
//   - The renderer needs a pure, stateless coordinate transform; it
//     lives here so drawing code carries no geographic math.
//
// Errors:
//
//   - ErrNoCoords: a Projector was requested over an empty coordinate set.
//
// Distance is exact haversine on the mean Earth radius; for a 51-acre
// campus the spherical error is far below walkway-survey precision.
package geo
