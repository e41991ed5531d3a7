// Package species manages the material library: importing, validating,
// listing and fingerprinting coefficient data.
package species
