// Package fingerprint derives short, stable identifiers for material data so
// users and caches can tell whether two libraries hold the same coefficients.
package fingerprint
