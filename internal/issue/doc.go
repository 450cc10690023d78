// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error presentation: a catalog of known
// failure modes with rendered markdown help, and an ActionableError type that
// carries operation/resource context plus fix suggestions.
package issue
