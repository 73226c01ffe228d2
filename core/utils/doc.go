// Package utils provides common utility functions for the data-manager
// application. It includes helper functions for scalar type conversion and
// empty-value checks shared by the codec, sync, and store packages.
package utils
