// Package pixel implements the packed pixel formats transmitted to display
// panels.
package pixel
