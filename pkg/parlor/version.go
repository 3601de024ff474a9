// Package parlor holds build metadata for the parlor module.
package parlor

// Version is the parlor release version.
const Version = "0.1.0"
