// Package types defines the garden domain entities, the growth stage state
// machine, user settings, configuration, and the standard errors shared by
// the storage and state layers.
package types
